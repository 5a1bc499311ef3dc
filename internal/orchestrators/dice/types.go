package dice

// RollDamageInput defines the request for previewing a damage expression
type RollDamageInput struct {
	// Notation is "XdY" or "XdY+Z"
	Notation string
	// Times is how many rolls to make. Zero means one.
	Times int
}

// RollDamageOutput defines the response for previewing damage
type RollDamageOutput struct {
	Rolls []*DamageRoll
	// Average is the expected total of one roll
	Average float64
}

// DamageRoll is one roll of a damage expression
type DamageRoll struct {
	RollID      string
	Notation    string
	Dice        []int32
	DiceTotal   int32
	Modifier    int32
	Total       int32
	Description string
}
