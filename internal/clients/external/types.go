package external

// MonsterData is an SRD monster in the shape the converter needs
type MonsterData struct {
	Key             string
	Name            string
	Type            string
	ArmorClass      int
	HitPoints       int
	HitDice         string
	ChallengeRating float64
	Actions         []*MonsterAction
}

// MonsterAction is one entry of a monster's action list. AttackBonus is nil
// for actions that are not attacks.
type MonsterAction struct {
	Name        string
	Description string
	AttackBonus *int
	Damage      []*MonsterDamage
}

// MonsterDamage is a damage roll such as "2d6+3" with its 5e damage type
type MonsterDamage struct {
	Dice string
	Type string
}
