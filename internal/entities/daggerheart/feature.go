package daggerheart

// Feature is a Foundry "feature" item document
type Feature struct {
	Folder  *string        `json:"folder"`
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Img     string         `json:"img"`
	System  FeatureSystem  `json:"system"`
	Effects []any          `json:"effects"`
	Flags   map[string]any `json:"flags"`
	Stats   Stats          `json:"_stats"`
}

// FeatureSystem is the system-specific data of a feature
type FeatureSystem struct {
	Description      string             `json:"description"`
	Resource         any                `json:"resource"`
	Actions          map[string]*Action `json:"actions"`
	OriginItemType   *string            `json:"originItemType"`
	MulticlassOrigin bool               `json:"multiclassOrigin"`
}

// Action is an action embedded in a feature, keyed by its ID
type Action struct {
	Type        string         `json:"type"`
	ID          string         `json:"_id"`
	SystemPath  string         `json:"systemPath"`
	Description string         `json:"description"`
	ChatDisplay bool           `json:"chatDisplay"`
	ActionType  string         `json:"actionType"`
	Cost        []any          `json:"cost"`
	Uses        map[string]any `json:"uses"`
	Damage      Damage         `json:"damage"`
	Target      Target         `json:"target"`
	Effects     []any          `json:"effects"`
	Roll        ActionRoll     `json:"roll"`
	Save        Save           `json:"save"`
	Range       string         `json:"range"`
}

// Damage lists the damage parts an action deals
type Damage struct {
	Parts []DamagePart `json:"parts"`
}

// DamagePart is one damage formula. Count dice of Dice plus Bonus.
type DamagePart struct {
	Value   DamageValue `json:"value"`
	Type    []string    `json:"type"`
	ApplyTo string      `json:"applyTo"`
}

// DamageValue is the dice formula of a damage part
type DamageValue struct {
	Multiplier     string `json:"multiplier"`
	FlatMultiplier int    `json:"flatMultiplier"`
	Dice           string `json:"dice"`
	Bonus          int    `json:"bonus"`
}

// Target is what an action can target
type Target struct {
	Type string `json:"type"`
}

// ActionRoll is the roll modifier of an action
type ActionRoll struct {
	Bonus int `json:"bonus"`
}

// Save is an action's saving throw
type Save struct {
	Trait      *string `json:"trait"`
	Difficulty *int    `json:"difficulty"`
	DamageMod  string  `json:"damageMod"`
}

// NewFeature returns a feature with empty collections initialised
func NewFeature(name string) *Feature {
	return &Feature{
		Name: name,
		Type: DocumentTypeFeature,
		Img:  DefaultImage,
		System: FeatureSystem{
			Actions: map[string]*Action{},
		},
		Effects: []any{},
		Flags:   map[string]any{},
	}
}

// NewAction returns an action with the given id. actionType is "action",
// "passive" or "reaction".
func NewAction(id, actionType, description string) *Action {
	return &Action{
		Type:        DocumentTypeAction,
		ID:          id,
		SystemPath:  "actions",
		Description: description,
		ChatDisplay: true,
		ActionType:  actionType,
		Cost:        []any{},
		Uses:        map[string]any{},
		Damage:      Damage{Parts: []DamagePart{}},
		Target:      Target{Type: "any"},
		Effects:     []any{},
		Save:        Save{DamageMod: "none"},
		Range:       RangeClose,
	}
}

// AddAction embeds a under its ID
func (f *Feature) AddAction(a *Action) {
	if f.System.Actions == nil {
		f.System.Actions = map[string]*Action{}
	}
	f.System.Actions[a.ID] = a
}
