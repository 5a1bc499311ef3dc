package daggerheart

// Adversary is a Foundry "adversary" actor document
type Adversary struct {
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Img            string          `json:"img"`
	System         AdversarySystem `json:"system"`
	PrototypeToken map[string]any  `json:"prototypeToken"`
	Items          []*Feature      `json:"items"`
	Effects        []any           `json:"effects"`
	Flags          map[string]any  `json:"flags"`
	Stats          Stats           `json:"_stats"`
}

// AdversarySystem is the system-specific data of an adversary
type AdversarySystem struct {
	Difficulty        int                    `json:"difficulty"`
	DamageThresholds  DamageThresholds       `json:"damageThresholds"`
	Resources         Resources              `json:"resources"`
	Resistance        Resistances            `json:"resistance"`
	Type              string                 `json:"type"`
	Notes             string                 `json:"notes"`
	Tier              int                    `json:"tier"`
	Description       RichText               `json:"description"`
	MotivesAndTactics string                 `json:"motivesAndTactics"`
	Attack            *AdversaryAttack       `json:"attack,omitempty"`
	Experiences       map[string]*Experience `json:"experiences,omitempty"`
}

// DamageThresholds are the major and severe damage thresholds
type DamageThresholds struct {
	Major  int `json:"major"`
	Severe int `json:"severe"`
}

// Resources tracks the adversary's hit points and stress
type Resources struct {
	HitPoints Resource `json:"hitPoints"`
	Stress    Resource `json:"stress"`
}

// Resource is a marked-up-to-max track. Adversary tracks fill up as damage is
// taken, hence IsReversed.
type Resource struct {
	Value      int  `json:"value"`
	Max        int  `json:"max"`
	IsReversed bool `json:"isReversed"`
}

// Resistances holds per damage type resistance
type Resistances struct {
	Physical Resistance `json:"physical"`
	Magical  Resistance `json:"magical"`
}

// Resistance describes resistance to one damage type
type Resistance struct {
	Resistance bool `json:"resistance"`
	Immunity   bool `json:"immunity"`
	Reduction  int  `json:"reduction"`
}

// RichText is an HTML text field
type RichText struct {
	Value string `json:"value"`
}

// AdversaryAttack is the standard attack shown on the adversary sheet
type AdversaryAttack struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Img         string     `json:"img"`
	Type        string     `json:"type"`
	SystemPath  string     `json:"systemPath"`
	ChatDisplay bool       `json:"chatDisplay"`
	ActionType  string     `json:"actionType"`
	Range       string     `json:"range"`
	Target      Target     `json:"target"`
	Roll        AttackRoll `json:"roll"`
	Damage      Damage     `json:"damage"`
}

// AttackRoll is the attack roll modifier
type AttackRoll struct {
	Type  string `json:"type"`
	Bonus int    `json:"bonus"`
}

// Experience is a named adversary experience
type Experience struct {
	Name        string `json:"name"`
	Value       int    `json:"value"`
	Description string `json:"description"`
}

// Stats is Foundry's document bookkeeping block
type Stats struct {
	CoreVersion    string `json:"coreVersion"`
	SystemID       string `json:"systemId"`
	SystemVersion  string `json:"systemVersion"`
	CreatedTime    int64  `json:"createdTime"`
	ModifiedTime   int64  `json:"modifiedTime"`
	LastModifiedBy string `json:"lastModifiedBy"`
}

// NewStats stamps a document created at millis by userID
func NewStats(millis int64, userID string) Stats {
	return Stats{
		CoreVersion:    CoreVersion,
		SystemID:       SystemID,
		SystemVersion:  SystemVersion,
		CreatedTime:    millis,
		ModifiedTime:   millis,
		LastModifiedBy: userID,
	}
}

// NewAdversary returns an adversary with the system defaults filled in. The
// empty collections are non-nil so they serialise as [] and {}.
func NewAdversary(name string) *Adversary {
	return &Adversary{
		Name: name,
		Type: DocumentTypeAdversary,
		Img:  DefaultImage,
		System: AdversarySystem{
			Resources: Resources{
				HitPoints: Resource{IsReversed: true},
				Stress:    Resource{IsReversed: true},
			},
			Type: AdversaryTypeSolo,
			Tier: 1,
		},
		PrototypeToken: map[string]any{},
		Items:          []*Feature{},
		Effects:        []any{},
		Flags:          map[string]any{},
	}
}
