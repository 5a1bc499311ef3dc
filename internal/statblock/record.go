// Package statblock turns OCR text of a Daggerheart adversary stat block into a
// structured Record.
//
// Parsing is a set of independent extractors over the untouched text plus a
// line-based feature segmenter. Every extractor degrades to "absent" when its
// pattern does not match, so Parse never fails on text input; deciding what to
// do with missing data belongs to the caller.
package statblock

import "strconv"

// UnnamedAdversary is the name given to records parsed from blank text.
const UnnamedAdversary = "Unnamed Adversary"

// Feature kinds as written on title lines, lower-cased.
const (
	KindAction   = "action"
	KindPassive  = "passive"
	KindReaction = "reaction"
)

// Record is the intermediate result of parsing one stat block.
//
// Optional numeric fields are pointers: nil means nothing matched, which is
// different from a parsed zero. A Record is built once by Parser.Parse and is
// treated as read-only afterwards.
type Record struct {
	Name              string      `json:"name"`
	Tier              *int        `json:"tier,omitempty"`
	Category          string      `json:"category,omitempty"`
	Description       string      `json:"description,omitempty"`
	MotivesAndTactics string      `json:"motivesAndTactics,omitempty"`
	Difficulty        *int        `json:"difficulty,omitempty"`
	MajorThreshold    *int        `json:"majorThreshold,omitempty"`
	SevereThreshold   *int        `json:"severeThreshold,omitempty"`
	HitPointMax       *int        `json:"hitPointMax,omitempty"`
	StressMax         *int        `json:"stressMax,omitempty"`
	Experience        *Experience `json:"experience,omitempty"`
	Attack            *Attack     `json:"attack,omitempty"`
	Features          []Feature   `json:"features"`
}

// Experience is a single "<label> +<bonus>" experience entry.
type Experience struct {
	Label string `json:"label"`
	Bonus int    `json:"bonus"`
}

// Attack is the standard attack line, e.g. "ATK: +3 | Warhammer: 2d6+1 | melee".
type Attack struct {
	Bonus       int    `json:"bonus"`
	Name        string `json:"name"`
	DiceCount   int    `json:"diceCount"`
	DieFace     string `json:"dieFace"`
	DamageBonus int    `json:"damageBonus"`

	// Range and DamageType are filled when the attack line carries them.
	Range      string `json:"range,omitempty"`
	DamageType string `json:"damageType,omitempty"`
}

// Notation renders the damage as dice notation, e.g. "2d6+1".
func (a *Attack) Notation() string {
	if a.DamageBonus == 0 {
		return strconv.Itoa(a.DiceCount) + a.DieFace
	}
	return strconv.Itoa(a.DiceCount) + a.DieFace + "+" + strconv.Itoa(a.DamageBonus)
}

// Feature is one named ability from the FEATURES section. Description is
// already corrected and wrapped in a <p> element.
type Feature struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// HasName reports whether the record carries a real name rather than the
// sentinel for blank input.
func (r *Record) HasName() bool {
	return r != nil && r.Name != "" && r.Name != UnnamedAdversary
}

func intPtr(v int) *int {
	return &v
}
