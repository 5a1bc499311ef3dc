// Package foundry5e reads the FoundryVTT "dnd5e" actor and item exports the
// converter accepts as input. Only the fields the conversion uses are modelled.
package foundry5e

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

// Actor is an exported 5e actor
type Actor struct {
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Img            string         `json:"img"`
	System         ActorSystem    `json:"system"`
	PrototypeToken map[string]any `json:"prototypeToken"`
	Items          []*Item        `json:"items"`
}

// ActorSystem is the dnd5e system data of an actor
type ActorSystem struct {
	Details    Details    `json:"details"`
	Attributes Attributes `json:"attributes"`
}

// Details carries the biography and challenge rating
type Details struct {
	Biography Description      `json:"biography"`
	CR        *ChallengeRating `json:"cr"`
}

// Attributes carries armor class and hit points
type Attributes struct {
	AC ArmorClass `json:"ac"`
	HP HitPoints  `json:"hp"`
}

// ArmorClass is the dnd5e AC block. Value is the computed AC and Flat the
// manually entered one; either may be missing or null.
type ArmorClass struct {
	Value *int `json:"value"`
	Flat  *int `json:"flat"`
}

// HitPoints is the dnd5e hp block
type HitPoints struct {
	Value *int `json:"value"`
	Max   *int `json:"max"`
}

// Item is an exported 5e item (weapon, feat, spell...)
type Item struct {
	Name   string     `json:"name"`
	Type   string     `json:"type"`
	Img    string     `json:"img"`
	System ItemSystem `json:"system"`
}

// ItemSystem is the dnd5e system data of an item
type ItemSystem struct {
	Description Description `json:"description"`
}

// Description is an HTML description. Exports use both {"value": "<p>..</p>"}
// and a bare string.
type Description struct {
	Value string
}

// UnmarshalJSON accepts an object with a value key, a string or null
func (d *Description) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		d.Value = ""
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &d.Value)
	}

	var obj struct {
		Value *string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Value != nil {
		d.Value = *obj.Value
	}
	return nil
}

// MarshalJSON writes the object form
func (d Description) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Value string `json:"value"`
	}{Value: d.Value})
}

// ChallengeRating is a CR that may be exported as a number, a numeric string
// or a fraction such as "1/4".
type ChallengeRating float64

// UnmarshalJSON parses any of the CR forms
func (c *ChallengeRating) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*c = ChallengeRating(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.InvalidArgumentf("challenge rating %s is neither a number nor a string", string(data))
	}

	v, err := parseCR(s)
	if err != nil {
		return err
	}
	*c = ChallengeRating(v)
	return nil
}

func parseCR(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, err2 := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, errors.InvalidArgumentf("invalid challenge rating %q", s)
		}
		return n / d, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid challenge rating %q", s)
	}
	return v, nil
}

// LoadActor decodes an actor export
func LoadActor(r io.Reader) (*Actor, error) {
	var actor Actor
	if err := json.NewDecoder(r).Decode(&actor); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode actor")
	}
	return &actor, nil
}

// LoadItem decodes a single item export
func LoadItem(r io.Reader) (*Item, error) {
	var item Item
	if err := json.NewDecoder(r).Decode(&item); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode item")
	}
	return &item, nil
}
