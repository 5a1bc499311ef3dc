// Package conversion builds FoundryVTT Daggerheart adversaries from parsed
// stat blocks, 5e actor exports and SRD monsters.
package conversion

import (
	"fmt"
	"html"
	"strings"

	"github.com/KirkDiggler/rpg-converter/internal/entities/daggerheart"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-converter/internal/pkg/idgen"
)

// Adversary defaults for fields a source does not provide
const (
	DefaultDifficulty      = 10
	DefaultMajorThreshold  = 1
	DefaultSevereThreshold = 2
	DefaultHitPoints       = 6
	DefaultStress          = 5
	DefaultTier            = 1
	DefaultType            = daggerheart.AdversaryTypeSolo
	DefaultMotives         = "Motives and tactics need to be reviewed."

	// 5e sources carry no thresholds, so they get tier 2 numbers
	ActorMajorThreshold  = 12
	ActorSevereThreshold = 24

	// MinimumDifficulty is the floor applied to 5e armor class
	MinimumDifficulty = 10
	// DefaultArmorClass is used when an actor has no readable AC
	DefaultArmorClass = 10

	MissingDescription = "<p>Description not found during conversion.</p>"
)

// Notes written on each adversary, by source
const (
	NotesFromImage   = "Converted from a stat-block image."
	NotesFromActor   = "Converted from a D&D 5e actor export."
	NotesFromMonster = "Converted from the D&D 5e SRD."
)

// Config holds the converter's dependencies
type Config struct {
	// IDGenerator produces the embedded action keys. Foundry expects 16
	// hex characters.
	IDGenerator idgen.Generator
	// Clock stamps createdTime and modifiedTime
	Clock clock.Clock
	// UserID is written to lastModifiedBy on every document
	UserID string
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if strings.TrimSpace(c.UserID) == "" {
		vb.RequiredField("UserID")
	}
	return vb.Build()
}

type converter struct {
	idGen  idgen.Generator
	clock  clock.Clock
	userID string
}

// New creates a converter
func New(cfg *Config) (Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &converter{
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
		userID: cfg.UserID,
	}, nil
}

func (c *converter) stats() daggerheart.Stats {
	return daggerheart.NewStats(c.clock.Now().UnixMilli(), c.userID)
}

// newFeature builds a feature with one embedded action carrying the same
// description.
func (c *converter) newFeature(name, img, actionType, description string) *daggerheart.Feature {
	feature := daggerheart.NewFeature(name)
	if img != "" {
		feature.Img = img
	}
	feature.System.Description = description
	feature.AddAction(daggerheart.NewAction(c.idGen.Generate(), actionType, description))
	feature.Stats = c.stats()
	return feature
}

func (c *converter) newAdversary(name, notes string) *daggerheart.Adversary {
	adversary := daggerheart.NewAdversary(name)
	adversary.System.Difficulty = DefaultDifficulty
	adversary.System.DamageThresholds = daggerheart.DamageThresholds{
		Major:  DefaultMajorThreshold,
		Severe: DefaultSevereThreshold,
	}
	adversary.System.Resources.HitPoints.Max = DefaultHitPoints
	adversary.System.Resources.Stress.Max = DefaultStress
	adversary.System.Type = DefaultType
	adversary.System.Tier = DefaultTier
	adversary.System.MotivesAndTactics = DefaultMotives
	adversary.System.Notes = notes
	adversary.Stats = c.stats()
	return adversary
}

func (c *converter) newAttack(name string, bonus, count int, face string, damageBonus int, rangeKey, damageType string) *daggerheart.AdversaryAttack {
	if rangeKey == "" {
		rangeKey = daggerheart.RangeMelee
	}
	if damageType == "" {
		damageType = daggerheart.DamageTypePhysical
	}
	return &daggerheart.AdversaryAttack{
		ID:          c.idGen.Generate(),
		Name:        name,
		Img:         daggerheart.DefaultImage,
		Type:        daggerheart.DocumentTypeAttack,
		SystemPath:  "attack",
		ChatDisplay: true,
		ActionType:  daggerheart.DocumentTypeAction,
		Range:       rangeKey,
		Target:      daggerheart.Target{Type: "any"},
		Roll:        daggerheart.AttackRoll{Type: daggerheart.DocumentTypeAttack, Bonus: bonus},
		Damage: daggerheart.Damage{Parts: []daggerheart.DamagePart{{
			Value: daggerheart.DamageValue{
				Multiplier:     "flat",
				FlatMultiplier: count,
				Dice:           face,
				Bonus:          damageBonus,
			},
			Type:    []string{damageType},
			ApplyTo: "hitPoints",
		}}},
	}
}

// tierForChallengeRating maps 5e CR onto Daggerheart tiers
func tierForChallengeRating(cr float64) int {
	switch {
	case cr < 1:
		return 1
	case cr <= 4:
		return 2
	case cr <= 10:
		return 3
	case cr <= 16:
		return 4
	default:
		return 5
	}
}

// difficultyForArmorClass floors AC at MinimumDifficulty
func difficultyForArmorClass(ac int) int {
	return max(MinimumDifficulty, ac)
}

// paragraph wraps plain text in a <p> element, escaping it
func paragraph(text string) string {
	return "<p>" + html.EscapeString(text) + "</p>"
}

func warnf(out *Output, format string, args ...any) {
	out.Warnings = append(out.Warnings, fmt.Sprintf(format, args...))
}
