package conversion

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-converter/internal/entities/daggerheart"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/statblock"
)

// FromRecord converts a parsed stat block
func (c *converter) FromRecord(ctx context.Context, record *statblock.Record) (*Output, error) {
	if record == nil {
		return nil, errors.InvalidArgument("record is required")
	}

	out := &Output{}
	adversary := c.newAdversary(record.Name, NotesFromImage)
	system := &adversary.System

	if record.Tier != nil {
		system.Tier = *record.Tier
	} else {
		warnf(out, "tier not found, using %d", DefaultTier)
	}
	if record.Category != "" {
		system.Type = record.Category
		if !daggerheart.KnownAdversaryType(record.Category) {
			warnf(out, "unknown adversary type %q kept as written", record.Category)
		}
	}
	if record.Description != "" {
		system.Description.Value = paragraph(record.Description)
	}
	if record.MotivesAndTactics != "" {
		system.MotivesAndTactics = record.MotivesAndTactics
	}
	if record.Difficulty != nil {
		system.Difficulty = *record.Difficulty
	} else {
		warnf(out, "difficulty not found, using %d", DefaultDifficulty)
	}
	if record.MajorThreshold != nil && record.SevereThreshold != nil {
		system.DamageThresholds.Major = *record.MajorThreshold
		system.DamageThresholds.Severe = *record.SevereThreshold
	} else {
		warnf(out, "thresholds not found, using %d/%d", DefaultMajorThreshold, DefaultSevereThreshold)
	}
	if record.HitPointMax != nil {
		system.Resources.HitPoints.Max = *record.HitPointMax
	}
	if record.StressMax != nil {
		system.Resources.Stress.Max = *record.StressMax
	}

	if record.Experience != nil {
		system.Experiences = map[string]*daggerheart.Experience{
			c.idGen.Generate(): {
				Name:  record.Experience.Label,
				Value: record.Experience.Bonus,
			},
		}
	}

	if record.Attack != nil {
		attack, err := c.recordAttack(record.Attack)
		if err != nil {
			slog.WarnContext(ctx, "dropping unusable attack",
				"adversary", record.Name,
				"attack", record.Attack.Name,
				"error", err)
			warnf(out, "attack %q dropped: %v", record.Attack.Name, err)
		} else {
			system.Attack = attack
		}
	}

	out.Features = make([]*daggerheart.Feature, 0, len(record.Features))
	for _, f := range record.Features {
		out.Features = append(out.Features, c.newFeature(f.Name, "", f.Kind, f.Description))
	}
	adversary.Items = out.Features
	out.Adversary = adversary

	slog.DebugContext(ctx, "converted stat block",
		"adversary", adversary.Name,
		"features", len(out.Features),
		"warnings", len(out.Warnings))

	return out, nil
}

// recordAttack checks the dice with the toolkit before building the attack,
// so an OCR result like "0d6" never reaches the sheet.
func (c *converter) recordAttack(a *statblock.Attack) (*daggerheart.AdversaryAttack, error) {
	size, err := strconv.Atoi(strings.TrimPrefix(a.DieFace, "d"))
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid die face %q", a.DieFace)
	}
	if a.DiceCount <= 0 {
		return nil, errors.InvalidArgumentf("invalid damage %d%s: no dice", a.DiceCount, a.DieFace)
	}
	if _, err := dice.NewRoll(a.DiceCount, size); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "invalid damage %d%s", a.DiceCount, a.DieFace)
	}

	return c.newAttack(
		a.Name,
		a.Bonus,
		a.DiceCount,
		a.DieFace,
		a.DamageBonus,
		daggerheart.RangeFromText(a.Range),
		a.DamageType,
	), nil
}
