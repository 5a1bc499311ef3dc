package conversion

import (
	"context"
	"log/slog"
	"maps"

	"github.com/KirkDiggler/rpg-converter/internal/entities/daggerheart"
	"github.com/KirkDiggler/rpg-converter/internal/entities/foundry5e"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/statblock"
)

// defaultActorChallengeRating applies when an export has no CR at all
const defaultActorChallengeRating = 1

// FromActor converts a FoundryVTT 5e actor export
func (c *converter) FromActor(ctx context.Context, actor *foundry5e.Actor) (*Output, error) {
	if actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}

	out := &Output{}

	name := actor.Name
	if name == "" {
		name = statblock.UnnamedAdversary
		warnf(out, "actor has no name, using %q", name)
	}

	adversary := c.newAdversary(name, NotesFromActor)
	if actor.Img != "" {
		adversary.Img = actor.Img
	}
	if actor.PrototypeToken != nil {
		adversary.PrototypeToken = maps.Clone(actor.PrototypeToken)
	}

	system := &adversary.System
	system.Description.Value = actor.System.Details.Biography.Value
	system.DamageThresholds = daggerheart.DamageThresholds{
		Major:  ActorMajorThreshold,
		Severe: ActorSevereThreshold,
	}

	ac, ok := armorClass(actor.System.Attributes.AC)
	if !ok {
		warnf(out, "armor class not found, using %d", ac)
		slog.WarnContext(ctx, "could not determine armor class",
			"actor", name,
			"default", ac)
	}
	system.Difficulty = difficultyForArmorClass(ac)

	cr := float64(defaultActorChallengeRating)
	if actor.System.Details.CR != nil {
		cr = float64(*actor.System.Details.CR)
	} else {
		warnf(out, "challenge rating not found, using %d", defaultActorChallengeRating)
	}
	system.Tier = tierForChallengeRating(cr)

	slog.DebugContext(ctx, "mapped actor stats",
		"actor", name,
		"armor_class", ac,
		"difficulty", system.Difficulty,
		"challenge_rating", cr,
		"tier", system.Tier)

	out.Features = make([]*daggerheart.Feature, 0, len(actor.Items))
	for _, item := range actor.Items {
		if item == nil {
			continue
		}
		out.Features = append(out.Features, c.itemFeature(ctx, out, item))
	}
	adversary.Items = out.Features
	out.Adversary = adversary

	return out, nil
}

func (c *converter) itemFeature(ctx context.Context, out *Output, item *foundry5e.Item) *daggerheart.Feature {
	name := item.Name
	if name == "" {
		name = "Unnamed Feature"
	}

	description := item.System.Description.Value
	if description == "" {
		slog.WarnContext(ctx, "item has no description", "item", name)
		warnf(out, "no description for %q, using placeholder", name)
		description = MissingDescription
	}

	return c.newFeature(name, item.Img, daggerheart.DocumentTypeAction, description)
}

// armorClass prefers the computed value, then the flat value. ok is false
// when neither is present and DefaultArmorClass was used.
func armorClass(ac foundry5e.ArmorClass) (int, bool) {
	switch {
	case ac.Value != nil:
		return *ac.Value, true
	case ac.Flat != nil:
		return *ac.Flat, true
	default:
		return DefaultArmorClass, false
	}
}
