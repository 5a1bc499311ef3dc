package conversion

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-converter/internal/clients/external"
	"github.com/KirkDiggler/rpg-converter/internal/entities/daggerheart"
	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/statblock"
)

// physicalDamageTypes are the 5e weapon damage types; everything else is
// treated as magical.
var physicalDamageTypes = map[string]bool{
	"bludgeoning": true,
	"piercing":    true,
	"slashing":    true,
}

// FromMonster converts an SRD monster
func (c *converter) FromMonster(ctx context.Context, monster *external.MonsterData) (*Output, error) {
	if monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}
	if monster.Name == "" {
		return nil, errors.InvalidArgumentf("monster %q has no name", monster.Key)
	}

	out := &Output{}
	adversary := c.newAdversary(monster.Name, NotesFromMonster)

	system := &adversary.System
	system.Difficulty = difficultyForArmorClass(monster.ArmorClass)
	system.Tier = tierForChallengeRating(monster.ChallengeRating)
	system.DamageThresholds = daggerheart.DamageThresholds{
		Major:  ActorMajorThreshold,
		Severe: ActorSevereThreshold,
	}
	if monster.Type != "" {
		system.Description.Value = paragraph(fmt.Sprintf("SRD %s, %d hit points (%s).", monster.Type, monster.HitPoints, monster.HitDice))
	}

	out.Features = make([]*daggerheart.Feature, 0, len(monster.Actions))
	for _, action := range monster.Actions {
		if action == nil {
			continue
		}

		if system.Attack == nil {
			system.Attack = c.monsterAttack(action)
		}

		description := MissingDescription
		if action.Description != "" {
			description = paragraph(action.Description)
		} else {
			warnf(out, "no description for %q, using placeholder", action.Name)
		}
		out.Features = append(out.Features, c.newFeature(action.Name, "", daggerheart.DocumentTypeAction, description))
	}
	if system.Attack == nil {
		warnf(out, "no action with an attack bonus and damage")
	}

	adversary.Items = out.Features
	out.Adversary = adversary

	return out, nil
}

// monsterAttack returns nil unless the action has an attack bonus and at
// least one damage roll that parses.
func (c *converter) monsterAttack(action *external.MonsterAction) *daggerheart.AdversaryAttack {
	if action.AttackBonus == nil {
		return nil
	}

	for _, d := range action.Damage {
		damage, ok := statblock.ParseDamage(d.Dice)
		if !ok || damage.DiceCount <= 0 {
			continue
		}

		damageType := daggerheart.DamageTypePhysical
		if d.Type != "" && !physicalDamageTypes[d.Type] {
			damageType = daggerheart.DamageTypeMagical
		}

		rangeKey := daggerheart.RangeMelee
		if strings.Contains(strings.ToLower(action.Description), "ranged") {
			rangeKey = daggerheart.RangeFar
		}

		return c.newAttack(action.Name, *action.AttackBonus, damage.DiceCount, damage.DieFace, damage.Bonus, rangeKey, damageType)
	}

	return nil
}
