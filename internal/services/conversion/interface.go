package conversion

import (
	"context"

	"github.com/KirkDiggler/rpg-converter/internal/clients/external"
	"github.com/KirkDiggler/rpg-converter/internal/entities/daggerheart"
	"github.com/KirkDiggler/rpg-converter/internal/entities/foundry5e"
	"github.com/KirkDiggler/rpg-converter/internal/statblock"
)

// Converter maps each supported source onto Daggerheart documents. Every
// method returns a fresh Output and never mutates its input.
//
//go:generate mockgen -destination=mock/mock_converter.go -package=conversionmock github.com/KirkDiggler/rpg-converter/internal/services/conversion Converter
type Converter interface {
	// FromRecord converts a parsed stat block. Absent fields take the
	// adversary defaults (difficulty 10, thresholds 1/2, 6 HP, 5 stress,
	// tier 1 solo).
	FromRecord(ctx context.Context, record *statblock.Record) (*Output, error)

	// FromActor converts a FoundryVTT 5e actor export. Armor class becomes
	// difficulty and challenge rating becomes tier; every item becomes a
	// feature.
	FromActor(ctx context.Context, actor *foundry5e.Actor) (*Output, error)

	// FromMonster converts an SRD monster. The first action with an attack
	// bonus and readable damage becomes the standard attack.
	FromMonster(ctx context.Context, monster *external.MonsterData) (*Output, error)
}

// Output is the result of one conversion
type Output struct {
	// Adversary embeds Features as its items
	Adversary *daggerheart.Adversary
	// Features are the same documents, written out individually
	Features []*daggerheart.Feature
	// Warnings lists the defaults and placeholders that were applied
	Warnings []string
}
