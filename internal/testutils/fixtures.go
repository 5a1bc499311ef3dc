package testutils

import (
	"github.com/KirkDiggler/rpg-converter/internal/entities/foundry5e"
	"github.com/KirkDiggler/rpg-converter/internal/statblock"
)

const (
	// TestUserID is the Foundry user id stamped into test documents
	TestUserID = "feedfacecafebeef"

	// IronclawBruteText is OCR text of a complete, clean stat block
	IronclawBruteText = `Ironclaw Brute
Tier 2 Solo
A hulking warrior encased in scavenged plate.
Difficulty: 15
Thresholds: 10 / 20
HP: 6
Stress: 4
ATK: +3 | Warhammer: 2d6+1 | melee
FEATURES
Relentless - Passive
Ignores the first point of stress taken each round.
Overwhelm - Action
Deals an extra 1d6 damage on a successful melee attack.`
)

// CreateTestRecord returns the record IronclawBruteText parses to
func CreateTestRecord() *statblock.Record {
	return &statblock.Record{
		Name:            "Ironclaw Brute",
		Tier:            IntPtr(2),
		Category:        "solo",
		Description:     "A hulking warrior encased in scavenged plate.",
		Difficulty:      IntPtr(15),
		MajorThreshold:  IntPtr(10),
		SevereThreshold: IntPtr(20),
		HitPointMax:     IntPtr(6),
		StressMax:       IntPtr(4),
		Attack: &statblock.Attack{
			Bonus:       3,
			Name:        "Warhammer",
			DiceCount:   2,
			DieFace:     "d6",
			DamageBonus: 1,
			Range:       "melee",
		},
		Features: []statblock.Feature{
			{
				Name:        "Relentless",
				Kind:        statblock.KindPassive,
				Description: "<p>Ignores the first point of stress taken each round.</p>",
			},
			{
				Name:        "Overwhelm",
				Kind:        statblock.KindAction,
				Description: "<p>Deals an extra 1d6 damage on a successful melee attack.</p>",
			},
		},
	}
}

// CreateTestActor creates a 5e actor export with sensible defaults
func CreateTestActor(name string, cr float64) *foundry5e.Actor {
	rating := foundry5e.ChallengeRating(cr)
	return &foundry5e.Actor{
		Name: name,
		Type: "npc",
		Img:  "tokens/" + name + ".webp",
		System: foundry5e.ActorSystem{
			Details: foundry5e.Details{
				Biography: foundry5e.Description{Value: "<p>A test creature.</p>"},
				CR:        &rating,
			},
			Attributes: foundry5e.Attributes{
				AC: foundry5e.ArmorClass{Value: IntPtr(13)},
				HP: foundry5e.HitPoints{Value: IntPtr(22), Max: IntPtr(22)},
			},
		},
		Items: []*foundry5e.Item{},
	}
}

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}
