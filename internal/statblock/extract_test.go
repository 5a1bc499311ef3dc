package statblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTierAndCategory(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		tier     int
		category string
		ok       bool
	}{
		{name: "standard", text: "Tier 2 Solo", tier: 2, category: "solo", ok: true},
		{name: "lower case and extra spaces", text: "tier   3    Bruiser", tier: 3, category: "bruiser", ok: true},
		{name: "trailing adversary word", text: "Tier 1 Minion Adversary", tier: 1, category: "minion", ok: true},
		{name: "tier without role", text: "Tier 2", ok: false},
		{name: "role without tier", text: "Solo", ok: false},
		{name: "role on next line", text: "Tier 2\nA lean scavenger.", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tier, category, ok := extractTierAndCategory(tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.tier, tier)
			assert.Equal(t, tc.category, category)
		})
	}
}

func TestExtractThresholds(t *testing.T) {
	testCases := []struct {
		name   string
		text   string
		major  int
		severe int
		ok     bool
	}{
		{name: "slash format", text: "Thresholds: 10 / 20", major: 10, severe: 20, ok: true},
		{name: "slash without spaces", text: "Thresholds 7/14", major: 7, severe: 14, ok: true},
		{name: "major severe format", text: "Major 8, Severe 15", major: 8, severe: 15, ok: true},
		{name: "major severe with colons", text: "Major: 8 | Severe: 15", major: 8, severe: 15, ok: true},
		{name: "single number", text: "Thresholds: 12", ok: false},
		{name: "major only", text: "Major 12", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			major, severe, ok := extractThresholds(tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.major, major)
			assert.Equal(t, tc.severe, severe)
		})
	}
}

func TestExtractScalars(t *testing.T) {
	text := "Difficulty 13\nHit Points: 7\nStress 3"

	difficulty, ok := extractDifficulty(text)
	assert.True(t, ok)
	assert.Equal(t, 13, difficulty)

	hp, ok := extractHitPoints(text)
	assert.True(t, ok)
	assert.Equal(t, 7, hp)

	stress, ok := extractStress(text)
	assert.True(t, ok)
	assert.Equal(t, 3, stress)

	_, ok = extractDifficulty("Difficulty: high")
	assert.False(t, ok)
	_, ok = extractStress("mark a Stress to act")
	assert.False(t, ok)
	_, ok = extractHitPoints("HP: 99999999999999999999999")
	assert.False(t, ok, "overflowing digits are not a match")
}

func TestExtractMotives(t *testing.T) {
	motives, ok := extractMotives("Motives & Tactics: Crush, intimidate, protect the leader\nDifficulty: 15")
	assert.True(t, ok)
	assert.Equal(t, "Crush, intimidate, protect the leader", motives)

	motives, ok = extractMotives("Motives and Tactics - Hunt the weak")
	assert.True(t, ok)
	assert.Equal(t, "Hunt the weak", motives)

	_, ok = extractMotives("Motives & Tactics:\n")
	assert.False(t, ok)
}

func TestExtractExperience(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected *Experience
	}{
		{name: "label and bonus", text: "Experience: Intimidation +2", expected: &Experience{Label: "Intimidation", Bonus: 2}},
		{name: "multi word label", text: "Experience: Keen  Senses + 3", expected: &Experience{Label: "Keen Senses", Bonus: 3}},
		{name: "plural header", text: "Experiences: Tactics +2, Stealth +1", expected: &Experience{Label: "Tactics", Bonus: 2}},
		{name: "label only", text: "Experience: Intimidation\nDifficulty: 12", expected: nil},
		{name: "bonus only", text: "Experience: +2", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			experience, ok := extractExperience(tc.text)
			assert.Equal(t, tc.expected != nil, ok)
			assert.Equal(t, tc.expected, experience)
		})
	}
}

func TestExtractAttack(t *testing.T) {
	corrector := MustNewCorrector(DefaultCorrections())

	testCases := []struct {
		name     string
		text     string
		expected *Attack
	}{
		{
			name:     "damage before range",
			text:     "ATK: +3 | Warhammer: 2d6+1 | melee",
			expected: &Attack{Bonus: 3, Name: "Warhammer", DiceCount: 2, DieFace: "d6", DamageBonus: 1, Range: "melee"},
		},
		{
			name: "range before damage with type",
			text: "ATK: +1 | Claws: Very Close | 1d12+2 phy",
			expected: &Attack{
				Bonus: 1, Name: "Claws", DiceCount: 1, DieFace: "d12", DamageBonus: 2,
				Range: "very close", DamageType: "physical",
			},
		},
		{
			name:     "no damage bonus",
			text:     "ATK: +0 | Spit: Far | 1d4 mag",
			expected: &Attack{Bonus: 0, Name: "Spit", DiceCount: 1, DieFace: "d4", Range: "far", DamageType: "magical"},
		},
		{
			name:     "ocr misread dice",
			text:     "ATK: +2 | Bite: 206+3 | Melee",
			expected: &Attack{Bonus: 2, Name: "Bite", DiceCount: 2, DieFace: "d6", DamageBonus: 3, Range: "melee"},
		},
		{name: "no damage segment", text: "ATK: +2 | Bite: Melee", expected: nil},
		{name: "bonus only", text: "ATK: +3", expected: nil},
		{name: "unreadable damage", text: "ATK: +3 | Axe: 2x6 | Melee", expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attack, ok := extractAttack(tc.text, corrector)
			assert.Equal(t, tc.expected != nil, ok)
			assert.Equal(t, tc.expected, attack)
		})
	}
}

func TestParseDamage(t *testing.T) {
	damage, ok := ParseDamage(" 3d8 + 4 ")
	require.True(t, ok)
	assert.Equal(t, Damage{DiceCount: 3, DieFace: "d8", Bonus: 4}, damage)

	damage, ok = ParseDamage("1d10+2 physical")
	require.True(t, ok)
	assert.Equal(t, "physical", damage.Type)

	_, ok = ParseDamage("d6")
	assert.False(t, ok)
	_, ok = ParseDamage("206")
	assert.False(t, ok, "ParseDamage does not correct misreads itself")
}

func TestExtractDescription(t *testing.T) {
	testCases := []struct {
		name     string
		lines    []string
		expected string
		ok       bool
	}{
		{
			name:     "third line after tier",
			lines:    []string{"Ironclaw Brute", "Tier 2 Solo", "A hulking warrior."},
			expected: "A hulking warrior.",
			ok:       true,
		},
		{
			name:     "second line when tier is missing",
			lines:    []string{"Ironclaw Brute", "A hulking warrior.", "Difficulty: 15"},
			expected: "A hulking warrior.",
			ok:       true,
		},
		{
			name:  "only stat lines",
			lines: []string{"Ironclaw Brute", "Tier 2 Solo", "Difficulty: 15", "A late line."},
			ok:    false,
		},
		{
			name:     "tier without space",
			lines:    []string{"Ash Hound", "Tier2 Solo", "A lean scavenger."},
			expected: "A lean scavenger.",
			ok:       true,
		},
		{
			name:  "name only",
			lines: []string{"Ironclaw Brute"},
			ok:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			description, ok := extractDescription(tc.lines)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, description)
		})
	}
}

func TestAttackNotation(t *testing.T) {
	assert.Equal(t, "2d6+1", (&Attack{DiceCount: 2, DieFace: "d6", DamageBonus: 1}).Notation())
	assert.Equal(t, "1d12", (&Attack{DiceCount: 1, DieFace: "d12"}).Notation())
}
