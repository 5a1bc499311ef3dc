package statblock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/statblock"
)

func TestDefaultCorrections(t *testing.T) {
	corrector, err := statblock.NewCorrector(statblock.DefaultCorrections())
	require.NoError(t, err)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase l for one", input: "ld6", expected: "1d6"},
		{name: "capital I for one", input: "Id8+2", expected: "1d8+2"},
		{name: "cl for d", input: "2cl6+1", expected: "2d6+1"},
		{name: "zero for d", input: "206+3", expected: "2d6+3"},
		{name: "zero for d with two digit face", input: "1012", expected: "1d12"},
		{name: "inside prose", input: "deals an extra 108 damage", expected: "deals an extra 1d8 damage"},
		{name: "dice left alone", input: "Deals an extra 1d6 damage", expected: "Deals an extra 1d6 damage"},
		{name: "round numbers left alone", input: "within 100 feet", expected: "within 100 feet"},
		{name: "zero for d before damage type", input: "1012 phy", expected: "1d12 phy"},
		{name: "distances left alone", input: "within 104 feet", expected: "within 104 feet"},
		{name: "counts left alone", input: "once per 2020 sessions, up to 306 allies", expected: "once per 2020 sessions, up to 306 allies"},
		{name: "difficulty left alone", input: "Difficulty: 15", expected: "Difficulty: 15"},
		{name: "words left alone", input: "Idle close combat", expected: "Idle close combat"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, corrector.Correct(tc.input))
		})
	}
}

func TestCorrectIsIdempotent(t *testing.T) {
	corrector := statblock.MustNewCorrector(statblock.DefaultCorrections())

	inputs := []string{
		"ld6 and Id10 and 2cl8 and 3012",
		"ATK: +3 | Warhammer: 206+1 | melee",
		"Ignores the first point of stress taken each round.",
		"1d4 2d6 3d8 1d10 2d12 1d20",
	}

	for _, input := range inputs {
		once := corrector.Correct(input)
		assert.Equal(t, once, corrector.Correct(once), "input %q", input)
	}
}

func TestCorrectAppliesRulesInTableOrder(t *testing.T) {
	corrector, err := statblock.NewCorrector([]statblock.Substitution{
		{Trigger: `O`, Replacement: `0`},
		{Trigger: `\b(\d)0(6)\b`, Replacement: `${1}d${2}`},
	})
	require.NoError(t, err)

	assert.Equal(t, "2d6", corrector.Correct("2O6"))
}

func TestNewCorrectorRejectsBadRules(t *testing.T) {
	testCases := []struct {
		name  string
		table []statblock.Substitution
	}{
		{name: "empty trigger", table: []statblock.Substitution{{Trigger: "", Replacement: "x"}}},
		{name: "invalid pattern", table: []statblock.Substitution{{Trigger: "(", Replacement: "x"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := statblock.NewCorrector(tc.table)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestNilCorrectorIsNoop(t *testing.T) {
	var corrector *statblock.Corrector
	assert.Equal(t, "206", corrector.Correct("206"))
}
