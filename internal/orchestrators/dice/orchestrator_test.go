package dice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/pkg/idgen"
)

func TestOrchestrator_RollDamage(t *testing.T) {
	o, err := NewOrchestrator(&Config{IDGenerator: idgen.NewSequential("roll")})
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("dice with modifier", func(t *testing.T) {
		out, err := o.RollDamage(ctx, &RollDamageInput{Notation: "2d6+1", Times: 5})
		require.NoError(t, err)

		assert.InDelta(t, 8.0, out.Average, 0.001)
		require.Len(t, out.Rolls, 5)
		for _, roll := range out.Rolls {
			assert.Equal(t, "2d6+1", roll.Notation)
			assert.Equal(t, int32(1), roll.Modifier)
			assert.Equal(t, roll.DiceTotal+1, roll.Total)
			assert.GreaterOrEqual(t, roll.Total, int32(3))
			assert.LessOrEqual(t, roll.Total, int32(13))
			assert.NotEmpty(t, roll.RollID)

			if len(roll.Dice) > 0 {
				var sum int32
				for _, d := range roll.Dice {
					sum += d
				}
				assert.Equal(t, roll.DiceTotal, sum, "individual dice add up to the dice total")
			}
		}
	})

	t.Run("defaults to one roll", func(t *testing.T) {
		out, err := o.RollDamage(ctx, &RollDamageInput{Notation: "1d12"})
		require.NoError(t, err)

		require.Len(t, out.Rolls, 1)
		assert.InDelta(t, 6.5, out.Average, 0.001)
		assert.Zero(t, out.Rolls[0].Modifier)
	})

	t.Run("invalid input", func(t *testing.T) {
		inputs := []*RollDamageInput{
			nil,
			{Notation: ""},
			{Notation: "2x6"},
			{Notation: "0d6"},
			{Notation: "2d0"},
			{Notation: "2d6", Times: -1},
			{Notation: "2d6", Times: MaxTimes + 1},
		}
		for _, input := range inputs {
			_, err := o.RollDamage(ctx, input)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		}
	})
}

func TestParseNotation(t *testing.T) {
	n, err := parseNotation(" 3D8 + 4 ")
	require.NoError(t, err)
	assert.Equal(t, notation{count: 3, size: 8, modifier: 4}, n)
	assert.InDelta(t, 17.5, n.average(), 0.001)
}

func TestNewOrchestratorRequiresIDGenerator(t *testing.T) {
	_, err := NewOrchestrator(&Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IDGenerator")
}
