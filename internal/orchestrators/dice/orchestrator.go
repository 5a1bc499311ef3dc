// Package dice rolls attack damage so a converted adversary can be sanity
// checked before it is imported.
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-converter/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
	"github.com/KirkDiggler/rpg-converter/internal/pkg/idgen"
)

// MaxTimes caps RollDamageInput.Times
const MaxTimes = 20

var (
	// Regex for damage notation like "2d6", "1d12+3"
	damageNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)(?:\+(\d+))?$`)
)

// Service defines the interface for dice operations
type Service interface {
	// RollDamage rolls a damage expression one or more times
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	idGen idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		idGen: cfg.IDGenerator,
	}, nil
}

type notation struct {
	count    int
	size     int
	modifier int
}

// parseNotation parses "XdY" or "XdY+Z"
func parseNotation(s string) (notation, error) {
	matches := damageNotationRegex.FindStringSubmatch(strings.ToLower(strings.ReplaceAll(s, " ", "")))
	if matches == nil {
		return notation{}, errors.InvalidArgumentf("invalid damage notation: %s (expected format: XdY or XdY+Z)", s)
	}

	var n notation
	var err error
	if n.count, err = strconv.Atoi(matches[1]); err != nil {
		return notation{}, errors.InvalidArgumentf("invalid dice count in notation: %s", s)
	}
	if n.size, err = strconv.Atoi(matches[2]); err != nil {
		return notation{}, errors.InvalidArgumentf("invalid die size in notation: %s", s)
	}
	if matches[3] != "" {
		if n.modifier, err = strconv.Atoi(matches[3]); err != nil {
			return notation{}, errors.InvalidArgumentf("invalid modifier in notation: %s", s)
		}
	}

	if n.count <= 0 || n.size <= 0 {
		return notation{}, errors.InvalidArgumentf("dice count and size must be positive: %s", s)
	}

	return n, nil
}

// average is the expected total: each die averages (size+1)/2
func (n notation) average() float64 {
	return float64(n.count)*float64(n.size+1)/2 + float64(n.modifier)
}

// rollWithToolkit rolls the dice and returns the individual results
func rollWithToolkit(count, size int) ([]int32, int32, string, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return nil, 0, "", errors.Wrapf(err, "failed to create dice roll")
	}

	total := roll.GetValue()
	description := roll.GetDescription()

	// Description format: "+2d6[3,4]=7"; the toolkit does not expose the
	// individual dice directly
	var individual []int32
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start >= 0 && end > start {
		for _, ds := range strings.Split(description[start+1:end], ",") {
			if d, err := strconv.Atoi(strings.TrimSpace(ds)); err == nil {
				individual = append(individual, int32(d))
			}
		}
	}

	return individual, int32(total), description, nil
}

// RollDamage rolls a damage expression
func (o *orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("damage notation is required")
	}
	if input.Times < 0 || input.Times > MaxTimes {
		return nil, errors.InvalidArgumentf("times must be between 0 and %d, got %d", MaxTimes, input.Times)
	}

	n, err := parseNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	times := input.Times
	if times == 0 {
		times = 1
	}

	out := &RollDamageOutput{
		Rolls:   make([]*DamageRoll, 0, times),
		Average: n.average(),
	}
	for i := 0; i < times; i++ {
		individual, diceTotal, description, err := rollWithToolkit(n.count, n.size)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll damage")
		}

		out.Rolls = append(out.Rolls, &DamageRoll{
			RollID:      o.idGen.Generate(),
			Notation:    input.Notation,
			Dice:        individual,
			DiceTotal:   diceTotal,
			Modifier:    int32(n.modifier),
			Total:       diceTotal + int32(n.modifier),
			Description: description,
		})
	}

	slog.DebugContext(ctx, "damage rolled",
		"notation", input.Notation,
		"times", times,
		"average", out.Average)

	return out, nil
}
