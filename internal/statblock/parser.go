package statblock

import (
	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

// Config configures a Parser.
type Config struct {
	// Corrections is the OCR substitution table. Nil means DefaultCorrections.
	Corrections []Substitution
}

// Parser parses stat-block text. It holds no per-call state and is safe for
// concurrent use.
type Parser struct {
	corrector *Corrector
}

// New creates a parser. A nil config uses the default correction table.
func New(cfg *Config) (*Parser, error) {
	table := DefaultCorrections()
	if cfg != nil && cfg.Corrections != nil {
		table = cfg.Corrections
	}

	corrector, err := NewCorrector(table)
	if err != nil {
		return nil, errors.Wrap(err, "invalid corrections")
	}

	return &Parser{corrector: corrector}, nil
}

var defaultParser = &Parser{corrector: MustNewCorrector(DefaultCorrections())}

// Parse parses text with the default correction table.
func Parse(text string) *Record {
	return defaultParser.Parse(text)
}

// Corrector returns the parser's correction table.
func (p *Parser) Corrector() *Corrector {
	return p.corrector
}

// Parse builds a Record from text. It never fails: anything that does not
// match is left absent.
func (p *Parser) Parse(text string) *Record {
	lines := SplitLines(text)

	record := &Record{
		Name:     UnnamedAdversary,
		Features: SegmentFeatures(text, p.corrector),
	}
	if len(lines) > 0 {
		record.Name = lines[0]
	}

	if description, ok := extractDescription(lines); ok {
		record.Description = description
	}
	if tier, category, ok := extractTierAndCategory(text); ok {
		record.Tier = intPtr(tier)
		record.Category = category
	}
	if motives, ok := extractMotives(text); ok {
		record.MotivesAndTactics = motives
	}
	if difficulty, ok := extractDifficulty(text); ok {
		record.Difficulty = intPtr(difficulty)
	}
	if major, severe, ok := extractThresholds(text); ok {
		record.MajorThreshold = intPtr(major)
		record.SevereThreshold = intPtr(severe)
	}
	if hp, ok := extractHitPoints(text); ok {
		record.HitPointMax = intPtr(hp)
	}
	if stress, ok := extractStress(text); ok {
		record.StressMax = intPtr(stress)
	}
	if experience, ok := extractExperience(text); ok {
		record.Experience = experience
	}
	if attack, ok := extractAttack(text, p.corrector); ok {
		record.Attack = attack
	}

	return record
}
