package statblock

import (
	"regexp"

	"github.com/KirkDiggler/rpg-converter/internal/errors"
)

// Substitution rewrites one known OCR misread. Trigger is a regular expression
// and Replacement may reference its groups as ${1}, ${2}...
type Substitution struct {
	Trigger     string
	Replacement string
}

// DefaultCorrections returns the misreads seen in rendered stat-block images.
// None of the replacements produce text that matches a trigger, so running the
// table twice is the same as running it once.
func DefaultCorrections() []Substitution {
	return []Substitution{
		// "ld6", "Id8" -> "1d6", "1d8"
		{Trigger: `\b[lI]d(4|6|8|10|12|20)\b`, Replacement: `1d${1}`},
		// "2cl6" -> "2d6"
		{Trigger: `\b(\d+)cl(4|6|8|10|12|20)\b`, Replacement: `${1}d${2}`},
		// "206+3" -> "2d6+3", "1012 phy" -> "1d12 phy". Only numbers in a damage
		// position are rewritten so distances and counts in prose survive.
		{
			Trigger:     `\b([1-9])0(4|6|8|10|12|20)(\s*\+\s*\d|\s+(?:phy|mag|damage)\b|\s*$)`,
			Replacement: `${1}d${2}${3}`,
		},
	}
}

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Corrector applies an ordered substitution table. Rules run in table order,
// each exactly once over the whole input.
type Corrector struct {
	rules []rule
}

// NewCorrector compiles the given table.
func NewCorrector(table []Substitution) (*Corrector, error) {
	rules := make([]rule, 0, len(table))
	for i, sub := range table {
		if sub.Trigger == "" {
			return nil, errors.InvalidArgumentf("correction %d: trigger is required", i)
		}
		pattern, err := regexp.Compile(sub.Trigger)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "correction %d: invalid trigger %q", i, sub.Trigger)
		}
		rules = append(rules, rule{pattern: pattern, replacement: sub.Replacement})
	}
	return &Corrector{rules: rules}, nil
}

// MustNewCorrector is NewCorrector for tables known at compile time.
func MustNewCorrector(table []Substitution) *Corrector {
	c, err := NewCorrector(table)
	if err != nil {
		panic(err)
	}
	return c
}

// Correct returns text with every rule applied.
func (c *Corrector) Correct(text string) string {
	if c == nil {
		return text
	}
	for _, r := range c.rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}
