// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-converter/internal/statblock"
)

// RecordBuilder provides a fluent interface for building test Record instances
type RecordBuilder struct {
	record *statblock.Record
}

// NewRecordBuilder creates a new builder with only a name and no features
func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		record: &statblock.Record{
			Name:     "Test Adversary",
			Features: []statblock.Feature{},
		},
	}
}

// WithName sets the adversary name
func (b *RecordBuilder) WithName(name string) *RecordBuilder {
	b.record.Name = name
	return b
}

// WithTier sets tier and category together, as they share a line
func (b *RecordBuilder) WithTier(tier int, category string) *RecordBuilder {
	b.record.Tier = &tier
	b.record.Category = category
	return b
}

// WithCategory sets only the category
func (b *RecordBuilder) WithCategory(category string) *RecordBuilder {
	b.record.Category = category
	return b
}

// WithDescription sets the summary line
func (b *RecordBuilder) WithDescription(description string) *RecordBuilder {
	b.record.Description = description
	return b
}

// WithDifficulty sets the difficulty
func (b *RecordBuilder) WithDifficulty(difficulty int) *RecordBuilder {
	b.record.Difficulty = &difficulty
	return b
}

// WithThresholds sets both damage thresholds
func (b *RecordBuilder) WithThresholds(major, severe int) *RecordBuilder {
	b.record.MajorThreshold = &major
	b.record.SevereThreshold = &severe
	return b
}

// WithMajorThreshold sets only the major threshold
func (b *RecordBuilder) WithMajorThreshold(major int) *RecordBuilder {
	b.record.MajorThreshold = &major
	return b
}

// WithResources sets hit points and stress
func (b *RecordBuilder) WithResources(hp, stress int) *RecordBuilder {
	b.record.HitPointMax = &hp
	b.record.StressMax = &stress
	return b
}

// WithExperience sets the experience entry
func (b *RecordBuilder) WithExperience(label string, bonus int) *RecordBuilder {
	b.record.Experience = &statblock.Experience{Label: label, Bonus: bonus}
	return b
}

// WithAttack sets the standard attack
func (b *RecordBuilder) WithAttack(attack *statblock.Attack) *RecordBuilder {
	b.record.Attack = attack
	return b
}

// WithFeature appends a feature, wrapping the body in a paragraph
func (b *RecordBuilder) WithFeature(name, kind, body string) *RecordBuilder {
	b.record.Features = append(b.record.Features, statblock.Feature{
		Name:        name,
		Kind:        kind,
		Description: "<p>" + body + "</p>",
	})
	return b
}

// Build returns the constructed Record
func (b *RecordBuilder) Build() *statblock.Record {
	return b.record
}
