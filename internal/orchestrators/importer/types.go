package importer

import (
	"github.com/KirkDiggler/rpg-converter/internal/services/conversion"
	"github.com/KirkDiggler/rpg-converter/internal/statblock"
)

// ImportImagesInput selects the stat-block images to convert
type ImportImagesInput struct {
	// Dir is scanned for .png files, case-insensitively, without recursion
	Dir string
}

// ImportActorsInput selects the 5e actor exports to convert
type ImportActorsInput struct {
	// Dir is scanned for .json files, without recursion
	Dir string
}

// ImportMonstersInput selects SRD monsters. Keys and ChallengeRating combine;
// at least one must be given.
type ImportMonstersInput struct {
	Keys            []string
	ChallengeRating *float64
}

// ImportOutput reports a batch, one result per source in input order
type ImportOutput struct {
	RunID   string
	Results []*FileResult
}

// Converted counts the sources that were written
func (o *ImportOutput) Converted() int {
	n := 0
	for _, r := range o.Results {
		if r.Err == nil && !r.Skipped {
			n++
		}
	}
	return n
}

// Failed returns the results that carry an error
func (o *ImportOutput) Failed() []*FileResult {
	var failed []*FileResult
	for _, r := range o.Results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

// FileResult is the outcome for one source
type FileResult struct {
	// Source is the file path or monster key
	Source string
	// Name is the adversary name, empty when conversion never got that far
	Name string
	// Files are the written paths
	Files []string
	// Warnings come from the converter
	Warnings []string
	// Skipped is set when the source held nothing worth converting
	Skipped    bool
	SkipReason string
	Err        error
}

// ParseTextInput is one stat block's text
type ParseTextInput struct {
	Text string
}

// ParseTextOutput holds the parsed record and its conversion. Nothing is
// written.
type ParseTextOutput struct {
	Record *statblock.Record
	Output *conversion.Output
}
