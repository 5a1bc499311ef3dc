package statblock

import (
	"regexp"
	"strings"
)

var (
	featuresHeaderPattern = regexp.MustCompile(`(?im)^[ \t]*features[ \t]*:?[ \t\r]*$`)

	// titlePattern matches "<name> - <Action|Passive|Reaction>". OCR turns the
	// hyphen into an en or em dash often enough that all three are accepted.
	titlePattern = regexp.MustCompile(`(?i)^(.+?)\s*[-–—]\s*(action|passive|reaction)\s*$`)
)

type pendingFeature struct {
	name string
	kind string
	body []string
}

// SegmentFeatures splits the section after the last FEATURES header into one
// Feature per title line.
//
// Lines before the first title are dropped, and a title with no body text is
// dropped as well. Segmentation is purely line based: a line of prose that
// happens to look like "<words> - Action" opens a new feature.
func SegmentFeatures(text string, corrector *Corrector) []Feature {
	features := []Feature{}

	headers := featuresHeaderPattern.FindAllStringIndex(text, -1)
	if len(headers) == 0 {
		return features
	}
	section := text[headers[len(headers)-1][1]:]

	var current *pendingFeature
	flush := func() {
		if current == nil || len(current.body) == 0 {
			return
		}
		description := corrector.Correct(strings.Join(current.body, " "))
		features = append(features, Feature{
			Name:        current.name,
			Kind:        current.kind,
			Description: "<p>" + description + "</p>",
		})
	}

	for _, line := range SplitLines(section) {
		if name, kind, ok := parseTitle(line); ok {
			flush()
			current = &pendingFeature{name: name, kind: kind}
			continue
		}
		if current == nil {
			continue
		}
		current.body = append(current.body, line)
	}
	flush()

	return features
}

// parseTitle reads a title line. A title whose name is only punctuation is
// treated as body text.
func parseTitle(line string) (name, kind string, ok bool) {
	m := titlePattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	name = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[1]), ".:"))
	if name == "" {
		return "", "", false
	}
	return name, strings.ToLower(m[2]), true
}
