package statblock

import (
	"regexp"
	"strconv"
	"strings"
)

// Each pattern is matched against the whole text, not line by line, since OCR
// output breaks lines in unpredictable places. Compound fields such as tier
// and category stay on one line so a half match never borrows a word from the
// next line.
var (
	tierPattern        = regexp.MustCompile(`(?i)\btier[ \t]*(\d+)[ \t]*([a-z]+)`)
	difficultyPattern  = regexp.MustCompile(`(?i)\bdifficulty[:\s]+(\d+)`)
	thresholdsPattern  = regexp.MustCompile(`(?i)\bthresholds?\s*:?\s*(\d+)\s*/\s*(\d+)`)
	majorSeverePattern = regexp.MustCompile(`(?i)\bmajor\s*:?\s*(\d+)[,\s/|]+severe\s*:?\s*(\d+)`)
	hitPointsPattern   = regexp.MustCompile(`(?i)\b(?:hp|hit\s*points)\s*:?\s*(\d+)`)
	stressPattern      = regexp.MustCompile(`(?i)\bstress\s*:?\s*(\d+)`)
	motivesPattern     = regexp.MustCompile(`(?i)\bmotives\s*(?:&|and)\s*tactics\s*[:\-–—]?[ \t]*([^\n]*)`)
	experiencePattern  = regexp.MustCompile(`(?i)\bexperiences?\s*:?[ \t]*([a-z][a-z' \t]*?)[ \t]*\+[ \t]*(\d+)`)
	attackPattern      = regexp.MustCompile(`(?i)\batk\s*:?\s*\+?\s*(\d+)\s*\|\s*([^:|\n]+?)\s*:\s*([^\n]+)`)

	// damagePattern is the secondary pattern run on one isolated damage segment.
	damagePattern = regexp.MustCompile(`(?i)^(\d+)\s*d\s*(\d+)(?:\s*\+\s*(\d+))?(?:\s*(phy|mag)[a-z]*)?`)
	rangePattern  = regexp.MustCompile(`(?i)^(very\s+close|very\s+far|melee|close|far)$`)

	// statLinePattern recognises the labelled lines of the stat block so they
	// are never mistaken for the summary line.
	statLinePattern = regexp.MustCompile(`(?i)^(?:tier\s*\d|difficulty|thresholds?\b|major\b|hp\b|hit\s*points|stress\b|atk\b|motives|experiences?\b|features\b)`)
)

// Damage is a parsed "<count>d<face>[+<bonus>]" expression.
type Damage struct {
	DiceCount int
	DieFace   string
	Bonus     int
	// Type is "physical" or "magical" when the expression is followed by
	// "phy" or "mag".
	Type string
}

// ParseDamage parses a damage expression such as "2d6+1" or "1d12+2 phy".
// It does not correct OCR misreads; callers run the Corrector first.
func ParseDamage(expr string) (Damage, bool) {
	m := damagePattern.FindStringSubmatch(strings.TrimSpace(expr))
	if m == nil {
		return Damage{}, false
	}

	count, ok := atoi(m[1])
	if !ok {
		return Damage{}, false
	}
	face, ok := atoi(m[2])
	if !ok {
		return Damage{}, false
	}

	d := Damage{
		DiceCount: count,
		DieFace:   "d" + strconv.Itoa(face),
	}
	if m[3] != "" {
		bonus, ok := atoi(m[3])
		if !ok {
			return Damage{}, false
		}
		d.Bonus = bonus
	}
	switch strings.ToLower(m[4]) {
	case "phy":
		d.Type = "physical"
	case "mag":
		d.Type = "magical"
	}
	return d, true
}

func extractTierAndCategory(text string) (int, string, bool) {
	m := tierPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	tier, ok := atoi(m[1])
	if !ok {
		return 0, "", false
	}
	return tier, strings.ToLower(m[2]), true
}

func extractDifficulty(text string) (int, bool) {
	return extractInt(difficultyPattern, text)
}

// extractThresholds accepts "Thresholds: 10 / 20" and "Major 10, Severe 20".
// Both numbers must be present.
func extractThresholds(text string) (major, severe int, ok bool) {
	for _, pattern := range []*regexp.Regexp{thresholdsPattern, majorSeverePattern} {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		major, okMajor := atoi(m[1])
		severe, okSevere := atoi(m[2])
		if okMajor && okSevere {
			return major, severe, true
		}
	}
	return 0, 0, false
}

func extractHitPoints(text string) (int, bool) {
	return extractInt(hitPointsPattern, text)
}

func extractStress(text string) (int, bool) {
	return extractInt(stressPattern, text)
}

func extractMotives(text string) (string, bool) {
	m := motivesPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	motives := strings.TrimSpace(m[1])
	if motives == "" {
		return "", false
	}
	return motives, true
}

func extractExperience(text string) (*Experience, bool) {
	m := experiencePattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	label := strings.Join(strings.Fields(m[1]), " ")
	bonus, ok := atoi(m[2])
	if label == "" || !ok {
		return nil, false
	}
	return &Experience{Label: label, Bonus: bonus}, true
}

// extractAttack matches "ATK: +<bonus> | <name>: <segments>" where segments
// are "|"-separated. The first segment that parses as damage after correction
// supplies the dice; range and damage type are picked up when present.
func extractAttack(text string, corrector *Corrector) (*Attack, bool) {
	m := attackPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	bonus, ok := atoi(m[1])
	if !ok {
		return nil, false
	}
	name := strings.TrimSpace(m[2])
	if name == "" {
		return nil, false
	}

	attack := &Attack{Bonus: bonus, Name: name}
	found := false
	for _, segment := range strings.Split(m[3], "|") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if rangePattern.MatchString(segment) {
			if attack.Range == "" {
				attack.Range = normalizeRange(segment)
			}
			continue
		}
		if found {
			continue
		}
		damage, ok := ParseDamage(corrector.Correct(segment))
		if !ok {
			continue
		}
		attack.DiceCount = damage.DiceCount
		attack.DieFace = damage.DieFace
		attack.DamageBonus = damage.Bonus
		attack.DamageType = damage.Type
		found = true
	}
	if !found {
		return nil, false
	}
	return attack, true
}

// extractDescription picks the summary line from the top of the block: the
// first of the second and third lines that is not a labelled stat line.
func extractDescription(lines []string) (string, bool) {
	for i := 1; i < len(lines) && i < 3; i++ {
		if statLinePattern.MatchString(lines[i]) {
			continue
		}
		return lines[i], true
	}
	return "", false
}

func normalizeRange(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func extractInt(pattern *regexp.Regexp, text string) (int, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	return atoi(m[1])
}

// atoi parses a run of digits; overflow counts as no match.
func atoi(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
