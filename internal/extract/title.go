package extract

import (
	"regexp"
	"strings"

	"github.com/manasvohal/aiInternshipTracker/constants"
)

// Keyword-anchored patterns for common title families, tried in order.
var reTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:senior|sr\.?|junior|jr\.?|staff|principal|lead)?\s*(?:software|data|product|machine learning|ml|frontend|front[- ]end|backend|back[- ]end|full[- ]stack|devops|cloud|security|platform|mobile|ios|android|qa|ux|ui|embedded)[- ]+(?:engineer(?:ing)?|developer|scientist|analyst|designer|architect|manager)(?:\s+intern(?:ship)?)?\b`),
	regexp.MustCompile(`(?i)\b(?:software|data|product|design|engineering|marketing|finance|business|research|hardware)\s+intern(?:ship)?\b`),
	regexp.MustCompile(`(?i)\bintern(?:ship)?\s*[-,]\s*[a-z][a-z ]{2,40}\b`),
}

var reTitleLabel = regexp.MustCompile(`(?im)^\s*(?:position|role|title|job title)\s*[:\-]\s*(.{3,80})$`)

var titleIndicators = []string{
	"engineer", "developer", "designer", "analyst", "scientist", "manager",
	"intern", "consultant", "architect", "researcher",
}

var titleLineStopwords = []string{"company", "about"}

// TitleExtractor resolves the job title: known title families first, then
// labeled "Position:" lines, then any line carrying a title indicator within
// length bounds.
type TitleExtractor struct{}

func (TitleExtractor) Field() Field { return FieldJobTitle }

func (TitleExtractor) Extract(text string, _ Context) FieldCandidate {
	for _, re := range reTitlePatterns {
		if m := re.FindString(text); m != "" {
			return FieldCandidate{Field: FieldJobTitle, Value: strings.TrimSpace(m), Found: true}
		}
	}

	if m := reTitleLabel.FindStringSubmatch(text); m != nil {
		return FieldCandidate{Field: FieldJobTitle, Value: strings.TrimSpace(m[1]), Found: true}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 5 || len(line) > 80 {
			continue
		}
		if containsAnyFold(line, titleLineStopwords) {
			continue
		}
		if containsAnyFold(line, titleIndicators) {
			return FieldCandidate{Field: FieldJobTitle, Value: line, Found: true}
		}
	}

	return FieldCandidate{Field: FieldJobTitle, Value: constants.PositionNotSpecified}
}
