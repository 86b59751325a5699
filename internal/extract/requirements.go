package extract

import (
	"regexp"
	"strings"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
)

var (
	reReqAnchor     = regexp.MustCompile(`(?i)^\s*(?:•\s*)?(?:required|requirements?|preferred|must have|qualifications?|minimum qualifications?)\s*[:\-]?\s*`)
	reYearsExp      = regexp.MustCompile(`(?i)\b\d+\+?\s*years?(?:\s+of)?\s+(?:\w+\s+){0,3}experience\b`)
	reDegree        = regexp.MustCompile(`(?i)\b(?:bachelor(?:'s)?|master(?:'s)?|phd|b\.?s\.?|m\.?s\.?|undergraduate|graduate)\b.{0,60}`)
	reBulletReqLine = regexp.MustCompile(`^•\s+(.{5,160})$`)
)

var softSkillMarkers = []string{
	"communication", "teamwork", "team player", "collaborat", "leadership",
	"problem solving", "problem-solving", "self-starter", "detail-oriented",
	"time management", "adaptab", "curiosity", "initiative",
}

// RequirementsExtractor collects qualification lines: anchored requirement
// sections, years-of-experience phrases, and degree mentions. Capped at 10,
// order of first discovery preserved.
type RequirementsExtractor struct{}

func (RequirementsExtractor) Field() Field { return FieldRequirements }

func (RequirementsExtractor) Extract(text string, _ Context) FieldCandidate {
	var found []string

	lines := strings.Split(text, "\n")
	inSection := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			inSection = false
			continue
		}
		if reReqAnchor.MatchString(trimmed) {
			inSection = true
			rest := strings.TrimSpace(reReqAnchor.ReplaceAllString(trimmed, ""))
			if len(rest) >= 5 {
				found = append(found, rest)
			}
			continue
		}
		if inSection {
			if m := reBulletReqLine.FindStringSubmatch(trimmed); m != nil {
				found = append(found, strings.TrimSpace(m[1]))
				continue
			}
			// a non-bullet line ends the section
			inSection = false
		}
	}

	for _, m := range reYearsExp.FindAllString(text, -1) {
		found = append(found, strings.TrimSpace(m))
	}
	if m := reDegree.FindString(text); m != "" {
		found = append(found, strings.TrimSpace(m))
	}

	found = dedupePreserveOrder(found, constants.MaxRequirements)
	return FieldCandidate{
		Field:  FieldRequirements,
		Values: found,
		Found:  len(found) > 0,
	}
}

// GroupRequirements buckets flat requirement lines for the record shape:
// degree mentions under education, years-of-experience under experience,
// soft-skill phrasing under soft, everything else under technical.
func GroupRequirements(lines []string) entity.Requirements {
	var grouped entity.Requirements
	for _, line := range lines {
		switch {
		case reDegree.MatchString(line):
			grouped.Education = append(grouped.Education, line)
		case reYearsExp.MatchString(line):
			grouped.Experience = append(grouped.Experience, line)
		case containsAnyFold(line, softSkillMarkers):
			grouped.Soft = append(grouped.Soft, line)
		default:
			grouped.Technical = append(grouped.Technical, line)
		}
	}
	return grouped
}
