package extract

import (
	"regexp"
	"strings"

	"github.com/manasvohal/aiInternshipTracker/constants"
)

var (
	reRemoteKeyword = regexp.MustCompile(`(?i)\b(fully remote|remote[- ]first|100% remote|remote|hybrid|on[- ]?site|in[- ]office)\b`)
	reCityState     = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)*),\s*([A-Z]{2})\b`)
	reCityCountry   = regexp.MustCompile(`\b([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)*),\s*([A-Z][a-zA-Z]+(?: [A-Z][a-zA-Z]+)*)\b`)
	reLocationLabel = regexp.MustCompile(`(?im)^\s*location\s*[:\-]\s*(.{2,60})$`)
)

// LocationExtractor collects every location-shaped match, de-duplicates, and
// returns the first found: work-mode keyword, "City, ST" shape, known city,
// labeled "Location:" line.
type LocationExtractor struct{}

func (LocationExtractor) Field() Field { return FieldLocation }

func (LocationExtractor) Extract(text string, _ Context) FieldCandidate {
	var found []string

	if m := reRemoteKeyword.FindString(text); m != "" {
		found = append(found, canonicalWorkMode(m))
	}
	if m := reCityState.FindString(text); m != "" {
		found = append(found, m)
	}
	for _, city := range knownCities {
		if containsWordFold(text, city) {
			found = append(found, city)
			break
		}
	}
	if m := reCityCountry.FindStringSubmatch(text); m != nil {
		found = append(found, strings.TrimSpace(m[0]))
	}
	if m := reLocationLabel.FindStringSubmatch(text); m != nil {
		found = append(found, strings.TrimSpace(m[1]))
	}

	found = dedupePreserveOrder(found, len(found))
	if len(found) > 0 {
		return FieldCandidate{Field: FieldLocation, Value: found[0], Found: true}
	}
	return FieldCandidate{Field: FieldLocation, Value: constants.NotSpecified}
}

func canonicalWorkMode(m string) string {
	switch strings.ToLower(strings.ReplaceAll(m, "-", " ")) {
	case "hybrid":
		return "Hybrid"
	case "onsite", "on site", "in office":
		return "On-site"
	default:
		return "Remote"
	}
}

func containsWordFold(text, needle string) bool {
	lower := strings.ToLower(text)
	target := strings.ToLower(needle)
	idx := strings.Index(lower, target)
	for idx >= 0 {
		beforeOK := idx == 0 || !isWordChar(lower[idx-1])
		end := idx + len(target)
		afterOK := end == len(lower) || !isWordChar(lower[end])
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(lower[idx+1:], target)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
