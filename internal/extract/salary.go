package extract

import (
	"regexp"
	"strings"

	"github.com/manasvohal/aiInternshipTracker/constants"
)

var (
	reSalaryCurrency = regexp.MustCompile(`(?i)\$\s?\d[\d,]*(?:\.\d+)?(?:\s*-\s*\$?\s?\d[\d,]*(?:\.\d+)?)?(?:\s*(?:/|per\s+)(?:hour|hr|year|yr|month|mo|annum|week))?`)
	reSalaryKRange   = regexp.MustCompile(`(?i)\b\d{2,3}\s?k(?:\s*-\s*\d{2,3}\s?k)?\b`)
	reSalaryLabel    = regexp.MustCompile(`(?im)^\s*(?:salary|compensation|pay|pay rate|stipend)\s*[:\-]\s*(.{2,60})$`)
	reUnpaidMarker   = regexp.MustCompile(`(?i)\b(unpaid|volunteer|for credit|course credit)\b`)
)

// SalaryExtractor resolves compensation: currency amounts or ranges first,
// then "k"-suffixed ranges, labeled lines, and explicit unpaid markers.
type SalaryExtractor struct{}

func (SalaryExtractor) Field() Field { return FieldSalary }

func (SalaryExtractor) Extract(text string, ectx Context) FieldCandidate {
	if m := reSalaryCurrency.FindString(text); m != "" {
		return FieldCandidate{Field: FieldSalary, Value: strings.TrimSpace(m), Found: true}
	}
	if m := reSalaryKRange.FindString(text); m != "" {
		return FieldCandidate{Field: FieldSalary, Value: strings.TrimSpace(m), Found: true}
	}
	if m := reSalaryLabel.FindStringSubmatch(text); m != nil {
		return FieldCandidate{Field: FieldSalary, Value: strings.TrimSpace(m[1]), Found: true}
	}
	if m := reUnpaidMarker.FindString(text); m != "" {
		return FieldCandidate{Field: FieldSalary, Value: "Unpaid", Found: true}
	}
	return FieldCandidate{Field: FieldSalary, Value: salarySentinel(ectx.Source)}
}

func salarySentinel(source constants.SourceType) string {
	if source == constants.SourceEmail {
		return constants.NotSpecified
	}
	return constants.SalaryNotSpecified
}
