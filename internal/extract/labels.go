package extract

import (
	"regexp"
	"strings"

	"github.com/manasvohal/aiInternshipTracker/constants"
)

// Single-label classifiers: lowercased text tested against ordered keyword
// groups, first group matched wins.

type labelGroup struct {
	label    string
	keywords []string
}

func classify(text string, groups []labelGroup) (string, bool) {
	lower := strings.ToLower(text)
	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(lower, kw) {
				return g.label, true
			}
		}
	}
	return "", false
}

var jobTypeGroups = []labelGroup{
	{"Internship", []string{"internship", "co-op", "coop program"}},
	{"Full-time", []string{"full-time", "full time", "fulltime"}},
	{"Part-time", []string{"part-time", "part time"}},
	{"Contract", []string{"contract", "contractor", "freelance"}},
	{"Temporary", []string{"temporary", "seasonal"}},
}

type JobTypeExtractor struct{}

func (JobTypeExtractor) Field() Field { return FieldJobType }

func (JobTypeExtractor) Extract(text string, _ Context) FieldCandidate {
	if containsWordFold(text, "intern") || containsWordFold(text, "internship") {
		return FieldCandidate{Field: FieldJobType, Value: "Internship", Found: true}
	}
	if label, ok := classify(text, jobTypeGroups); ok {
		return FieldCandidate{Field: FieldJobType, Value: label, Found: true}
	}
	return FieldCandidate{Field: FieldJobType, Value: constants.NotSpecified}
}

var workArrangementGroups = []labelGroup{
	{"Remote", []string{"fully remote", "remote-first", "100% remote", "remote"}},
	{"Hybrid", []string{"hybrid"}},
	{"On-site", []string{"on-site", "onsite", "on site", "in-office", "in office"}},
}

type WorkArrangementExtractor struct{}

func (WorkArrangementExtractor) Field() Field { return FieldWorkArrangement }

func (WorkArrangementExtractor) Extract(text string, _ Context) FieldCandidate {
	if label, ok := classify(text, workArrangementGroups); ok {
		return FieldCandidate{Field: FieldWorkArrangement, Value: label, Found: true}
	}
	return FieldCandidate{Field: FieldWorkArrangement, Value: constants.NotSpecified}
}

var seniorityGroups = []labelGroup{
	{"Entry-level", []string{"entry-level", "entry level", "junior", "new grad", "recent graduate"}},
	{"Senior", []string{"senior", "sr."}},
	{"Lead", []string{"principal", "staff engineer", "lead "}},
	{"Mid-level", []string{"mid-level", "mid level", "intermediate"}},
}

// SeniorityExtractor classifies seniority. When nothing matches, the default
// differs by path: screenshot-derived records default to Mid-level, email to
// Entry-level. Found stays false on the defaulted value.
type SeniorityExtractor struct{}

func (SeniorityExtractor) Field() Field { return FieldSeniority }

func (SeniorityExtractor) Extract(text string, ectx Context) FieldCandidate {
	if containsWordFold(text, "intern") || containsWordFold(text, "internship") {
		return FieldCandidate{Field: FieldSeniority, Value: "Internship", Found: true}
	}
	if label, ok := classify(text, seniorityGroups); ok {
		return FieldCandidate{Field: FieldSeniority, Value: label, Found: true}
	}
	def := constants.SeniorityMidLevel
	if ectx.Source == constants.SourceEmail {
		def = constants.SeniorityEntryLevel
	}
	return FieldCandidate{Field: FieldSeniority, Value: def}
}

var departmentGroups = []labelGroup{
	{"Engineering", []string{"engineering", "software", "developer", "devops", "infrastructure"}},
	{"Data", []string{"data science", "data analyst", "machine learning", "analytics"}},
	{"Design", []string{"design", "ux", "ui "}},
	{"Product", []string{"product management", "product manager"}},
	{"Marketing", []string{"marketing", "growth", "content"}},
	{"Sales", []string{"sales", "business development"}},
	{"Finance", []string{"finance", "accounting"}},
	{"People", []string{"human resources", "recruiting", "talent"}},
	{"Operations", []string{"operations", "logistics", "supply chain"}},
}

type DepartmentExtractor struct{}

func (DepartmentExtractor) Field() Field { return FieldDepartment }

func (DepartmentExtractor) Extract(text string, _ Context) FieldCandidate {
	if label, ok := classify(text, departmentGroups); ok {
		return FieldCandidate{Field: FieldDepartment, Value: label, Found: true}
	}
	return FieldCandidate{Field: FieldDepartment, Value: constants.NotSpecified}
}

var reDuration = regexp.MustCompile(`(?i)\b(?:\d{1,2}\s*(?:weeks?|months?)|summer\s+20\d{2}|fall\s+20\d{2}|spring\s+20\d{2}|winter\s+20\d{2})\b`)

type DurationExtractor struct{}

func (DurationExtractor) Field() Field { return FieldDuration }

func (DurationExtractor) Extract(text string, _ Context) FieldCandidate {
	if m := reDuration.FindString(text); m != "" {
		return FieldCandidate{Field: FieldDuration, Value: strings.TrimSpace(m), Found: true}
	}
	return FieldCandidate{Field: FieldDuration, Value: constants.NotSpecified}
}
