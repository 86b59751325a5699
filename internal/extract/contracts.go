// Package extract holds the heuristic field extractors. Each extractor is a
// pure function over normalized text: it returns a best-guess value or the
// field's sentinel, never an error, so a batch run can fan extractors out
// concurrently without coordination.
package extract

import (
	"github.com/manasvohal/aiInternshipTracker/constants"
)

// Field identifies one semantic slot of a job record.
type Field string

const (
	FieldCompany         Field = "company"
	FieldJobTitle        Field = "job_title"
	FieldLocation        Field = "location"
	FieldSalary          Field = "salary"
	FieldJobType         Field = "job_type"
	FieldWorkArrangement Field = "work_arrangement"
	FieldSeniority       Field = "seniority"
	FieldDepartment      Field = "department"
	FieldDuration        Field = "duration"
	FieldSkills          Field = "skills"
	FieldRequirements    Field = "requirements"
	FieldBenefits        Field = "benefits"
	FieldDeadline        Field = "application_deadline"
	FieldContact         Field = "contact_info"
	FieldStatus          Field = "status"
)

// Context carries cross-extractor hints computed once per text unit. The
// company hint comes from the email sender domain and is the only value
// shared between extractors; everything else is derived from the text alone.
type Context struct {
	Source      constants.SourceType
	CompanyHint string
}

// FieldCandidate is one extractor's best guess for one field. Scalar fields
// use Value; list fields use Values. Found reports whether the value was
// detected in the text or defaulted, since several fields default to a real
// label ("Mid-level") rather than a "not specified" sentinel.
type FieldCandidate struct {
	Field  Field
	Value  string
	Values []string
	Found  bool
}

// FieldExtractor scans normalized text for one semantic field.
type FieldExtractor interface {
	Field() Field
	Extract(text string, ectx Context) FieldCandidate
}

// ForSource returns the extractor set for one ingestion path. The status
// classifier only runs on the email path.
func ForSource(source constants.SourceType) []FieldExtractor {
	extractors := []FieldExtractor{
		&CompanyExtractor{},
		&TitleExtractor{},
		&LocationExtractor{},
		&SalaryExtractor{},
		&SkillsExtractor{},
		&RequirementsExtractor{},
		&BenefitsExtractor{},
		&JobTypeExtractor{},
		&WorkArrangementExtractor{},
		&SeniorityExtractor{},
		&DepartmentExtractor{},
		&DurationExtractor{},
		&ContactExtractor{},
		&DeadlineExtractor{},
	}
	if source == constants.SourceEmail {
		extractors = append(extractors, &StatusExtractor{})
	}
	return extractors
}

// dedupePreserveOrder removes exact duplicates keeping first occurrence,
// capped at max entries.
func dedupePreserveOrder(values []string, max int) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == max {
			break
		}
	}
	return out
}
