// Package record assembles extractor outputs into the structured job record.
package record

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/extract"
)

// Metadata stamps provenance onto the built record.
type Metadata struct {
	Source          constants.SourceType
	TextLength      int
	ExtractedAt     time.Time
	Confidence      float32
	ConfidenceLabel string
}

type Builder struct {
	logger *slog.Logger
}

func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger}
}

// Build maps field candidates onto the record shape. It never fails: missing
// or malformed candidates land on their sentinel defaults, with a warning for
// malformed ones. The source text is only consulted for the description
// paragraph.
func (b *Builder) Build(text string, candidates []extract.FieldCandidate, meta Metadata) entity.JobRecord {
	rec := emptyRecord(meta.Source)

	for _, c := range candidates {
		b.apply(&rec, c, meta.Source)
	}

	rec.Description = b.buildDescription(text, rec.Company, rec.JobTitle)
	rec.ExtractionMetadata = entity.ExtractionMetadata{
		SourceType:      meta.Source,
		TextLength:      meta.TextLength,
		ExtractionDate:  meta.ExtractedAt,
		Confidence:      meta.Confidence,
		ConfidenceLabel: meta.ConfidenceLabel,
	}
	return rec
}

// BuildEmail assembles the email-path variant with status and message
// linkage. Status defaults to applied when the classifier found nothing.
func (b *Builder) BuildEmail(text string, candidates []extract.FieldCandidate, meta Metadata, emailID, subject, from string, date time.Time) entity.EmailDerivedRecord {
	rec := entity.EmailDerivedRecord{
		JobRecord:    b.Build(text, candidates, meta),
		Status:       constants.StatusApplied,
		EmailID:      emailID,
		EmailSubject: subject,
		EmailFrom:    from,
		EmailDate:    date,
	}
	for _, c := range candidates {
		if c.Field != extract.FieldStatus {
			continue
		}
		status, _ := constants.CanonicalizeStatus(c.Value)
		rec.Status = status
	}
	return rec
}

// emptyRecord is the all-sentinel record for one path.
func emptyRecord(source constants.SourceType) entity.JobRecord {
	company := constants.CompanyNotSpecified
	salary := constants.SalaryNotSpecified
	seniority := constants.SeniorityMidLevel
	if source == constants.SourceEmail {
		company = constants.UnknownCompany
		salary = constants.NotSpecified
		seniority = constants.SeniorityEntryLevel
	}
	return entity.JobRecord{
		Company:         company,
		JobTitle:        constants.PositionNotSpecified,
		Location:        constants.NotSpecified,
		WorkArrangement: constants.NotSpecified,
		Salary:          salary,
		JobType:         constants.NotSpecified,
		Duration:        constants.NotSpecified,
		Department:      constants.NotSpecified,
		Seniority:       seniority,
		Skills:          []string{},
		Benefits:        []string{},
		ApplicationInfo: entity.ApplicationInfo{
			Deadline: constants.NotSpecified,
			Process:  constants.NotSpecified,
			Contact:  constants.NotSpecified,
			ApplyURL: constants.NotSpecified,
		},
		CompanyInfo: entity.CompanyInfo{
			Industry:    constants.NotSpecified,
			Size:        constants.NotSpecified,
			Description: constants.NotSpecified,
		},
		AdditionalInfo: entity.AdditionalInfo{
			StartDate:         constants.NotSpecified,
			Timezone:          constants.NotSpecified,
			TravelRequired:    constants.NotSpecified,
			SecurityClearance: constants.NotSpecified,
		},
	}
}

// apply writes one candidate onto its record slot. A list candidate for a
// scalar slot (or the reverse) is malformed: the slot keeps its sentinel and
// the mismatch is logged.
func (b *Builder) apply(rec *entity.JobRecord, c extract.FieldCandidate, source constants.SourceType) {
	switch c.Field {
	case extract.FieldSkills:
		rec.Skills = listValue(c.Values, constants.MaxSkills)
	case extract.FieldRequirements:
		rec.Requirements = extract.GroupRequirements(listValue(c.Values, constants.MaxRequirements))
	case extract.FieldBenefits:
		rec.Benefits = listValue(c.Values, len(c.Values))
	default:
		if c.Value == "" {
			b.logger.Warn("record.malformed_candidate", "field", c.Field, "source", source)
			return
		}
		b.applyScalar(rec, c)
	}
}

func (b *Builder) applyScalar(rec *entity.JobRecord, c extract.FieldCandidate) {
	switch c.Field {
	case extract.FieldCompany:
		rec.Company = c.Value
	case extract.FieldJobTitle:
		rec.JobTitle = c.Value
	case extract.FieldLocation:
		rec.Location = c.Value
	case extract.FieldWorkArrangement:
		rec.WorkArrangement = c.Value
	case extract.FieldSalary:
		rec.Salary = c.Value
	case extract.FieldJobType:
		rec.JobType = c.Value
	case extract.FieldDuration:
		rec.Duration = c.Value
	case extract.FieldDepartment:
		rec.Department = c.Value
	case extract.FieldSeniority:
		rec.Seniority = c.Value
	case extract.FieldDeadline:
		rec.ApplicationInfo.Deadline = c.Value
	case extract.FieldContact:
		rec.ApplicationInfo.Contact = c.Value
	case extract.FieldStatus:
		// handled by BuildEmail
	default:
		b.logger.Warn("record.unknown_field", "field", c.Field)
	}
}

func listValue(values []string, max int) []string {
	if len(values) == 0 {
		return []string{}
	}
	if max > 0 && len(values) > max {
		values = values[:max]
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Description fallback tiers: a natural paragraph of at least 50 characters
// from the source text, then a templated sentence from company and title,
// then a generic sentence when both are at their sentinels. Callers display
// the result directly, so the tiers are fixed.
const minParagraphLen = 50

func (b *Builder) buildDescription(text, company, title string) string {
	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(strings.ReplaceAll(para, "\n", " "))
		if len(para) >= minParagraphLen {
			return para
		}
	}

	companyMissing := company == constants.CompanyNotSpecified || company == constants.UnknownCompany
	titleMissing := title == constants.PositionNotSpecified
	if companyMissing && titleMissing {
		return "An internship opportunity to gain hands-on experience and grow your professional skills."
	}
	return fmt.Sprintf("Join %s as a %s and contribute to innovative projects while developing your skills.", company, title)
}
