package llm

import (
	"time"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/score"
)

// PostingFields is the wire shape of a validated model reply.
type PostingFields struct {
	Company         string   `json:"company"`
	JobTitle        string   `json:"job_title"`
	Location        string   `json:"location,omitempty"`
	WorkArrangement string   `json:"work_arrangement,omitempty"`
	Salary          string   `json:"salary,omitempty"`
	JobType         string   `json:"job_type,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	Department      string   `json:"department,omitempty"`
	Seniority       string   `json:"seniority,omitempty"`
	Description     string   `json:"description,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Benefits        []string `json:"benefits,omitempty"`
	Requirements    struct {
		Education  []string `json:"education,omitempty"`
		Experience []string `json:"experience,omitempty"`
		Technical  []string `json:"technical,omitempty"`
		Soft       []string `json:"soft,omitempty"`
	} `json:"requirements,omitempty"`
	ApplicationDeadline string  `json:"application_deadline,omitempty"`
	ApplicationContact  string  `json:"application_contact,omitempty"`
	ApplyURL            string  `json:"apply_url,omitempty"`
	Confidence          float64 `json:"confidence,omitempty"`
}

// ToRecord maps validated fields onto the domain record, filling the same
// sentinels the heuristic path uses for anything the model omitted.
func (f PostingFields) ToRecord(textLength int, now time.Time) entity.JobRecord {
	rec := entity.JobRecord{
		Company:         orDefault(f.Company, constants.CompanyNotSpecified),
		JobTitle:        orDefault(f.JobTitle, constants.PositionNotSpecified),
		Location:        orDefault(f.Location, constants.NotSpecified),
		WorkArrangement: orDefault(f.WorkArrangement, constants.NotSpecified),
		Salary:          orDefault(f.Salary, constants.SalaryNotSpecified),
		JobType:         orDefault(f.JobType, "Internship"),
		Duration:        orDefault(f.Duration, constants.NotSpecified),
		Department:      orDefault(f.Department, constants.NotSpecified),
		Seniority:       orDefault(f.Seniority, constants.SeniorityMidLevel),
		Description:     f.Description,
		Skills:          capList(f.Skills, constants.MaxSkills),
	}
	rec.Benefits = append([]string{}, f.Benefits...)
	rec.Requirements = capRequirements(entity.Requirements{
		Education:  f.Requirements.Education,
		Experience: f.Requirements.Experience,
		Technical:  f.Requirements.Technical,
		Soft:       f.Requirements.Soft,
	}, constants.MaxRequirements)
	rec.ApplicationInfo = entity.ApplicationInfo{
		Deadline: orDefault(f.ApplicationDeadline, constants.NotSpecified),
		Process:  constants.NotSpecified,
		Contact:  orDefault(f.ApplicationContact, constants.NotSpecified),
		ApplyURL: orDefault(f.ApplyURL, constants.NotSpecified),
	}
	rec.CompanyInfo = entity.CompanyInfo{
		Industry:    constants.NotSpecified,
		Size:        constants.NotSpecified,
		Description: constants.NotSpecified,
	}
	rec.AdditionalInfo = entity.AdditionalInfo{
		StartDate:         constants.NotSpecified,
		Timezone:          constants.NotSpecified,
		TravelRequired:    constants.NotSpecified,
		SecurityClearance: constants.NotSpecified,
	}

	if rec.Description == "" {
		if rec.Company != constants.CompanyNotSpecified && rec.JobTitle != constants.PositionNotSpecified {
			rec.Description = "Join " + rec.Company + " as a " + rec.JobTitle +
				" and contribute to innovative projects while developing your skills."
		} else {
			rec.Description = "An internship opportunity to gain hands-on experience and grow your professional skills."
		}
	}

	pct := float32(f.Confidence * 100)
	rec.ExtractionMetadata = entity.ExtractionMetadata{
		SourceType:      constants.SourceScreenshot,
		TextLength:      textLength,
		ExtractionDate:  now,
		Confidence:      pct,
		ConfidenceLabel: score.ConfidenceLabel(pct),
	}
	return rec
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// capList never returns nil: the record contract is empty list, not null.
func capList(values []string, max int) []string {
	out := append([]string{}, values...)
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// capRequirements trims the grouped lists so the combined count stays within
// the cap, consuming groups in education, experience, technical, soft order.
func capRequirements(r entity.Requirements, max int) entity.Requirements {
	remaining := max
	take := func(values []string) []string {
		if remaining <= 0 {
			return nil
		}
		out := append([]string(nil), values...)
		if len(out) > remaining {
			out = out[:remaining]
		}
		remaining -= len(out)
		return out
	}
	return entity.Requirements{
		Education:  take(r.Education),
		Experience: take(r.Experience),
		Technical:  take(r.Technical),
		Soft:       take(r.Soft),
	}
}
