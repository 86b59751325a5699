package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/manasvohal/aiInternshipTracker/internal/extract"
)

// fieldSynonyms maps key names the model likes to invent onto the schema's
// canonical keys. Applied before unknown-key dropping.
var fieldSynonyms = map[string]string{
	"company_name":     "company",
	"employer":         "company",
	"organization":     "company",
	"title":            "job_title",
	"position":         "job_title",
	"role":             "job_title",
	"job_location":     "location",
	"city":             "location",
	"work_mode":        "work_arrangement",
	"remote_policy":    "work_arrangement",
	"compensation":     "salary",
	"pay":              "salary",
	"salary_range":     "salary",
	"employment_type":  "job_type",
	"team":             "department",
	"level":            "seniority",
	"experience_level": "seniority",
	"summary":          "description",
	"technologies":     "skills",
	"tech_stack":       "skills",
	"perks":            "benefits",
	"deadline":         "application_deadline",
	"contact":          "application_contact",
	"application_url":  "apply_url",
	"url":              "apply_url",
}

var knownKeys = map[string]struct{}{
	"company": {}, "job_title": {}, "location": {}, "work_arrangement": {},
	"salary": {}, "job_type": {}, "duration": {}, "department": {},
	"seniority": {}, "description": {}, "skills": {}, "benefits": {},
	"requirements": {}, "application_deadline": {}, "application_contact": {},
	"apply_url": {}, "confidence": {},
}

var listKeys = map[string]struct{}{"skills": {}, "benefits": {}}

// NormalizeAndSanitizeJSON repairs the usual model mistakes before schema
// validation: synonym keys are renamed, numbers arrive where strings belong,
// nulls and empty values appear instead of being omitted, a flat requirements
// array shows up instead of the grouped object, and extra keys get invented.
// Returns the cleaned JSON plus the list of keys that were dropped.
func NormalizeAndSanitizeJSON(logger *slog.Logger, raw []byte) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("decode model json: %w", err)
	}

	for from, to := range fieldSynonyms {
		if v, ok := m[from]; ok {
			if _, taken := m[to]; !taken {
				m[to] = v
			}
			delete(m, from)
		}
	}

	var dropped []string
	for k, v := range m {
		if _, known := knownKeys[k]; !known {
			dropped = append(dropped, k)
			delete(m, k)
			continue
		}
		switch k {
		case "requirements":
			cleaned, ok := sanitizeRequirements(v)
			if !ok {
				dropped = append(dropped, k)
				delete(m, k)
				continue
			}
			m[k] = cleaned
		case "confidence":
			if _, ok := v.(float64); !ok {
				dropped = append(dropped, k)
				delete(m, k)
			}
		default:
			if _, isList := listKeys[k]; isList {
				items := coerceStringList(v)
				if len(items) == 0 {
					dropped = append(dropped, k)
					delete(m, k)
					continue
				}
				m[k] = items
				continue
			}
			s, ok := coerceString(v)
			if !ok || s == "" {
				dropped = append(dropped, k)
				delete(m, k)
				continue
			}
			m[k] = s
		}
	}

	if len(dropped) > 0 {
		logger.Warn("llm.parse.sanitized", "dropped", dropped)
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("re-encode sanitized json: %w", err)
	}
	return out, dropped, nil
}

// sanitizeRequirements accepts either the grouped object or a flat string
// array, which gets bucketed the same way the heuristic extractor does.
func sanitizeRequirements(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		out := map[string]any{}
		for _, group := range []string{"education", "experience", "technical", "soft"} {
			items := coerceStringList(t[group])
			if len(items) > 0 {
				out[group] = items
			}
		}
		return out, len(out) > 0
	case []any:
		flat := coerceStringList(t)
		if len(flat) == 0 {
			return nil, false
		}
		grouped := extract.GroupRequirements(flat)
		out := map[string]any{}
		if len(grouped.Education) > 0 {
			out["education"] = grouped.Education
		}
		if len(grouped.Experience) > 0 {
			out["experience"] = grouped.Experience
		}
		if len(grouped.Technical) > 0 {
			out["technical"] = grouped.Technical
		}
		if len(grouped.Soft) > 0 {
			out["soft"] = grouped.Soft
		}
		return out, len(out) > 0
	default:
		return nil, false
	}
}

func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

func coerceStringList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		if s, sok := coerceString(v); sok && s != "" {
			return []string{s}
		}
		return nil
	}
	var out []string
	for _, item := range arr {
		if s, sok := coerceString(item); sok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// StripCodeFences removes a surrounding ```json ... ``` block if the model
// wrapped its reply in one.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.HasPrefix(s, "{") {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
