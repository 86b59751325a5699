package llm

import (
	"encoding/json"
	"fmt"
)

var workArrangementEnum = map[string]struct{}{
	"Remote": {}, "Hybrid": {}, "On-site": {},
}

// SanitizeOptionalFields is the last-chance repair after a failed schema
// validation: optional keys whose values still violate their constraints are
// dropped entirely, leaving the required company/job_title pair intact for a
// re-validation. Returns the cleaned JSON and the keys that were removed.
func SanitizeOptionalFields(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("decode for lenient pass: %w", err)
	}

	var dropped []string
	drop := func(k string) {
		dropped = append(dropped, k)
		delete(m, k)
	}

	for k, v := range m {
		switch k {
		case "company", "job_title":
			// required; validation failure here is terminal
		case "work_arrangement":
			s, ok := v.(string)
			if !ok {
				drop(k)
				continue
			}
			if _, valid := workArrangementEnum[s]; !valid {
				drop(k)
			}
		case "confidence":
			f, ok := v.(float64)
			if !ok || f < 0 || f > 1 {
				drop(k)
			}
		case "skills", "benefits":
			if !isStringList(v) {
				drop(k)
			}
		case "requirements":
			if _, ok := v.(map[string]any); !ok {
				drop(k)
			}
		default:
			if s, ok := v.(string); !ok || s == "" {
				drop(k)
			}
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("re-encode lenient json: %w", err)
	}
	return out, dropped, nil
}

func isStringList(v any) bool {
	arr, ok := v.([]any)
	if !ok {
		return false
	}
	for _, item := range arr {
		if s, sok := item.(string); !sok || s == "" {
			return false
		}
	}
	return len(arr) > 0
}
