// Package llm implements the AI-assisted posting parser. It asks a chat
// model for structured JSON, validates the reply against a local schema,
// and maps the result onto the domain record. Any failure surfaces as an
// error so callers can fall back to the heuristic extractors.
package llm

// BuildPostingJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass this to the model as an output constraint and also use
// it locally to validate the reply.
func BuildPostingJSONSchema() map[string]any {
	props := map[string]any{
		"company":          map[string]any{"type": "string", "minLength": 1},
		"job_title":        map[string]any{"type": "string", "minLength": 1},
		"location":         strProp(),
		"work_arrangement": map[string]any{"type": "string", "enum": []string{"Remote", "Hybrid", "On-site"}},
		"salary":           strProp(),
		"job_type":         strProp(),
		"duration":         strProp(),
		"department":       strProp(),
		"seniority":        strProp(),
		"description":      strProp(),
		"skills":           strListProp(),
		"benefits":         strListProp(),
		"requirements": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"education":  strListProp(),
				"experience": strListProp(),
				"technical":  strListProp(),
				"soft":       strListProp(),
			},
		},
		"application_deadline": strProp(),
		"application_contact":  strProp(),
		"apply_url":            strProp(),
		"confidence":           map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"company", "job_title"},
	}
}

func strProp() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func strListProp() map[string]any {
	return map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}
}
