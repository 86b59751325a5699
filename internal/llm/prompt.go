package llm

import "strings"

const maxPromptTextChars = 3000

// BuildSystemPrompt describes the extraction contract to the model.
func BuildSystemPrompt() string {
	parts := []string{
		"You are an internship posting parser. Return ONLY JSON that matches the JSON Schema provided.",
		"The input is OCR text from a screenshot of a job posting and may contain recognition noise; infer the intended words where obvious.",
		"'company' is the hiring company, not a job board or staffing agency when both appear.",
		"'work_arrangement' must be exactly one of: Remote, Hybrid, On-site.",
		"Keep 'salary' verbatim from the text, including currency symbols and units.",
		"'skills' lists concrete technologies only; soft skills belong under requirements.soft.",
		"Set 'confidence' between 0 and 1 reflecting how legible the posting was.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt wraps the normalized OCR text, truncated to keep the
// request bounded.
func BuildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Posting text (first ~3k chars):\n")
	if len(text) > maxPromptTextChars {
		b.WriteString(text[:maxPromptTextChars])
	} else {
		b.WriteString(text)
	}
	return b.String()
}
