package normalize

import (
	"regexp"
	"strings"
)

// Split words the engine commonly fractures mid-token.
var splitWordFixes = map[string]string{
	`\bth e\b`:        "the",
	`\ban d\b`:        "and",
	`\bwit h\b`:       "with",
	`\bfo r\b`:        "for",
	`\byo u\b`:        "you",
	`\bintern ship\b`: "internship",
	`\bsoft ware\b`:   "software",
	`\bengin eer\b`:   "engineer",
	`\bdevelop er\b`:  "developer",
}

// Mangled TLDs and URL fragments.
var urlFixes = map[string]string{
	`\.c0m\b`:        ".com",
	`\.c om\b`:       ".com",
	`\.0rg\b`:        ".org",
	`\.or g\b`:       ".org",
	`\.i0\b`:         ".io",
	`\bhttps?:\s*//`: "https://",
	`\bwww\s*\.\s*`:  "www.",
}

// Job and tech terms the engine tends to mangle or mis-case.
var termCasing = map[string]string{
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"python":     "Python",
	"golang":     "Golang",
	"react":      "React",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
	"sql":        "SQL",
	"aws":        "AWS",
	"gcp":        "GCP",
	"api":        "API",
	"html":       "HTML",
	"css":        "CSS",
	"devops":     "DevOps",
	"github":     "GitHub",
	"linkedin":   "LinkedIn",
}

var (
	splitWordRes map[*regexp.Regexp]string
	urlRes       map[*regexp.Regexp]string
	termRes      map[*regexp.Regexp]string
)

func init() {
	splitWordRes = compileFixes(splitWordFixes)
	urlRes = compileFixes(urlFixes)
	termRes = make(map[*regexp.Regexp]string, len(termCasing))
	for term, canonical := range termCasing {
		termRes[regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(term)+`\b`)] = canonical
	}
}

func compileFixes(fixes map[string]string) map[*regexp.Regexp]string {
	out := make(map[*regexp.Regexp]string, len(fixes))
	for pattern, repl := range fixes {
		out[regexp.MustCompile(`(?i)`+pattern)] = repl
	}
	return out
}

// PostProcess applies OCR-specific repairs on top of Normalize: split-word
// rejoins, mangled URL fragments, and canonical casing for common job and
// tech terms. Email bodies skip this stage, they arrive clean.
func PostProcess(s string) string {
	if s == "" {
		return s
	}
	for re, repl := range splitWordRes {
		s = re.ReplaceAllString(s, repl)
	}
	for re, repl := range urlRes {
		s = re.ReplaceAllString(s, repl)
	}
	for re, repl := range termRes {
		s = re.ReplaceAllString(s, repl)
	}
	return strings.TrimSpace(s)
}
