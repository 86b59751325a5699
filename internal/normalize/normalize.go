// Package normalize cleans raw OCR and email text before field extraction.
package normalize

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)

	// Broken and soft-wrapped lines.
	reHyphenBreak  = regexp.MustCompile(`([a-z])-\n([a-z])`)
	reContinuation = regexp.MustCompile(`([a-z,])\n([a-z])`)

	// Character confusions, only applied adjacent to alphabetic context so
	// numeric data (salaries, years) is left alone.
	rePipeAfter  = regexp.MustCompile(`([a-z])\|`)
	rePipeBefore = regexp.MustCompile(`\|([a-z])`)
	reZeroBefore = regexp.MustCompile(`\b0([A-Za-z]{2,})`)
	reZeroAfter  = regexp.MustCompile(`([a-z]{2,})0\b`)
	reFiveAsS    = regexp.MustCompile(`([A-Za-z])5([A-Za-z])`)
	reOneAsL     = regexp.MustCompile(`([a-z])1([a-z])`)
	reEightAsB   = regexp.MustCompile(`([A-Za-z])8([A-Za-z])`)

	// Punctuation variants.
	reBullets = regexp.MustCompile(`[•·▪▫◦‣⁃] *`)

	// Noise lines.
	reSingleCharLine = regexp.MustCompile(`(?m)^\s*\S\s*$`)
	reSymbolOnlyLine = regexp.MustCompile(`(?m)^[^a-zA-Z0-9\n]+$`)
)

var punctReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"—", "-", "–", "-",
)

// Normalize cleans raw text for extraction: line endings, whitespace runs,
// broken words, OCR character confusions, punctuation variants, noise lines.
// Empty or whitespace-only input returns "". Idempotent: the steps are
// re-applied until the text stops changing.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	s := raw
	for i := 0; i < 8; i++ {
		next := normalizeOnce(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func normalizeOnce(s string) string {
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")

	s = replaceStable(reHyphenBreak, s, "$1$2")
	s = replaceStable(reContinuation, s, "$1 $2")

	s = replaceStable(rePipeAfter, s, "${1}l")
	s = replaceStable(rePipeBefore, s, "l$1")
	s = reZeroBefore.ReplaceAllString(s, "O$1")
	s = reZeroAfter.ReplaceAllString(s, "${1}o")
	s = reFiveAsS.ReplaceAllString(s, "${1}S${2}")
	s = reOneAsL.ReplaceAllString(s, "${1}l${2}")
	s = reEightAsB.ReplaceAllString(s, "${1}B${2}")

	s = punctReplacer.Replace(s)
	s = reBullets.ReplaceAllString(s, "• ")

	// drop noise lines, trim trailing spaces
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " ")
		if trimmed != "" && isNoiseLine(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}
	s = strings.Join(kept, "\n")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// replaceStable applies a replacement until it stops matching. A single
// ReplaceAllString pass skips overlapping matches, so chains like "a\nb\nc"
// would only half-join and break idempotence.
func replaceStable(re *regexp.Regexp, s, repl string) string {
	for re.MatchString(s) {
		next := re.ReplaceAllString(s, repl)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func isNoiseLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "•" || reSingleCharLine.MatchString(line) {
		return true
	}
	return reSymbolOnlyLine.MatchString(trimmed)
}
