package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/manasvohal/aiInternshipTracker/constants"
)

var (
	reContactEmail = regexp.MustCompile(`\b[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}\b`)
	reContactPhone = regexp.MustCompile(`(?:\+?1[-. ]?)?\(?\d{3}\)?[-. ]\d{3}[-. ]\d{4}\b`)
	reLinkedIn     = regexp.MustCompile(`(?i)linkedin\.com/(?:in|company)/[a-zA-Z0-9\-_%]+`)
)

// ContactExtractor scans for an email address, phone number, or LinkedIn
// profile, in that order.
type ContactExtractor struct{}

func (ContactExtractor) Field() Field { return FieldContact }

func (ContactExtractor) Extract(text string, _ Context) FieldCandidate {
	if m := reContactEmail.FindString(text); m != "" {
		return FieldCandidate{Field: FieldContact, Value: m, Found: true}
	}
	if m := reContactPhone.FindString(text); m != "" {
		return FieldCandidate{Field: FieldContact, Value: strings.TrimSpace(m), Found: true}
	}
	if m := reLinkedIn.FindString(text); m != "" {
		return FieldCandidate{Field: FieldContact, Value: m, Found: true}
	}
	return FieldCandidate{Field: FieldContact, Value: constants.NotSpecified}
}

var reDeadlinePhrase = regexp.MustCompile(`(?i)\b(?:apply by|deadline|applications? due|due)\s*[:\-]?\s*([A-Za-z0-9, /\-]{4,30})`)

// Lenient layouts for deadline date tokens.
var deadlineLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2",
	"Jan 2",
}

// DeadlineExtractor finds application deadline phrases followed by a date
// token, parsed leniently. Unparseable dates leave the field at its sentinel
// rather than raising an error.
type DeadlineExtractor struct{}

func (DeadlineExtractor) Field() Field { return FieldDeadline }

func (DeadlineExtractor) Extract(text string, _ Context) FieldCandidate {
	m := reDeadlinePhrase.FindStringSubmatch(text)
	if m == nil {
		return FieldCandidate{Field: FieldDeadline, Value: constants.NotSpecified}
	}
	token := strings.TrimSpace(m[1])
	if parsed, ok := parseLenientDate(token); ok {
		return FieldCandidate{Field: FieldDeadline, Value: parsed, Found: true}
	}
	return FieldCandidate{Field: FieldDeadline, Value: constants.NotSpecified}
}

// parseLenientDate tries the known layouts against progressively shorter
// prefixes of the token, since the capture tends to grab trailing words.
func parseLenientDate(token string) (string, bool) {
	words := strings.Fields(token)
	for end := len(words); end > 0; end-- {
		candidate := strings.TrimRight(strings.Join(words[:end], " "), ".,;")
		for _, layout := range deadlineLayouts {
			t, err := time.Parse(layout, candidate)
			if err != nil {
				continue
			}
			if t.Year() == 0 {
				t = t.AddDate(time.Now().Year(), 0, 0)
			}
			return t.Format("January 2, 2006"), true
		}
	}
	return "", false
}
