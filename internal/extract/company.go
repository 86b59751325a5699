package extract

import (
	"regexp"
	"strings"

	"github.com/manasvohal/aiInternshipTracker/constants"
)

var (
	reLegalSuffix = regexp.MustCompile(`\b([A-Z][A-Za-z0-9&.' -]{0,40}?\s+(?:Inc\.?|Corp\.?|LLC|Ltd\.?|Co\.|Corporation|Incorporated|Company|Technologies|Labs|Group))\b`)
	reURLDomain   = regexp.MustCompile(`https?://(?:www\.)?([a-zA-Z0-9-]+)\.[a-z]{2,}`)
	reProperLine  = regexp.MustCompile(`^[A-Z][A-Za-z0-9&.' -]{1,38}$`)
	reAngleAddr   = regexp.MustCompile(`<([^>]+)>`)
)

// Line-level markers that disqualify a proper-noun line as a company name.
var companyLineStopwords = []string{
	"engineer", "developer", "designer", "analyst", "manager", "intern",
	"about", "company", "position", "role", "apply", "location", "salary",
}

// CompanyExtractor resolves the employer name. Strategies in order: sender
// domain hint (email path), legal-suffix pattern, proper-noun line near the
// top of the text, domain of any URL in the text.
type CompanyExtractor struct{}

func (CompanyExtractor) Field() Field { return FieldCompany }

func (CompanyExtractor) Extract(text string, ectx Context) FieldCandidate {
	if ectx.CompanyHint != "" {
		return FieldCandidate{Field: FieldCompany, Value: ectx.CompanyHint, Found: true}
	}

	if m := reLegalSuffix.FindStringSubmatch(text); m != nil {
		return FieldCandidate{Field: FieldCompany, Value: strings.TrimSpace(m[1]), Found: true}
	}

	lines := strings.Split(text, "\n")
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if !reProperLine.MatchString(line) {
			continue
		}
		if containsAnyFold(line, companyLineStopwords) {
			continue
		}
		return FieldCandidate{Field: FieldCompany, Value: line, Found: true}
	}

	if m := reURLDomain.FindStringSubmatch(text); m != nil {
		if name := FormatCompanyName(m[1]); name != "" {
			return FieldCandidate{Field: FieldCompany, Value: name, Found: true}
		}
	}

	return FieldCandidate{Field: FieldCompany, Value: companySentinel(ectx.Source)}
}

func companySentinel(source constants.SourceType) string {
	if source == constants.SourceEmail {
		return constants.UnknownCompany
	}
	return constants.CompanyNotSpecified
}

// CompanyFromSender derives a company hint from an email From header.
// Generic mail provider domains yield "" since they never identify an
// employer.
func CompanyFromSender(from string) string {
	addr := from
	if m := reAngleAddr.FindStringSubmatch(from); m != nil {
		addr = m[1]
	}
	at := strings.LastIndex(addr, "@")
	if at < 0 || at == len(addr)-1 {
		return ""
	}
	domain := strings.ToLower(strings.TrimSpace(addr[at+1:]))
	for _, prefix := range mailSubdomainPrefixes {
		domain = strings.TrimPrefix(domain, prefix)
	}
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return ""
	}
	token := labels[len(labels)-2]
	if _, generic := genericMailProviders[token]; generic {
		return ""
	}
	return FormatCompanyName(token)
}

// FormatCompanyName capitalizes a bare domain token into a display name.
func FormatCompanyName(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}
	return strings.ToUpper(token[:1]) + token[1:]
}

func containsAnyFold(s string, needles []string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
