package extract

import (
	"strings"

	"github.com/manasvohal/aiInternshipTracker/constants"
)

// Status phrase groups, tested in precedence order: offer, rejected,
// interview, applied confirmation.
var offerPhrases = []string{
	"pleased to offer", "happy to offer", "excited to offer", "offer you",
	"offer letter", "congratulations", "welcome to the team", "welcome aboard",
}

var rejectionPhrases = []string{
	"unfortunately", "regret to inform", "regret that", "not selected",
	"not moving forward", "not to move forward", "decided to pursue other",
	"other candidates", "unable to offer",
}

var interviewPhrases = []string{
	"interview", "next steps", "next step", "assessment", "coding challenge",
	"phone screen", "technical screen", "schedule a call", "hiring manager",
}

var appliedPhrases = []string{
	"application received", "we received your application",
	"thank you for applying", "thank you for your application",
	"application has been submitted", "successfully submitted",
}

// StatusExtractor classifies an application email body into a status. Email
// path only; defaults to applied.
type StatusExtractor struct{}

func (StatusExtractor) Field() Field { return FieldStatus }

func (StatusExtractor) Extract(text string, _ Context) FieldCandidate {
	status, found := ClassifyStatus(text)
	return FieldCandidate{Field: FieldStatus, Value: string(status), Found: found}
}

// ClassifyStatus tests lowercased content against the phrase groups in
// precedence order: offer, rejected, interview, applied confirmation. The
// boolean reports whether any group matched or the default was used.
func ClassifyStatus(text string) (constants.ApplicationStatus, bool) {
	lower := strings.ToLower(text)
	switch {
	case containsAny(lower, offerPhrases):
		return constants.StatusOffer, true
	case containsAny(lower, rejectionPhrases):
		return constants.StatusRejected, true
	case containsAny(lower, interviewPhrases):
		return constants.StatusInterview, true
	case containsAny(lower, appliedPhrases):
		return constants.StatusApplied, true
	default:
		return constants.StatusApplied, false
	}
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
