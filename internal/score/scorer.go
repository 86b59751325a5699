// Package score assigns confidence to extraction results: a weighted
// presence check for screenshot-derived records and an additive relevance
// score for scanned emails.
package score

import (
	"strings"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/extract"
)

// Weighted presence check for the screenshot path, out of a max of 10.
var screenshotWeights = map[extract.Field]int{
	extract.FieldCompany:      2,
	extract.FieldJobTitle:     2,
	extract.FieldRequirements: 2,
	extract.FieldLocation:     1,
	extract.FieldSalary:       1,
	extract.FieldContact:      1,
	extract.FieldSkills:       1,
}

const screenshotMaxPoints = 10

// ScoreScreenshot scales found-field points to a 0-100 percentage and a
// confidence bucket. Only detected fields count; defaulted values do not.
func ScoreScreenshot(candidates []extract.FieldCandidate) (float32, string) {
	points := 0
	for _, c := range candidates {
		if !c.Found {
			continue
		}
		points += screenshotWeights[c.Field]
	}
	pct := float32(points) / screenshotMaxPoints * 100
	return pct, ConfidenceLabel(pct)
}

// ConfidenceLabel buckets a 0-100 percentage.
func ConfidenceLabel(pct float32) string {
	switch {
	case pct >= 80:
		return constants.ConfidenceHigh
	case pct >= 60:
		return constants.ConfidenceMedium
	case pct >= 40:
		return constants.ConfidenceLow
	default:
		return constants.ConfidenceVeryLow
	}
}

// RelevanceThreshold is the hard gate for the email path: messages scoring
// below it are discarded from the pipeline entirely.
const RelevanceThreshold = 30

// Additive email scoring weights.
const (
	subjectMatchPoints   = 30
	senderMatchPoints    = 20
	companyResolvePoints = 15
	keywordPoints        = 3
	keywordPointsCap     = 30
	strongPhrasePoints   = 15
	automatedPoints      = 10
)

var subjectPatterns = []string{
	"application received", "your application", "thank you for applying",
	"interview", "next steps", "offer", "assessment", "coding challenge",
	"application status", "application update", "we received your",
}

var senderPatterns = []string{
	"no-reply", "noreply", "careers@", "jobs@", "recruiting", "recruiter",
	"talent", "hr@", "workday", "greenhouse", "lever.co", "myworkday",
	"smartrecruiters", "icims", "taleo",
}

var relevanceKeywords = []string{
	"position", "role", "candidate", "resume", "hiring", "internship",
	"opportunity", "application", "qualifications", "recruiter", "team",
}

var strongIndicators = []string{
	"your application", "move forward", "schedule an interview",
	"pleased to offer", "unfortunately", "next round", "background check",
}

var automatedMarkers = []string{
	"do not reply", "automated message", "this is an automated",
	"unsubscribe",
}

// EmailScore is the scored relevance of one message.
type EmailScore struct {
	Score           int
	Relevant        bool
	SubjectMatch    bool
	SenderMatch     bool
	CompanyResolved bool
	KeywordHits     []string
	StrongHits      []string
	Automated       bool
}

// ScoreEmail computes the additive relevance score for a message, clamped to
// [0,100]. companyResolved reports whether the sender domain mapped to a
// company name.
func ScoreEmail(subject, from, body string, companyResolved bool) EmailScore {
	var s EmailScore
	lowerSubject := strings.ToLower(subject)
	lowerFrom := strings.ToLower(from)
	lowerBody := strings.ToLower(body)

	for _, p := range subjectPatterns {
		if strings.Contains(lowerSubject, p) {
			s.SubjectMatch = true
			s.Score += subjectMatchPoints
			break
		}
	}
	for _, p := range senderPatterns {
		if strings.Contains(lowerFrom, p) {
			s.SenderMatch = true
			s.Score += senderMatchPoints
			break
		}
	}
	if companyResolved {
		s.CompanyResolved = true
		s.Score += companyResolvePoints
	}

	keywordTotal := 0
	for _, kw := range relevanceKeywords {
		if strings.Contains(lowerBody, kw) || strings.Contains(lowerSubject, kw) {
			s.KeywordHits = append(s.KeywordHits, kw)
			if keywordTotal < keywordPointsCap {
				keywordTotal += keywordPoints
			}
		}
	}
	s.Score += keywordTotal

	for _, phrase := range strongIndicators {
		if strings.Contains(lowerBody, phrase) {
			s.StrongHits = append(s.StrongHits, phrase)
			s.Score += strongPhrasePoints
		}
	}

	for _, marker := range automatedMarkers {
		if strings.Contains(lowerBody, marker) || strings.Contains(lowerFrom, marker) {
			s.Automated = true
			s.Score += automatedPoints
			break
		}
	}

	if s.Score > 100 {
		s.Score = 100
	}
	s.Relevant = s.Score >= RelevanceThreshold
	return s
}
