package constants

// SourceType identifies which ingestion path produced a record.
type SourceType string

const (
	SourceScreenshot SourceType = "screenshot"
	SourceEmail      SourceType = "email"
)

// Sentinel values for fields the extractors could not resolve. The two
// ingestion paths historically used different placeholder strings and
// downstream consumers match on the exact text, so both sets stay distinct.
const (
	// Shared.
	NotSpecified = "Not specified"

	// Screenshot path.
	CompanyNotSpecified  = "Company not specified"
	PositionNotSpecified = "Position not specified"
	SalaryNotSpecified   = "Salary not specified"

	// Email path.
	UnknownCompany = "Unknown Company"
)

// Seniority defaults per path.
const (
	SeniorityMidLevel   = "Mid-level"   // screenshot path default
	SeniorityEntryLevel = "Entry-level" // email path default
)

// Confidence labels for the screenshot-path scorer buckets.
const (
	ConfidenceHigh    = "High"
	ConfidenceMedium  = "Medium"
	ConfidenceLow     = "Low"
	ConfidenceVeryLow = "Very Low"
)

// List caps applied by the extractors.
const (
	MaxSkills       = 20
	MaxRequirements = 10
)
