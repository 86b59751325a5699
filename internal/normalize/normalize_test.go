package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t  \r\n "))
}

func TestNormalizeLineEndings(t *testing.T) {
	got := Normalize("first line\r\nsecond line\rthird line")
	assert.NotContains(t, got, "\r")
	assert.Contains(t, got, "first line")
	assert.Contains(t, got, "third line")
}

func TestNormalizeWhitespaceCollapse(t *testing.T) {
	got := Normalize("Software    Engineer\t\tIntern")
	assert.Equal(t, "Software Engineer Intern", got)
}

func TestNormalizeBlankLineCollapse(t *testing.T) {
	got := Normalize("Google LLC\n\n\n\n\nSoftware Engineer")
	assert.NotContains(t, got, "\n\n\n")
}

func TestNormalizeHyphenBrokenWords(t *testing.T) {
	got := Normalize("we build distrib-\nuted systems")
	assert.Contains(t, got, "distributed")
}

func TestNormalizeContinuationJoin(t *testing.T) {
	got := Normalize("we are looking for interns,\nespecially in backend roles")
	assert.Contains(t, got, "interns, especially")
}

func TestNormalizeContinuationChain(t *testing.T) {
	// chains of soft-wrapped lines must fully join in one call
	got := Normalize("alpha\nbeta\ngamma")
	assert.Equal(t, "alpha beta gamma", got)
}

func TestNormalizeCharacterConfusions(t *testing.T) {
	assert.Contains(t, Normalize("exce|lent opportunity"), "excellent")
	assert.Contains(t, Normalize("app1y today"), "apply")
}

func TestNormalizePreservesNumbers(t *testing.T) {
	// digits in numeric context must not be rewritten as letters
	got := Normalize("Salary: $80,000 - $100,000 per year")
	assert.Contains(t, got, "$80,000")
	assert.Contains(t, got, "$100,000")
}

func TestNormalizePunctuationVariants(t *testing.T) {
	got := Normalize("“Great” opportunity – don’t miss it")
	assert.Contains(t, got, `"Great"`)
	assert.Contains(t, got, "- don't miss")
}

func TestNormalizeBulletVariants(t *testing.T) {
	got := Normalize("requirements\n· Python experience\n▪ SQL knowledge")
	assert.Contains(t, got, "• Python experience")
	assert.Contains(t, got, "• SQL knowledge")
}

func TestNormalizeStripsNoiseLines(t *testing.T) {
	got := Normalize("Google LLC\n~\n|||\nSoftware Engineer Intern")
	assert.NotContains(t, got, "~")
	assert.Contains(t, got, "Google LLC")
	assert.Contains(t, got, "Software Engineer Intern")
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"first line\r\nsecond    line\n\n\n\nthird",
		"distrib-\nuted systems,\nat scale",
		"exce|lent “quoted” – app1y\n~\n•bullet",
		"alpha\nbeta\ngamma\ndelta",
		"Software Engineer Intern\nMountain View, CA\n$45/hour",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestPostProcessSplitWords(t *testing.T) {
	got := PostProcess("looking fo r a soft ware engin eer intern ship")
	assert.Contains(t, got, "for a software engineer internship")
}

func TestPostProcessURLFixes(t *testing.T) {
	got := PostProcess("apply at careers.example.c0m today")
	assert.Contains(t, got, "careers.example.com")

	got = PostProcess("see nonprofit.0rg and charity.or g for details")
	assert.Contains(t, got, "nonprofit.org")
	assert.Contains(t, got, "charity.org")

	// already-clean URLs pass through untouched
	assert.Contains(t, PostProcess("visit example.org now"), "example.org")
}

func TestPostProcessTermCasing(t *testing.T) {
	got := PostProcess("experience with javascript, react and aws required")
	assert.Contains(t, got, "JavaScript")
	assert.Contains(t, got, "React")
	assert.Contains(t, got, "AWS")
}

func TestPostProcessEmptyInput(t *testing.T) {
	assert.Equal(t, "", PostProcess(""))
}
