package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manasvohal/aiInternshipTracker/internal/common"
)

func TestMergeAllPassesFailed(t *testing.T) {
	_, err := MergePasses([]PassResult{
		{Variant: "block", Confidence: 0},
		{Variant: "sparse", Confidence: -1},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoValidOCRResult)
}

func TestMergeEmptyInput(t *testing.T) {
	_, err := MergePasses(nil)
	assert.ErrorIs(t, err, common.ErrNoValidOCRResult)
}

func TestMergeSinglePassShortCircuit(t *testing.T) {
	merged, err := MergePasses([]PassResult{
		{Variant: "failed", Confidence: 0},
		{Variant: "block", Text: "Software Intern", Confidence: 62},
	})
	require.NoError(t, err)
	assert.Equal(t, "single_result", merged.Method)
	assert.Equal(t, "Software Intern", merged.Text)
	assert.Equal(t, float32(62), merged.Confidence)
	assert.Equal(t, 1, merged.PassesUsed)
}

func TestMergeTakesTopThree(t *testing.T) {
	merged, err := MergePasses([]PassResult{
		{Variant: "a", Text: "a", Confidence: 50},
		{Variant: "b", Text: "b", Confidence: 70},
		{Variant: "c", Text: "c", Confidence: 90},
		{Variant: "d", Text: "d", Confidence: 60},
	})
	require.NoError(t, err)
	assert.Equal(t, "weighted_merge", merged.Method)
	assert.Equal(t, 3, merged.PassesUsed)
	// base text comes from the highest-confidence pass
	assert.Equal(t, "c", merged.Text)
}

func TestMergeWordSubstitution(t *testing.T) {
	base := PassResult{
		Variant:    "block",
		Text:       "Goog1e Software Intern",
		Confidence: 80,
		Words: []Word{
			{Text: "Goog1e", Confidence: 40, BBox: BBox{X0: 10, Y0: 10, X1: 90, Y1: 30}},
			{Text: "Software", Confidence: 95, BBox: BBox{X0: 100, Y0: 10, X1: 190, Y1: 30}},
			{Text: "Intern", Confidence: 92, BBox: BBox{X0: 200, Y0: 10, X1: 260, Y1: 30}},
		},
	}
	alt := PassResult{
		Variant:    "column",
		Text:       "Google Software Intern",
		Confidence: 75,
		Words: []Word{
			{Text: "Google", Confidence: 88, BBox: BBox{X0: 12, Y0: 11, X1: 92, Y1: 31}},
		},
	}

	merged, err := MergePasses([]PassResult{base, alt})
	require.NoError(t, err)
	assert.Equal(t, "Google Software Intern", merged.Text)
}

func TestMergeNoSubstitutionWhenBoxesFarApart(t *testing.T) {
	base := PassResult{
		Variant:    "block",
		Text:       "Goog1e Intern",
		Confidence: 80,
		Words: []Word{
			{Text: "Goog1e", Confidence: 40, BBox: BBox{X0: 10, Y0: 10, X1: 90, Y1: 30}},
		},
	}
	alt := PassResult{
		Variant:    "column",
		Text:       "Google Intern",
		Confidence: 75,
		Words: []Word{
			{Text: "Google", Confidence: 88, BBox: BBox{X0: 300, Y0: 400, X1: 380, Y1: 420}},
		},
	}

	merged, err := MergePasses([]PassResult{base, alt})
	require.NoError(t, err)
	assert.Equal(t, "Goog1e Intern", merged.Text)
}

func TestMergeNoSubstitutionWithinMargin(t *testing.T) {
	// candidate must beat the target by more than 20 points
	base := PassResult{
		Variant:    "block",
		Text:       "Goog1e Intern",
		Confidence: 80,
		Words: []Word{
			{Text: "Goog1e", Confidence: 70, BBox: BBox{X0: 10, Y0: 10, X1: 90, Y1: 30}},
		},
	}
	alt := PassResult{
		Variant:    "column",
		Text:       "Google Intern",
		Confidence: 75,
		Words: []Word{
			{Text: "Google", Confidence: 85, BBox: BBox{X0: 12, Y0: 11, X1: 92, Y1: 31}},
		},
	}

	merged, err := MergePasses([]PassResult{base, alt})
	require.NoError(t, err)
	assert.Equal(t, "Goog1e Intern", merged.Text)
}

func TestMergeConfidenceWithinBounds(t *testing.T) {
	cases := [][]PassResult{
		{{Text: "a", Confidence: 90}, {Text: "b", Confidence: 50}},
		{{Text: "a", Confidence: 90}, {Text: "b", Confidence: 70}, {Text: "c", Confidence: 30}},
		{{Text: "a", Confidence: 33}, {Text: "b", Confidence: 33}},
	}
	for _, passes := range cases {
		merged, err := MergePasses(passes)
		require.NoError(t, err)

		lo, hi := float32(101), float32(-1)
		for _, p := range passes {
			if p.Confidence < lo {
				lo = p.Confidence
			}
			if p.Confidence > hi {
				hi = p.Confidence
			}
		}
		assert.GreaterOrEqual(t, merged.Confidence, lo)
		assert.LessOrEqual(t, merged.Confidence, hi)
	}
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	passes := []PassResult{
		{Variant: "a", Text: "low", Confidence: 50},
		{Variant: "b", Text: "high", Confidence: 90},
	}
	_, err := MergePasses(passes)
	require.NoError(t, err)
	assert.Equal(t, "a", passes[0].Variant)
	assert.Equal(t, "low", passes[0].Text)
	assert.Equal(t, "b", passes[1].Variant)
}

func TestParseTSV(t *testing.T) {
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"1\t1\t0\t0\t0\t0\t0\t0\t640\t480\t-1\t\n" +
		"5\t1\t1\t1\t1\t1\t10\t10\t80\t20\t91.5\tGoogle\n" +
		"5\t1\t1\t1\t1\t2\t100\t10\t40\t20\t88.0\tLLC\n" +
		"5\t1\t1\t1\t2\t1\t10\t40\t90\t20\t76.5\tSoftware\n"

	text, words, conf := parseTSV(tsv)
	assert.Equal(t, "Google LLC\nSoftware", text)
	require.Len(t, words, 3)
	assert.Equal(t, "Google", words[0].Text)
	assert.Equal(t, BBox{X0: 10, Y0: 10, X1: 90, Y1: 30}, words[0].BBox)
	assert.InDelta(t, 85.33, conf, 0.01)
}

func TestParseTSVEmpty(t *testing.T) {
	text, words, conf := parseTSV("")
	assert.Empty(t, text)
	assert.Nil(t, words)
	assert.Equal(t, float32(0), conf)
}
