package ocr

import (
	"sort"
	"strings"

	"github.com/manasvohal/aiInternshipTracker/internal/common"
)

// Merge tuning. A base word below weakWordConfidence is a substitution
// target; a candidate must sit within bboxProximityPx on both axes and beat
// the target by more than confidenceMargin points.
const (
	weakWordConfidence = 75
	minTargetWordLen   = 3
	minCandidateLen    = 2
	bboxProximityPx    = 30
	confidenceMargin   = 20
	maxMergedPasses    = 3
)

// MergedResult is the consolidated text for one image.
type MergedResult struct {
	Text       string  `json:"text"`
	Confidence float32 `json:"confidence"`
	Method     string  `json:"method"` // "single_result" | "weighted_merge"
	PassesUsed int     `json:"passes_used"`
}

// MergePasses consolidates the OCR passes for one image. Failed passes
// (confidence <= 0) are dropped; all passes failing is the pipeline's one
// hard error. A single surviving pass returns unchanged. Otherwise the top
// passes by confidence contribute word-level fixes to the best pass's text,
// and the result carries a rank-weighted confidence. Input passes are never
// mutated.
func MergePasses(passes []PassResult) (MergedResult, error) {
	valid := make([]PassResult, 0, len(passes))
	for _, p := range passes {
		if p.Confidence > 0 {
			valid = append(valid, p)
		}
	}

	if len(valid) == 0 {
		return MergedResult{}, common.ErrNoValidOCRResult
	}
	if len(valid) == 1 {
		return MergedResult{
			Text:       valid[0].Text,
			Confidence: valid[0].Confidence,
			Method:     "single_result",
			PassesUsed: 1,
		}, nil
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Confidence > valid[j].Confidence
	})
	top := valid
	if len(top) > maxMergedPasses {
		top = top[:maxMergedPasses]
	}

	base := top[0]
	text := base.Text
	for _, target := range base.Words {
		if target.Confidence >= weakWordConfidence || len(target.Text) < minTargetWordLen {
			continue
		}
		if repl, ok := findReplacement(target, top[1:]); ok {
			text = strings.Replace(text, target.Text, repl, 1)
		}
	}

	var weightedSum, weightTotal float64
	for rank, p := range top {
		w := 1.0 / float64(rank+1)
		weightedSum += float64(p.Confidence) * w
		weightTotal += w
	}

	return MergedResult{
		Text:       text,
		Confidence: float32(weightedSum / weightTotal),
		Method:     "weighted_merge",
		PassesUsed: len(top),
	}, nil
}

// findReplacement looks through the lower-ranked passes for a word at the
// same position that is confidently better than the target.
func findReplacement(target Word, alts []PassResult) (string, bool) {
	for _, alt := range alts {
		for _, w := range alt.Words {
			if len(w.Text) < minCandidateLen {
				continue
			}
			if absInt(w.BBox.X0-target.BBox.X0) > bboxProximityPx ||
				absInt(w.BBox.Y0-target.BBox.Y0) > bboxProximityPx {
				continue
			}
			if w.Confidence > target.Confidence+confidenceMargin {
				return w.Text, true
			}
		}
	}
	return "", false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
