package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// runPass runs one tesseract invocation in TSV mode and parses it into a
// PassResult: word boxes with per-word confidence plus the reconstructed
// text.
func (e *Extractor) runPass(ctx context.Context, path string, v PassVariant) (PassResult, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if v.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(v.PSM))
	}
	if v.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(v.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return PassResult{}, fmt.Errorf("tesseract %s: %w", v.Name, err)
	}

	text, words, conf := parseTSV(string(out))
	return PassResult{
		Variant:    v.Name,
		Text:       text,
		Confidence: conf,
		Words:      words,
	}, nil
}

// TSV columns: level page block par line word left top width height conf text.
const tsvColumns = 12

// parseTSV extracts word-level results from tesseract TSV output and
// reconstructs the page text from line membership. Confidence is the mean
// word confidence in 0..100; rows with conf -1 are structural and skipped.
func parseTSV(out string) (string, []Word, float32) {
	var (
		words    []Word
		builder  strings.Builder
		lastLine = [4]string{}
		sum      float64
	)

	for i, ln := range strings.Split(out, "\n") {
		if i == 0 || ln == "" {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < tsvColumns {
			continue
		}
		if cols[0] != "5" { // word level only
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}

		left, _ := strconv.Atoi(cols[6])
		top, _ := strconv.Atoi(cols[7])
		width, _ := strconv.Atoi(cols[8])
		height, _ := strconv.Atoi(cols[9])

		lineKey := [4]string{cols[1], cols[2], cols[3], cols[4]}
		if builder.Len() > 0 {
			if lineKey == lastLine {
				builder.WriteByte(' ')
			} else {
				builder.WriteByte('\n')
			}
		}
		lastLine = lineKey
		builder.WriteString(text)

		words = append(words, Word{
			Text:       text,
			Confidence: float32(conf),
			BBox:       BBox{X0: left, Y0: top, X1: left + width, Y1: top + height},
		})
		sum += conf
	}

	if len(words) == 0 {
		return "", nil, 0
	}
	return builder.String(), words, float32(sum / float64(len(words)))
}
