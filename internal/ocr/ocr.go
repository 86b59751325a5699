// Package ocr runs the OCR engine over preprocessing variants of a
// screenshot and merges the per-pass results into one text.
package ocr

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// BBox is a word bounding box in image pixel coordinates.
type BBox struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Word is one recognized word with its per-word confidence (0-100).
type Word struct {
	Text       string  `json:"text"`
	Confidence float32 `json:"confidence"`
	BBox       BBox    `json:"bbox"`
}

// PassResult is the outcome of one OCR pass over one preprocessing variant.
// Confidence <= 0 marks a failed pass; the merger filters those out.
type PassResult struct {
	Variant    string  `json:"variant"`
	Text       string  `json:"text"`
	Confidence float32 `json:"confidence"`
	Words      []Word  `json:"words,omitempty"`
}

// PassVariant is one engine configuration tried against the image.
type PassVariant struct {
	Name string
	PSM  int // page segmentation mode
	OEM  int // engine mode, 1 = LSTM
}

// Engine configurations tried per image. Screenshots vary between dense
// posting blocks and sparse toolbar captures, so several segmentation modes
// compete and the merger picks the winners.
var defaultVariants = []PassVariant{
	{Name: "block", PSM: 6, OEM: 1},
	{Name: "column", PSM: 4, OEM: 1},
	{Name: "sparse", PSM: 11, OEM: 1},
	{Name: "auto", PSM: 3, OEM: 1},
}

type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
	Variants      []PassVariant // default defaultVariants
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if len(cfg.Variants) == 0 {
		cfg.Variants = defaultVariants
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// ExtractImage runs every configured variant concurrently and merges the
// completed passes. Failed passes surface as zero-confidence results and are
// filtered by the merger; ErrNoValidOCRResult propagates when all fail.
func (e *Extractor) ExtractImage(ctx context.Context, path string) (MergedResult, error) {
	start := time.Now()
	passes := make([]PassResult, len(e.cfg.Variants))

	var wg sync.WaitGroup
	for i, variant := range e.cfg.Variants {
		wg.Add(1)
		go func(i int, v PassVariant) {
			defer wg.Done()
			pass, err := e.runPass(ctx, path, v)
			if err != nil {
				e.logger.Warn("ocr.pass.failed", "path", path, "variant", v.Name, "error", err)
				passes[i] = PassResult{Variant: v.Name}
				return
			}
			passes[i] = pass
		}(i, variant)
	}
	wg.Wait()

	merged, err := MergePasses(passes)
	if err != nil {
		return MergedResult{}, err
	}
	e.logger.Info("ocr.ok",
		"path", path,
		"method", merged.Method,
		"passes_used", merged.PassesUsed,
		"confidence", merged.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return merged, nil
}
