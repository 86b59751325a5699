// Command analyze runs the screenshot pipeline over one image or text file
// and prints the extracted record as JSON. No database required.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/manasvohal/aiInternshipTracker/constants"
	"github.com/manasvohal/aiInternshipTracker/internal/common"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
	"github.com/manasvohal/aiInternshipTracker/internal/llm"
	"github.com/manasvohal/aiInternshipTracker/internal/ocr"
	"github.com/manasvohal/aiInternshipTracker/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	asText := flag.Bool("text", false, "treat the input as a text file, skipping OCR")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "analyze [-text] <path>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg := common.LoadConfig()

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.TesseractBin,
		TesseractLang: cfg.OCR.Languages,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)

	var parser pipeline.PostingParser
	if cfg.LLM.Enabled {
		parser = llm.NewParser(cfg.LLM, logger)
	}
	pipe := pipeline.NewScreenshotPipeline(logger, extractor, parser)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var rec entity.JobRecord
	if *asText {
		raw, err := os.ReadFile(path)
		if err != nil {
			logger.Error("read input", "path", path, "error", err)
			os.Exit(1)
		}
		rec = pipe.AnalyzeText(ctx, string(raw))
	} else {
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			logger.Error("unsupported image extension", "path", path, "ext", ext)
			os.Exit(2)
		}
		var err error
		rec, err = pipe.AnalyzeImage(ctx, path)
		if err != nil {
			logger.Error("analyze failed", "path", path, "error", err)
			os.Exit(1)
		}
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
