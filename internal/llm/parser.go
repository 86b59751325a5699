package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/manasvohal/aiInternshipTracker/internal/common"
	"github.com/manasvohal/aiInternshipTracker/internal/entity"
)

// Parser asks a chat model to extract posting fields as schema-constrained
// JSON. It satisfies the pipeline's PostingParser interface.
type Parser struct {
	client openai.Client
	cfg    common.LLMConfig
	logger *slog.Logger
}

func NewParser(cfg common.LLMConfig, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		cfg:    cfg,
		logger: logger,
	}
}

// ParsePosting extracts a job record from normalized posting text. The reply
// is validated against the local schema; one lenient repair pass runs before
// giving up. Errors here mean the caller should use the heuristic extractors.
func (p *Parser) ParsePosting(ctx context.Context, text string) (entity.JobRecord, error) {
	rid := uuid.New().String()
	start := time.Now()

	p.logger.Info("llm.parse.start",
		"req_id", rid,
		"model", p.cfg.Model,
		"temp", p.cfg.Temperature,
		"text_len", len(text),
	)

	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	schema := BuildPostingJSONSchema()
	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return entity.JobRecord{}, fmt.Errorf("marshal schema: %w", err)
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(BuildSystemPrompt()),
			openai.UserMessage(BuildUserPrompt(text) + "\n\nReturn ONLY JSON that matches the provided schema."),
			openai.SystemMessage("JSON Schema:\n" + string(schemaJSON)),
		},
		Temperature: openai.Float(float64(p.cfg.Temperature)),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{Type: "json_object"},
		},
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		p.logger.Error("llm.parse.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.JobRecord{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		p.logger.Error("llm.parse.no_choices", "req_id", rid)
		return entity.JobRecord{}, fmt.Errorf("no choices in model response")
	}

	content := []byte(StripCodeFences(completion.Choices[0].Message.Content))

	cleaned, _, err := NormalizeAndSanitizeJSON(p.logger, content)
	if err != nil {
		p.logger.Error("llm.parse.sanitize_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return entity.JobRecord{}, err
	}

	if err := ValidateJSONAgainstSchema(schema, cleaned); err != nil {
		lenient, dropped, lErr := SanitizeOptionalFields(cleaned)
		if lErr != nil {
			return entity.JobRecord{}, fmt.Errorf("schema validation failed: %w", err)
		}
		if vErr := ValidateJSONAgainstSchema(schema, lenient); vErr != nil {
			p.logger.Error("llm.parse.schema_validation_failed",
				"req_id", rid, "error", vErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return entity.JobRecord{}, fmt.Errorf("schema validation failed: %w", vErr)
		}
		p.logger.Warn("llm.parse.lenient_sanitize_applied", "req_id", rid, "dropped", dropped)
		cleaned = lenient
	}

	var fields PostingFields
	if err := json.Unmarshal(cleaned, &fields); err != nil {
		return entity.JobRecord{}, fmt.Errorf("unmarshal fields: %w", err)
	}

	rec := fields.ToRecord(len(text), time.Now().UTC())
	p.logger.Info("llm.parse.ok",
		"req_id", rid,
		"company", rec.Company,
		"title", rec.JobTitle,
		"confidence", rec.ExtractionMetadata.ConfidenceLabel,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}
