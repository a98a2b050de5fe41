package generation

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/pratama/kisi-kisi-generator/internal/llm"
	"github.com/pratama/kisi-kisi-generator/internal/prompts"
	"github.com/pratama/kisi-kisi-generator/internal/schemas"
	"github.com/pratama/kisi-kisi-generator/internal/types"
)

// Generator turns an input specification into generated exam content via one
// schema-constrained provider call. It performs no retries, caching, or
// deduplication; overlapping calls are the caller's responsibility to prevent.
type Generator struct {
	client llm.Client
	log    *zap.Logger
}

// New creates a Generator. A nil logger disables logging.
func New(client llm.Client, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{client: client, log: logger}
}

// Generate builds the prompt, issues one request to the provider, validates
// the returned JSON against the content schema, and applies the deterministic
// sub-competency correction. All failures collapse into a *GenerationError
// whose message is safe to show the user; the cause is logged here only.
func (g *Generator) Generate(ctx context.Context, form types.FormData) (*types.GeneratedContent, error) {
	prompt := prompts.BuildPrompt(form)

	raw, err := g.client.GenerateJSON(ctx, prompt, ResponseSchema())
	if err != nil {
		g.log.Error("provider call failed", zap.Error(err))
		return nil, newGenerationError(err)
	}

	if err := schemas.ValidateJSONString(contentSchemaJSON, raw); err != nil {
		g.log.Error("response failed schema validation", zap.Error(err))
		return nil, newGenerationError(err)
	}

	var content types.GeneratedContent
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		g.log.Error("response is not valid JSON", zap.Error(err))
		return nil, newGenerationError(fmt.Errorf("failed to parse response: %w", err))
	}

	// Correction pass: subKompetensi is recomputed from bentukSoal on every
	// row, replacing the model's value even when it is already correct.
	for i := range content.BlueprintRows {
		content.BlueprintRows[i].SubCompetency = SubCompetencyFor(content.BlueprintRows[i].QuestionForm)
	}

	g.log.Info("content generated",
		zap.Int("blueprint_rows", len(content.BlueprintRows)),
		zap.Int("worksheet_sections", len(content.WorksheetSections)),
		zap.Int("answers", len(content.AnswerKey)))

	return &content, nil
}
