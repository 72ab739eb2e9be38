// Package llm implements the extraction, classification, and evaluation
// capabilities on top of the Claude vision client. Prompt construction and
// response parsing live here; the wire client stays generic.
package llm

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/lenderdesk/docsift/internal/extract"
	"github.com/lenderdesk/docsift/internal/model"
	"github.com/lenderdesk/docsift/pkg/claude"
)

const (
	defaultModel     = "claude-sonnet-4-5-20250929"
	defaultMaxTokens = 4096
)

// Provider drives document understanding through a Claude vision model. It
// satisfies the extract package's Extractor, Classifier, and Evaluator
// contracts.
type Provider struct {
	client    claude.Client
	model     string
	maxTokens int64
}

// Option configures a Provider.
type Option func(*Provider)

// WithModel overrides the default model ID.
func WithModel(model string) Option {
	return func(p *Provider) {
		if model != "" {
			p.model = model
		}
	}
}

// WithMaxTokens overrides the response token budget.
func WithMaxTokens(n int64) Option {
	return func(p *Provider) {
		if n > 0 {
			p.maxTokens = n
		}
	}
}

// NewProvider creates a Provider over an existing client.
func NewProvider(client claude.Client, opts ...Option) (*Provider, error) {
	if client == nil {
		return nil, eris.New("llm: provider requires a client")
	}
	p := &Provider{
		client:    client,
		model:     defaultModel,
		maxTokens: defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// ExtractFields runs one vision extraction call against a single page image
// for every non-reserved field in the schema.
func (p *Provider) ExtractFields(ctx context.Context, page extract.PageImage, schema model.Schema) (map[string]any, map[string]float64, error) {
	resp, err := p.client.CreateMessage(ctx, claude.MessageRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		System:    extractionSystemPrompt,
		Messages: []claude.Message{{
			Role: "user",
			Blocks: []claude.Block{
				claude.ImageBlock(page.Data, page.MediaType),
				claude.TextBlock(extractionPrompt(schema)),
			},
		}},
	})
	if err != nil {
		return nil, nil, eris.Wrap(err, "llm: extract fields")
	}

	values, confidences, err := parseExtraction(resp.Text)
	if err != nil {
		return nil, nil, eris.Wrap(err, "llm: extract fields")
	}

	zap.L().Debug("llm: extraction call complete",
		zap.String("model", p.model),
		zap.Int("fields", len(values)),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
	)
	return values, confidences, nil
}

// Classify identifies the document type from a page image.
func (p *Provider) Classify(ctx context.Context, page extract.PageImage) (*model.Classification, error) {
	resp, err := p.client.CreateMessage(ctx, claude.MessageRequest{
		Model:     p.model,
		MaxTokens: 1024,
		System:    classificationSystemPrompt,
		Messages: []claude.Message{{
			Role: "user",
			Blocks: []claude.Block{
				claude.ImageBlock(page.Data, page.MediaType),
				claude.TextBlock(classificationPrompt()),
			},
		}},
	})
	if err != nil {
		return nil, eris.Wrap(err, "llm: classify")
	}

	c, err := parseClassification(resp.Text)
	if err != nil {
		return nil, eris.Wrap(err, "llm: classify")
	}
	return c, nil
}

// Evaluate critiques a finished extraction against the source page. The
// evaluation is advisory; callers report it without mutating results.
func (p *Provider) Evaluate(ctx context.Context, page extract.PageImage, schema model.Schema, data map[string]any, report *model.ExtractionReport) (*model.Evaluation, error) {
	prompt, err := evaluationPrompt(schema, data, report)
	if err != nil {
		return nil, eris.Wrap(err, "llm: evaluate")
	}

	resp, err := p.client.CreateMessage(ctx, claude.MessageRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		System:    evaluationSystemPrompt,
		Messages: []claude.Message{{
			Role: "user",
			Blocks: []claude.Block{
				claude.ImageBlock(page.Data, page.MediaType),
				claude.TextBlock(prompt),
			},
		}},
	})
	if err != nil {
		return nil, eris.Wrap(err, "llm: evaluate")
	}

	ev, err := parseEvaluation(resp.Text)
	if err != nil {
		return nil, eris.Wrap(err, "llm: evaluate")
	}
	return ev, nil
}
