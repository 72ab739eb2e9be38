package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenderdesk/docsift/internal/extract"
	"github.com/lenderdesk/docsift/internal/model"
	"github.com/lenderdesk/docsift/pkg/claude"
)

// fakeClient captures the request and returns a canned response text.
type fakeClient struct {
	lastReq  claude.MessageRequest
	response string
	err      error
}

func (f *fakeClient) CreateMessage(_ context.Context, req claude.MessageRequest) (*claude.MessageResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &claude.MessageResponse{Text: f.response}, nil
}

func TestNewProvider_RequiresClient(t *testing.T) {
	_, err := NewProvider(nil)
	assert.Error(t, err)
}

func TestProvider_ExtractFields(t *testing.T) {
	client := &fakeClient{response: `{
		"fields": {"gross_pay": "€3,200.00"},
		"confidence_scores": {"gross_pay": 0.88}
	}`}

	p, err := NewProvider(client, WithModel("claude-haiku-4-5-20251001"), WithMaxTokens(2048))
	require.NoError(t, err)

	page := extract.PageImage{Data: []byte("img"), MediaType: "image/png"}
	schema := model.Schema{"gross_pay": ""}

	values, confidences, err := p.ExtractFields(context.Background(), page, schema)
	require.NoError(t, err)

	assert.Equal(t, "€3,200.00", values["gross_pay"])
	assert.Equal(t, 0.88, confidences["gross_pay"])

	// Request carries the page image plus the schema-derived instructions.
	assert.Equal(t, "claude-haiku-4-5-20251001", client.lastReq.Model)
	assert.Equal(t, int64(2048), client.lastReq.MaxTokens)
	require.Len(t, client.lastReq.Messages, 1)
	blocks := client.lastReq.Messages[0].Blocks
	require.Len(t, blocks, 2)
	assert.Equal(t, "image", blocks[0].Type)
	assert.Contains(t, blocks[1].Text, "gross_pay")
}

func TestProvider_ExtractFields_BadResponse(t *testing.T) {
	client := &fakeClient{response: "I could not read this page, sorry."}

	p, err := NewProvider(client)
	require.NoError(t, err)

	_, _, err = p.ExtractFields(context.Background(), extract.PageImage{}, model.Schema{"a": ""})
	assert.Error(t, err)
}

func TestProvider_Classify(t *testing.T) {
	client := &fakeClient{response: `{"doc_type_id": "photo_id", "doc_title": "Passport", "confidence": 0.97, "rationale": "harp emblem and MRZ"}`}

	p, err := NewProvider(client)
	require.NoError(t, err)

	c, err := p.Classify(context.Background(), extract.PageImage{Data: []byte("img"), MediaType: "image/jpeg"})
	require.NoError(t, err)

	assert.Equal(t, "photo_id", c.DocTypeID)
	assert.Contains(t, client.lastReq.Messages[0].Blocks[1].Text, "photo_id")
}

func TestProvider_Evaluate(t *testing.T) {
	client := &fakeClient{response: `{"overall_quality": "fair", "critical_issues": [], "suggestions": ["re-scan page"], "corrected_fields": {}, "confidence_adjustments": {}, "should_retry": false}`}

	p, err := NewProvider(client)
	require.NoError(t, err)

	report := &model.ExtractionReport{TotalFields: 1, FilledFields: 1}
	ev, err := p.Evaluate(context.Background(), extract.PageImage{}, model.Schema{"a": ""}, map[string]any{"a": "v"}, report)
	require.NoError(t, err)

	assert.Equal(t, "fair", ev.OverallQuality)
	assert.False(t, ev.ShouldRetry)
}

func TestExtractionPrompt_ListFieldsUseListTemplate(t *testing.T) {
	s := model.Schema{"transactions": []any{}, "iban": ""}

	prompt := extractionPrompt(s)

	assert.Contains(t, prompt, `"transactions": []`)
	assert.Contains(t, prompt, `"iban": ""`)
	assert.Contains(t, prompt, "confidence_scores")
}
