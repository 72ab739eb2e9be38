package extract

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/lenderdesk/docsift/internal/model"
)

// scriptedExtractor returns canned responses in call order and records every
// schema it was asked to fill.
type scriptedExtractor struct {
	responses []scriptedResponse
	calls     int
	schemas   []model.Schema
}

type scriptedResponse struct {
	values      map[string]any
	confidences map[string]float64
	err         error
}

func (s *scriptedExtractor) ExtractFields(_ context.Context, _ PageImage, schema model.Schema) (map[string]any, map[string]float64, error) {
	s.schemas = append(s.schemas, schema)
	if s.calls >= len(s.responses) {
		return nil, nil, eris.New("scripted extractor exhausted")
	}
	r := s.responses[s.calls]
	s.calls++
	return r.values, r.confidences, r.err
}

// pageKeyedExtractor answers by page identity so concurrent initial-pass
// calls stay deterministic regardless of scheduling order.
type pageKeyedExtractor struct {
	byPage map[string]scriptedResponse
}

func (p *pageKeyedExtractor) ExtractFields(_ context.Context, page PageImage, _ model.Schema) (map[string]any, map[string]float64, error) {
	r, ok := p.byPage[string(page.Data)]
	if !ok {
		return nil, nil, eris.New("unknown page")
	}
	return r.values, r.confidences, r.err
}

type stubClassifier struct {
	classification *model.Classification
	err            error
}

func (s *stubClassifier) Classify(context.Context, PageImage) (*model.Classification, error) {
	return s.classification, s.err
}
