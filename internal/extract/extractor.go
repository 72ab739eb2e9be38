// Package extract drives agentic document extraction: per-page provider
// calls, cross-page merging, assessment, and focused retries on flagged
// fields.
package extract

import (
	"context"

	"github.com/lenderdesk/docsift/internal/model"
)

// PageImage is one rasterized document page. Rasterization (PDF to image)
// happens upstream; the engine only sees encoded image bytes.
type PageImage struct {
	Data      []byte
	MediaType string // "image/png", "image/jpeg", "image/webp", "image/gif"
}

// Extractor is the provider capability: fill a schema from one page image,
// returning a value and a confidence in [0,1] per schema field. Backends
// (Claude vision, other OCR models) plug in behind this seam.
type Extractor interface {
	ExtractFields(ctx context.Context, page PageImage, schema model.Schema) (map[string]any, map[string]float64, error)
}

// Classifier identifies a document's type from its first page.
type Classifier interface {
	Classify(ctx context.Context, page PageImage) (*model.Classification, error)
}

// Evaluator produces a second-opinion review of a finished extraction.
type Evaluator interface {
	Evaluate(ctx context.Context, page PageImage, schema model.Schema, data map[string]any, report *model.ExtractionReport) (*model.Evaluation, error)
}

// normalize back-fills missing schema keys with the empty default and clamps
// confidences into [0,1], so a sloppy provider response never leaks partial
// maps into the merge step.
func normalize(schema model.Schema, values map[string]any, confidences map[string]float64) (map[string]any, map[string]float64) {
	outValues := make(map[string]any, len(schema))
	outConf := make(map[string]float64, len(schema))

	for _, name := range schema.FieldNames() {
		v, ok := values[name]
		if !ok || v == nil {
			v = schema.EmptyValue(name)
		}
		outValues[name] = v
		outConf[name] = clamp01(confidences[name])
	}
	return outValues, outConf
}

// emptyResult returns the all-empty, zero-confidence extraction for a schema.
// Used when a provider call fails.
func emptyResult(schema model.Schema) (map[string]any, map[string]float64) {
	return normalize(schema, nil, nil)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
