package extract

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lenderdesk/docsift/internal/assess"
	"github.com/lenderdesk/docsift/internal/model"
	"github.com/lenderdesk/docsift/internal/validate"
)

// defaultMaxAttempts bounds the extraction passes per document, counting the
// initial pass as attempt 1.
const defaultMaxAttempts = 3

// defaultPageConcurrency limits concurrent provider calls during the initial
// pass. The merge is ordered by page index, so concurrency only affects
// latency, never the result.
const defaultPageConcurrency = 4

// Agent orchestrates multi-page, multi-pass extraction: extract every page,
// merge, assess, then re-extract flagged fields until they clear or the
// attempt budget runs out.
type Agent struct {
	extractor       Extractor
	assessor        *assess.Assessor
	maxAttempts     int
	pageConcurrency int
}

// Option configures an Agent.
type Option func(*Agent)

// WithAssessor overrides the default assessor.
func WithAssessor(a *assess.Assessor) Option {
	return func(ag *Agent) {
		ag.assessor = a
	}
}

// WithMaxAttempts sets the total pass budget (initial pass included).
// Values below 1 keep the default.
func WithMaxAttempts(n int) Option {
	return func(ag *Agent) {
		if n >= 1 {
			ag.maxAttempts = n
		}
	}
}

// WithPageConcurrency sets the concurrent page limit for the initial pass.
func WithPageConcurrency(n int) Option {
	return func(ag *Agent) {
		if n >= 1 {
			ag.pageConcurrency = n
		}
	}
}

// NewAgent creates an Agent. A nil extractor is a configuration error and the
// single condition that aborts before any provider work.
func NewAgent(extractor Extractor, opts ...Option) (*Agent, error) {
	if extractor == nil {
		return nil, eris.New("extract: agent requires an extractor")
	}
	ag := &Agent{
		extractor:       extractor,
		assessor:        assess.New(model.DefaultMinConfidence),
		maxAttempts:     defaultMaxAttempts,
		pageConcurrency: defaultPageConcurrency,
	}
	for _, opt := range opts {
		opt(ag)
	}
	return ag, nil
}

// ExtractDocument runs the full agentic pipeline for one document. Provider
// failures for individual pages or retry passes are absorbed as empty,
// zero-confidence results; the run always completes with a report, degraded
// or not.
func (a *Agent) ExtractDocument(ctx context.Context, pages []PageImage, schema model.Schema, metadata map[string]model.FieldMetadata, docTypeID string) (*model.DocumentResult, error) {
	log := zap.L().With(zap.String("doc_type", docTypeID), zap.Int("pages", len(pages)))
	log.Info("extract: starting document extraction")

	extractions := a.initialPass(ctx, pages, schema)

	merged := mergeValues(extractions, schema)
	confidences := mergeConfidences(extractions)
	report := a.assessor.AssessExtraction(merged, confidences, metadata)

	log.Info("extract: initial pass assessed",
		zap.Float64("completion_rate", report.CompletionRate()),
		zap.Float64("quality_score", report.QualityScore()),
		zap.Int("flagged", len(report.FlaggedFieldNames)),
	)

	attempts := 1
	fieldAttempts := make(map[string]int)
	for attempts < a.maxAttempts && len(report.FlaggedFieldNames) > 0 && len(pages) > 0 {
		attempts++
		for _, name := range report.FlaggedFieldNames {
			fieldAttempts[name] = attempts
		}
		a.retryFlagged(ctx, pages[0], schema, report.FlaggedFieldNames, merged, confidences, attempts)
		report = a.assessor.AssessExtraction(merged, confidences, metadata)

		log.Info("extract: retry pass assessed",
			zap.Int("attempt", attempts),
			zap.Float64("completion_rate", report.CompletionRate()),
			zap.Int("flagged", len(report.FlaggedFieldNames)),
		)
	}

	annotateSourcePages(report, extractions, schema)
	for name, n := range fieldAttempts {
		if fr, ok := report.FieldResults[name]; ok {
			fr.Attempts = n
			report.FieldResults[name] = fr
		}
	}

	return &model.DocumentResult{
		ExtractedData:    merged,
		ConfidenceScores: confidences,
		Report:           report,
		DocTypeID:        docTypeID,
		TotalPages:       len(pages),
		Attempts:         attempts,
		Timestamp:        time.Now().UTC(),
	}, nil
}

// initialPass extracts the full schema from every page. Pages run
// concurrently; results land in a slice indexed by page so the merge stays
// deterministic regardless of completion order. A failed page becomes an
// all-empty result.
func (a *Agent) initialPass(ctx context.Context, pages []PageImage, schema model.Schema) []pageExtraction {
	extractions := make([]pageExtraction, len(pages))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.pageConcurrency)

	for i, page := range pages {
		g.Go(func() error {
			values, confidences, err := a.extractor.ExtractFields(gCtx, page, schema)
			if err != nil {
				zap.L().Warn("extract: page extraction failed, treating as empty",
					zap.Int("page", i),
					zap.Error(err),
				)
				values, confidences = emptyResult(schema)
			} else {
				values, confidences = normalize(schema, values, confidences)
			}
			extractions[i] = pageExtraction{values: values, confidences: confidences}
			return nil
		})
	}

	_ = g.Wait()
	return extractions
}

// retryFlagged issues one focused provider call on the first page for the
// flagged subset and folds in improvements. A retry value is accepted only
// when it is non-empty and its confidence strictly beats the stored one.
func (a *Agent) retryFlagged(ctx context.Context, firstPage PageImage, schema model.Schema, flagged []string, merged map[string]any, confidences map[string]float64, attempt int) {
	subset := schema.Subset(flagged)
	if len(subset) == 0 {
		return
	}

	values, retryConf, err := a.extractor.ExtractFields(ctx, firstPage, subset)
	if err != nil {
		zap.L().Warn("extract: retry pass failed, keeping current values",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		return
	}
	values, retryConf = normalize(subset, values, retryConf)

	for _, name := range flagged {
		newValue, ok := values[name]
		if !ok {
			continue
		}
		newConf := retryConf[name]
		if !validate.IsEmpty(newValue) && newConf > confidences[name] {
			merged[name] = newValue
			confidences[name] = newConf
		}
	}
}

// annotateSourcePages stamps each filled field's winning page index onto its
// FieldResult. Fields filled only by a retry pass have no initial-pass source
// and stay unannotated.
func annotateSourcePages(report *model.ExtractionReport, extractions []pageExtraction, schema model.Schema) {
	sources := sourcePages(extractions, schema)
	for name, page := range sources {
		fr, ok := report.FieldResults[name]
		if !ok {
			continue
		}
		p := page
		fr.SourcePage = &p
		report.FieldResults[name] = fr
	}
}
