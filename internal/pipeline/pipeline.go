// Package pipeline orchestrates a full extraction run: load pages, classify,
// extract with assessment-driven retries, optionally evaluate, and persist.
package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/lenderdesk/docsift/internal/assess"
	"github.com/lenderdesk/docsift/internal/config"
	"github.com/lenderdesk/docsift/internal/docload"
	"github.com/lenderdesk/docsift/internal/extract"
	"github.com/lenderdesk/docsift/internal/model"
	"github.com/lenderdesk/docsift/internal/schema"
	"github.com/lenderdesk/docsift/internal/store"
)

// Pipeline wires the extraction agent, schema registry, and run store into
// one document processing flow.
type Pipeline struct {
	cfg        *config.Config
	store      store.Store
	classifier extract.Classifier
	evaluator  extract.Evaluator
	registry   *schema.Registry
	agent      *extract.Agent
}

// New creates a Pipeline with all dependencies. The evaluator may be nil; the
// evaluation phase is then skipped regardless of configuration.
func New(
	cfg *config.Config,
	st store.Store,
	extractor extract.Extractor,
	classifier extract.Classifier,
	evaluator extract.Evaluator,
	registry *schema.Registry,
) (*Pipeline, error) {
	agent, err := extract.NewAgent(extractor,
		extract.WithAssessor(assess.New(cfg.Extraction.MinConfidence)),
		extract.WithMaxAttempts(cfg.Extraction.MaxRetryAttempts),
		extract.WithPageConcurrency(cfg.Extraction.PageConcurrency),
	)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: build agent")
	}

	return &Pipeline{
		cfg:        cfg,
		store:      st,
		classifier: classifier,
		evaluator:  evaluator,
		registry:   registry,
		agent:      agent,
	}, nil
}

// Run processes one document source end to end and persists the run. When
// docTypeID is empty the document type is classified from the first page.
func (p *Pipeline) Run(ctx context.Context, source, docTypeID string) (*model.Run, error) {
	log := zap.L().With(zap.String("source", source))
	log.Info("pipeline: starting extraction run")

	run, err := p.store.CreateRun(ctx, source, docTypeID)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: create run")
	}

	result, err := p.process(ctx, log, source, docTypeID)
	if err != nil {
		if failErr := p.store.FailRun(ctx, run.ID, err.Error()); failErr != nil {
			log.Warn("pipeline: failed to record run failure", zap.Error(failErr))
		}
		return nil, err
	}

	if err := p.store.UpdateRunResult(ctx, run.ID, result); err != nil {
		return nil, eris.Wrap(err, "pipeline: persist result")
	}

	run.Status = model.RunStatusComplete
	run.DocTypeID = result.DocTypeID
	run.Result = result
	run.UpdatedAt = time.Now().UTC()
	return run, nil
}

func (p *Pipeline) process(ctx context.Context, log *zap.Logger, source, docTypeID string) (*model.DocumentResult, error) {
	start := time.Now()
	pages, err := docload.LoadPages(source)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: load pages")
	}
	log.Info("pipeline: pages loaded",
		zap.Int("pages", len(pages)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if docTypeID == "" {
		start = time.Now()
		classification, err := extract.ClassifyDocument(ctx, p.classifier, pages)
		if err != nil {
			return nil, eris.Wrap(err, "pipeline: classify")
		}
		docTypeID = classification.DocTypeID
		log.Info("pipeline: document classified",
			zap.String("doc_type", classification.DocTypeID),
			zap.Float64("confidence", classification.Confidence),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	}

	docSchema := p.registry.Load(docTypeID)
	metadata := schema.InferMetadata(docSchema, nil)

	start = time.Now()
	result, err := p.agent.ExtractDocument(ctx, pages, docSchema, metadata, docTypeID)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: extract document")
	}
	log.Info("pipeline: extraction complete",
		zap.Int("attempts", result.Attempts),
		zap.Float64("quality_score", result.Report.QualityScore()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	if p.cfg.Extraction.Evaluate && p.evaluator != nil {
		p.evaluate(ctx, log, pages, docSchema, result)
	}

	return result, nil
}

// evaluate runs the second-opinion review and logs its findings. The review
// never mutates the extraction result.
func (p *Pipeline) evaluate(ctx context.Context, log *zap.Logger, pages []extract.PageImage, docSchema model.Schema, result *model.DocumentResult) {
	start := time.Now()
	ev, err := p.evaluator.Evaluate(ctx, pages[0], docSchema, result.ExtractedData, result.Report)
	if err != nil {
		log.Warn("pipeline: evaluation failed", zap.Error(err))
		return
	}
	log.Info("pipeline: evaluation complete",
		zap.String("overall_quality", ev.OverallQuality),
		zap.Int("critical_issues", len(ev.CriticalIssues)),
		zap.Int("suggested_corrections", len(ev.CorrectedFields)),
		zap.Bool("should_retry", ev.ShouldRetry),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	for _, issue := range ev.CriticalIssues {
		log.Warn("pipeline: evaluator flagged issue", zap.String("issue", issue))
	}
}
