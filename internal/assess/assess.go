// Package assess classifies extracted fields into statuses and aggregates a
// whole extraction into an ExtractionReport.
package assess

import (
	"fmt"
	"sort"

	"github.com/lenderdesk/docsift/internal/model"
	"github.com/lenderdesk/docsift/internal/validate"
)

// Assessor assigns a status to each extracted field and builds reports.
// Status assignment is deterministic: it depends only on value emptiness,
// confidence versus threshold, and type validation.
type Assessor struct {
	minConfidence float64
}

// New creates an Assessor with the given default confidence threshold.
// A non-positive threshold falls back to model.DefaultMinConfidence.
func New(minConfidence float64) *Assessor {
	if minConfidence <= 0 {
		minConfidence = model.DefaultMinConfidence
	}
	return &Assessor{minConfidence: minConfidence}
}

// AssessField classifies a single field. Precedence: unfilled is checked
// first and is exclusive; invalid overrides low-confidence; filled is the
// fallback when no flag condition holds.
func (a *Assessor) AssessField(name string, value any, confidence float64, meta *model.FieldMetadata) model.FieldResult {
	result := model.FieldResult{
		Name:       name,
		Value:      value,
		Confidence: confidence,
		Attempts:   1,
	}

	if validate.IsEmpty(value) {
		result.Status = model.StatusUnfilled
		if meta != nil && meta.Required {
			result.Notes = "required field is unfilled"
		}
		return result
	}

	threshold := a.minConfidence
	if meta != nil && meta.MinConfidence > 0 {
		threshold = meta.MinConfidence
	}
	if confidence < threshold {
		result.Status = model.StatusLowConfidence
		result.Notes = fmt.Sprintf("confidence %.2f below threshold %.2f", confidence, threshold)
	}

	if meta != nil {
		ok, reason := validate.ByType(value, meta.Type)
		if !ok {
			result.Status = model.StatusInvalid
			result.ValidationErrors = append(result.ValidationErrors, reason)
			result.Notes = "validation failed: " + reason
		} else if result.Status != model.StatusLowConfidence {
			result.Status = model.StatusFilled
		}
	} else if result.Status != model.StatusLowConfidence {
		result.Status = model.StatusFilled
	}

	return result
}

// AssessExtraction assesses every non-reserved key of extracted data and
// builds a fresh report. Fields missing a confidence score default to 0.0.
// Flagged field names preserve encounter order.
func (a *Assessor) AssessExtraction(data map[string]any, confidences map[string]float64, metadata map[string]model.FieldMetadata) *model.ExtractionReport {
	report := &model.ExtractionReport{
		FlaggedFieldNames: []string{},
		FieldResults:      make(map[string]model.FieldResult, len(data)),
	}

	for _, name := range orderedKeys(data) {
		if model.ReservedKey(name) {
			continue
		}

		var meta *model.FieldMetadata
		if m, ok := metadata[name]; ok {
			meta = &m
		}

		fr := a.AssessField(name, data[name], confidences[name], meta)
		report.FieldResults[name] = fr
		report.TotalFields++

		switch fr.Status {
		case model.StatusFilled:
			report.FilledFields++
		case model.StatusUnfilled:
			report.UnfilledFields++
		case model.StatusLowConfidence:
			report.LowConfidenceFields++
		case model.StatusInvalid:
			report.InvalidFields++
		case model.StatusNeedsReview:
			report.NeedsReviewFields++
		}
		if fr.Status.Flagged() {
			report.FlaggedFieldNames = append(report.FlaggedFieldNames, name)
		}
	}

	if report.TotalFields > 0 {
		total := 0.0
		for _, fr := range report.FieldResults {
			total += fr.Confidence
		}
		report.AverageConfidence = total / float64(report.TotalFields)
	}

	return report
}

// orderedKeys returns map keys in sorted order. Go maps have no encounter
// order, so sorted names keep reports and flagged-field lists deterministic.
func orderedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
