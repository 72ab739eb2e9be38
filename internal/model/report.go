package model

import (
	"encoding/json"
	"math"
)

// Quality score weight factors.
const (
	filledWeight     = 0.5
	confidenceWeight = 0.3
	validationWeight = 0.2
)

// ExtractionReport aggregates per-field assessment over a full schema.
// Derived metrics (CompletionRate, QualityScore) are computed on read — the
// report is rebuilt from scratch after every pass, never patched in place.
type ExtractionReport struct {
	TotalFields         int                    `json:"total_fields"`
	FilledFields        int                    `json:"filled_fields"`
	UnfilledFields      int                    `json:"unfilled_fields"`
	LowConfidenceFields int                    `json:"low_confidence_fields"`
	InvalidFields       int                    `json:"invalid_fields"`
	NeedsReviewFields   int                    `json:"needs_review_fields"`
	AverageConfidence   float64                `json:"average_confidence"`
	FlaggedFieldNames   []string               `json:"flagged_field_names"`
	FieldResults        map[string]FieldResult `json:"field_details"`
}

// CompletionRate returns the percentage of fields in filled status, 0-100.
func (r *ExtractionReport) CompletionRate() float64 {
	if r.TotalFields == 0 {
		return 0.0
	}
	return float64(r.FilledFields) / float64(r.TotalFields) * 100
}

// QualityScore blends completion, confidence, and validation-pass ratios into
// a single 0-100 score: 50% filled ratio, 30% average confidence, 20% share
// of fields passing validation.
func (r *ExtractionReport) QualityScore() float64 {
	if r.TotalFields == 0 {
		return 0.0
	}

	filledScore := float64(r.FilledFields) / float64(r.TotalFields) * 100
	confidenceScore := r.AverageConfidence * 100
	validationScore := float64(r.TotalFields-r.InvalidFields) / float64(r.TotalFields) * 100

	return filledScore*filledWeight + confidenceScore*confidenceWeight + validationScore*validationWeight
}

// MarshalJSON includes the derived metrics so serialized reports carry
// completion_rate and quality_score without caching them as fields.
func (r *ExtractionReport) MarshalJSON() ([]byte, error) {
	type alias ExtractionReport
	return json.Marshal(struct {
		*alias
		CompletionRate float64 `json:"completion_rate"`
		QualityScore   float64 `json:"quality_score"`
	}{
		alias:          (*alias)(r),
		CompletionRate: round2(r.CompletionRate()),
		QualityScore:   round2(r.QualityScore()),
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
