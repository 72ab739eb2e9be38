package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityScore_WeightedBlend(t *testing.T) {
	r := &ExtractionReport{
		TotalFields:       10,
		FilledFields:      8,
		AverageConfidence: 0.9,
		InvalidFields:     1,
	}

	// 80*0.5 + 90*0.3 + 90*0.2
	assert.InDelta(t, 85.0, r.QualityScore(), 1e-9)
	assert.InDelta(t, 80.0, r.CompletionRate(), 1e-9)
}

func TestQualityScore_RecomputedOnRead(t *testing.T) {
	r := &ExtractionReport{TotalFields: 4, FilledFields: 1}
	assert.InDelta(t, 25.0, r.CompletionRate(), 1e-9)

	r.FilledFields = 3
	assert.InDelta(t, 75.0, r.CompletionRate(), 1e-9)
}

func TestQualityScore_ZeroFields(t *testing.T) {
	r := &ExtractionReport{}
	assert.Equal(t, 0.0, r.QualityScore())
	assert.Equal(t, 0.0, r.CompletionRate())
}

func TestExtractionReport_MarshalIncludesDerived(t *testing.T) {
	r := &ExtractionReport{
		TotalFields:       2,
		FilledFields:      2,
		AverageConfidence: 0.925,
		FlaggedFieldNames: []string{},
		FieldResults: map[string]FieldResult{
			"name": {Name: "name", Value: "Alice", Confidence: 0.9, Status: StatusFilled},
		},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 100.0, decoded["completion_rate"])
	assert.InDelta(t, 97.75, decoded["quality_score"], 1e-9)
	assert.Contains(t, decoded, "field_details")
}

func TestFieldStatus_Flagged(t *testing.T) {
	assert.False(t, StatusFilled.Flagged())
	for _, s := range []FieldStatus{StatusUnfilled, StatusLowConfidence, StatusInvalid, StatusNeedsReview} {
		assert.True(t, s.Flagged(), "status %s should be flagged", s)
	}
}
