package model

import "time"

// Classification is the outcome of identifying a document's type from its
// first page.
type Classification struct {
	DocTypeID  string  `json:"doc_type_id"`
	DocTitle   string  `json:"doc_title"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

// DocumentResult is the final output of one extraction run: merged values,
// merged confidences, the assessment report, and run identity.
type DocumentResult struct {
	ExtractedData    map[string]any     `json:"extracted_data"`
	ConfidenceScores map[string]float64 `json:"confidence_scores"`
	Report           *ExtractionReport  `json:"assessment_report"`
	DocTypeID        string             `json:"doc_type_id"`
	TotalPages       int                `json:"total_pages"`
	Attempts         int                `json:"attempts"`
	Timestamp        time.Time          `json:"timestamp"`
}

// Evaluation is the report-only output of the second-opinion evaluator pass.
// Corrections are surfaced for review; they are never applied automatically.
type Evaluation struct {
	OverallQuality        string             `json:"overall_quality"`
	CriticalIssues        []string           `json:"critical_issues"`
	Suggestions           []string           `json:"suggestions"`
	CorrectedFields       map[string]any     `json:"corrected_fields"`
	ConfidenceAdjustments map[string]float64 `json:"confidence_adjustments"`
	ShouldRetry           bool               `json:"should_retry"`
}

// RunStatus tracks a stored extraction run through its lifecycle.
type RunStatus string

const (
	RunStatusQueued     RunStatus = "queued"
	RunStatusExtracting RunStatus = "extracting"
	RunStatusComplete   RunStatus = "complete"
	RunStatusFailed     RunStatus = "failed"
)

// Run is a persisted extraction run.
type Run struct {
	ID        string          `json:"id"`
	Source    string          `json:"source"`
	DocTypeID string          `json:"doc_type_id"`
	Status    RunStatus       `json:"status"`
	Result    *DocumentResult `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
