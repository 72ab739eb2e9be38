package model

// FieldStatus classifies the outcome of extracting a single field.
type FieldStatus string

const (
	// StatusFilled means the field has valid data with acceptable confidence.
	StatusFilled FieldStatus = "filled"
	// StatusUnfilled means the field is empty or null.
	StatusUnfilled FieldStatus = "unfilled"
	// StatusLowConfidence means the field has data but confidence is below threshold.
	StatusLowConfidence FieldStatus = "low_confidence"
	// StatusInvalid means the field has data that fails type validation.
	StatusInvalid FieldStatus = "invalid"
	// StatusNeedsReview means the field was flagged for manual review.
	StatusNeedsReview FieldStatus = "needs_review"
)

// Flagged reports whether this status marks the field as a retry candidate.
// Filled is the only terminal status.
func (s FieldStatus) Flagged() bool {
	return s != StatusFilled
}

// FieldType selects which validator runs against a field's value.
type FieldType string

const (
	TypeText       FieldType = "text"
	TypeNumber     FieldType = "number"
	TypeCurrency   FieldType = "currency"
	TypeDate       FieldType = "date"
	TypeEmail      FieldType = "email"
	TypePhone      FieldType = "phone"
	TypeIBAN       FieldType = "iban"
	TypeAddress    FieldType = "address"
	TypePercentage FieldType = "percentage"
	TypeBoolean    FieldType = "boolean"
)

// DefaultMinConfidence is the threshold used when a field's metadata does not
// declare its own.
const DefaultMinConfidence = 0.6

// FieldMetadata declares what a schema field looks like and how strictly it is
// assessed. Created once per document-type schema; read-only during a run.
type FieldMetadata struct {
	Name            string    `json:"name"`
	Type            FieldType `json:"field_type"`
	Required        bool      `json:"required"`
	MinConfidence   float64   `json:"min_confidence"`
	Description     string    `json:"description,omitempty"`
	ValidationRules []string  `json:"validation_rules,omitempty"`
}

// FieldResult is the outcome of assessing one field. A later pass produces a
// new FieldResult rather than mutating an earlier one.
type FieldResult struct {
	Name             string      `json:"name"`
	Value            any         `json:"value"`
	Confidence       float64     `json:"confidence"`
	Status           FieldStatus `json:"status"`
	ValidationErrors []string    `json:"validation_errors,omitempty"`
	Attempts         int         `json:"extraction_attempts"`
	SourcePage       *int        `json:"source_page,omitempty"`
	Notes            string      `json:"notes,omitempty"`
}
