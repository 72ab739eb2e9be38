package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/lenderdesk/docsift/internal/model"
	"github.com/lenderdesk/docsift/internal/schema"
)

const extractionSystemPrompt = `You are a precise document data extraction engine for mortgage underwriting.
You read scanned document pages and extract structured field values exactly as they appear.
You never invent values. You respond with JSON only, no prose and no markdown fences.`

const classificationSystemPrompt = `You are a mortgage document classifier.
You look at the first page of a scanned document and identify what kind of document it is.
You respond with JSON only, no prose and no markdown fences.`

const evaluationSystemPrompt = `You are a quality reviewer for automated mortgage document extraction.
You compare extracted field values against the source page and point out likely errors.
You respond with JSON only, no prose and no markdown fences.`

// extractionPrompt renders the per-page extraction instructions with a JSON
// template derived from the schema, asking for values and per-field
// confidence in one response.
func extractionPrompt(s model.Schema) string {
	names := s.FieldNames()

	var fields strings.Builder
	var confs strings.Builder
	for i, name := range names {
		sep := ","
		if i == len(names)-1 {
			sep = ""
		}
		if _, isList := s[name].([]any); isList {
			fmt.Fprintf(&fields, "    %q: []%s\n", name, sep)
		} else {
			fmt.Fprintf(&fields, "    %q: \"\"%s\n", name, sep)
		}
		fmt.Fprintf(&confs, "    %q: 0.0%s\n", name, sep)
	}

	return fmt.Sprintf(`Extract the following fields from this document page.

Rules:
- Copy values exactly as printed. Do not reformat dates or amounts.
- If a field is not present on this page, use "" (or [] for list fields).
- Score each field's confidence from 0.0 to 1.0 based on legibility and certainty.
- A field you could not find gets confidence 0.0.

Respond with exactly this JSON structure:
{
  "fields": {
%s  },
  "confidence_scores": {
%s  }
}`, fields.String(), confs.String())
}

// classificationPrompt lists the known document types for the model to pick
// from, with "generic" as the escape hatch.
func classificationPrompt() string {
	var types strings.Builder
	for _, id := range schema.DocTypeIDs() {
		fmt.Fprintf(&types, "- %s: %s\n", id, schema.DocTypes[id])
	}

	return fmt.Sprintf(`Identify this mortgage document. Choose the single best matching doc_type_id from:

%s
If none fit, use "generic".

Respond with exactly this JSON structure:
{
  "doc_type_id": "",
  "doc_title": "",
  "confidence": 0.0,
  "rationale": ""
}`, types.String())
}

// evaluationPrompt embeds the extracted data and assessment summary for the
// reviewer call.
func evaluationPrompt(s model.Schema, data map[string]any, report *model.ExtractionReport) (string, error) {
	dataJSON, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "llm: marshal extracted data")
	}
	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "llm: marshal report")
	}

	return fmt.Sprintf(`Review this extraction from the attached document page.

Extracted data:
%s

Assessment:
%s

Check each extracted value against the page. Flag values that look misread,
truncated, or placed in the wrong field. Suggest corrections only when you can
read the correct value from the page.

Respond with exactly this JSON structure:
{
  "overall_quality": "",
  "critical_issues": [],
  "suggestions": [],
  "corrected_fields": {},
  "confidence_adjustments": {},
  "should_retry": false
}`, dataJSON, reportJSON), nil
}
