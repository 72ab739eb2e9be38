package extract

import (
	"github.com/lenderdesk/docsift/internal/model"
	"github.com/lenderdesk/docsift/internal/validate"
)

// pageExtraction is one page's normalized provider output.
type pageExtraction struct {
	values      map[string]any
	confidences map[string]float64
}

// mergeValues combines per-page extractions: for each schema field the first
// non-empty value in page order wins, and later pages cannot override it.
// Page order is authoritative regardless of confidence.
func mergeValues(pages []pageExtraction, schema model.Schema) map[string]any {
	merged := make(map[string]any)
	for _, name := range schema.FieldNames() {
		merged[name] = schema.EmptyValue(name)
	}

	for _, page := range pages {
		for name, value := range page.values {
			current, ok := merged[name]
			if !ok {
				continue
			}
			if validate.IsEmpty(current) && !validate.IsEmpty(value) {
				merged[name] = value
			}
		}
	}
	return merged
}

// mergeConfidences takes the maximum confidence observed per field across all
// pages. Confidence merging is independent of which page won the value, a
// deliberate carry-over from the original behavior: a field can end up pairing
// one page's value with another page's higher confidence.
func mergeConfidences(pages []pageExtraction) map[string]float64 {
	merged := make(map[string]float64)
	for _, page := range pages {
		for name, conf := range page.confidences {
			if existing, ok := merged[name]; !ok || conf > existing {
				merged[name] = conf
			}
		}
	}
	return merged
}

// sourcePages records, per field, the index of the page whose value won the
// merge. Fields that stayed empty have no source page.
func sourcePages(pages []pageExtraction, schema model.Schema) map[string]int {
	sources := make(map[string]int)
	for _, name := range schema.FieldNames() {
		for i, page := range pages {
			if !validate.IsEmpty(page.values[name]) {
				sources[name] = i
				break
			}
		}
	}
	return sources
}
