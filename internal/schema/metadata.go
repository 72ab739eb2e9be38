package schema

import (
	"strings"

	"github.com/lenderdesk/docsift/internal/model"
)

// InferMetadata builds a metadata map for every non-reserved schema field,
// inferring the field type from name hints and marking fields in required as
// mandatory. Schemas can later carry explicit annotations; until then the
// hints cover the common mortgage-document vocabulary.
func InferMetadata(s model.Schema, required []string) map[string]model.FieldMetadata {
	requiredSet := make(map[string]bool, len(required))
	for _, name := range required {
		requiredSet[name] = true
	}

	meta := make(map[string]model.FieldMetadata, len(s))
	for name := range s {
		if model.ReservedKey(name) {
			continue
		}
		meta[name] = model.FieldMetadata{
			Name:          name,
			Type:          inferType(name),
			Required:      requiredSet[name],
			MinConfidence: model.DefaultMinConfidence,
		}
	}
	return meta
}

// inferType guesses a field's type from its name. Order matters: "issue_date"
// must resolve to date before the "number"-ish hints get a chance.
func inferType(name string) model.FieldType {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "date"):
		return model.TypeDate
	case containsAny(lower, "amount", "balance", "salary", "pay", "income"):
		return model.TypeCurrency
	case strings.Contains(lower, "email"):
		return model.TypeEmail
	case strings.Contains(lower, "phone"), strings.Contains(lower, "tel"):
		return model.TypePhone
	case strings.Contains(lower, "iban"):
		return model.TypeIBAN
	case strings.Contains(lower, "address"):
		return model.TypeAddress
	case containsAny(lower, "rate", "percent", "ratio"):
		return model.TypePercentage
	case containsAny(lower, "count", "number", "year", "age"):
		return model.TypeNumber
	default:
		return model.TypeText
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
