// Package validate holds the stateless type-conformance checks for extracted
// field values. Emptiness is always valid here: whether an empty field is
// acceptable is a completeness question answered by the assessor, not a
// validity question.
package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lenderdesk/docsift/internal/model"
)

var (
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),                 // YYYY-MM-DD
		regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),                 // DD/MM/YYYY
		regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`),                 // DD-MM-YYYY
		regexp.MustCompile(`^[A-Za-z]{3,9}\s+\d{1,2},?\s+\d{4}$`), // Jan 1, 2024
	}
	currencyRe  = regexp.MustCompile(`^[€$£]?\s*\d{1,3}(,?\d{3})*(\.\d{2})?$`)
	emailRe     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneSepRe  = regexp.MustCompile(`[\s\-().]`)
	phoneRe     = regexp.MustCompile(`^\+?\d{7,15}$`)
	ibanRe      = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{1,30}$`)
	numberStrip = strings.NewReplacer(",", "", "€", "", "$", "", "£", "")
)

// IsEmpty reports whether a value counts as empty: nil, a blank or
// whitespace-only string, or a zero-length list.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	default:
		return false
	}
}

// ByType validates a value against the declared field type. Empty values are
// always valid. Returns ok and, when invalid, a human-readable reason.
func ByType(value any, ft model.FieldType) (bool, string) {
	if IsEmpty(value) {
		return true, ""
	}

	switch ft {
	case model.TypeDate:
		return date(value)
	case model.TypeNumber:
		return number(value)
	case model.TypeCurrency:
		return currency(value)
	case model.TypeEmail:
		return email(value)
	case model.TypePhone:
		return phone(value)
	case model.TypeIBAN:
		return iban(value)
	default:
		// text, address, boolean, percentage: no structural check yet.
		return true, ""
	}
}

func asString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func date(value any) (bool, string) {
	s := strings.TrimSpace(asString(value))
	for _, re := range datePatterns {
		if re.MatchString(s) {
			return true, ""
		}
	}
	return false, fmt.Sprintf("invalid date format: %v", value)
}

func number(value any) (bool, string) {
	switch value.(type) {
	case float64, float32, int, int64:
		return true, ""
	}
	clean := strings.TrimSpace(numberStrip.Replace(asString(value)))
	if _, err := strconv.ParseFloat(clean, 64); err != nil {
		return false, fmt.Sprintf("invalid number: %v", value)
	}
	return true, ""
}

func currency(value any) (bool, string) {
	if currencyRe.MatchString(strings.TrimSpace(asString(value))) {
		return true, ""
	}
	return false, fmt.Sprintf("invalid currency format: %v", value)
}

func email(value any) (bool, string) {
	if emailRe.MatchString(strings.TrimSpace(asString(value))) {
		return true, ""
	}
	return false, fmt.Sprintf("invalid email format: %v", value)
}

func phone(value any) (bool, string) {
	clean := phoneSepRe.ReplaceAllString(asString(value), "")
	if phoneRe.MatchString(clean) {
		return true, ""
	}
	return false, fmt.Sprintf("invalid phone format: %v", value)
}

func iban(value any) (bool, string) {
	clean := strings.ToUpper(strings.ReplaceAll(asString(value), " ", ""))
	if ibanRe.MatchString(clean) {
		return true, ""
	}
	return false, fmt.Sprintf("invalid IBAN format: %v", value)
}
