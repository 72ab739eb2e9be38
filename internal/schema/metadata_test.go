package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lenderdesk/docsift/internal/model"
)

func TestInferType(t *testing.T) {
	cases := map[string]model.FieldType{
		"issue_date":         model.TypeDate,
		"pay_date":           model.TypeDate,
		"gross_pay":          model.TypeCurrency,
		"final_balance":      model.TypeCurrency,
		"annual_salary":      model.TypeCurrency,
		"contact_email":      model.TypeEmail,
		"phone_number":       model.TypePhone,
		"iban":               model.TypeIBAN,
		"employee_address":   model.TypeAddress,
		"interest_rate":      model.TypePercentage,
		"account_number":     model.TypeNumber,
		"employer_name":      model.TypeText,
		"anomalies_or_notes": model.TypeText,
	}

	for name, want := range cases {
		assert.Equal(t, want, inferType(name), "field %s", name)
	}
}

func TestInferMetadata(t *testing.T) {
	s := model.Schema{
		model.DocTypeIDKey: "payslips",
		"pay_date":         "",
		"gross_pay":        "",
		"employer_name":    "",
	}

	meta := InferMetadata(s, []string{"gross_pay"})

	assert.Len(t, meta, 3)
	assert.NotContains(t, meta, model.DocTypeIDKey)

	gross := meta["gross_pay"]
	assert.Equal(t, model.TypeCurrency, gross.Type)
	assert.True(t, gross.Required)
	assert.Equal(t, model.DefaultMinConfidence, gross.MinConfidence)

	assert.False(t, meta["pay_date"].Required)
	assert.Equal(t, model.TypeDate, meta["pay_date"].Type)
}
