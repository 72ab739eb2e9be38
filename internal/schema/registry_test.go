package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenderdesk/docsift/internal/model"
)

func TestRegistry_LoadBuiltin(t *testing.T) {
	r := NewRegistry("")

	s := r.Load("payslips")

	assert.Equal(t, "payslips", s[model.DocTypeIDKey])
	assert.Contains(t, s, "gross_pay")
	assert.Contains(t, s, "iban")
}

func TestRegistry_LoadUnknownFallsBackToGeneric(t *testing.T) {
	r := NewRegistry("")

	s := r.Load("utility_bill_from_mars")

	assert.Equal(t, "utility_bill_from_mars", s[model.DocTypeIDKey])
	assert.Contains(t, s, "holder_name")
	assert.Contains(t, s, "issuing_institution")
}

func TestRegistry_LoadReturnsFreshCopy(t *testing.T) {
	r := NewRegistry("")

	first := r.Load("payslips")
	first["gross_pay"] = "mutated"

	second := r.Load("payslips")
	assert.Equal(t, "", second["gross_pay"])
}

func TestRegistry_OverrideJSON(t *testing.T) {
	dir := t.TempDir()
	override := `{"custom_field": "", "line_items": []}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "payslips.json"), []byte(override), 0o644))

	r := NewRegistry(dir)
	s := r.Load("payslips")

	assert.Equal(t, "payslips", s[model.DocTypeIDKey])
	assert.Contains(t, s, "custom_field")
	assert.NotContains(t, s, "gross_pay")
}

func TestRegistry_OverrideYAML(t *testing.T) {
	dir := t.TempDir()
	override := "statement_date: \"\"\nclosing_balance: \"\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "borrowings_statements.yaml"), []byte(override), 0o644))

	r := NewRegistry(dir)
	s := r.Load("borrowings_statements")

	assert.Contains(t, s, "statement_date")
	assert.Contains(t, s, "closing_balance")
}

func TestRegistry_BrokenOverrideFallsBackToBuiltin(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "payslips.json"), []byte("{not json"), 0o644))

	r := NewRegistry(dir)
	s := r.Load("payslips")

	assert.Contains(t, s, "gross_pay")
}

func TestDocTypeIDs_SortedAndComplete(t *testing.T) {
	ids := DocTypeIDs()

	assert.Len(t, ids, len(DocTypes))
	assert.True(t, sortedStrings(ids))
	assert.Contains(t, ids, "payslips")
	assert.Contains(t, ids, "valuation_report")
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestBuiltinSchemas_CarryDocTypeID(t *testing.T) {
	for id, s := range builtin {
		assert.Equal(t, id, s[model.DocTypeIDKey], "schema %s has mismatched doc type", id)
	}
}
