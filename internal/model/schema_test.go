package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchema_FieldNamesExcludesReserved(t *testing.T) {
	s := Schema{
		"doc_type_id":  "payslips",
		"page_count":   2,
		"employer":     "",
		"net_pay":      "",
		"transactions": []any{},
	}

	assert.Equal(t, []string{"employer", "net_pay", "transactions"}, s.FieldNames())
}

func TestSchema_EmptyValue(t *testing.T) {
	s := Schema{"employer": "", "transactions": []any{}}

	assert.Equal(t, "", s.EmptyValue("employer"))
	assert.Equal(t, []any{}, s.EmptyValue("transactions"))
	assert.Equal(t, "", s.EmptyValue("unknown"))
}

func TestSchema_Subset(t *testing.T) {
	s := Schema{"a": "", "b": []any{}, "c": ""}

	sub := s.Subset([]string{"b", "c", "missing"})

	assert.Len(t, sub, 2)
	assert.Equal(t, []any{}, sub["b"])
	assert.Equal(t, "", sub["c"])
}

func TestReservedKey(t *testing.T) {
	assert.True(t, ReservedKey(DocTypeIDKey))
	assert.True(t, ReservedKey(PageCountKey))
	assert.False(t, ReservedKey("employer"))
}
