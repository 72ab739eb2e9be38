// Package schema holds the document-type catalog, built-in extraction
// schemas, file-based overrides, and field-metadata inference.
package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lenderdesk/docsift/internal/model"
)

// DocTypes is the catalog of supported mortgage document types.
var DocTypes = map[string]string{
	"app_form":                      "Mortgage Application Form",
	"current_acct_statements":       "Bank / Current Account Statement",
	"savings_investment_statements": "Savings / Investment Statements",
	"borrowings_statements":         "Loan / Credit / Mortgage Statements",
	"equity_input_proof":            "Evidence of Deposit / Equity & Source of Funds",
	"rent_evidence":                 "Lease / Rental Agreement or Landlord Letter",
	"photo_id":                      "Photo ID",
	"proof_of_address":              "Proof of Address",
	"ppsn_trn_verification":         "PPSN / TRN Proof",
	"valuation_report":              "Valuation Report",
	"salary_certificate":            "Employer Salary Certificate",
	"payslips":                      "Most Recent Payslips",
}

// DocTypeIDs returns the catalog keys in sorted order.
func DocTypeIDs() []string {
	ids := make([]string, 0, len(DocTypes))
	for id := range DocTypes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// generic is the fallback template for unrecognized document types.
var generic = model.Schema{
	model.DocTypeIDKey:    "unknown",
	"title":               "",
	"issuing_institution": "",
	"holder_name":         "",
	"reference_number":    "",
	"issue_date":          "",
	"effective_date":      "",
	"address_block":       "",
	"summary":             "",
	"notes":               "",
}

// builtin holds the shipped per-doc-type schemas.
var builtin = map[string]model.Schema{
	"current_acct_statements": {
		model.DocTypeIDKey:  "current_acct_statements",
		"issue_date":        "",
		"period_start_date": "",
		"period_end_date":   "",
		"initial_balance":   "",
		"final_balance":     "",
		"bank_name":         "",
		"bank_branch_code":  "",
		"bank_bic":          "",
		"account_name":      "",
		"account_number":    "",
		"account_type":      "",
		"address":           "",
		"transactions":      []any{},
	},
	"savings_investment_statements": {
		model.DocTypeIDKey:       "savings_investment_statements",
		"institution_name":       "",
		"institution_address":    "",
		"account_holder_name":    "",
		"account_holder_address": "",
		"account_number":         "",
		"iban":                   "",
		"account_type":           "",
		"currency":               "",
		"statement_start_date":   "",
		"statement_end_date":     "",
		"document_issue_date":    "",
		"opening_balance":        "",
		"closing_balance":        "",
		"total_deposits":         "",
		"total_withdrawals":      "",
		"interest_earned":        "",
		"document_summary":       "",
		"anomalies_or_notes":     "",
	},
	"borrowings_statements": {
		model.DocTypeIDKey:       "borrowings_statements",
		"lender_name":            "",
		"lender_address":         "",
		"borrower_name":          "",
		"borrower_address":       "",
		"account_or_loan_number": "",
		"product_type":           "",
		"currency":               "",
		"statement_start_date":   "",
		"statement_end_date":     "",
		"document_issue_date":    "",
		"opening_balance":        "",
		"closing_balance":        "",
		"credit_limit":           "",
		"interest_rate":          "",
		"arrears_amount":         "",
		"minimum_payment_due":    "",
		"payment_due_date":       "",
		"total_interest_charged": "",
		"total_fees_charged":     "",
		"document_summary":       "",
		"anomalies_or_notes":     "",
	},
	"payslips": {
		model.DocTypeIDKey:              "payslips",
		"employee_name":                 "",
		"employee_address":              "",
		"employee_number":               "",
		"employer_name":                 "",
		"employer_address":              "",
		"pay_period_start":              "",
		"pay_period_end":                "",
		"pay_date":                      "",
		"gross_pay":                     "",
		"net_pay":                       "",
		"basic_pay":                     "",
		"overtime_pay":                  "",
		"bonus_or_commission":           "",
		"tax_deducted":                  "",
		"prsi_or_social_insurance":      "",
		"pension_contribution_employee": "",
		"pension_contribution_employer": "",
		"other_deductions":              "",
		"year_to_date_gross":            "",
		"year_to_date_tax":              "",
		"year_to_date_net":              "",
		"pay_frequency":                 "",
		"pps_number":                    "",
		"iban":                          "",
		"document_summary":              "",
		"anomalies_or_notes":            "",
	},
	"photo_id": {
		model.DocTypeIDKey:   "photo_id",
		"id_type":            "",
		"issuing_country":    "",
		"issuing_authority":  "",
		"holder_full_name":   "",
		"date_of_birth":      "",
		"document_number":    "",
		"expiry_date":        "",
		"issue_date":         "",
		"address_on_id":      "",
		"mrz_text":           "",
		"document_summary":   "",
		"anomalies_or_notes": "",
	},
	"proof_of_address": {
		model.DocTypeIDKey:            "proof_of_address",
		"document_type":               "",
		"issuer_name":                 "",
		"issuer_address":              "",
		"recipient_name":              "",
		"recipient_address":           "",
		"account_or_reference_number": "",
		"document_date":               "",
		"address_effective_date":      "",
		"address_lines":               "",
		"document_summary":            "",
		"anomalies_or_notes":          "",
	},
	"ppsn_trn_verification": {
		model.DocTypeIDKey:    "ppsn_trn_verification",
		"document_type":       "",
		"issuing_body":        "",
		"holder_name":         "",
		"pps_or_trn_number":   "",
		"document_date":       "",
		"address_on_document": "",
		"document_summary":    "",
		"anomalies_or_notes":  "",
	},
	"salary_certificate": {
		model.DocTypeIDKey:           "salary_certificate",
		"employer_name":              "",
		"employer_address":           "",
		"employee_name":              "",
		"employee_address":           "",
		"employee_number":            "",
		"employment_status":          "",
		"role_or_job_title":          "",
		"start_date":                 "",
		"gross_annual_salary":        "",
		"basic_salary":               "",
		"variable_pay_description":   "",
		"variable_pay_amount":        "",
		"overtime_regular":           "",
		"bonus_regular":              "",
		"other_allowances":           "",
		"confirmation_of_employment": "",
		"signed_by_name":             "",
		"signed_by_position":         "",
		"signature_date":             "",
		"document_summary":           "",
		"anomalies_or_notes":         "",
	},
	"equity_input_proof": {
		model.DocTypeIDKey:                     "equity_input_proof",
		"document_type":                        "",
		"donor_or_source_name":                 "",
		"donor_or_source_address":              "",
		"recipient_name":                       "",
		"amount":                               "",
		"currency":                             "",
		"relationship_to_applicant":            "",
		"conditions_or_repayment_expectations": "",
		"source_of_funds_description":          "",
		"supporting_reference_numbers":         "",
		"document_date":                        "",
		"document_summary":                     "",
		"anomalies_or_notes":                   "",
	},
	"rent_evidence": {
		model.DocTypeIDKey:   "rent_evidence",
		"document_type":      "",
		"landlord_name":      "",
		"landlord_address":   "",
		"tenant_name":        "",
		"tenant_address":     "",
		"property_address":   "",
		"rent_amount":        "",
		"currency":           "",
		"payment_frequency":  "",
		"lease_start_date":   "",
		"lease_end_date":     "",
		"is_ongoing_tenancy": "",
		"reference_number":   "",
		"document_date":      "",
		"document_summary":   "",
		"anomalies_or_notes": "",
	},
	"valuation_report": {
		model.DocTypeIDKey:           "valuation_report",
		"valuer_name":                "",
		"valuer_firm":                "",
		"valuer_contact_details":     "",
		"property_address":           "",
		"property_type":              "",
		"valuation_amount":           "",
		"currency":                   "",
		"valuation_date":             "",
		"report_reference":           "",
		"lender_name":                "",
		"instructions_date":          "",
		"special_assumptions":        "",
		"property_condition_summary": "",
		"marketability_comment":      "",
		"document_summary":           "",
		"anomalies_or_notes":         "",
	},
}

// Registry resolves extraction schemas by doc type. An optional override
// directory takes priority over the built-in templates: the first of
// <dir>/<doc_type_id>.json or <dir>/<doc_type_id>.yaml that parses wins.
type Registry struct {
	overrideDir string
}

// NewRegistry creates a Registry. An empty dir disables file overrides.
func NewRegistry(overrideDir string) *Registry {
	return &Registry{overrideDir: overrideDir}
}

// Load resolves the schema for a doc type: override file, then built-in,
// then the generic fallback. The returned schema always carries the
// requested doc_type_id and is a fresh copy safe for the caller to hold.
func (r *Registry) Load(docTypeID string) model.Schema {
	if r.overrideDir != "" {
		if s, ok := r.loadOverride(docTypeID); ok {
			s[model.DocTypeIDKey] = docTypeID
			return s
		}
	}

	base, ok := builtin[docTypeID]
	if !ok {
		base = generic
	}

	s := make(model.Schema, len(base))
	for k, v := range base {
		s[k] = v
	}
	s[model.DocTypeIDKey] = docTypeID
	return s
}

func (r *Registry) loadOverride(docTypeID string) (model.Schema, bool) {
	for _, ext := range []string{".json", ".yaml"} {
		path := filepath.Join(r.overrideDir, docTypeID+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		s, err := parseSchema(data, ext)
		if err != nil {
			zap.L().Warn("schema: override file unusable, falling back to built-in",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		return s, true
	}
	return nil, false
}

func parseSchema(data []byte, ext string) (model.Schema, error) {
	var s model.Schema
	if ext == ".yaml" {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, eris.Wrap(err, "schema: parse yaml")
		}
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, eris.Wrap(err, "schema: parse json")
	}
	return s, nil
}
