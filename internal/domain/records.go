package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// ============================================================
// Oracle resource records
// ============================================================

// Oracle Fusion AR field names read by the aggregation layer. Records stay
// schemaless beyond these; upstream field additions pass through untouched.
const (
	FieldTransactionNumber = "TransactionNumber"
	FieldBillToCustomer    = "BillToCustomerName"
	FieldEnteredAmount     = "EnteredAmount"
	FieldBalanceDue        = "BalanceDue"
	FieldDueDate           = "DueDate"
	FieldStatus            = "Status"
	FieldCustomerAccountID = "CustomerAccountId"

	FieldReceiptNumber = "ReceiptNumber"
	FieldCustomerName  = "CustomerName"
	FieldAmount        = "Amount"
	FieldReceiptDate   = "ReceiptDate"
)

// Record is one Oracle resource item as returned by the REST layer.
// Values keep whatever shape the upstream sent.
type Record map[string]any

// Str extracts a string field; non-strings are rendered, nil is "".
func (r Record) Str(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// Num extracts a numeric field; missing, null, or non-numeric values
// yield 0, mirroring the upstream's "or 0" semantics for amounts.
func (r Record) Num(key string) float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Date extracts and parses a date field. ok is false when the field is
// missing, empty, or unparseable.
func (r Record) Date(key string) (time.Time, bool) {
	return ParseOracleDate(r.Str(key))
}

// oracleDateLayouts covers the shapes Fusion emits for date fields.
var oracleDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseOracleDate parses an Oracle date/datetime string into UTC.
func ParseOracleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range oracleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// DaysOverdue returns whole calendar days between due and ref (positive
// when past due), comparing civil dates in UTC.
func DaysOverdue(due, ref time.Time) int {
	d := civilDate(due)
	r := civilDate(ref)
	return int(r.Sub(d).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Round2 rounds a monetary amount to 2 decimal places for output.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
