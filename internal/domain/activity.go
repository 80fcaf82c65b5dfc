package domain

import (
	"sort"
	"time"
)

// Activity types in the merged customer timeline.
const (
	ActivityInvoice = "invoice"
	ActivityReceipt = "receipt"
)

// TransactionDate is the invoice-side date used for chronology; receipts
// use ReceiptDate.
const FieldTransactionDate = "TransactionDate"

// Activity is one entry in a customer's merged AR timeline: an invoice
// billed or a receipt applied, normalized to common fields.
type Activity struct {
	Type         string   `json:"type"`
	Date         string   `json:"date,omitempty"`
	Number       string   `json:"number,omitempty"`
	CustomerName string   `json:"customer_name,omitempty"`
	Amount       float64  `json:"amount"`
	BalanceDue   *float64 `json:"balance_due,omitempty"` // invoices only
	Status       string   `json:"status,omitempty"`

	when time.Time // sort key, zero when the date failed to parse
}

// MergeActivities folds invoice and receipt records into one sequence
// sorted by transaction date ascending. The sort is stable: records
// sharing a date keep their fetch order (invoices before receipts), and
// records with no parseable date sort first in their original order.
func MergeActivities(invoices, receipts []Record) []Activity {
	activities := make([]Activity, 0, len(invoices)+len(receipts))

	for _, inv := range invoices {
		balance := Round2(inv.Num(FieldBalanceDue))
		a := Activity{
			Type:         ActivityInvoice,
			Number:       inv.Str(FieldTransactionNumber),
			CustomerName: inv.Str(FieldBillToCustomer),
			Amount:       Round2(inv.Num(FieldEnteredAmount)),
			BalanceDue:   &balance,
			Status:       inv.Str(FieldStatus),
		}
		when, ok := inv.Date(FieldTransactionDate)
		a.when = when
		a.Date = activityDate(inv.Str(FieldTransactionDate), when, ok)
		activities = append(activities, a)
	}

	for _, rec := range receipts {
		a := Activity{
			Type:         ActivityReceipt,
			Number:       rec.Str(FieldReceiptNumber),
			CustomerName: rec.Str(FieldCustomerName),
			Amount:       Round2(rec.Num(FieldAmount)),
			Status:       rec.Str(FieldStatus),
		}
		when, ok := rec.Date(FieldReceiptDate)
		a.when = when
		a.Date = activityDate(rec.Str(FieldReceiptDate), when, ok)
		activities = append(activities, a)
	}

	// Unparseable dates carry the zero time, so they sort to the front
	// while keeping their relative order.
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].when.Before(activities[j].when)
	})

	return activities
}

// activityDate renders the timeline date: civil date when parseable,
// the raw upstream value otherwise.
func activityDate(raw string, t time.Time, ok bool) string {
	if ok {
		return civilDate(t).Format("2006-01-02")
	}
	return raw
}
