package domain

import "time"

// CustomerSummary rolls a customer's invoices and receipts up into AR
// totals. Outstanding is always billed minus paid; a customer with no
// receipts owes everything billed.
type CustomerSummary struct {
	CustomerAccountID string       `json:"customer_account_id"`
	CustomerName      string       `json:"customer_name,omitempty"`
	TotalInvoiced     float64      `json:"total_invoiced"`
	TotalPaid         float64      `json:"total_paid"`
	Outstanding       float64      `json:"outstanding_balance"`
	InvoiceCount      int          `json:"invoice_count"`
	ReceiptCount      int          `json:"receipt_count"`
	Aging             AgingSummary `json:"aging"`
}

// BuildCustomerSummary derives the summary from raw invoice and receipt
// records. Deterministic: same records and reference time, same output.
func BuildCustomerSummary(customerID string, invoices, receipts []Record, asOf time.Time) CustomerSummary {
	var billed, paid float64
	for _, inv := range invoices {
		billed += inv.Num(FieldEnteredAmount)
	}
	for _, rec := range receipts {
		paid += rec.Num(FieldAmount)
	}

	name := ""
	if len(invoices) > 0 {
		name = invoices[0].Str(FieldBillToCustomer)
	}

	return CustomerSummary{
		CustomerAccountID: customerID,
		CustomerName:      name,
		TotalInvoiced:     Round2(billed),
		TotalPaid:         Round2(paid),
		Outstanding:       Round2(billed - paid),
		InvoiceCount:      len(invoices),
		ReceiptCount:      len(receipts),
		Aging:             BuildAgingSummary(invoices, asOf),
	}
}
