package domain

// Invoice is the projected shape of one receivables invoice, reduced to
// the fields an agent needs.
type Invoice struct {
	InvoiceNumber string  `json:"invoice_number"`
	CustomerName  string  `json:"customer_name"`
	Amount        float64 `json:"amount"`
	BalanceDue    float64 `json:"balance_due"`
	DueDate       string  `json:"due_date"`
	Status        string  `json:"status"`
}

// Receipt is the projected shape of one standard receipt.
type Receipt struct {
	ReceiptNumber string  `json:"receipt_number"`
	CustomerName  string  `json:"customer_name"`
	Amount        float64 `json:"amount"`
	ReceiptDate   string  `json:"receipt_date"`
	Status        string  `json:"status"`
}

// InvoiceFromRecord projects a raw upstream record. Dates pass through
// as the upstream sent them.
func InvoiceFromRecord(r Record) Invoice {
	return Invoice{
		InvoiceNumber: r.Str(FieldTransactionNumber),
		CustomerName:  r.Str(FieldBillToCustomer),
		Amount:        r.Num(FieldEnteredAmount),
		BalanceDue:    r.Num(FieldBalanceDue),
		DueDate:       r.Str(FieldDueDate),
		Status:        r.Str(FieldStatus),
	}
}

// ReceiptFromRecord projects a raw upstream record.
func ReceiptFromRecord(r Record) Receipt {
	return Receipt{
		ReceiptNumber: r.Str(FieldReceiptNumber),
		CustomerName:  r.Str(FieldCustomerName),
		Amount:        r.Num(FieldAmount),
		ReceiptDate:   r.Str(FieldReceiptDate),
		Status:        r.Str(FieldStatus),
	}
}

// InvoiceList is the result payload of an invoice listing.
type InvoiceList struct {
	Invoices []Invoice `json:"invoices"`
	Count    int       `json:"count"`
	HasMore  bool      `json:"has_more"`
}

// ReceiptList is the result payload of a receipt listing.
type ReceiptList struct {
	Receipts []Receipt `json:"receipts"`
	Count    int       `json:"count"`
	HasMore  bool      `json:"has_more"`
}

// ActivityList is the result payload of a merged activity listing.
type ActivityList struct {
	Activities []Activity `json:"activities"`
	Count      int        `json:"count"`
}

// ConnectionStatus is the result payload of a connection test.
type ConnectionStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
