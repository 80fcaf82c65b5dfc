package domain_test

import (
	"testing"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
)

func TestBuildCustomerSummary_OutstandingIsBilledMinusPaid(t *testing.T) {
	invoices := []domain.Record{
		{"EnteredAmount": 300.0, "BalanceDue": 300.0, "DueDate": "2024-01-01", "BillToCustomerName": "Acme Corp"},
		{"EnteredAmount": 200.0, "BalanceDue": 50.0, "DueDate": "2024-01-10"},
	}
	receipts := []domain.Record{
		{"Amount": 150.0},
		{"Amount": 100.0},
	}

	s := domain.BuildCustomerSummary("1001", invoices, receipts, mustDate(t, "2024-01-15"))

	if s.TotalInvoiced != 500 {
		t.Errorf("expected total invoiced 500, got %v", s.TotalInvoiced)
	}
	if s.TotalPaid != 250 {
		t.Errorf("expected total paid 250, got %v", s.TotalPaid)
	}
	if s.Outstanding != 250 {
		t.Errorf("expected outstanding 250, got %v", s.Outstanding)
	}
	if s.CustomerName != "Acme Corp" {
		t.Errorf("expected customer name from first invoice, got '%s'", s.CustomerName)
	}
	if s.InvoiceCount != 2 || s.ReceiptCount != 2 {
		t.Errorf("expected counts 2/2, got %d/%d", s.InvoiceCount, s.ReceiptCount)
	}
}

func TestBuildCustomerSummary_NoReceipts(t *testing.T) {
	invoices := []domain.Record{
		{"EnteredAmount": 750.0, "BalanceDue": 750.0, "DueDate": "2024-01-01"},
	}

	s := domain.BuildCustomerSummary("1002", invoices, nil, mustDate(t, "2024-01-15"))

	if s.Outstanding != 750 {
		t.Errorf("zero-receipt customer should owe everything billed, got %v", s.Outstanding)
	}
	if s.TotalPaid != 0 {
		t.Errorf("expected total paid 0, got %v", s.TotalPaid)
	}
}

func TestBuildCustomerSummary_PaidInFull(t *testing.T) {
	invoices := []domain.Record{
		{"EnteredAmount": 500.0, "BalanceDue": 0.0, "DueDate": "2023-06-01"},
	}
	receipts := []domain.Record{
		{"Amount": 500.0},
	}

	s := domain.BuildCustomerSummary("1003", invoices, receipts, mustDate(t, "2024-01-15"))

	if s.Outstanding != 0 {
		t.Errorf("expected outstanding 0, got %v", s.Outstanding)
	}
	for label, amount := range s.Aging.Buckets {
		if amount != 0 {
			t.Errorf("expected empty aging bucket %s, got %v", label, amount)
		}
	}
	if s.Aging.TotalOutstanding != 0 {
		t.Errorf("expected aging total 0, got %v", s.Aging.TotalOutstanding)
	}
}

func TestBuildCustomerSummary_EmptyCustomer(t *testing.T) {
	s := domain.BuildCustomerSummary("1004", nil, nil, mustDate(t, "2024-01-15"))

	if s.TotalInvoiced != 0 || s.TotalPaid != 0 || s.Outstanding != 0 {
		t.Errorf("expected all-zero summary, got %+v", s)
	}
	if s.CustomerName != "" {
		t.Errorf("expected no customer name, got '%s'", s.CustomerName)
	}
}

func TestBuildCustomerSummary_RoundsToCents(t *testing.T) {
	invoices := []domain.Record{
		{"EnteredAmount": 0.1, "BalanceDue": 0.1, "DueDate": "2024-01-01"},
		{"EnteredAmount": 0.2, "BalanceDue": 0.2, "DueDate": "2024-01-01"},
	}

	s := domain.BuildCustomerSummary("1005", invoices, nil, mustDate(t, "2024-01-15"))

	if s.TotalInvoiced != 0.3 {
		t.Errorf("expected 0.3 after rounding, got %v", s.TotalInvoiced)
	}
	if s.Outstanding != 0.3 {
		t.Errorf("expected outstanding 0.3 after rounding, got %v", s.Outstanding)
	}
}
