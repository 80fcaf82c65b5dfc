// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the service layer
// from the concrete Oracle REST adapter and the tool layer from the
// services behind it.
package port

import (
	"context"

	"github.com/deandrade/oracle-ar-mcp/internal/domain"
)

// Page is one page of an Oracle resource collection.
type Page struct {
	Items   []domain.Record
	HasMore bool
}

// Gateway performs authenticated reads against Oracle Fusion REST
// resource collections. Implemented by the oracle adapter.
type Gateway interface {
	// FetchPage issues a single collection GET with the given filter
	// expression and offset/limit window.
	FetchPage(ctx context.Context, conn domain.Connection, resource, filter string, limit, offset int) (Page, error)

	// FetchAll drains a collection page by page until the upstream
	// reports no more pages or the record budget is exhausted. A limit
	// of 0 means the adapter's configured record cap.
	FetchAll(ctx context.Context, conn domain.Connection, resource, filter string, limit int) ([]domain.Record, error)

	// Probe issues a minimal authenticated request to verify the
	// connection and credentials.
	Probe(ctx context.Context, conn domain.Connection) error
}

// InvoiceFilter narrows an invoice listing. Zero values mean "no filter".
type InvoiceFilter struct {
	CustomerAccountID string
	InvoiceNumber     string
	Status            string
	DueAfter          string // inclusive, YYYY-MM-DD
	DueBefore         string // inclusive, YYYY-MM-DD
}

// ReceiptFilter narrows a receipt listing. Zero values mean "no filter".
type ReceiptFilter struct {
	CustomerAccountID string
	ReceiptNumber     string
	DateAfter         string // inclusive, YYYY-MM-DD
	DateBefore        string // inclusive, YYYY-MM-DD
}

// InvoiceReader lists projected AR invoice records.
type InvoiceReader interface {
	ListInvoices(ctx context.Context, conn domain.Connection, filter InvoiceFilter, limit, offset int) (domain.InvoiceList, error)
}

// ReceiptReader lists projected AR receipt records.
type ReceiptReader interface {
	ListReceipts(ctx context.Context, conn domain.Connection, filter ReceiptFilter, limit, offset int) (domain.ReceiptList, error)
}

// ConnectionProber verifies reachability and credentials.
type ConnectionProber interface {
	TestConnection(ctx context.Context, conn domain.Connection) error
}

// ActivityReader builds the merged customer timeline.
type ActivityReader interface {
	ListCustomerActivities(ctx context.Context, conn domain.Connection, customerID string, limit int) (domain.ActivityList, error)
}

// SummaryReader derives per-customer AR totals.
type SummaryReader interface {
	GetCustomerSummary(ctx context.Context, conn domain.Connection, customerID string) (domain.CustomerSummary, error)
}

// AgingReader derives the aging bucket report.
type AgingReader interface {
	GetAgingSummary(ctx context.Context, conn domain.Connection, customerID string, limit int) (domain.AgingSummary, error)
}
