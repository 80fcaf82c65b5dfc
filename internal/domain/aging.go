package domain

import "time"

// ============================================================
// Aging buckets
// ============================================================

// Bucket labels, ordered from least to most overdue. These are the
// collections-standard 30/60/90 boundaries.
const (
	BucketCurrent = "current"
	Bucket1To30   = "1_30"
	Bucket31To60  = "31_60"
	Bucket61To90  = "61_90"
	BucketOver90  = "over_90"
)

// BucketLabels lists the buckets in reporting order.
var BucketLabels = []string{BucketCurrent, Bucket1To30, Bucket31To60, Bucket61To90, BucketOver90}

// bucketBoundaries holds the inclusive upper bound (days overdue) of each
// bucket except the last. A boundary tie lands in the lower bucket: an
// invoice exactly 30 days overdue belongs to 1_30, not 31_60.
var bucketBoundaries = []struct {
	label string
	max   int
}{
	{BucketCurrent, 0},
	{Bucket1To30, 30},
	{Bucket31To60, 60},
	{Bucket61To90, 90},
}

// BucketFor classifies a days-overdue count into a bucket label.
func BucketFor(daysOverdue int) string {
	for _, b := range bucketBoundaries {
		if daysOverdue <= b.max {
			return b.label
		}
	}
	return BucketOver90
}

// AgingSummary partitions open invoice balances by days overdue relative
// to a reference date. Invoices with no parseable due date are tallied in
// Unclassified so the bucket totals stay exact.
type AgingSummary struct {
	Buckets          map[string]float64 `json:"aging_buckets"`
	Unclassified     float64            `json:"unclassified"`
	TotalOutstanding float64            `json:"total_outstanding"`
	OpenInvoices     int                `json:"open_invoice_count"`
	AsOf             string             `json:"as_of"`
}

// BuildAgingSummary computes the aging bucket set for a list of invoice
// records as of the reference time. Only open invoices (BalanceDue > 0)
// participate; every open amount lands in exactly one bucket or in the
// unclassified total, and the bucket totals plus unclassified sum to the
// total outstanding.
func BuildAgingSummary(invoices []Record, asOf time.Time) AgingSummary {
	buckets := make(map[string]float64, len(BucketLabels))
	for _, label := range BucketLabels {
		buckets[label] = 0
	}

	var unclassified float64
	open := 0
	for _, inv := range invoices {
		balance := inv.Num(FieldBalanceDue)
		if balance <= 0 {
			continue
		}
		open++
		due, ok := inv.Date(FieldDueDate)
		if !ok {
			unclassified += balance
			continue
		}
		buckets[BucketFor(DaysOverdue(due, asOf))] += balance
	}

	total := unclassified
	for label, amount := range buckets {
		buckets[label] = Round2(amount)
		total += amount
	}

	return AgingSummary{
		Buckets:          buckets,
		Unclassified:     Round2(unclassified),
		TotalOutstanding: Round2(total),
		OpenInvoices:     open,
		AsOf:             civilDate(asOf).Format("2006-01-02"),
	}
}
