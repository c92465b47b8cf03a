package entities

import "time"

// PerformanceSnapshot is an immutable copy of a vendor's metrics at a point in time.
//
// Snapshots form an append-only ledger: they are never updated or deleted,
// not even when the vendor is removed.
//
// Storage model (DynamoDB):
//   - PK: vendor_code
//   - SK: date#id
type PerformanceSnapshot struct {
	ID         string    `json:"id"`
	VendorCode string    `json:"vendor_code"`
	Date       time.Time `json:"date"`

	PerformanceMetrics
}
