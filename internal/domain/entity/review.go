package entity

import "time"

// Review is a customer's rating of a contractor. The profile keeps the
// running aggregate (RatingAvg, RatingCount).
type Review struct {
	ID           string
	ContractorID string
	CustomerID   string
	JobID        string
	Rating       int // 1..5
	Comment      string
	CreatedAt    time.Time
}
