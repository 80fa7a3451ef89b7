package models

import "time"

// VisitLine is the exact line appended to the visit log for every homepage hit
const VisitLine = "Visited homepage\n"

// VisitConfirmation is the response body returned after a visit is recorded
const VisitConfirmation = "✅ Logged visit!"

// Visit represents a single homepage hit
type Visit struct {
	ID        int64
	Timestamp time.Time
	Method    string
	Path      string
	UserAgent string
	IPAddress string
}
