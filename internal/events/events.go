// Package events defines the messages published when a booking or a comedian
// application changes state.
package events

import "time"

const (
	SubjectBooking  = "booking"
	SubjectComedian = "comedian"

	ActionApproved  = "approved"
	ActionDeclined  = "declined"
	ActionCancelled = "cancelled"
)

type StatusChanged struct {
	Subject    string    `json:"subject"`
	Action     string    `json:"action"`
	RecordID   uint      `json:"record_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Tickets    int       `json:"tickets,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RoutingKey is "<subject>.<action>", e.g. "booking.approved".
func (e StatusChanged) RoutingKey() string {
	return e.Subject + "." + e.Action
}
