package models

import "time"

// Status is shared by bookings and comedian applications.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
)

// IsReview reports whether s is a target an admin may move a pending item to.
func (s Status) IsReview() bool {
	return s == StatusApproved || s == StatusDeclined
}

func (s Status) Valid() bool {
	return s == StatusPending || s.IsReview()
}

type Booking struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserEmail       string    `gorm:"not null;index" json:"email"`
	FullName        string    `gorm:"not null" json:"fullName"`
	Phone           string    `gorm:"not null" json:"phone"`
	NumberOfTickets *int      `json:"numberOfTickets,omitempty"`
	Status          Status    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Seats is the number of venue seats the booking occupies. Rows written by
// the single-seat form carry no count and occupy one seat.
func (b *Booking) Seats() int {
	if b.NumberOfTickets == nil {
		return 1
	}
	return *b.NumberOfTickets
}
