package models

import "time"

// Venue is the single row approvals lock on while the capacity check runs.
type Venue struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type VenueStatus struct {
	TotalApproved  int  `json:"totalApproved"`
	Capacity       int  `json:"capacity"`
	SeatsAvailable int  `json:"seatsAvailable"`
	IsFull         bool `json:"isFull"`
}

func NewVenueStatus(totalApproved, capacity int) VenueStatus {
	available := capacity - totalApproved
	if available < 0 {
		available = 0
	}
	return VenueStatus{
		TotalApproved:  totalApproved,
		Capacity:       capacity,
		SeatsAvailable: available,
		IsFull:         totalApproved >= capacity,
	}
}
