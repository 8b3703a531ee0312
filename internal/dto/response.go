package dto

import (
	"time"

	"github.com/Eursukkul/humorshub/internal/models"
)

type BookingResponse struct {
	ID              uint          `json:"id"`
	FullName        string        `json:"fullName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	NumberOfTickets int           `json:"numberOfTickets"`
	Status          models.Status `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type ComedianProfileResponse struct {
	ComedianType string        `json:"comedianType"`
	Speciality   string        `json:"speciality"`
	Experience   string        `json:"experience"`
	Bio          string        `json:"bio"`
	VideoURL     string        `json:"videoUrl,omitempty"`
	Status       models.Status `json:"status"`
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID              uint                     `json:"id"`
	Email           string                   `json:"email"`
	Username        string                   `json:"username"`
	Role            models.Role              `json:"role"`
	Phone           string                   `json:"phone,omitempty"`
	Bio             string                   `json:"bio,omitempty"`
	IsComedian      bool                     `json:"isComedian"`
	ComedianProfile *ComedianProfileResponse `json:"comedianProfile,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

type ComedianListResponse struct {
	Comedians []UserResponse `json:"comedians"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		FullName:        b.FullName,
		Email:           b.UserEmail,
		Phone:           b.Phone,
		NumberOfTickets: b.Seats(),
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func ToBookingList(bookings []models.Booking) BookingListResponse {
	resp := make([]BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = ToBookingResponse(&bookings[i])
	}
	return BookingListResponse{Bookings: resp}
}

func ToUserResponse(u *models.User) UserResponse {
	resp := UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		Role:       u.Role,
		Phone:      u.Phone,
		Bio:        u.Bio,
		IsComedian: u.IsComedian,
		CreatedAt:  u.CreatedAt,
	}
	if u.IsComedian {
		p := u.ComedianProfile
		resp.ComedianProfile = &ComedianProfileResponse{
			ComedianType: p.ComedianType,
			Speciality:   p.Speciality,
			Experience:   p.Experience,
			Bio:          p.Bio,
			VideoURL:     p.VideoURL,
			Status:       p.Status,
		}
	}
	return resp
}

func ToUserList(users []models.User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = ToUserResponse(&users[i])
	}
	return resp
}
