package dto

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateBookingRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	NumberOfTickets *int   `json:"numberOfTickets" validate:"omitempty,gte=1"`
}

type UpdateBookingStatusRequest struct {
	BookingID uint   `json:"bookingId" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=approved declined"`
}

type ComedianProfileRequest struct {
	ComedianType string `json:"comedianType" validate:"required"`
	Speciality   string `json:"speciality" validate:"required"`
	Experience   string `json:"experience" validate:"required"`
	Bio          string `json:"bio" validate:"required"`
	VideoURL     string `json:"videoUrl" validate:"omitempty,http_url"`
	// Status is accepted for compatibility with the booking form and ignored.
	Status string `json:"status"`
}

type RegisterComedianRequest struct {
	Username        string                 `json:"username"`
	Email           string                 `json:"email"`
	Phone           string                 `json:"phone"`
	ComedianProfile ComedianProfileRequest `json:"comedianProfile"`
}

type UpdateComedianStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved declined"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" validate:"required"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}
