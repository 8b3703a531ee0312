package service

import (
	"strings"

	"github.com/Eursukkul/humorshub/internal/models"
)

// Identity is the verified caller. It is built by the auth middleware from a
// token and trusted as is.
type Identity struct {
	UserID uint
	Email  string
	Role   models.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

func (i Identity) Owns(email string) bool {
	return i.Email != "" && strings.EqualFold(i.Email, email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
