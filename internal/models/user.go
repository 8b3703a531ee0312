package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ComedianProfile is stored in the users table with a comedian_ column prefix.
type ComedianProfile struct {
	ComedianType string `gorm:"column:type" json:"comedianType"`
	Speciality   string `json:"speciality"`
	Experience   string `json:"experience"`
	Bio          string `json:"bio"`
	VideoURL     string `gorm:"column:video_url" json:"videoUrl"`
	Status       Status `gorm:"type:varchar(20);index" json:"status"`
}

type User struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Email           string          `gorm:"uniqueIndex;not null" json:"email"`
	Username        string          `gorm:"not null" json:"username"`
	PasswordHash    string          `json:"-"`
	Role            Role            `gorm:"type:varchar(10);not null;default:'user'" json:"role"`
	Phone           string          `json:"phone"`
	Bio             string          `json:"bio"`
	IsComedian      bool            `gorm:"not null;default:false;index" json:"isComedian"`
	ComedianProfile ComedianProfile `gorm:"embedded;embeddedPrefix:comedian_" json:"comedianProfile"`
	CreatedAt       time.Time       `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
