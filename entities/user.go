package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	Password     string     `json:"-"`
	Role         string     `json:"role"` // "patient", "caregiver"
	IsVerified   bool       `json:"is_verified"`
	OTPCode      string     `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
	AvatarURL    string     `json:"avatar_url,omitempty"`

	Medications []*Medication `gorm:"foreignKey:PatientID"`
	Timestamp
}
