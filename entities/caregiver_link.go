package entities

import (
	"time"

	"github.com/google/uuid"
)

type CaregiverLink struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CaregiverID uuid.UUID  `gorm:"index" json:"caregiver_id"`
	PatientID   uuid.UUID  `gorm:"index" json:"patient_id"`
	Status      string     `json:"status"` // "pending", "accepted", "declined", "revoked"
	RespondedAt *time.Time `json:"responded_at,omitempty"`

	Caregiver *User `gorm:"foreignKey:CaregiverID"`
	Patient   *User `gorm:"foreignKey:PatientID"`
	Timestamp
}
