package entities

import (
	"github.com/google/uuid"
)

type ActivityEvent struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PatientID    uuid.UUID  `gorm:"index" json:"patient_id"`
	MedicationID *uuid.UUID `gorm:"index" json:"medication_id,omitempty"`
	Type         string     `json:"type"` // "dose_taken", "dose_rejected", "low_stock", "medication_added", "medication_updated", "medication_deleted"
	Metadata     string     `gorm:"type:text" json:"metadata,omitempty"`

	Patient    *User       `gorm:"foreignKey:PatientID"`
	Medication *Medication `gorm:"foreignKey:MedicationID"`
	Timestamp
}

type Notification struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `gorm:"index" json:"user_id"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
	IsRead bool      `json:"is_read"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
