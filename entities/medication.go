package entities

import (
	"time"

	"github.com/google/uuid"
)

type Medication struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PatientID         uuid.UUID  `gorm:"index" json:"patient_id"`
	CreatedByID       uuid.UUID  `json:"created_by_id"`
	Name              string     `json:"name"`
	Dosage            string     `json:"dosage"`
	Frequency         int        `json:"frequency"`       // doses per 24h, 1..6
	TimingRelation    string     `json:"timing_relation"` // "before_food", "after_food", "with_food", "empty_stomach", "anytime"
	TotalQuantity     int        `json:"total_quantity"`
	RemainingQuantity int        `json:"remaining_quantity"`
	ExpiryDate        time.Time  `json:"expiry_date"`
	Status            string     `json:"status"` // "active", "paused", "completed"
	LastTaken         *time.Time `json:"last_taken,omitempty"`
	BarcodeData       string     `gorm:"uniqueIndex" json:"barcode_data"`
	Notes             string     `json:"notes,omitempty"`
	ImageURL          string     `json:"image_url,omitempty"`

	Patient *User `gorm:"foreignKey:PatientID"`
	Timestamp
}
