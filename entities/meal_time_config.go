package entities

import (
	"github.com/google/uuid"
)

type MealTimeConfig struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	PatientID    uuid.UUID `gorm:"uniqueIndex" json:"patient_id"`
	Breakfast    string    `json:"breakfast"` // "HH:MM", 24h local time
	Lunch        string    `json:"lunch"`
	Dinner       string    `json:"dinner"`
	Snack        string    `json:"snack"`
	SnackEnabled bool      `json:"snack_enabled"`

	Patient *User `gorm:"foreignKey:PatientID"`
	Timestamp
}
