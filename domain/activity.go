package domain

import (
	"errors"
	"time"
)

const (
	ActivityDoseTaken         = "dose_taken"
	ActivityDoseRejected      = "dose_rejected"
	ActivityLowStock          = "low_stock"
	ActivityMedicationAdded   = "medication_added"
	ActivityMedicationUpdated = "medication_updated"
	ActivityMedicationDeleted = "medication_deleted"
)

var (
	MessageSuccessGetActivity       = "activity retrieved successfully"
	MessageSuccessGetNotifications  = "notifications retrieved successfully"
	MessageSuccessReadNotification  = "notification marked as read"
	MessageFailedGetActivity        = "failed to retrieve activity"
	MessageFailedGetNotifications   = "failed to retrieve notifications"
	MessageFailedReadNotification   = "failed to mark notification as read"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	ActivityEventResponse struct {
		ID           string    `json:"id"`
		PatientID    string    `json:"patient_id"`
		MedicationID string    `json:"medication_id,omitempty"`
		Type         string    `json:"type"`
		Metadata     string    `json:"metadata,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	NotificationResponse struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Body      string    `json:"body"`
		IsRead    bool      `json:"is_read"`
		CreatedAt time.Time `json:"created_at"`
	}
)
