package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	MedicationStatusActive    = "active"
	MedicationStatusPaused    = "paused"
	MedicationStatusCompleted = "completed"
)

var (
	MessageSuccessAddMedication     = "medication added successfully"
	MessageSuccessUpdateMedication  = "medication updated successfully"
	MessageSuccessDeleteMedication  = "medication deleted successfully"
	MessageSuccessGetMedications    = "medications retrieved successfully"
	MessageSuccessResolveBarcode    = "medication resolved successfully"
	MessageSuccessGenerateBarcode   = "barcode generated successfully"
	MessageSuccessUploadMedImage    = "medication image uploaded successfully"
	MessageFailedAddMedication      = "failed to add medication"
	MessageFailedUpdateMedication   = "failed to update medication"
	MessageFailedDeleteMedication   = "failed to delete medication"
	MessageFailedGetMedications     = "failed to retrieve medications"
	MessageFailedResolveBarcode     = "failed to resolve barcode"
	MessageFailedGenerateBarcode    = "failed to generate barcode"
	MessageFailedUploadMedImage     = "failed to upload medication image"

	ErrMedicationNotFound    = errors.New("medication not found")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrInvalidFrequency      = errors.New("frequency must be between 1 and 6")
	ErrInvalidTimingRelation = errors.New("unknown timing relation")
	ErrInvalidStatus         = errors.New("unknown medication status")
	ErrBarcodeConflict       = errors.New("barcode already in use")
	ErrBarcodeGeneration     = errors.New("failed to generate a unique barcode")
)

type (
	AddMedicationRequest struct {
		PatientID      string `json:"patient_id" validate:"omitempty,uuid"`
		Name           string `json:"name" validate:"required"`
		Dosage         string `json:"dosage" validate:"required"`
		Frequency      int    `json:"frequency" validate:"required,min=1,max=6"`
		TimingRelation string `json:"timing_relation" validate:"required,oneof=before_food after_food with_food empty_stomach anytime"`
		TotalQuantity  int    `json:"total_quantity" validate:"required,min=1"`
		ExpiryDate     string `json:"expiry_date" validate:"required"`
		Notes          string `json:"notes" validate:"omitempty"`
	}

	UpdateMedicationRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		Dosage         string `json:"dosage" validate:"omitempty"`
		Frequency      int    `json:"frequency" validate:"omitempty,min=1,max=6"`
		TimingRelation string `json:"timing_relation" validate:"omitempty,oneof=before_food after_food with_food empty_stomach anytime"`
		TotalQuantity  int    `json:"total_quantity" validate:"omitempty,min=1"`
		ExpiryDate     string `json:"expiry_date" validate:"omitempty"`
		Status         string `json:"status" validate:"omitempty,oneof=active paused completed"`
		Notes          string `json:"notes" validate:"omitempty"`
	}

	UploadMedicationImageRequest struct {
		MedicationID string                `json:"medication_id" form:"medication_id" validate:"required,uuid"`
		Image        *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	MedicationResponse struct {
		ID                string     `json:"id"`
		PatientID         string     `json:"patient_id"`
		Name              string     `json:"name"`
		Dosage            string     `json:"dosage"`
		Frequency         int        `json:"frequency"`
		TimingRelation    string     `json:"timing_relation"`
		TotalQuantity     int        `json:"total_quantity"`
		RemainingQuantity int        `json:"remaining_quantity"`
		ExpiryDate        time.Time  `json:"expiry_date"`
		Status            string     `json:"status"`
		LastTaken         *time.Time `json:"last_taken,omitempty"`
		BarcodeData       string     `json:"barcode_data"`
		Notes             string     `json:"notes,omitempty"`
		ImageURL          string     `json:"image_url,omitempty"`
		CreatedAt         time.Time  `json:"created_at"`
	}
)
