package domain

import (
	"errors"
	"time"
)

const (
	LinkStatusPending  = "pending"
	LinkStatusAccepted = "accepted"
	LinkStatusDeclined = "declined"
	LinkStatusRevoked  = "revoked"
)

var (
	MessageSuccessRequestLink   = "link request sent"
	MessageSuccessRespondLink   = "link request updated"
	MessageSuccessGetPatients   = "patients retrieved successfully"
	MessageSuccessGetCaregivers = "caregivers retrieved successfully"
	MessageSuccessRevokeLink    = "link revoked"

	MessageFailedRequestLink   = "failed to send link request"
	MessageFailedRespondLink   = "failed to update link request"
	MessageFailedGetPatients   = "failed to retrieve patients"
	MessageFailedGetCaregivers = "failed to retrieve caregivers"
	MessageFailedRevokeLink    = "failed to revoke link"

	ErrLinkNotFound      = errors.New("caregiver link not found")
	ErrLinkAlreadyExists = errors.New("link request already exists")
	ErrLinkNotPending    = errors.New("link request already responded")
	ErrNotACaregiver     = errors.New("only caregivers can request links")
	ErrNotAPatient       = errors.New("link target must be a patient")
	ErrSelfLink          = errors.New("cannot link to yourself")
)

type (
	RequestLinkRequest struct {
		PatientEmail string `json:"patient_email" validate:"required,email"`
	}

	RespondLinkRequest struct {
		Accept bool `json:"accept"`
	}

	CaregiverLinkResponse struct {
		ID          string     `json:"id"`
		CaregiverID string     `json:"caregiver_id"`
		PatientID   string     `json:"patient_id"`
		Status      string     `json:"status"`
		RespondedAt *time.Time `json:"responded_at,omitempty"`
		CreatedAt   time.Time  `json:"created_at"`
	}

	LinkedUserResponse struct {
		LinkID string `json:"link_id"`
		UserID string `json:"user_id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Status string `json:"status"`
	}
)
