package caregiver

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	CaregiverRepository interface {
		CreateLink(ctx context.Context, link *entities.CaregiverLink) error
		GetLinkByID(ctx context.Context, id string) (*entities.CaregiverLink, error)
		GetLinkByPair(ctx context.Context, caregiverID, patientID string) (*entities.CaregiverLink, error)
		UpdateLink(ctx context.Context, link *entities.CaregiverLink) error
		GetLinksByCaregiver(ctx context.Context, caregiverID string, status string) ([]*entities.CaregiverLink, error)
		GetLinksByPatient(ctx context.Context, patientID string, status string) ([]*entities.CaregiverLink, error)
	}

	caregiverRepository struct {
		db *gorm.DB
	}
)

func NewCaregiverRepository(db *gorm.DB) CaregiverRepository {
	return &caregiverRepository{db: db}
}

func (r *caregiverRepository) CreateLink(ctx context.Context, link *entities.CaregiverLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *caregiverRepository) GetLinkByID(ctx context.Context, id string) (*entities.CaregiverLink, error) {
	var link entities.CaregiverLink
	if err := r.db.WithContext(ctx).
		Preload("Caregiver").
		Preload("Patient").
		Where("id = ?", id).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// GetLinkByPair returns the most recent non-revoked link between a caregiver
// and a patient, or nil when none exists.
func (r *caregiverRepository) GetLinkByPair(ctx context.Context, caregiverID, patientID string) (*entities.CaregiverLink, error) {
	var link entities.CaregiverLink
	err := r.db.WithContext(ctx).
		Where("caregiver_id = ? AND patient_id = ? AND status != ?", caregiverID, patientID, domain.LinkStatusRevoked).
		Order("created_at DESC").
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}

func (r *caregiverRepository) UpdateLink(ctx context.Context, link *entities.CaregiverLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

func (r *caregiverRepository) GetLinksByCaregiver(ctx context.Context, caregiverID string, status string) ([]*entities.CaregiverLink, error) {
	var links []*entities.CaregiverLink
	query := r.db.WithContext(ctx).Preload("Patient").Where("caregiver_id = ?", caregiverID)
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *caregiverRepository) GetLinksByPatient(ctx context.Context, patientID string, status string) ([]*entities.CaregiverLink, error) {
	var links []*entities.CaregiverLink
	query := r.db.WithContext(ctx).Preload("Caregiver").Where("patient_id = ?", patientID)
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}
