package medication

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	MedicationRepository interface {
		AddMedication(ctx context.Context, medication *entities.Medication) error
		GetMedicationByID(ctx context.Context, id string) (*entities.Medication, error)
		GetMedicationByBarcode(ctx context.Context, code string) (*entities.Medication, error)
		UpdateMedication(ctx context.Context, medication *entities.Medication) error
		DeleteMedication(ctx context.Context, id string) error
		GetMedications(ctx context.Context, patientID string, status string, page, limit int) ([]*entities.Medication, int64, error)
		BarcodeExists(ctx context.Context, code string, excludeID string) (bool, error)
		CommitDose(ctx context.Context, id string, expectedRemaining, newRemaining int, status string, takenAt time.Time) error
	}

	medicationRepository struct {
		db *gorm.DB
	}
)

func NewMedicationRepository(db *gorm.DB) MedicationRepository {
	return &medicationRepository{db: db}
}

func (r *medicationRepository) AddMedication(ctx context.Context, medication *entities.Medication) error {
	if err := r.db.WithContext(ctx).Create(medication).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrBarcodeConflict
		}
		return err
	}
	return nil
}

func (r *medicationRepository) GetMedicationByID(ctx context.Context, id string) (*entities.Medication, error) {
	var medication entities.Medication
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&medication).Error; err != nil {
		return nil, err
	}
	return &medication, nil
}

func (r *medicationRepository) GetMedicationByBarcode(ctx context.Context, code string) (*entities.Medication, error) {
	var medication entities.Medication
	if err := r.db.WithContext(ctx).Where("barcode_data = ?", code).First(&medication).Error; err != nil {
		return nil, err
	}
	return &medication, nil
}

func (r *medicationRepository) UpdateMedication(ctx context.Context, medication *entities.Medication) error {
	if err := r.db.WithContext(ctx).Save(medication).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrBarcodeConflict
		}
		return err
	}
	return nil
}

func (r *medicationRepository) DeleteMedication(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Medication{}).Error
}

func (r *medicationRepository) GetMedications(ctx context.Context, patientID string, status string, page, limit int) ([]*entities.Medication, int64, error) {
	var medications []*entities.Medication
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("patient_id = ?", patientID)

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.Medication{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("name asc").Find(&medications).Error; err != nil {
		return nil, 0, err
	}

	return medications, count, nil
}

func (r *medicationRepository) BarcodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Medication{}).Where("barcode_data = ?", code)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CommitDose applies the dose side effects only when remaining_quantity still
// matches the value the safety decision was made against. Zero rows affected
// means another writer got there first.
func (r *medicationRepository) CommitDose(ctx context.Context, id string, expectedRemaining, newRemaining int, status string, takenAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&entities.Medication{}).
		Where("id = ? AND remaining_quantity = ?", id, expectedRemaining).
		Updates(map[string]interface{}{
			"remaining_quantity": newRemaining,
			"status":             status,
			"last_taken":         takenAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrDoseConflict
	}
	return nil
}
