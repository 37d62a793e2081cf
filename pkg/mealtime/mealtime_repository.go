package mealtime

import (
	"MediTrack-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	MealTimeRepository interface {
		GetMealTimeConfig(ctx context.Context, patientID string) (*entities.MealTimeConfig, error)
		CreateMealTimeConfig(ctx context.Context, config *entities.MealTimeConfig) error
		UpdateMealTimeConfig(ctx context.Context, config *entities.MealTimeConfig) error
	}

	mealTimeRepository struct {
		db *gorm.DB
	}
)

func NewMealTimeRepository(db *gorm.DB) MealTimeRepository {
	return &mealTimeRepository{db: db}
}

// GetMealTimeConfig returns nil without error when the patient has no
// configuration yet; callers decide between lazy defaults and permissive
// degrade.
func (r *mealTimeRepository) GetMealTimeConfig(ctx context.Context, patientID string) (*entities.MealTimeConfig, error) {
	var config entities.MealTimeConfig
	if err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &config, nil
}

func (r *mealTimeRepository) CreateMealTimeConfig(ctx context.Context, config *entities.MealTimeConfig) error {
	return r.db.WithContext(ctx).Create(config).Error
}

func (r *mealTimeRepository) UpdateMealTimeConfig(ctx context.Context, config *entities.MealTimeConfig) error {
	return r.db.WithContext(ctx).Save(config).Error
}
