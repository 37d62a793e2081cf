package mealtime

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"MediTrack-Backend/pkg/dosing"
	"context"

	"github.com/google/uuid"
)

// Defaults applied when a patient reads their meal times for the first time.
const (
	DefaultBreakfast = "08:00"
	DefaultLunch     = "12:30"
	DefaultDinner    = "19:00"
	DefaultSnack     = "15:30"
)

type (
	MealTimeService interface {
		GetMealTimes(ctx context.Context, patientID string) (domain.MealTimesResponse, error)
		UpdateMealTimes(ctx context.Context, req domain.UpdateMealTimesRequest, patientID string) (domain.MealTimesResponse, error)
	}

	mealTimeService struct {
		mealTimeRepository MealTimeRepository
	}
)

func NewMealTimeService(mealTimeRepository MealTimeRepository) MealTimeService {
	return &mealTimeService{mealTimeRepository: mealTimeRepository}
}

// GetMealTimes lazily creates the default configuration on first read.
// Breakfast, lunch and dinner are mandatory; snack starts disabled.
func (s *mealTimeService) GetMealTimes(ctx context.Context, patientID string) (domain.MealTimesResponse, error) {
	config, err := s.getOrCreate(ctx, patientID)
	if err != nil {
		return domain.MealTimesResponse{}, err
	}
	return toMealTimesResponse(config), nil
}

func (s *mealTimeService) UpdateMealTimes(ctx context.Context, req domain.UpdateMealTimesRequest, patientID string) (domain.MealTimesResponse, error) {
	config, err := s.getOrCreate(ctx, patientID)
	if err != nil {
		return domain.MealTimesResponse{}, err
	}

	for _, value := range []string{req.Breakfast, req.Lunch, req.Dinner, req.Snack} {
		if value == "" {
			continue
		}
		if _, err := dosing.ParseClock(value); err != nil {
			return domain.MealTimesResponse{}, domain.ErrInvalidMealTime
		}
	}

	if req.Breakfast != "" {
		config.Breakfast = req.Breakfast
	}
	if req.Lunch != "" {
		config.Lunch = req.Lunch
	}
	if req.Dinner != "" {
		config.Dinner = req.Dinner
	}
	if req.Snack != "" {
		config.Snack = req.Snack
	}
	if req.SnackEnabled != nil {
		config.SnackEnabled = *req.SnackEnabled
	}

	if err := s.mealTimeRepository.UpdateMealTimeConfig(ctx, config); err != nil {
		return domain.MealTimesResponse{}, err
	}

	return toMealTimesResponse(config), nil
}

func (s *mealTimeService) getOrCreate(ctx context.Context, patientID string) (*entities.MealTimeConfig, error) {
	config, err := s.mealTimeRepository.GetMealTimeConfig(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	patientUUID, err := uuid.Parse(patientID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	config = &entities.MealTimeConfig{
		ID:           uuid.New(),
		PatientID:    patientUUID,
		Breakfast:    DefaultBreakfast,
		Lunch:        DefaultLunch,
		Dinner:       DefaultDinner,
		Snack:        DefaultSnack,
		SnackEnabled: false,
	}

	if err := s.mealTimeRepository.CreateMealTimeConfig(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

func toMealTimesResponse(config *entities.MealTimeConfig) domain.MealTimesResponse {
	return domain.MealTimesResponse{
		Breakfast:    config.Breakfast,
		Lunch:        config.Lunch,
		Dinner:       config.Dinner,
		Snack:        config.Snack,
		SnackEnabled: config.SnackEnabled,
	}
}
