package domain

import (
	"errors"
)

var (
	MessageSuccessGetMealTimes    = "meal times retrieved successfully"
	MessageSuccessUpdateMealTimes = "meal times updated successfully"
	MessageFailedGetMealTimes     = "failed to retrieve meal times"
	MessageFailedUpdateMealTimes  = "failed to update meal times"

	ErrInvalidMealTime = errors.New("meal time must be HH:MM in 24h format")
)

type (
	UpdateMealTimesRequest struct {
		Breakfast    string `json:"breakfast" validate:"omitempty"`
		Lunch        string `json:"lunch" validate:"omitempty"`
		Dinner       string `json:"dinner" validate:"omitempty"`
		Snack        string `json:"snack" validate:"omitempty"`
		SnackEnabled *bool  `json:"snack_enabled" validate:"omitempty"`
	}

	MealTimesResponse struct {
		Breakfast    string `json:"breakfast"`
		Lunch        string `json:"lunch"`
		Dinner       string `json:"dinner"`
		Snack        string `json:"snack"`
		SnackEnabled bool   `json:"snack_enabled"`
	}
)
