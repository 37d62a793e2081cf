package domain

import (
	"errors"
	"time"
)

const (
	TimingBeforeFood   = "before_food"
	TimingAfterFood    = "after_food"
	TimingWithFood     = "with_food"
	TimingEmptyStomach = "empty_stomach"
	TimingAnytime      = "anytime"
)

var (
	MessageSuccessDoseCheck = "dose safety evaluated"
	MessageSuccessLogDose   = "dose logged successfully"
	MessageFailedDoseCheck  = "failed to evaluate dose safety"
	MessageFailedLogDose    = "failed to log dose"
	MessageDoseRejected     = "dose not permitted at this time"

	ErrDoseConflict = errors.New("concurrent dose update, please retry")
	ErrDoseRejected = errors.New("dose rejected by safety checks")
)

type (
	LogDoseRequest struct {
		Override bool `json:"override"`
	}

	// MealWindow is a local-time interval, minutes since midnight.
	// Start > End means the window wraps past midnight.
	MealWindow struct {
		Meal  string `json:"meal"`
		Start int    `json:"start"`
		End   int    `json:"end"`
	}

	DosingSafetyResult struct {
		CanTake             bool         `json:"can_take"`
		Reason              string       `json:"reason"`
		Warnings            []string     `json:"warnings,omitempty"`
		NextDoseTime        *time.Time   `json:"next_dose_time,omitempty"`
		HoursRemaining      int          `json:"hours_remaining,omitempty"`
		CurrentWindows      []MealWindow `json:"current_windows,omitempty"`
		NextWindow          *MealWindow  `json:"next_window,omitempty"`
		TimeUntilNextWindow string       `json:"time_until_next_window,omitempty"`
		Override            bool         `json:"override,omitempty"`
	}

	LogDoseResponse struct {
		Result            DosingSafetyResult `json:"result"`
		RemainingQuantity int                `json:"remaining_quantity"`
		Status            string             `json:"status"`
	}
)
