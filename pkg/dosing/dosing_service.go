package dosing

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"MediTrack-Backend/pkg/activity"
	"MediTrack-Backend/pkg/caregiver"
	"MediTrack-Backend/pkg/medication"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// LowStockThreshold is the remaining-quantity level at and below which a
	// low_stock event is emitted, as long as stock has not hit zero.
	LowStockThreshold = 3

	maxDoseAttempts = 3
)

type (
	// MealTimeStore is the slice of the meal-time repository the engine
	// needs; nil config without error means "not configured".
	MealTimeStore interface {
		GetMealTimeConfig(ctx context.Context, patientID string) (*entities.MealTimeConfig, error)
	}

	DosingService interface {
		EvaluateDosingSafety(ctx context.Context, medicationID string, userID string, override bool) (domain.DosingSafetyResult, error)
		LogDose(ctx context.Context, medicationID string, userID string, override bool) (domain.LogDoseResponse, error)
	}

	dosingService struct {
		medicationRepository medication.MedicationRepository
		activityRepository   activity.ActivityRepository
		mealTimeRepository   MealTimeStore
		caregiverService     caregiver.CaregiverService
		clock                LocalClock
		logRejected          bool
	}

	doseMetadata struct {
		Override bool     `json:"override"`
		Warnings []string `json:"warnings,omitempty"`
		Reason   string   `json:"reason,omitempty"`
	}
)

func NewDosingService(
	medicationRepository medication.MedicationRepository,
	activityRepository activity.ActivityRepository,
	mealTimeRepository MealTimeStore,
	caregiverService caregiver.CaregiverService,
	clock LocalClock,
	logRejected bool,
) DosingService {
	return &dosingService{
		medicationRepository: medicationRepository,
		activityRepository:   activityRepository,
		mealTimeRepository:   mealTimeRepository,
		caregiverService:     caregiverService,
		clock:                clock,
		logRejected:          logRejected,
	}
}

func (s *dosingService) EvaluateDosingSafety(ctx context.Context, medicationID string, userID string, override bool) (domain.DosingSafetyResult, error) {
	med, lastTaken, cfg, err := s.loadDoseContext(ctx, medicationID, userID)
	if err != nil {
		return domain.DosingSafetyResult{}, err
	}
	return s.evaluate(med, lastTaken, cfg, override)
}

// LogDose evaluates dosing safety and, when permitted (or overridden),
// commits the dose: conditional quantity decrement, status transition,
// dose_taken event, and a low_stock event when the threshold is crossed.
// A concurrent decrement surfaces as a conflict and the whole decision is
// re-evaluated against fresh state, a bounded number of times.
func (s *dosingService) LogDose(ctx context.Context, medicationID string, userID string, override bool) (domain.LogDoseResponse, error) {
	for attempt := 0; attempt < maxDoseAttempts; attempt++ {
		med, lastTaken, cfg, err := s.loadDoseContext(ctx, medicationID, userID)
		if err != nil {
			return domain.LogDoseResponse{}, err
		}

		result, err := s.evaluate(med, lastTaken, cfg, override)
		if err != nil {
			return domain.LogDoseResponse{}, err
		}

		if !result.CanTake {
			s.recordRejection(ctx, med, result)
			return domain.LogDoseResponse{
				Result:            result,
				RemainingQuantity: med.RemainingQuantity,
				Status:            med.Status,
			}, nil
		}

		newRemaining := med.RemainingQuantity - 1
		if newRemaining < 0 {
			newRemaining = 0
		}
		newStatus := med.Status
		if newRemaining == 0 {
			newStatus = domain.MedicationStatusCompleted
		}

		takenAt := s.clock.Now()
		err = s.medicationRepository.CommitDose(ctx, med.ID.String(), med.RemainingQuantity, newRemaining, newStatus, takenAt)
		if errors.Is(err, domain.ErrDoseConflict) {
			continue
		}
		if err != nil {
			return domain.LogDoseResponse{}, err
		}

		s.appendDoseEvent(ctx, med, result)

		if newRemaining > 0 && newRemaining <= LowStockThreshold {
			s.recordLowStock(ctx, med, newRemaining)
		}
		if result.Override {
			s.notifyCaregivers(ctx, med, "Dose logged with override",
				fmt.Sprintf("A dose of %s was logged despite failing safety checks.", med.Name))
		}

		return domain.LogDoseResponse{
			Result:            result,
			RemainingQuantity: newRemaining,
			Status:            newStatus,
		}, nil
	}

	return domain.LogDoseResponse{}, domain.ErrDoseConflict
}

func (s *dosingService) loadDoseContext(ctx context.Context, medicationID string, userID string) (*entities.Medication, *time.Time, *entities.MealTimeConfig, error) {
	med, err := s.medicationRepository.GetMedicationByID(ctx, medicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, domain.ErrMedicationNotFound
		}
		return nil, nil, nil, err
	}

	allowed, err := s.caregiverService.CanAccessPatient(ctx, userID, med.PatientID.String())
	if err != nil {
		return nil, nil, nil, err
	}
	if !allowed {
		return nil, nil, nil, domain.ErrUnauthorized
	}

	// The event log is the authoritative source for "last taken"; the field
	// on the medication record is only a display cache.
	lastEvent, err := s.activityRepository.GetLatestDoseEvent(ctx, med.PatientID.String(), med.ID.String())
	if err != nil {
		return nil, nil, nil, err
	}
	var lastTaken *time.Time
	if lastEvent != nil {
		t := lastEvent.CreatedAt
		lastTaken = &t
	}

	cfg, err := s.mealTimeRepository.GetMealTimeConfig(ctx, med.PatientID.String())
	if err != nil {
		log.Warnf("failed to load meal times for patient %s, timing check will be skipped: %v", med.PatientID, err)
		cfg = nil
	}

	return med, lastTaken, cfg, nil
}

// evaluate runs every check and collects every failure; the first failure in
// the fixed order (interval, meal window, expiry, status, stock) becomes the
// primary reason. Override forces acceptance but keeps the warnings for the
// audit trail.
func (s *dosingService) evaluate(med *entities.Medication, lastTaken *time.Time, cfg *entities.MealTimeConfig, override bool) (domain.DosingSafetyResult, error) {
	nowLocal := s.clock.NowLocal()

	var localLast *time.Time
	if lastTaken != nil {
		t := s.clock.ToLocal(*lastTaken)
		localLast = &t
	}

	interval, err := CheckDoseInterval(localLast, med.Frequency, nowLocal)
	if err != nil {
		return domain.DosingSafetyResult{}, err
	}

	meal := CheckMealWindows(med.Frequency, med.TimingRelation, cfg, nowLocal)

	var warnings []string
	primary := ""

	record := func(passed bool, detail string) {
		if passed {
			return
		}
		warnings = append(warnings, detail)
		if primary == "" {
			primary = detail
		}
	}

	record(interval.CanTake, interval.Detail)
	record(meal.CanTake, meal.Reason)
	record(nowLocal.Before(s.clock.ToLocal(med.ExpiryDate)),
		fmt.Sprintf("medication expired on %s", med.ExpiryDate.Format("2006-01-02")))
	record(med.Status == domain.MedicationStatusActive,
		fmt.Sprintf("medication is %s, only active medications can be dosed", med.Status))
	record(med.RemainingQuantity > 0, "medication out of stock")

	result := domain.DosingSafetyResult{
		CanTake:             len(warnings) == 0,
		Warnings:            warnings,
		NextDoseTime:        interval.NextDoseTime,
		HoursRemaining:      interval.HoursRemaining,
		CurrentWindows:      meal.CurrentWindows,
		NextWindow:          meal.NextWindow,
		TimeUntilNextWindow: meal.TimeUntilNext,
	}

	if result.CanTake {
		result.Reason = meal.Reason
	} else {
		result.Reason = primary
	}

	if override && !result.CanTake {
		result.CanTake = true
		result.Override = true
		result.Reason = "override applied"
	}

	return result, nil
}

// appendDoseEvent runs after the decrement has committed, so a failure here
// must not fail the dose. The event log feeds the interval gate, which means
// a missing event can let the next dose through early; log it loudly.
func (s *dosingService) appendDoseEvent(ctx context.Context, med *entities.Medication, result domain.DosingSafetyResult) {
	metadata, err := json.Marshal(doseMetadata{
		Override: result.Override,
		Warnings: result.Warnings,
	})
	if err != nil {
		log.Errorf("failed to encode dose metadata for medication %s: %v", med.ID, err)
		return
	}

	medID := med.ID
	if err := s.activityRepository.AppendEvent(ctx, &entities.ActivityEvent{
		ID:           uuid.New(),
		PatientID:    med.PatientID,
		MedicationID: &medID,
		Type:         domain.ActivityDoseTaken,
		Metadata:     string(metadata),
	}); err != nil {
		log.Errorf("dose for medication %s committed but event append failed, interval gate may allow an early repeat: %v", med.ID, err)
	}
}

// recordRejection is best-effort and only active when rejected-attempt
// logging is enabled.
func (s *dosingService) recordRejection(ctx context.Context, med *entities.Medication, result domain.DosingSafetyResult) {
	if !s.logRejected {
		return
	}

	metadata, err := json.Marshal(doseMetadata{
		Reason:   result.Reason,
		Warnings: result.Warnings,
	})
	if err != nil {
		log.Warnf("failed to encode rejection metadata for medication %s: %v", med.ID, err)
		return
	}

	medID := med.ID
	if err := s.activityRepository.AppendEvent(ctx, &entities.ActivityEvent{
		ID:           uuid.New(),
		PatientID:    med.PatientID,
		MedicationID: &medID,
		Type:         domain.ActivityDoseRejected,
		Metadata:     string(metadata),
	}); err != nil {
		log.Warnf("failed to record rejected dose attempt for medication %s: %v", med.ID, err)
	}
}

func (s *dosingService) recordLowStock(ctx context.Context, med *entities.Medication, remaining int) {
	metadata, _ := json.Marshal(map[string]int{"remaining_quantity": remaining})

	medID := med.ID
	if err := s.activityRepository.AppendEvent(ctx, &entities.ActivityEvent{
		ID:           uuid.New(),
		PatientID:    med.PatientID,
		MedicationID: &medID,
		Type:         domain.ActivityLowStock,
		Metadata:     string(metadata),
	}); err != nil {
		log.Warnf("failed to record low stock event for medication %s: %v", med.ID, err)
	}

	s.notifyCaregivers(ctx, med, "Medication running low",
		fmt.Sprintf("%s has %d dose(s) remaining.", med.Name, remaining))
}

func (s *dosingService) notifyCaregivers(ctx context.Context, med *entities.Medication, title, body string) {
	caregiverIDs, err := s.caregiverService.ListAcceptedCaregiverIDs(ctx, med.PatientID.String())
	if err != nil {
		log.Warnf("failed to list caregivers for patient %s: %v", med.PatientID, err)
		return
	}

	for _, id := range caregiverIDs {
		caregiverID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		if err := s.activityRepository.CreateNotification(ctx, &entities.Notification{
			ID:     uuid.New(),
			UserID: caregiverID,
			Title:  title,
			Body:   body,
		}); err != nil {
			log.Warnf("failed to notify caregiver %s: %v", id, err)
		}
	}
}
