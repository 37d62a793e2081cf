package dosing

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"MediTrack-Backend/pkg/activity"
	"MediTrack-Backend/pkg/caregiver"
	"MediTrack-Backend/pkg/medication"
	"context"
	"time"
)

type mockMedicationRepository struct {
	GetMedicationByIDFn func(ctx context.Context, id string) (*entities.Medication, error)
	CommitDoseFn        func(ctx context.Context, id string, expectedRemaining, newRemaining int, status string, takenAt time.Time) error
}

var _ medication.MedicationRepository = (*mockMedicationRepository)(nil)

func (m *mockMedicationRepository) GetMedicationByID(ctx context.Context, id string) (*entities.Medication, error) {
	return m.GetMedicationByIDFn(ctx, id)
}

func (m *mockMedicationRepository) CommitDose(ctx context.Context, id string, expectedRemaining, newRemaining int, status string, takenAt time.Time) error {
	return m.CommitDoseFn(ctx, id, expectedRemaining, newRemaining, status, takenAt)
}

func (m *mockMedicationRepository) AddMedication(ctx context.Context, med *entities.Medication) error {
	return nil
}

func (m *mockMedicationRepository) GetMedicationByBarcode(ctx context.Context, code string) (*entities.Medication, error) {
	return nil, nil
}

func (m *mockMedicationRepository) UpdateMedication(ctx context.Context, med *entities.Medication) error {
	return nil
}

func (m *mockMedicationRepository) DeleteMedication(ctx context.Context, id string) error {
	return nil
}

func (m *mockMedicationRepository) GetMedications(ctx context.Context, patientID string, status string, page, limit int) ([]*entities.Medication, int64, error) {
	return nil, 0, nil
}

func (m *mockMedicationRepository) BarcodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	return false, nil
}

type mockActivityRepository struct {
	Events              []*entities.ActivityEvent
	Notifications       []*entities.Notification
	GetLatestDoseEvents map[string]*entities.ActivityEvent
	AppendEventFn       func(ctx context.Context, event *entities.ActivityEvent) error
}

var _ activity.ActivityRepository = (*mockActivityRepository)(nil)

func (m *mockActivityRepository) AppendEvent(ctx context.Context, event *entities.ActivityEvent) error {
	if m.AppendEventFn != nil {
		return m.AppendEventFn(ctx, event)
	}
	m.Events = append(m.Events, event)
	return nil
}

func (m *mockActivityRepository) GetLatestDoseEvent(ctx context.Context, patientID, medicationID string) (*entities.ActivityEvent, error) {
	return m.GetLatestDoseEvents[medicationID], nil
}

func (m *mockActivityRepository) GetEvents(ctx context.Context, patientID string, eventType string, page, limit int) ([]*entities.ActivityEvent, int64, error) {
	return m.Events, int64(len(m.Events)), nil
}

func (m *mockActivityRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	m.Notifications = append(m.Notifications, notification)
	return nil
}

func (m *mockActivityRepository) GetNotifications(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error) {
	return m.Notifications, int64(len(m.Notifications)), nil
}

func (m *mockActivityRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	return nil, nil
}

func (m *mockActivityRepository) MarkNotificationRead(ctx context.Context, id string) error {
	return nil
}

func (m *mockActivityRepository) eventsOfType(eventType string) []*entities.ActivityEvent {
	var matched []*entities.ActivityEvent
	for _, e := range m.Events {
		if e.Type == eventType {
			matched = append(matched, e)
		}
	}
	return matched
}

type mockMealTimeStore struct {
	Config *entities.MealTimeConfig
	Err    error
}

var _ MealTimeStore = (*mockMealTimeStore)(nil)

func (m *mockMealTimeStore) GetMealTimeConfig(ctx context.Context, patientID string) (*entities.MealTimeConfig, error) {
	return m.Config, m.Err
}

type mockCaregiverService struct {
	CanAccessPatientFn func(ctx context.Context, userID, patientID string) (bool, error)
	CaregiverIDs       []string
}

var _ caregiver.CaregiverService = (*mockCaregiverService)(nil)

func (m *mockCaregiverService) CanAccessPatient(ctx context.Context, userID, patientID string) (bool, error) {
	if m.CanAccessPatientFn != nil {
		return m.CanAccessPatientFn(ctx, userID, patientID)
	}
	return true, nil
}

func (m *mockCaregiverService) ListAcceptedCaregiverIDs(ctx context.Context, patientID string) ([]string, error) {
	return m.CaregiverIDs, nil
}

func (m *mockCaregiverService) RequestLink(ctx context.Context, req domain.RequestLinkRequest, caregiverID string) (domain.CaregiverLinkResponse, error) {
	return domain.CaregiverLinkResponse{}, nil
}

func (m *mockCaregiverService) RespondLink(ctx context.Context, linkID string, req domain.RespondLinkRequest, patientID string) error {
	return nil
}

func (m *mockCaregiverService) RevokeLink(ctx context.Context, linkID string, userID string) error {
	return nil
}

func (m *mockCaregiverService) GetPatients(ctx context.Context, caregiverID string) ([]domain.LinkedUserResponse, error) {
	return nil, nil
}

func (m *mockCaregiverService) GetCaregivers(ctx context.Context, patientID string) ([]domain.LinkedUserResponse, error) {
	return nil, nil
}
