package medication

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"MediTrack-Backend/pkg/activity"
	"MediTrack-Backend/pkg/caregiver"
	"context"
	"time"

	"gorm.io/gorm"
)

type mockMedicationRepository struct {
	BarcodeExistsFn        func(ctx context.Context, code string, excludeID string) (bool, error)
	AddFn                  func(ctx context.Context, med *entities.Medication) error
	UpdateFn               func(ctx context.Context, med *entities.Medication) error
	GetMedicationByIDFn    func(ctx context.Context, id string) (*entities.Medication, error)
	GetByBarcodeFn         func(ctx context.Context, code string) (*entities.Medication, error)
}

var _ MedicationRepository = (*mockMedicationRepository)(nil)

func (m *mockMedicationRepository) BarcodeExists(ctx context.Context, code string, excludeID string) (bool, error) {
	if m.BarcodeExistsFn != nil {
		return m.BarcodeExistsFn(ctx, code, excludeID)
	}
	return false, nil
}

func (m *mockMedicationRepository) AddMedication(ctx context.Context, med *entities.Medication) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, med)
	}
	return nil
}

func (m *mockMedicationRepository) UpdateMedication(ctx context.Context, med *entities.Medication) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, med)
	}
	return nil
}

func (m *mockMedicationRepository) GetMedicationByID(ctx context.Context, id string) (*entities.Medication, error) {
	if m.GetMedicationByIDFn != nil {
		return m.GetMedicationByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMedicationRepository) GetMedicationByBarcode(ctx context.Context, code string) (*entities.Medication, error) {
	if m.GetByBarcodeFn != nil {
		return m.GetByBarcodeFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMedicationRepository) DeleteMedication(ctx context.Context, id string) error {
	return nil
}

func (m *mockMedicationRepository) GetMedications(ctx context.Context, patientID string, status string, page, limit int) ([]*entities.Medication, int64, error) {
	return nil, 0, nil
}

func (m *mockMedicationRepository) CommitDose(ctx context.Context, id string, expectedRemaining, newRemaining int, status string, takenAt time.Time) error {
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type mockActivityRepository struct {
	Events []*entities.ActivityEvent
}

var _ activity.ActivityRepository = (*mockActivityRepository)(nil)

func (m *mockActivityRepository) AppendEvent(ctx context.Context, event *entities.ActivityEvent) error {
	m.Events = append(m.Events, event)
	return nil
}

func (m *mockActivityRepository) GetLatestDoseEvent(ctx context.Context, patientID, medicationID string) (*entities.ActivityEvent, error) {
	return nil, nil
}

func (m *mockActivityRepository) GetEvents(ctx context.Context, patientID string, eventType string, page, limit int) ([]*entities.ActivityEvent, int64, error) {
	return m.Events, int64(len(m.Events)), nil
}

func (m *mockActivityRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return nil
}

func (m *mockActivityRepository) GetNotifications(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error) {
	return nil, 0, nil
}

func (m *mockActivityRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	return nil, nil
}

func (m *mockActivityRepository) MarkNotificationRead(ctx context.Context, id string) error {
	return nil
}

type mockCaregiverService struct {
	Allowed bool
}

var _ caregiver.CaregiverService = (*mockCaregiverService)(nil)

func (m *mockCaregiverService) CanAccessPatient(ctx context.Context, userID, patientID string) (bool, error) {
	if userID == patientID {
		return true, nil
	}
	return m.Allowed, nil
}

func (m *mockCaregiverService) ListAcceptedCaregiverIDs(ctx context.Context, patientID string) ([]string, error) {
	return nil, nil
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
