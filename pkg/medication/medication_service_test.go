package medication

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestService(repo *mockMedicationRepository, activities *mockActivityRepository, caregivers *mockCaregiverService) MedicationService {
	return NewMedicationService(repo, activities, caregivers, nil,
		fixedClock{now: time.Date(2026, 3, 10, 6, 30, 0, 0, time.UTC)})
}

func validAddRequest() domain.AddMedicationRequest {
	return domain.AddMedicationRequest{
		Name:           "Metformin",
		Dosage:         "500mg",
		Frequency:      2,
		TimingRelation: domain.TimingAfterFood,
		TotalQuantity:  30,
		ExpiryDate:     "2027-01-31",
	}
}

func TestAddMedicationAssignsBarcodeAndStock(t *testing.T) {
	var saved *entities.Medication
	repo := &mockMedicationRepository{
		AddFn: func(ctx context.Context, med *entities.Medication) error {
			saved = med
			return nil
		},
	}
	activities := &mockActivityRepository{}
	service := newTestService(repo, activities, &mockCaregiverService{})
	patientID := uuid.NewString()

	res, err := service.AddMedication(context.Background(), validAddRequest(), patientID)

	assert.NoError(t, err)
	assert.Equal(t, patientID, res.PatientID)
	assert.Equal(t, domain.MedicationStatusActive, res.Status)
	assert.Equal(t, 30, res.RemainingQuantity)
	assert.True(t, strings.HasPrefix(res.BarcodeData, "MT"))
	assert.Len(t, res.BarcodeData, 10)

	if assert.NotNil(t, saved) {
		assert.Equal(t, "MT"+BarcodeBase(saved.ID.String()), saved.BarcodeData)
	}
	if assert.Len(t, activities.Events, 1) {
		assert.Equal(t, domain.ActivityMedicationAdded, activities.Events[0].Type)
	}
}

func TestAddMedicationRejectsMalformedExpiry(t *testing.T) {
	service := newTestService(&mockMedicationRepository{}, &mockActivityRepository{}, &mockCaregiverService{})

	req := validAddRequest()
	req.ExpiryDate = "31/01/2027"
	_, err := service.AddMedication(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestAddMedicationForPatientRequiresLink(t *testing.T) {
	caregivers := &mockCaregiverService{Allowed: false}
	service := newTestService(&mockMedicationRepository{}, &mockActivityRepository{}, caregivers)

	req := validAddRequest()
	req.PatientID = uuid.NewString()
	_, err := service.AddMedication(context.Background(), req, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	caregivers.Allowed = true
	_, err = service.AddMedication(context.Background(), req, uuid.NewString())
	assert.NoError(t, err)
}

func TestResolveBarcodeUnknownCode(t *testing.T) {
	service := newTestService(&mockMedicationRepository{}, &mockActivityRepository{}, &mockCaregiverService{})

	_, err := service.ResolveBarcode(context.Background(), "MTDEADBEEF", uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrMedicationNotFound)
}

func TestResolveBarcodeChecksAccess(t *testing.T) {
	patientID := uuid.New()
	med := &entities.Medication{
		ID:          uuid.New(),
		PatientID:   patientID,
		Name:        "Metformin",
		BarcodeData: "MT3CBB3210",
	}
	repo := &mockMedicationRepository{
		GetByBarcodeFn: func(ctx context.Context, code string) (*entities.Medication, error) {
			return med, nil
		},
	}
	service := newTestService(repo, &mockActivityRepository{}, &mockCaregiverService{})

	_, err := service.ResolveBarcode(context.Background(), "MT3CBB3210", uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	res, err := service.ResolveBarcode(context.Background(), "MT3CBB3210", patientID.String())
	assert.NoError(t, err)
	assert.Equal(t, med.ID.String(), res.ID)
}

func TestUpdateMedicationPartialFields(t *testing.T) {
	patientID := uuid.New()
	med := &entities.Medication{
		ID:                uuid.New(),
		PatientID:         patientID,
		Name:              "Metformin",
		Dosage:            "500mg",
		Frequency:         2,
		TotalQuantity:     30,
		RemainingQuantity: 30,
		Status:            domain.MedicationStatusActive,
	}
	repo := &mockMedicationRepository{
		GetMedicationByIDFn: func(ctx context.Context, id string) (*entities.Medication, error) {
			return med, nil
		},
	}
	service := newTestService(repo, &mockActivityRepository{}, &mockCaregiverService{})

	err := service.UpdateMedication(context.Background(), med.ID.String(), domain.UpdateMedicationRequest{
		Dosage: "850mg",
		Status: domain.MedicationStatusPaused,
	}, patientID.String())

	assert.NoError(t, err)
	assert.Equal(t, "850mg", med.Dosage)
	assert.Equal(t, domain.MedicationStatusPaused, med.Status)
	assert.Equal(t, "Metformin", med.Name)
}

func TestUpdateMedicationShrinkingTotalCapsRemaining(t *testing.T) {
	patientID := uuid.New()
	med := &entities.Medication{
		ID:                uuid.New(),
		PatientID:         patientID,
		TotalQuantity:     30,
		RemainingQuantity: 25,
	}
	repo := &mockMedicationRepository{
		GetMedicationByIDFn: func(ctx context.Context, id string) (*entities.Medication, error) {
			return med, nil
		},
	}
	service := newTestService(repo, &mockActivityRepository{}, &mockCaregiverService{})

	err := service.UpdateMedication(context.Background(), med.ID.String(), domain.UpdateMedicationRequest{
		TotalQuantity: 10,
	}, patientID.String())

	assert.NoError(t, err)
	assert.Equal(t, 10, med.TotalQuantity)
	assert.Equal(t, 10, med.RemainingQuantity)
}

func TestRegenerateBarcodeKeepsPrefix(t *testing.T) {
	patientID := uuid.New()
	med := &entities.Medication{
		ID:          uuid.New(),
		PatientID:   patientID,
		BarcodeData: "MTOLDCODE1",
	}
	repo := &mockMedicationRepository{
		GetMedicationByIDFn: func(ctx context.Context, id string) (*entities.Medication, error) {
			return med, nil
		},
	}
	service := newTestService(repo, &mockActivityRepository{}, &mockCaregiverService{})

	code, err := service.RegenerateBarcode(context.Background(), med.ID.String(), patientID.String())

	assert.NoError(t, err)
	assert.Equal(t, "MT"+BarcodeBase(med.ID.String()), code)
	assert.Equal(t, code, med.BarcodeData)
}
