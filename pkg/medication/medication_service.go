package medication

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"MediTrack-Backend/internal/utils/storage"
	"MediTrack-Backend/pkg/activity"
	"MediTrack-Backend/pkg/caregiver"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	Clock interface {
		Now() time.Time
	}

	MedicationService interface {
		AddMedication(ctx context.Context, req domain.AddMedicationRequest, userID string) (domain.MedicationResponse, error)
		UpdateMedication(ctx context.Context, id string, req domain.UpdateMedicationRequest, userID string) error
		DeleteMedication(ctx context.Context, id string, userID string) error
		GetMedications(ctx context.Context, patientID string, userID string, status string, page, limit int) ([]domain.MedicationResponse, int64, error)
		GetMedicationByID(ctx context.Context, id string, userID string) (domain.MedicationResponse, error)
		ResolveBarcode(ctx context.Context, code string, userID string) (domain.MedicationResponse, error)
		RegenerateBarcode(ctx context.Context, id string, userID string) (string, error)
		UploadMedicationImage(ctx context.Context, req domain.UploadMedicationImageRequest, userID string) error
	}

	medicationService struct {
		medicationRepository MedicationRepository
		activityRepository   activity.ActivityRepository
		caregiverService     caregiver.CaregiverService
		s3                   storage.AwsS3
		clock                Clock
	}
)

func NewMedicationService(
	medicationRepository MedicationRepository,
	activityRepository activity.ActivityRepository,
	caregiverService caregiver.CaregiverService,
	s3 storage.AwsS3,
	clock Clock,
) MedicationService {
	return &medicationService{
		medicationRepository: medicationRepository,
		activityRepository:   activityRepository,
		caregiverService:     caregiverService,
		s3:                   s3,
		clock:                clock,
	}
}

func (s *medicationService) AddMedication(ctx context.Context, req domain.AddMedicationRequest, userID string) (domain.MedicationResponse, error) {
	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.MedicationResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.TotalQuantity <= 0 {
		return domain.MedicationResponse{}, domain.ErrInvalidQuantity
	}

	patientID := userID
	if req.PatientID != "" {
		patientID = req.PatientID
	}

	if err := s.checkAccess(ctx, userID, patientID); err != nil {
		return domain.MedicationResponse{}, err
	}

	patientUUID, err := uuid.Parse(patientID)
	if err != nil {
		return domain.MedicationResponse{}, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MedicationResponse{}, domain.ErrParseUUID
	}

	med := &entities.Medication{
		ID:                uuid.New(),
		PatientID:         patientUUID,
		CreatedByID:       userUUID,
		Name:              req.Name,
		Dosage:            req.Dosage,
		Frequency:         req.Frequency,
		TimingRelation:    req.TimingRelation,
		TotalQuantity:     req.TotalQuantity,
		RemainingQuantity: req.TotalQuantity,
		ExpiryDate:        expiryDate,
		Status:            domain.MedicationStatusActive,
		Notes:             req.Notes,
	}

	if err := s.saveWithBarcode(ctx, med, s.medicationRepository.AddMedication); err != nil {
		return domain.MedicationResponse{}, err
	}

	s.recordActivity(ctx, med, domain.ActivityMedicationAdded)

	return toMedicationResponse(med), nil
}

func (s *medicationService) UpdateMedication(ctx context.Context, id string, req domain.UpdateMedicationRequest, userID string) error {
	med, err := s.getMedication(ctx, id, userID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		med.Name = req.Name
	}
	if req.Dosage != "" {
		med.Dosage = req.Dosage
	}
	if req.Frequency > 0 {
		med.Frequency = req.Frequency
	}
	if req.TimingRelation != "" {
		med.TimingRelation = req.TimingRelation
	}
	if req.TotalQuantity > 0 {
		med.TotalQuantity = req.TotalQuantity
		if med.RemainingQuantity > med.TotalQuantity {
			med.RemainingQuantity = med.TotalQuantity
		}
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		med.ExpiryDate = expiryDate
	}
	if req.Status != "" {
		med.Status = req.Status
	}
	if req.Notes != "" {
		med.Notes = req.Notes
	}

	if err := s.medicationRepository.UpdateMedication(ctx, med); err != nil {
		return err
	}

	s.recordActivity(ctx, med, domain.ActivityMedicationUpdated)
	return nil
}

func (s *medicationService) DeleteMedication(ctx context.Context, id string, userID string) error {
	med, err := s.getMedication(ctx, id, userID)
	if err != nil {
		return err
	}

	if med.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(med.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	if err := s.medicationRepository.DeleteMedication(ctx, id); err != nil {
		return err
	}

	s.recordActivity(ctx, med, domain.ActivityMedicationDeleted)
	return nil
}

func (s *medicationService) GetMedications(ctx context.Context, patientID string, userID string, status string, page, limit int) ([]domain.MedicationResponse, int64, error) {
	if err := s.checkAccess(ctx, userID, patientID); err != nil {
		return nil, 0, err
	}

	medications, count, err := s.medicationRepository.GetMedications(ctx, patientID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.MedicationResponse
	for _, med := range medications {
		response = append(response, toMedicationResponse(med))
	}
	return response, count, nil
}

func (s *medicationService) GetMedicationByID(ctx context.Context, id string, userID string) (domain.MedicationResponse, error) {
	med, err := s.getMedication(ctx, id, userID)
	if err != nil {
		return domain.MedicationResponse{}, err
	}
	return toMedicationResponse(med), nil
}

// ResolveBarcode looks a medication up by its scanned code. An unknown code
// is a reportable not-found condition, never a permission failure.
func (s *medicationService) ResolveBarcode(ctx context.Context, code string, userID string) (domain.MedicationResponse, error) {
	med, err := s.medicationRepository.GetMedicationByBarcode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MedicationResponse{}, domain.ErrMedicationNotFound
		}
		return domain.MedicationResponse{}, err
	}

	if err := s.checkAccess(ctx, userID, med.PatientID.String()); err != nil {
		return domain.MedicationResponse{}, err
	}

	return toMedicationResponse(med), nil
}

func (s *medicationService) RegenerateBarcode(ctx context.Context, id string, userID string) (string, error) {
	med, err := s.getMedication(ctx, id, userID)
	if err != nil {
		return "", err
	}

	if err := s.saveWithBarcode(ctx, med, s.medicationRepository.UpdateMedication); err != nil {
		return "", err
	}

	return med.BarcodeData, nil
}

func (s *medicationService) UploadMedicationImage(ctx context.Context, req domain.UploadMedicationImageRequest, userID string) error {
	med, err := s.getMedication(ctx, req.MedicationID, userID)
	if err != nil {
		return err
	}

	fileName := fmt.Sprintf("medication-%s", med.ID.String())
	var objectKey string
	var uploadErr error

	if med.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(med.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "medications", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "medications", storage.AllowImage...)
	}

	if uploadErr != nil {
		return uploadErr
	}

	med.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.medicationRepository.UpdateMedication(ctx, med)
}

func (s *medicationService) getMedication(ctx context.Context, id string, userID string) (*entities.Medication, error) {
	med, err := s.medicationRepository.GetMedicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMedicationNotFound
		}
		return nil, err
	}

	if err := s.checkAccess(ctx, userID, med.PatientID.String()); err != nil {
		return nil, err
	}
	return med, nil
}

func (s *medicationService) checkAccess(ctx context.Context, userID, patientID string) error {
	allowed, err := s.caregiverService.CanAccessPatient(ctx, userID, patientID)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrUnauthorized
	}
	return nil
}

func (s *medicationService) recordActivity(ctx context.Context, med *entities.Medication, eventType string) {
	medID := med.ID
	if err := s.activityRepository.AppendEvent(ctx, &entities.ActivityEvent{
		ID:           uuid.New(),
		PatientID:    med.PatientID,
		MedicationID: &medID,
		Type:         eventType,
		Metadata:     fmt.Sprintf(`{"name":%q}`, med.Name),
	}); err != nil {
		log.Warnf("failed to record %s event for medication %s: %v", eventType, med.ID, err)
	}
}

func toMedicationResponse(med *entities.Medication) domain.MedicationResponse {
	return domain.MedicationResponse{
		ID:                med.ID.String(),
		PatientID:         med.PatientID.String(),
		Name:              med.Name,
		Dosage:            med.Dosage,
		Frequency:         med.Frequency,
		TimingRelation:    med.TimingRelation,
		TotalQuantity:     med.TotalQuantity,
		RemainingQuantity: med.RemainingQuantity,
		ExpiryDate:        med.ExpiryDate,
		Status:            med.Status,
		LastTaken:         med.LastTaken,
		BarcodeData:       med.BarcodeData,
		Notes:             med.Notes,
		ImageURL:          med.ImageURL,
		CreatedAt:         med.CreatedAt,
	}
}
