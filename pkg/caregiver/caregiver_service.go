package caregiver

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"MediTrack-Backend/pkg/user"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CaregiverService interface {
		RequestLink(ctx context.Context, req domain.RequestLinkRequest, caregiverID string) (domain.CaregiverLinkResponse, error)
		RespondLink(ctx context.Context, linkID string, req domain.RespondLinkRequest, patientID string) error
		RevokeLink(ctx context.Context, linkID string, userID string) error
		GetPatients(ctx context.Context, caregiverID string) ([]domain.LinkedUserResponse, error)
		GetCaregivers(ctx context.Context, patientID string) ([]domain.LinkedUserResponse, error)

		CanAccessPatient(ctx context.Context, userID, patientID string) (bool, error)
		ListAcceptedCaregiverIDs(ctx context.Context, patientID string) ([]string, error)
	}

	caregiverService struct {
		caregiverRepository CaregiverRepository
		userRepository      user.UserRepository
	}
)

func NewCaregiverService(caregiverRepository CaregiverRepository, userRepository user.UserRepository) CaregiverService {
	return &caregiverService{
		caregiverRepository: caregiverRepository,
		userRepository:      userRepository,
	}
}

func (s *caregiverService) RequestLink(ctx context.Context, req domain.RequestLinkRequest, caregiverID string) (domain.CaregiverLinkResponse, error) {
	caregiver, err := s.userRepository.GetUserByID(ctx, caregiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CaregiverLinkResponse{}, domain.ErrUserNotFound
		}
		return domain.CaregiverLinkResponse{}, err
	}

	if caregiver.Role != domain.RoleCaregiver {
		return domain.CaregiverLinkResponse{}, domain.ErrNotACaregiver
	}

	patient, err := s.userRepository.GetUserByEmail(ctx, req.PatientEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CaregiverLinkResponse{}, domain.ErrUserNotFound
		}
		return domain.CaregiverLinkResponse{}, err
	}

	if patient.Role != domain.RolePatient {
		return domain.CaregiverLinkResponse{}, domain.ErrNotAPatient
	}

	if patient.ID == caregiver.ID {
		return domain.CaregiverLinkResponse{}, domain.ErrSelfLink
	}

	existing, err := s.caregiverRepository.GetLinkByPair(ctx, caregiverID, patient.ID.String())
	if err != nil {
		return domain.CaregiverLinkResponse{}, err
	}
	if existing != nil && (existing.Status == domain.LinkStatusPending || existing.Status == domain.LinkStatusAccepted) {
		return domain.CaregiverLinkResponse{}, domain.ErrLinkAlreadyExists
	}

	link := &entities.CaregiverLink{
		ID:          uuid.New(),
		CaregiverID: caregiver.ID,
		PatientID:   patient.ID,
		Status:      domain.LinkStatusPending,
	}

	if err := s.caregiverRepository.CreateLink(ctx, link); err != nil {
		return domain.CaregiverLinkResponse{}, err
	}

	return domain.CaregiverLinkResponse{
		ID:          link.ID.String(),
		CaregiverID: link.CaregiverID.String(),
		PatientID:   link.PatientID.String(),
		Status:      link.Status,
		CreatedAt:   link.CreatedAt,
	}, nil
}

func (s *caregiverService) RespondLink(ctx context.Context, linkID string, req domain.RespondLinkRequest, patientID string) error {
	link, err := s.caregiverRepository.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLinkNotFound
		}
		return err
	}

	if link.PatientID.String() != patientID {
		return domain.ErrUnauthorized
	}

	if link.Status != domain.LinkStatusPending {
		return domain.ErrLinkNotPending
	}

	if req.Accept {
		link.Status = domain.LinkStatusAccepted
	} else {
		link.Status = domain.LinkStatusDeclined
	}
	now := time.Now()
	link.RespondedAt = &now

	return s.caregiverRepository.UpdateLink(ctx, link)
}

func (s *caregiverService) RevokeLink(ctx context.Context, linkID string, userID string) error {
	link, err := s.caregiverRepository.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLinkNotFound
		}
		return err
	}

	if link.PatientID.String() != userID && link.CaregiverID.String() != userID {
		return domain.ErrUnauthorized
	}

	link.Status = domain.LinkStatusRevoked
	return s.caregiverRepository.UpdateLink(ctx, link)
}

func (s *caregiverService) GetPatients(ctx context.Context, caregiverID string) ([]domain.LinkedUserResponse, error) {
	links, err := s.caregiverRepository.GetLinksByCaregiver(ctx, caregiverID, "all")
	if err != nil {
		return nil, err
	}

	var response []domain.LinkedUserResponse
	for _, link := range links {
		if link.Status == domain.LinkStatusRevoked || link.Patient == nil {
			continue
		}
		response = append(response, domain.LinkedUserResponse{
			LinkID: link.ID.String(),
			UserID: link.PatientID.String(),
			Name:   link.Patient.Name,
			Email:  link.Patient.Email,
			Status: link.Status,
		})
	}
	return response, nil
}

func (s *caregiverService) GetCaregivers(ctx context.Context, patientID string) ([]domain.LinkedUserResponse, error) {
	links, err := s.caregiverRepository.GetLinksByPatient(ctx, patientID, "all")
	if err != nil {
		return nil, err
	}

	var response []domain.LinkedUserResponse
	for _, link := range links {
		if link.Status == domain.LinkStatusRevoked || link.Caregiver == nil {
			continue
		}
		response = append(response, domain.LinkedUserResponse{
			LinkID: link.ID.String(),
			UserID: link.CaregiverID.String(),
			Name:   link.Caregiver.Name,
			Email:  link.Caregiver.Email,
			Status: link.Status,
		})
	}
	return response, nil
}

// CanAccessPatient allows the patient themself and any caregiver holding an
// accepted link.
func (s *caregiverService) CanAccessPatient(ctx context.Context, userID, patientID string) (bool, error) {
	if userID == patientID {
		return true, nil
	}

	link, err := s.caregiverRepository.GetLinkByPair(ctx, userID, patientID)
	if err != nil {
		return false, err
	}
	return link != nil && link.Status == domain.LinkStatusAccepted, nil
}

func (s *caregiverService) ListAcceptedCaregiverIDs(ctx context.Context, patientID string) ([]string, error) {
	links, err := s.caregiverRepository.GetLinksByPatient(ctx, patientID, domain.LinkStatusAccepted)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.CaregiverID.String())
	}
	return ids, nil
}
