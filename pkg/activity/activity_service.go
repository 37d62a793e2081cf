package activity

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/pkg/caregiver"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	ActivityService interface {
		GetActivityFeed(ctx context.Context, patientID string, userID string, eventType string, page, limit int) ([]domain.ActivityEventResponse, int64, error)
		GetNotifications(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, error)
		MarkNotificationRead(ctx context.Context, notificationID string, userID string) error
	}

	activityService struct {
		activityRepository ActivityRepository
		caregiverService   caregiver.CaregiverService
	}
)

func NewActivityService(activityRepository ActivityRepository, caregiverService caregiver.CaregiverService) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		caregiverService:   caregiverService,
	}
}

func (s *activityService) GetActivityFeed(ctx context.Context, patientID string, userID string, eventType string, page, limit int) ([]domain.ActivityEventResponse, int64, error) {
	allowed, err := s.caregiverService.CanAccessPatient(ctx, userID, patientID)
	if err != nil {
		return nil, 0, err
	}
	if !allowed {
		return nil, 0, domain.ErrUnauthorized
	}

	events, count, err := s.activityRepository.GetEvents(ctx, patientID, eventType, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.ActivityEventResponse
	for _, event := range events {
		item := domain.ActivityEventResponse{
			ID:        event.ID.String(),
			PatientID: event.PatientID.String(),
			Type:      event.Type,
			Metadata:  event.Metadata,
			CreatedAt: event.CreatedAt,
		}
		if event.MedicationID != nil {
			item.MedicationID = event.MedicationID.String()
		}
		response = append(response, item)
	}

	return response, count, nil
}

func (s *activityService) GetNotifications(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, error) {
	notifications, count, err := s.activityRepository.GetNotifications(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.NotificationResponse
	for _, notification := range notifications {
		response = append(response, domain.NotificationResponse{
			ID:        notification.ID.String(),
			Title:     notification.Title,
			Body:      notification.Body,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		})
	}

	return response, count, nil
}

func (s *activityService) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	notification, err := s.activityRepository.GetNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}

	if notification.UserID.String() != userID {
		return domain.ErrUnauthorized
	}

	return s.activityRepository.MarkNotificationRead(ctx, notificationID)
}
