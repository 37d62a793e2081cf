package activity

import (
	"MediTrack-Backend/domain"
	"MediTrack-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	ActivityRepository interface {
		AppendEvent(ctx context.Context, event *entities.ActivityEvent) error
		GetLatestDoseEvent(ctx context.Context, patientID, medicationID string) (*entities.ActivityEvent, error)
		GetEvents(ctx context.Context, patientID string, eventType string, page, limit int) ([]*entities.ActivityEvent, int64, error)
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetNotifications(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error)
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		MarkNotificationRead(ctx context.Context, id string) error
	}

	activityRepository struct {
		db *gorm.DB
	}
)

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) AppendEvent(ctx context.Context, event *entities.ActivityEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetLatestDoseEvent returns the most recent dose_taken event for the
// patient and medication, or nil when no dose was ever logged. The event log
// is the authoritative source for "last taken", not the cached field on the
// medication record.
func (r *activityRepository) GetLatestDoseEvent(ctx context.Context, patientID, medicationID string) (*entities.ActivityEvent, error) {
	var event entities.ActivityEvent
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND medication_id = ? AND type = ?", patientID, medicationID, domain.ActivityDoseTaken).
		Order("created_at DESC").
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *activityRepository) GetEvents(ctx context.Context, patientID string, eventType string, page, limit int) ([]*entities.ActivityEvent, int64, error) {
	var events []*entities.ActivityEvent
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("patient_id = ?", patientID)
	if eventType != "all" && eventType != "" {
		query = query.Where("type = ?", eventType)
	}

	if err := query.Model(&entities.ActivityEvent{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, count, nil
}

func (r *activityRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *activityRepository) GetNotifications(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error) {
	var notifications []*entities.Notification
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, count, nil
}

func (r *activityRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *activityRepository) MarkNotificationRead(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true}).Error
}
