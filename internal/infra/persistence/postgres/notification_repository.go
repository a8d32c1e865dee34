// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	"turnos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository
// interface. The notifications table is tenant-scoped, so reads must run
// with a business context applied.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists one fan-out log entry.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isRLSViolation(err) {
			return domainerrors.ErrBusinessAccessDenied.WrapMessage("tenant context does not match notification business")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification log")
	}

	notification.ID = notificationM.ID

	return nil
}

// ListByBusiness returns the most recent log entries of a business, newest
// first, capped at limit rows.
func (repo *notificationRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("sent_at DESC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		AppointmentID: data.AppointmentID,
		Kind:          entity.NotificationKind(data.Kind),
		Title:         data.Title,
		Body:          data.Body,
		TotalSent:     data.TotalSent,
		TotalFailed:   data.TotalFailed,
		SentAt:        data.SentAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		AppointmentID: data.AppointmentID,
		Kind:          data.Kind.String(),
		Title:         data.Title,
		Body:          data.Body,
		TotalSent:     data.TotalSent,
		TotalFailed:   data.TotalFailed,
		SentAt:        data.SentAt,
	}
}
