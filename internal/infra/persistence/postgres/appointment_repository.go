// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	"turnos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// appointmentRepository implements the repository.AppointmentRepository
// interface using GORM. The appointments table sits behind a row-level
// security policy, so these methods only see rows of the business whose
// context is set on the current connection. Callers run them through the
// transaction manager together with the tenant context repository.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{
		db: db,
	}
}

// Create persists a new appointment.
func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(appointmentM).Error; err != nil {
		if isRLSViolation(err) {
			return domainerrors.ErrBusinessAccessDenied.WrapMessage("tenant context does not match appointment business")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("appointment violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}

	appointment.ID = appointmentM.ID
	appointment.CreatedAt = appointmentM.CreatedAt
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// FindByID retrieves an appointment by its unique ID. Under row-level
// security a foreign tenant's appointment is indistinguishable from a
// missing one; both come back as not found.
func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by id")
	}

	return toAppointmentDomain(&appointmentM), nil
}

// List returns the appointments of a business matching the filter, ordered
// by start time.
func (repo *appointmentRepository) List(ctx context.Context, businessID uuid.UUID, filter repository.AppointmentFilter) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	query := repo.db.WithContext(ctx).Where("business_id = ?", businessID)
	if filter.From != nil {
		query = query.Where("starts_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("starts_at < ?", *filter.To)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	if err := query.Order("starts_at ASC").Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments, nil
}

// ExistsOverlapping reports whether any non-cancelled appointment of the
// business intersects the half-open interval [start, end).
func (repo *appointmentRepository) ExistsOverlapping(ctx context.Context, businessID uuid.UUID, start, end time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("business_id = ? AND status <> ? AND starts_at < ? AND ends_at > ?",
			businessID, entity.AppointmentCancelled.String(), end, start).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check overlapping appointments")
	}

	return count > 0, nil
}

// Update rewrites the mutable fields of an appointment row.
func (repo *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ?", appointment.ID).
		Updates(map[string]any{
			"status":        appointment.Status.String(),
			"notes":         appointment.Notes,
			"cancel_reason": appointment.CancelReason,
			"cancelled_at":  appointment.CancelledAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update appointment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAppointmentDomain converts a GORM AppointmentModel to a domain Appointment entity.
func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		Customer: entity.Customer{
			Name:  data.CustomerName,
			Email: data.CustomerEmail,
			Phone: data.CustomerPhone,
		},
		StartsAt:     data.StartsAt,
		EndsAt:       data.EndsAt,
		Status:       entity.AppointmentStatus(data.Status),
		Notes:        data.Notes,
		CancelReason: data.CancelReason,
		CancelledAt:  data.CancelledAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAppointmentDomain converts a domain Appointment entity to a GORM AppointmentModel.
func fromAppointmentDomain(data *entity.Appointment) *model.AppointmentModel {
	if data == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		CustomerName:  data.Customer.Name,
		CustomerEmail: data.Customer.Email,
		CustomerPhone: data.Customer.Phone,
		StartsAt:      data.StartsAt,
		EndsAt:        data.EndsAt,
		Status:        data.Status.String(),
		Notes:         data.Notes,
		CancelReason:  data.CancelReason,
		CancelledAt:   data.CancelledAt,
	}
}
