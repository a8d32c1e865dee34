package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"turnos/config"
	"turnos/internal/colombia"
	deliverycontext "turnos/internal/delivery/context"
	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	"turnos/internal/domain/service"
	"turnos/internal/infra/metrics"
	"turnos/internal/usecase"
)

const (
	defaultMaxAdvanceDays = 30
	defaultSlotMinutes    = 30
)

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	txManager      repository.TransactionManager
	businessRepo   repository.BusinessRepository
	publisher      service.EventPublisher
	metrics        *metrics.Metrics
	maxAdvanceDays int
	slotMinutes    int
	logger         *slog.Logger
}

// AppointmentServiceParams holds dependencies for the appointment service, injected by Fx.
type AppointmentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	Publisher    service.EventPublisher
	Metrics      *metrics.Metrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(params AppointmentServiceParams) usecase.AppointmentUsecase {
	maxAdvanceDays := defaultMaxAdvanceDays
	slotMinutes := defaultSlotMinutes
	if params.Config != nil && params.Config.Booking != nil {
		if params.Config.Booking.MaxAdvanceDays > 0 {
			maxAdvanceDays = params.Config.Booking.MaxAdvanceDays
		}
		if params.Config.Booking.SlotMinutes > 0 {
			slotMinutes = params.Config.Booking.SlotMinutes
		}
	}

	return &appointmentService{
		txManager:      params.TxManager,
		businessRepo:   params.BusinessRepo,
		publisher:      params.Publisher,
		metrics:        params.Metrics,
		maxAdvanceDays: maxAdvanceDays,
		slotMinutes:    slotMinutes,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *appointmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Book validates and persists a public booking. The overlap check and the
// insert run inside one transaction with the tenant context applied, so the
// row-level-security scope and the uniqueness of the slot hold on the same
// connection.
func (srv *appointmentService) Book(ctx context.Context, input *usecase.BookAppointmentInput) (*entity.Appointment, error) {
	business, err := srv.businessRepo.FindByID(ctx, input.BusinessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to load business")
	}

	loc := business.Settings.Location()
	startsAt := input.StartsAt.In(loc)
	endsAt := input.EndsAt.In(loc)

	if err := srv.validateSlot(business, startsAt, endsAt, time.Now().In(loc)); err != nil {
		return nil, err
	}

	phone, _ := colombia.NormalizePhone(input.CustomerPhone)
	now := time.Now()
	appointment := &entity.Appointment{
		ID:         uuid.New(),
		BusinessID: input.BusinessID,
		Customer: entity.Customer{
			Name:  input.CustomerName,
			Email: input.CustomerEmail,
			Phone: phone,
		},
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Status:    entity.AppointmentPending,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTenantContextRepository().SetCurrentBusiness(ctx, input.BusinessID); err != nil {
			return errors.Wrap(err, "failed to set business context")
		}

		appointmentRepo := repoFactory.NewAppointmentRepository()

		taken, err := appointmentRepo.ExistsOverlapping(ctx, input.BusinessID, startsAt, endsAt)
		if err != nil {
			return errors.Wrap(err, "failed to check for overlaps")
		}
		if taken {
			return domainerrors.ErrAppointmentOverlap
		}

		return appointmentRepo.Create(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.RecordAppointmentBooked()
	srv.publishEvent(ctx, business.OwnerID, appointment, "created")

	srv.log(ctx).Info("Appointment booked",
		slog.Any("businessID", input.BusinessID), slog.Any("appointmentID", appointment.ID),
		slog.Time("startsAt", startsAt))

	return appointment, nil
}

// validateSlot enforces the booking rules against the business calendar.
// All times are already in the business timezone.
func (srv *appointmentService) validateSlot(business *entity.Business, startsAt, endsAt, now time.Time) error {
	if !endsAt.After(startsAt) {
		return domainerrors.ErrValidationFailed.WithDetails("ends_at must be after starts_at")
	}

	if startsAt.Before(now) {
		return domainerrors.ErrAppointmentInPast
	}

	if startsAt.After(now.AddDate(0, 0, srv.maxAdvanceDays)) {
		return domainerrors.ErrBookingWindowExceeded
	}

	sy, sm, sd := startsAt.Date()
	ey, em, ed := endsAt.Date()
	if sy != ey || sm != em || sd != ed {
		return domainerrors.ErrOutsideBusinessHours
	}

	if colombia.IsHoliday(startsAt) {
		return domainerrors.ErrHolidayClosed
	}

	hour, ok := business.Settings.HourFor(startsAt.Weekday())
	if !ok || !hour.IsOpen {
		return domainerrors.ErrOutsideBusinessHours
	}

	openMin, closeMin, ok := hour.ClockMinutes()
	if !ok {
		return domainerrors.ErrOutsideBusinessHours
	}

	startMin := startsAt.Hour()*60 + startsAt.Minute()
	endMin := endsAt.Hour()*60 + endsAt.Minute()
	if startMin < openMin || endMin > closeMin {
		return domainerrors.ErrOutsideBusinessHours
	}

	return nil
}

// List returns the business's appointments for its owner.
func (srv *appointmentService) List(ctx context.Context, input *usecase.ListAppointmentsInput) ([]*entity.Appointment, error) {
	if err := srv.requireOwner(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	filter := repository.AppointmentFilter{
		From:   input.From,
		To:     input.To,
		Status: input.Status,
	}

	var appointments []*entity.Appointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTenantContextRepository().SetBusinessContext(ctx, input.UserID, input.BusinessID); err != nil {
			return errors.Wrap(err, "failed to set business context")
		}

		rows, err := repoFactory.NewAppointmentRepository().List(ctx, input.BusinessID, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list appointments")
		}
		appointments = rows

		return nil
	})
	if err != nil {
		return nil, err
	}

	return appointments, nil
}

// Get returns one appointment of the business.
func (srv *appointmentService) Get(ctx context.Context, userID, businessID, appointmentID uuid.UUID) (*entity.Appointment, error) {
	if err := srv.requireOwner(ctx, userID, businessID); err != nil {
		return nil, err
	}

	var appointment *entity.Appointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTenantContextRepository().SetBusinessContext(ctx, userID, businessID); err != nil {
			return errors.Wrap(err, "failed to set business context")
		}

		row, err := repoFactory.NewAppointmentRepository().FindByID(ctx, appointmentID)
		if err != nil {
			return err
		}
		appointment = row

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, domainerrors.ErrAppointmentNotFound
		}

		return nil, err
	}

	// Row-level security already hides foreign rows; this guards the case
	// where the id belongs to another business of the same owner.
	if appointment.BusinessID != businessID {
		return nil, domainerrors.ErrAppointmentNotFound
	}

	return appointment, nil
}

// Confirm moves a pending appointment to confirmed.
func (srv *appointmentService) Confirm(ctx context.Context, input *usecase.UpdateAppointmentInput) (*entity.Appointment, error) {
	return srv.transition(ctx, input, entity.AppointmentConfirmed)
}

// Cancel cancels a pending or confirmed appointment and records why.
func (srv *appointmentService) Cancel(ctx context.Context, input *usecase.UpdateAppointmentInput) (*entity.Appointment, error) {
	return srv.transition(ctx, input, entity.AppointmentCancelled)
}

// transition applies a status change under the tenant context.
func (srv *appointmentService) transition(ctx context.Context, input *usecase.UpdateAppointmentInput, next entity.AppointmentStatus) (*entity.Appointment, error) {
	if err := srv.requireOwner(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	var appointment *entity.Appointment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTenantContextRepository().SetBusinessContext(ctx, input.UserID, input.BusinessID); err != nil {
			return errors.Wrap(err, "failed to set business context")
		}

		appointmentRepo := repoFactory.NewAppointmentRepository()

		row, err := appointmentRepo.FindByID(ctx, input.AppointmentID)
		if err != nil {
			if errors.Is(err, repository.ErrAppointmentNotFound) {
				return domainerrors.ErrAppointmentNotFound
			}

			return errors.Wrap(err, "failed to load appointment")
		}
		if row.BusinessID != input.BusinessID {
			return domainerrors.ErrAppointmentNotFound
		}

		if !row.Status.CanTransitionTo(next) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(
				row.Status.String() + " -> " + next.String())
		}

		now := time.Now()
		row.Status = next
		row.UpdatedAt = now
		if next == entity.AppointmentCancelled {
			row.CancelReason = input.CancelReason
			row.CancelledAt = &now
		}

		if err := appointmentRepo.Update(ctx, row); err != nil {
			return errors.Wrap(err, "failed to update appointment")
		}
		appointment = row

		return nil
	})
	if err != nil {
		return nil, err
	}

	if next == entity.AppointmentCancelled {
		srv.publishEvent(ctx, input.UserID, appointment, "cancelled")
	}

	return appointment, nil
}

// Availability computes the open slots of one calendar day. Closed days and
// holidays return Open=false with a Spanish reason instead of an error.
func (srv *appointmentService) Availability(ctx context.Context, businessID uuid.UUID, date time.Time) (*usecase.AvailabilityOutput, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to load business")
	}

	loc := business.Settings.Location()
	year, month, day := date.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	out := &usecase.AvailabilityOutput{Date: dayStart, Slots: []usecase.TimeSlot{}}

	now := time.Now().In(loc)
	if dayEnd.Before(now) {
		out.Reason = "La fecha ya pasó"

		return out, nil
	}
	if dayStart.After(now.AddDate(0, 0, srv.maxAdvanceDays)) {
		out.Reason = "La fecha está fuera del período de reserva"

		return out, nil
	}

	if colombia.IsHoliday(dayStart) {
		out.Reason = "Festivo: " + colombia.HolidayName(dayStart)

		return out, nil
	}

	hour, ok := business.Settings.HourFor(dayStart.Weekday())
	if !ok || !hour.IsOpen {
		out.Reason = "Cerrado este día"

		return out, nil
	}

	openMin, closeMin, ok := hour.ClockMinutes()
	if !ok {
		out.Reason = "Horario no configurado"

		return out, nil
	}

	var booked []*entity.Appointment
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTenantContextRepository().SetCurrentBusiness(ctx, businessID); err != nil {
			return errors.Wrap(err, "failed to set business context")
		}

		rows, err := repoFactory.NewAppointmentRepository().List(ctx, businessID, repository.AppointmentFilter{
			From: &dayStart,
			To:   &dayEnd,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list appointments")
		}
		booked = rows

		return nil
	})
	if err != nil {
		return nil, err
	}

	out.Open = true
	out.Slots = buildSlots(dayStart, openMin, closeMin, srv.slotMinutes, now, booked)

	return out, nil
}

// buildSlots walks the opening window in fixed steps and keeps the slots
// that still lie in the future and collide with no active appointment.
func buildSlots(dayStart time.Time, openMin, closeMin, slotMinutes int, now time.Time, booked []*entity.Appointment) []usecase.TimeSlot {
	slots := []usecase.TimeSlot{}

	for minute := openMin; minute+slotMinutes <= closeMin; minute += slotMinutes {
		start := dayStart.Add(time.Duration(minute) * time.Minute)
		end := start.Add(time.Duration(slotMinutes) * time.Minute)

		if start.Before(now) {
			continue
		}

		free := true
		for _, appointment := range booked {
			if appointment.Status == entity.AppointmentCancelled {
				continue
			}
			if appointment.Overlaps(start, end) {
				free = false

				break
			}
		}
		if free {
			slots = append(slots, usecase.TimeSlot{StartsAt: start, EndsAt: end})
		}
	}

	return slots
}

// requireOwner rejects callers that do not own the business.
func (srv *appointmentService) requireOwner(ctx context.Context, userID, businessID uuid.UUID) error {
	owns, err := srv.businessRepo.IsOwner(ctx, userID, businessID)
	if err != nil {
		return errors.Wrap(err, "failed to check business ownership")
	}
	if !owns {
		return domainerrors.ErrBusinessAccessDenied
	}

	return nil
}

// publishEvent emits the appointment lifecycle event the worker turns into
// push notifications. Best-effort: a lost event costs a push, not a booking.
func (srv *appointmentService) publishEvent(ctx context.Context, ownerID uuid.UUID, appointment *entity.Appointment, kind string) {
	event := &service.AppointmentEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Kind:          kind,
		AppointmentID: appointment.ID.String(),
		BusinessID:    appointment.BusinessID.String(),
		OwnerID:       ownerID.String(),
		CustomerName:  appointment.Customer.Name,
		StartsAt:      appointment.StartsAt,
		EndsAt:        appointment.EndsAt,
	}

	if err := srv.publisher.PublishAppointmentEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish appointment event",
			slog.Any("appointmentID", appointment.ID), slog.String("kind", kind),
			slog.Any("error", err))
	}
}
