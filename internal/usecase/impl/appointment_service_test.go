package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turnos/internal/colombia"
	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	"turnos/internal/domain/service"
	mockRepo "turnos/internal/mocks/repository"
	mockSvc "turnos/internal/mocks/service"
	"turnos/internal/usecase"
)

// appointmentServiceFixtures holds all test dependencies for appointment service tests.
type appointmentServiceFixtures struct {
	service      usecase.AppointmentUsecase
	txManager    *mockRepo.MockTransactionManager
	businessRepo *mockRepo.MockBusinessRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestAppointmentService(t *testing.T, maxAdvanceDays, slotMinutes int) appointmentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewAppointmentService(AppointmentServiceParams{
		TxManager:    txManager,
		BusinessRepo: businessRepo,
		Publisher:    publisher,
		Metrics:      newNoopMetrics(),
		Config:       newTestBookingConfig(maxAdvanceDays, slotMinutes),
		Logger:       newDiscardLogger(),
	})

	return appointmentServiceFixtures{
		service:      service,
		txManager:    txManager,
		businessRepo: businessRepo,
		publisher:    publisher,
	}
}

// bookableBusiness returns a business with the default calendar: Monday to
// Friday 09:00-18:00, Saturday 09:00-13:00, Sunday closed.
func bookableBusiness(ownerID uuid.UUID) *entity.Business {
	return &entity.Business{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Name:            "Peluquería Laura",
		Settings:        entity.DefaultSettings(),
		SettingsVersion: 1,
	}
}

// nextHolidayAt returns the first upcoming Colombian holiday at the given
// hour in Bogotá.
func nextHolidayAt(hour int) time.Time {
	day := time.Now().In(colombia.Bogota()).AddDate(0, 0, 1)
	day = time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, colombia.Bogota())

	for !colombia.IsHoliday(day) {
		day = day.AddDate(0, 0, 1)
	}

	return day
}

func TestAppointmentService_Book_Success(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	ownerID := uuid.New()
	business := bookableBusiness(ownerID)
	startsAt := nextOpenWeekday(time.Monday, 10)
	endsAt := startsAt.Add(30 * time.Minute)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().NewTenantContextRepository().Return(mockTenantRepo)
			mockFactory.EXPECT().NewAppointmentRepository().Return(mockAppointmentRepo)

			mockTenantRepo.EXPECT().SetCurrentBusiness(ctx, business.ID).Return(nil)
			mockAppointmentRepo.EXPECT().
				ExistsOverlapping(ctx, business.ID, startsAt, endsAt).
				Return(false, nil)
			mockAppointmentRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Appointment")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishAppointmentEvent(ctx, mock.AnythingOfType("*service.AppointmentEvent")).
		Run(func(ctx context.Context, event *service.AppointmentEvent) {
			assert.Equal(t, "created", event.Kind)
			assert.Equal(t, ownerID.String(), event.OwnerID)
			assert.Equal(t, "Carlos Pérez", event.CustomerName)
		}).
		Return(nil)

	appointment, err := fx.service.Book(ctx, &usecase.BookAppointmentInput{
		BusinessID:    business.ID,
		CustomerName:  "Carlos Pérez",
		CustomerEmail: "carlos@example.com",
		CustomerPhone: "+57 310 123 4567",
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		Notes:         "Primera visita",
	})

	require.NoError(t, err)
	require.NotNil(t, appointment)
	assert.Equal(t, entity.AppointmentPending, appointment.Status)
	assert.Equal(t, "3101234567", appointment.Customer.Phone)
	assert.True(t, appointment.StartsAt.Equal(startsAt))
}

func TestAppointmentService_Book_OverlapRejected(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	startsAt := nextOpenWeekday(time.Monday, 10)
	endsAt := startsAt.Add(30 * time.Minute)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().NewTenantContextRepository().Return(mockTenantRepo)
			mockFactory.EXPECT().NewAppointmentRepository().Return(mockAppointmentRepo)

			mockTenantRepo.EXPECT().SetCurrentBusiness(ctx, business.ID).Return(nil)
			mockAppointmentRepo.EXPECT().
				ExistsOverlapping(ctx, business.ID, startsAt, endsAt).
				Return(true, nil)

			return fn(mockFactory)
		})

	appointment, err := fx.service.Book(ctx, &usecase.BookAppointmentInput{
		BusinessID:   business.ID,
		CustomerName: "Carlos Pérez",
		StartsAt:     startsAt,
		EndsAt:       endsAt,
	})

	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrAppointmentOverlap)
}

// A slot ending after closing time is rejected before touching storage.
func TestAppointmentService_Book_OutsideBusinessHours(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	startsAt := nextOpenWeekday(time.Monday, 20)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.Book(ctx, &usecase.BookAppointmentInput{
		BusinessID:   business.ID,
		CustomerName: "Carlos Pérez",
		StartsAt:     startsAt,
		EndsAt:       startsAt.Add(30 * time.Minute),
	})

	assert.ErrorIs(t, err, domainerrors.ErrOutsideBusinessHours)
}

func TestAppointmentService_Book_ClosedWeekday(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	startsAt := nextOpenWeekday(time.Sunday, 10)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.Book(ctx, &usecase.BookAppointmentInput{
		BusinessID:   business.ID,
		CustomerName: "Carlos Pérez",
		StartsAt:     startsAt,
		EndsAt:       startsAt.Add(30 * time.Minute),
	})

	assert.ErrorIs(t, err, domainerrors.ErrOutsideBusinessHours)
}

func TestAppointmentService_Book_OnHoliday(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	startsAt := nextHolidayAt(10)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.Book(ctx, &usecase.BookAppointmentInput{
		BusinessID:   business.ID,
		CustomerName: "Carlos Pérez",
		StartsAt:     startsAt,
		EndsAt:       startsAt.Add(30 * time.Minute),
	})

	assert.ErrorIs(t, err, domainerrors.ErrHolidayClosed)
}

func TestAppointmentService_Book_InPast(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	yesterday := time.Now().In(colombia.Bogota()).AddDate(0, 0, -1)
	startsAt := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 10, 0, 0, 0, colombia.Bogota())

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.Book(ctx, &usecase.BookAppointmentInput{
		BusinessID:   business.ID,
		CustomerName: "Carlos Pérez",
		StartsAt:     startsAt,
		EndsAt:       startsAt.Add(30 * time.Minute),
	})

	assert.ErrorIs(t, err, domainerrors.ErrAppointmentInPast)
}

func TestAppointmentService_Book_BeyondBookingWindow(t *testing.T) {
	fx := createTestAppointmentService(t, 30, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	startsAt := nextOpenWeekday(time.Monday, 10).AddDate(0, 0, 90)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.Book(ctx, &usecase.BookAppointmentInput{
		BusinessID:   business.ID,
		CustomerName: "Carlos Pérez",
		StartsAt:     startsAt,
		EndsAt:       startsAt.Add(30 * time.Minute),
	})

	assert.ErrorIs(t, err, domainerrors.ErrBookingWindowExceeded)
}

func TestAppointmentService_Book_EndsNotAfterStarts(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	startsAt := nextOpenWeekday(time.Monday, 10)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	_, err := fx.service.Book(ctx, &usecase.BookAppointmentInput{
		BusinessID:   business.ID,
		CustomerName: "Carlos Pérez",
		StartsAt:     startsAt,
		EndsAt:       startsAt,
	})

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "validation_error", appErr.ErrorCode())
}

func TestAppointmentService_Book_BusinessNotFound(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)

	_, err := fx.service.Book(ctx, &usecase.BookAppointmentInput{
		BusinessID:   businessID,
		CustomerName: "Carlos Pérez",
		StartsAt:     nextOpenWeekday(time.Monday, 10),
		EndsAt:       nextOpenWeekday(time.Monday, 10).Add(30 * time.Minute),
	})

	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

// Confirming publishes nothing: the publisher mock carries no expectation.
func TestAppointmentService_Confirm_Success(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	userID := uuid.New()
	businessID := uuid.New()
	appointmentID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, businessID).Return(true, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().NewTenantContextRepository().Return(mockTenantRepo)
			mockFactory.EXPECT().NewAppointmentRepository().Return(mockAppointmentRepo)

			mockTenantRepo.EXPECT().SetBusinessContext(ctx, userID, businessID).Return(nil)
			mockAppointmentRepo.EXPECT().
				FindByID(ctx, appointmentID).
				Return(&entity.Appointment{
					ID:         appointmentID,
					BusinessID: businessID,
					Status:     entity.AppointmentPending,
				}, nil)
			mockAppointmentRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Appointment")).
				Run(func(ctx context.Context, updated *entity.Appointment) {
					assert.Equal(t, entity.AppointmentConfirmed, updated.Status)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	appointment, err := fx.service.Confirm(ctx, &usecase.UpdateAppointmentInput{
		UserID:        userID,
		BusinessID:    businessID,
		AppointmentID: appointmentID,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentConfirmed, appointment.Status)
}

func TestAppointmentService_Confirm_CancelledAppointment(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	userID := uuid.New()
	businessID := uuid.New()
	appointmentID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, businessID).Return(true, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().NewTenantContextRepository().Return(mockTenantRepo)
			mockFactory.EXPECT().NewAppointmentRepository().Return(mockAppointmentRepo)

			mockTenantRepo.EXPECT().SetBusinessContext(ctx, userID, businessID).Return(nil)
			mockAppointmentRepo.EXPECT().
				FindByID(ctx, appointmentID).
				Return(&entity.Appointment{
					ID:         appointmentID,
					BusinessID: businessID,
					Status:     entity.AppointmentCancelled,
				}, nil)

			return fn(mockFactory)
		})

	appointment, err := fx.service.Confirm(ctx, &usecase.UpdateAppointmentInput{
		UserID:        userID,
		BusinessID:    businessID,
		AppointmentID: appointmentID,
	})

	require.Error(t, err)
	assert.Nil(t, appointment)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "invalid_status_transition", appErr.ErrorCode())
	assert.Equal(t, "cancelled -> confirmed", appErr.Details())
}

func TestAppointmentService_Cancel_PublishesEvent(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	userID := uuid.New()
	businessID := uuid.New()
	appointmentID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, businessID).Return(true, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().NewTenantContextRepository().Return(mockTenantRepo)
			mockFactory.EXPECT().NewAppointmentRepository().Return(mockAppointmentRepo)

			mockTenantRepo.EXPECT().SetBusinessContext(ctx, userID, businessID).Return(nil)
			mockAppointmentRepo.EXPECT().
				FindByID(ctx, appointmentID).
				Return(&entity.Appointment{
					ID:         appointmentID,
					BusinessID: businessID,
					Status:     entity.AppointmentConfirmed,
				}, nil)
			mockAppointmentRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Appointment")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishAppointmentEvent(ctx, mock.AnythingOfType("*service.AppointmentEvent")).
		Run(func(ctx context.Context, event *service.AppointmentEvent) {
			assert.Equal(t, "cancelled", event.Kind)
		}).
		Return(nil)

	appointment, err := fx.service.Cancel(ctx, &usecase.UpdateAppointmentInput{
		UserID:        userID,
		BusinessID:    businessID,
		AppointmentID: appointmentID,
		CancelReason:  "El cliente no puede asistir",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentCancelled, appointment.Status)
	assert.Equal(t, "El cliente no puede asistir", appointment.CancelReason)
	require.NotNil(t, appointment.CancelledAt)
}

func TestAppointmentService_Cancel_ForeignBusinessDenied(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	userID := uuid.New()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, businessID).Return(false, nil)

	appointment, err := fx.service.Cancel(ctx, &usecase.UpdateAppointmentInput{
		UserID:        userID,
		BusinessID:    businessID,
		AppointmentID: uuid.New(),
	})

	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessAccessDenied)
}

// An appointment id belonging to another business of the same owner reads
// as not found.
func TestAppointmentService_Get_ForeignRowHidden(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	userID := uuid.New()
	businessID := uuid.New()
	appointmentID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, businessID).Return(true, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().NewTenantContextRepository().Return(mockTenantRepo)
			mockFactory.EXPECT().NewAppointmentRepository().Return(mockAppointmentRepo)

			mockTenantRepo.EXPECT().SetBusinessContext(ctx, userID, businessID).Return(nil)
			mockAppointmentRepo.EXPECT().
				FindByID(ctx, appointmentID).
				Return(&entity.Appointment{
					ID:         appointmentID,
					BusinessID: uuid.New(),
					Status:     entity.AppointmentPending,
				}, nil)

			return fn(mockFactory)
		})

	appointment, err := fx.service.Get(ctx, userID, businessID, appointmentID)

	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrAppointmentNotFound)
}

func TestAppointmentService_List_ForwardsFilter(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	userID := uuid.New()
	businessID := uuid.New()
	from := time.Now()
	to := from.AddDate(0, 0, 7)
	expected := []*entity.Appointment{{ID: uuid.New(), BusinessID: businessID}}

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, businessID).Return(true, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().NewTenantContextRepository().Return(mockTenantRepo)
			mockFactory.EXPECT().NewAppointmentRepository().Return(mockAppointmentRepo)

			mockTenantRepo.EXPECT().SetBusinessContext(ctx, userID, businessID).Return(nil)
			mockAppointmentRepo.EXPECT().
				List(ctx, businessID, repository.AppointmentFilter{
					From:   &from,
					To:     &to,
					Status: entity.AppointmentPending,
				}).
				Return(expected, nil)

			return fn(mockFactory)
		})

	appointments, err := fx.service.List(ctx, &usecase.ListAppointmentsInput{
		UserID:     userID,
		BusinessID: businessID,
		From:       &from,
		To:         &to,
		Status:     entity.AppointmentPending,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, appointments)
}

func TestAppointmentService_Availability_ClosedSunday(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	sunday := nextOpenWeekday(time.Sunday, 0)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	output, err := fx.service.Availability(ctx, business.ID, sunday)

	require.NoError(t, err)
	assert.False(t, output.Open)
	assert.Equal(t, "Cerrado este día", output.Reason)
	assert.Empty(t, output.Slots)
}

func TestAppointmentService_Availability_Holiday(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	holiday := nextHolidayAt(0)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	output, err := fx.service.Availability(ctx, business.ID, holiday)

	require.NoError(t, err)
	assert.False(t, output.Open)
	assert.True(t, strings.HasPrefix(output.Reason, "Festivo: "), "reason %q", output.Reason)
	assert.Empty(t, output.Slots)
}

func TestAppointmentService_Availability_PastDate(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	pastDate := time.Now().In(colombia.Bogota()).AddDate(0, 0, -2)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	output, err := fx.service.Availability(ctx, business.ID, pastDate)

	require.NoError(t, err)
	assert.False(t, output.Open)
	assert.Equal(t, "La fecha ya pasó", output.Reason)
}

func TestAppointmentService_Availability_BeyondWindow(t *testing.T) {
	fx := createTestAppointmentService(t, 30, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	farDate := time.Now().In(colombia.Bogota()).AddDate(0, 0, 60)

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	output, err := fx.service.Availability(ctx, business.ID, farDate)

	require.NoError(t, err)
	assert.False(t, output.Open)
	assert.Equal(t, "La fecha está fuera del período de reserva", output.Reason)
}

// A default Monday (09:00-18:00, 30-minute slots) yields 18 slots. A pending
// booking at 10:00 removes its slot; a cancelled one at 11:00 removes
// nothing.
func TestAppointmentService_Availability_SlotsExcludeBooked(t *testing.T) {
	fx := createTestAppointmentService(t, 400, 30)
	ctx := context.Background()

	business := bookableBusiness(uuid.New())
	monday := nextOpenWeekday(time.Monday, 0)

	booked := []*entity.Appointment{
		{
			ID:         uuid.New(),
			BusinessID: business.ID,
			Status:     entity.AppointmentPending,
			StartsAt:   monday.Add(10 * time.Hour),
			EndsAt:     monday.Add(10*time.Hour + 30*time.Minute),
		},
		{
			ID:         uuid.New(),
			BusinessID: business.ID,
			Status:     entity.AppointmentCancelled,
			StartsAt:   monday.Add(11 * time.Hour),
			EndsAt:     monday.Add(11*time.Hour + 30*time.Minute),
		},
	}

	fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)
			mockAppointmentRepo := mockRepo.NewMockAppointmentRepository(t)

			mockFactory.EXPECT().NewTenantContextRepository().Return(mockTenantRepo)
			mockFactory.EXPECT().NewAppointmentRepository().Return(mockAppointmentRepo)

			mockTenantRepo.EXPECT().SetCurrentBusiness(ctx, business.ID).Return(nil)
			mockAppointmentRepo.EXPECT().
				List(ctx, business.ID, mock.AnythingOfType("repository.AppointmentFilter")).
				Return(booked, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Availability(ctx, business.ID, monday)

	require.NoError(t, err)
	assert.True(t, output.Open)
	assert.True(t, output.Date.Equal(monday))
	assert.Len(t, output.Slots, 17)

	assert.True(t, output.Slots[0].StartsAt.Equal(monday.Add(9*time.Hour)))
	for _, slot := range output.Slots {
		assert.False(t, slot.StartsAt.Equal(monday.Add(10*time.Hour)),
			"10:00 slot should be taken")
	}
}
