package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	"turnos/internal/domain/service"
	mockRepo "turnos/internal/mocks/repository"
	mockSvc "turnos/internal/mocks/service"
	"turnos/internal/usecase"
)

// registrationServiceFixtures holds all test dependencies for registration service tests.
type registrationServiceFixtures struct {
	service      usecase.RegistrationUsecase
	txManager    *mockRepo.MockTransactionManager
	businessRepo *mockRepo.MockBusinessRepository
	identity     *mockSvc.MockIdentityService
	hasher       *mockSvc.MockPasswordHasher
	publisher    *mockSvc.MockEventPublisher
}

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	identity := mockSvc.NewMockIdentityService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewRegistrationService(RegistrationServiceParams{
		TxManager:    txManager,
		BusinessRepo: businessRepo,
		Identity:     identity,
		Hasher:       hasher,
		Publisher:    publisher,
		Metrics:      newNoopMetrics(),
		Logger:       newDiscardLogger(),
	})

	return registrationServiceFixtures{
		service:      service,
		txManager:    txManager,
		businessRepo: businessRepo,
		identity:     identity,
		hasher:       hasher,
		publisher:    publisher,
	}
}

func validRegisterCompleteInput() *usecase.RegisterCompleteInput {
	return &usecase.RegisterCompleteInput{
		UserName:  "Laura Gómez",
		UserEmail: "laura@example.com",
		Password:  "Password123!",
		UserPhone: "3101234567",

		BusinessName: "Peluquería Laura",
		Description:  "Cortes y peinados",
		Address: entity.Address{
			Street:     "Cra 7 # 45-10",
			City:       "Bogotá",
			Department: "Bogotá D.C.",
		},
		BusinessPhone:  "3157654321",
		WhatsappNumber: "3157654321",
		BusinessEmail:  "contacto@peluquerialaura.com",
	}
}

func TestRegistrationService_RegisterComplete_Success(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()
	input := validRegisterCompleteInput()

	account := &entity.Account{ID: uuid.New(), Email: input.UserEmail}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.identity.EXPECT().EmailExists(ctx, input.UserEmail).Return(false, nil)
	fx.businessRepo.EXPECT().EmailExists(ctx, input.BusinessEmail).Return(false, nil)
	fx.identity.EXPECT().CreateAccount(ctx, input.UserEmail, input.Password).Return(account, nil)

	var createdBusiness *entity.Business
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewBusinessRepository().Return(mockBusinessRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, account.ID, user.ID)
					assert.Equal(t, "3101234567", user.Phone)
				}).
				Return(nil)

			mockBusinessRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Business")).
				Run(func(ctx context.Context, business *entity.Business) {
					assert.Equal(t, account.ID, business.OwnerID)
					assert.Equal(t, 1, business.SettingsVersion)
					assert.Equal(t, "America/Bogota", business.Settings.Timezone)
					createdBusiness = business
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.identity.EXPECT().
		UpdateMetadata(ctx, account.ID, mock.Anything).
		Return(nil)
	fx.publisher.EXPECT().
		PublishRegistrationEvent(ctx, mock.AnythingOfType("*service.RegistrationEvent")).
		Return(nil)

	output, err := fx.service.RegisterComplete(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, account.ID, output.UserID)
	assert.Equal(t, createdBusiness.ID, output.BusinessID)
	assert.True(t, output.EmailVerificationSent)
}

func TestRegistrationService_RegisterComplete_AccountEmailTaken(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()
	input := validRegisterCompleteInput()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.identity.EXPECT().EmailExists(ctx, input.UserEmail).Return(true, nil)

	output, err := fx.service.RegisterComplete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

// A taken business email must be reported before any account is created:
// the identity mock carries no CreateAccount expectation, so an unexpected
// call fails the test.
func TestRegistrationService_RegisterComplete_BusinessEmailTaken_NoAccountCreated(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()
	input := validRegisterCompleteInput()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.identity.EXPECT().EmailExists(ctx, input.UserEmail).Return(false, nil)
	fx.businessRepo.EXPECT().EmailExists(ctx, input.BusinessEmail).Return(true, nil)

	output, err := fx.service.RegisterComplete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessEmailExists)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "business_email_exists", appErr.ErrorCode())
}

func TestRegistrationService_RegisterComplete_WeakPassword(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()
	input := validRegisterCompleteInput()
	input.Password = "abc"

	fx.hasher.EXPECT().ValidatePasswordStrength("abc").Return(errors.New("too short"))

	output, err := fx.service.RegisterComplete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "password_strength", appErr.ErrorCode())
}

func TestRegistrationService_RegisterComplete_BusinessCreateFails_CleanupSucceeds(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()
	input := validRegisterCompleteInput()

	account := &entity.Account{ID: uuid.New(), Email: input.UserEmail}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.identity.EXPECT().EmailExists(ctx, input.UserEmail).Return(false, nil)
	fx.businessRepo.EXPECT().EmailExists(ctx, input.BusinessEmail).Return(false, nil)
	fx.identity.EXPECT().CreateAccount(ctx, input.UserEmail, input.Password).Return(account, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("insert failed"))

	fx.identity.EXPECT().DeleteAccount(ctx, account.ID).Return(nil)

	output, err := fx.service.RegisterComplete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var rollbackErr *domainerrors.RegistrationRollbackError
	require.ErrorAs(t, err, &rollbackErr)
	assert.True(t, rollbackErr.CleanupPerformed)
	assert.True(t, rollbackErr.CleanupSuccessful)
	assert.Equal(t, "business_creation_failed", rollbackErr.ErrorCode())
}

func TestRegistrationService_RegisterComplete_BusinessCreateFails_CleanupFails(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()
	input := validRegisterCompleteInput()

	account := &entity.Account{ID: uuid.New(), Email: input.UserEmail}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.identity.EXPECT().EmailExists(ctx, input.UserEmail).Return(false, nil)
	fx.businessRepo.EXPECT().EmailExists(ctx, input.BusinessEmail).Return(false, nil)
	fx.identity.EXPECT().CreateAccount(ctx, input.UserEmail, input.Password).Return(account, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("insert failed"))

	fx.identity.EXPECT().DeleteAccount(ctx, account.ID).Return(errors.New("identity store down"))

	output, err := fx.service.RegisterComplete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var rollbackErr *domainerrors.RegistrationRollbackError
	require.ErrorAs(t, err, &rollbackErr)
	assert.True(t, rollbackErr.CleanupPerformed)
	assert.False(t, rollbackErr.CleanupSuccessful)
	assert.Equal(t, "rollback_failed", rollbackErr.ErrorCode())
}

// A duplicate business email that slips past the pre-check and hits the
// unique constraint keeps its 409 code after the compensating delete.
func TestRegistrationService_RegisterComplete_DuplicateRace(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()
	input := validRegisterCompleteInput()

	account := &entity.Account{ID: uuid.New(), Email: input.UserEmail}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.identity.EXPECT().EmailExists(ctx, input.UserEmail).Return(false, nil)
	fx.businessRepo.EXPECT().EmailExists(ctx, input.BusinessEmail).Return(false, nil)
	fx.identity.EXPECT().CreateAccount(ctx, input.UserEmail, input.Password).Return(account, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(repository.ErrDuplicateBusinessEmail, "failed to create business"))

	fx.identity.EXPECT().DeleteAccount(ctx, account.ID).Return(nil)

	output, err := fx.service.RegisterComplete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessEmailExists)
}

func TestRegistrationService_RegisterComplete_CreateAccountRace(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()
	input := validRegisterCompleteInput()

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.identity.EXPECT().EmailExists(ctx, input.UserEmail).Return(false, nil)
	fx.businessRepo.EXPECT().EmailExists(ctx, input.BusinessEmail).Return(false, nil)
	fx.identity.EXPECT().
		CreateAccount(ctx, input.UserEmail, input.Password).
		Return(nil, service.ErrAccountExists)

	output, err := fx.service.RegisterComplete(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestRegistrationService_RegisterBusiness_Success(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	ownerID := uuid.New()
	input := &usecase.RegisterBusinessInput{
		OwnerID:        ownerID,
		Name:           "Barbería El Corte",
		Description:    "Barbería clásica",
		Address:        entity.Address{Street: "Cl 10 # 5-23", City: "Medellín", Department: "Antioquia"},
		Phone:          "3019876543",
		WhatsappNumber: "3019876543",
		Email:          "hola@barberiaelcorte.com",
	}

	fx.businessRepo.EXPECT().EmailExists(ctx, input.Email).Return(false, nil)
	fx.businessRepo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(1), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)

			mockFactory.EXPECT().NewBusinessRepository().Return(mockBusinessRepo)
			mockBusinessRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Business")).
				Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishRegistrationEvent(ctx, mock.AnythingOfType("*service.RegistrationEvent")).
		Return(nil)

	output, err := fx.service.RegisterBusiness(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	require.NotNil(t, output.Business)
	assert.Equal(t, ownerID, output.Business.OwnerID)
	assert.Len(t, output.Business.Settings.BusinessHours, 7)
}

func TestRegistrationService_RegisterBusiness_EmailTaken(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	input := &usecase.RegisterBusinessInput{
		OwnerID: uuid.New(),
		Name:    "Barbería El Corte",
		Email:   "hola@barberiaelcorte.com",
	}

	fx.businessRepo.EXPECT().EmailExists(ctx, input.Email).Return(true, nil)

	output, err := fx.service.RegisterBusiness(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessEmailExists)
}

func TestRegistrationService_RegisterBusiness_LimitReached(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	input := &usecase.RegisterBusinessInput{
		OwnerID: uuid.New(),
		Name:    "Negocio Seis",
		Email:   "seis@example.com",
	}

	fx.businessRepo.EXPECT().EmailExists(ctx, input.Email).Return(false, nil)
	fx.businessRepo.EXPECT().CountByOwner(ctx, input.OwnerID).Return(int64(maxBusinessesPerOwner), nil)

	output, err := fx.service.RegisterBusiness(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrBusinessLimitReached)
}
