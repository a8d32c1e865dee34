// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"turnos/internal/colombia"
	deliverycontext "turnos/internal/delivery/context"
	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	"turnos/internal/domain/service"
	"turnos/internal/infra/metrics"
	"turnos/internal/usecase"
)

// maxBusinessesPerOwner caps how many businesses one account may register.
const maxBusinessesPerOwner = 5

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	txManager    repository.TransactionManager
	businessRepo repository.BusinessRepository
	identity     service.IdentityService
	hasher       service.PasswordHasher
	publisher    service.EventPublisher
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// RegistrationServiceParams holds dependencies for the registration service, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	Identity     service.IdentityService
	Hasher       service.PasswordHasher
	Publisher    service.EventPublisher
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		txManager:    params.TxManager,
		businessRepo: params.BusinessRepo,
		identity:     params.Identity,
		hasher:       params.Hasher,
		publisher:    params.Publisher,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterBusiness creates a business for an already authenticated user.
func (srv *registrationService) RegisterBusiness(ctx context.Context, input *usecase.RegisterBusinessInput) (*usecase.RegisterBusinessOutput, error) {
	srv.log(ctx).Info("Registering business",
		slog.Any("ownerID", input.OwnerID), slog.String("name", input.Name))

	taken, err := srv.businessRepo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check business email")
	}
	if taken {
		return nil, domainerrors.ErrBusinessEmailExists
	}

	owned, err := srv.businessRepo.CountByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count owned businesses")
	}
	if owned >= maxBusinessesPerOwner {
		return nil, domainerrors.ErrBusinessLimitReached
	}

	business := buildNewBusiness(input.OwnerID, input.Name, input.Description,
		input.Address, input.Phone, input.WhatsappNumber, input.Email)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewBusinessRepository().Create(ctx, business)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateBusinessEmail) {
			return nil, domainerrors.ErrBusinessEmailExists
		}

		srv.log(ctx).Error("Failed to create business",
			slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, domainerrors.ErrBusinessCreationFailed.WithDetails(err.Error())
	}

	srv.publishRegistered(ctx, input.OwnerID, business)
	srv.metrics.RecordRegistration(metrics.OutcomeCompleted)

	return &usecase.RegisterBusinessOutput{Business: business}, nil
}

// RegisterComplete runs the unified registration: identity account plus
// first business in one request. The two live in different stores, so the
// flow is a saga: pre-checks first, account creation second, business
// creation third, and a compensating account delete when the third step
// fails.
func (srv *registrationService) RegisterComplete(ctx context.Context, input *usecase.RegisterCompleteInput) (*usecase.RegisterCompleteOutput, error) {
	srv.log(ctx).Info("Starting complete registration",
		slog.String("userEmail", input.UserEmail), slog.String("businessName", input.BusinessName))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerrors.ErrPasswordStrength.WithDetails(err.Error())
	}

	// Both uniqueness checks run before any account is created: a taken
	// business email must never leave an account behind.
	emailTaken, err := srv.identity.EmailExists(ctx, input.UserEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check account email")
	}
	if emailTaken {
		return nil, domainerrors.ErrEmailExists
	}

	businessEmailTaken, err := srv.businessRepo.EmailExists(ctx, input.BusinessEmail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check business email")
	}
	if businessEmailTaken {
		return nil, domainerrors.ErrBusinessEmailExists
	}

	account, err := srv.identity.CreateAccount(ctx, input.UserEmail, input.Password)
	if err != nil {
		srv.metrics.RecordRegistration(metrics.OutcomeFailed)
		if errors.Is(err, service.ErrAccountExists) {
			return nil, domainerrors.ErrEmailExists
		}

		srv.log(ctx).Error("Failed to create account",
			slog.String("email", input.UserEmail), slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WithDetails(err.Error())
	}

	user := buildNewUser(account.ID, input.UserName, input.UserEmail, input.UserPhone)
	business := buildNewBusiness(account.ID, input.BusinessName, input.Description,
		input.Address, input.BusinessPhone, input.WhatsappNumber, input.BusinessEmail)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return repoFactory.NewBusinessRepository().Create(ctx, business)
	})
	if err != nil {
		return nil, srv.compensate(ctx, account.ID, err)
	}

	// The business id on the account is a convenience claim. Losing it is
	// recoverable, so a failure here must not undo the registration.
	metadata := map[string]any{"business_id": business.ID.String()}
	if err := srv.identity.UpdateMetadata(ctx, account.ID, metadata); err != nil {
		srv.log(ctx).Warn("Failed to attach business id to account",
			slog.Any("userID", account.ID), slog.Any("error", err))
	}

	srv.publishRegistered(ctx, account.ID, business)
	srv.metrics.RecordRegistration(metrics.OutcomeCompleted)

	srv.log(ctx).Debug("Complete registration finished",
		slog.Any("userID", account.ID), slog.Any("businessID", business.ID))

	return &usecase.RegisterCompleteOutput{
		UserID:                account.ID,
		BusinessID:            business.ID,
		EmailVerificationSent: true,
	}, nil
}

// compensate deletes the account created earlier in the saga and shapes the
// error the frontend sees. When the delete itself fails the account is
// orphaned and the error says so.
func (srv *registrationService) compensate(ctx context.Context, accountID uuid.UUID, cause error) error {
	srv.log(ctx).Error("Business creation failed, deleting account",
		slog.Any("userID", accountID), slog.Any("error", cause))

	if err := srv.identity.DeleteAccount(ctx, accountID); err != nil {
		srv.log(ctx).Error("Compensating account delete failed",
			slog.Any("userID", accountID), slog.Any("error", err))
		srv.metrics.RecordRegistration(metrics.OutcomeFailed)

		return domainerrors.NewRegistrationRollbackError(cause, false)
	}

	srv.metrics.RecordRegistration(metrics.OutcomeRolledBack)

	// A duplicate that slipped past the pre-check keeps its 409 code; the
	// cleanup already restored the previous state.
	if errors.Is(cause, repository.ErrDuplicateBusinessEmail) {
		return domainerrors.ErrBusinessEmailExists
	}

	return domainerrors.NewRegistrationRollbackError(cause, true)
}

// publishRegistered emits the completed-registration event. Publishing is
// best-effort; downstream consumers tolerate gaps.
func (srv *registrationService) publishRegistered(ctx context.Context, userID uuid.UUID, business *entity.Business) {
	event := &service.RegistrationEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		UserID:       userID.String(),
		BusinessID:   business.ID.String(),
		BusinessName: business.Name,
		Department:   business.Address.Department,
	}

	if err := srv.publisher.PublishRegistrationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish registration event",
			slog.Any("businessID", business.ID), slog.Any("error", err))
	}
}

// buildNewUser assembles the profile row that mirrors a new account.
func buildNewUser(id uuid.UUID, name, email, phone string) *entity.User {
	normalized, _ := colombia.NormalizePhone(phone)
	now := time.Now()

	return &entity.User{
		ID:        id,
		Email:     email,
		Name:      name,
		Phone:     normalized,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// buildNewBusiness assembles a business with default settings. Phone
// numbers are stored as bare ten digits.
func buildNewBusiness(ownerID uuid.UUID, name, description string, address entity.Address, phone, whatsapp, email string) *entity.Business {
	normalizedPhone, _ := colombia.NormalizePhone(phone)
	normalizedWhatsapp, _ := colombia.NormalizePhone(whatsapp)
	now := time.Now()

	return &entity.Business{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Name:            name,
		Description:     description,
		Address:         address,
		Phone:           normalizedPhone,
		WhatsappNumber:  normalizedWhatsapp,
		Email:           email,
		Settings:        entity.DefaultSettings(),
		SettingsVersion: 1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
