package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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
	"turnos/internal/usecase"
	"turnos/internal/util"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
	maxLogoBytes       = 2 << 20 // 2 MiB
)

// logoExtensions maps the accepted upload content types to blob key suffixes.
var logoExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
}

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager    repository.TransactionManager
	businessRepo repository.BusinessRepository
	qrService    service.QRCodeService
	storage      service.MediaStorage
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for the business service, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	QRService    service.QRCodeService
	Storage      service.MediaStorage
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		txManager:    params.TxManager,
		businessRepo: params.BusinessRepo,
		qrService:    params.QRService,
		storage:      params.Storage,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadOwned fetches the business and verifies the user owns it.
func (srv *businessService) loadOwned(ctx context.Context, userID, businessID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to load business")
	}

	if business.OwnerID != userID {
		return nil, domainerrors.ErrBusinessAccessDenied
	}

	return business, nil
}

// GetProfile returns the business of the acting owner.
func (srv *businessService) GetProfile(ctx context.Context, userID, businessID uuid.UUID) (*entity.Business, error) {
	return srv.loadOwned(ctx, userID, businessID)
}

// UpdateProfile rewrites the editable profile fields. Settings and the
// settings version are untouched.
func (srv *businessService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.Business, error) {
	var updated *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()

		business, err := businessRepo.FindByID(ctx, input.BusinessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotFound
			}

			return errors.Wrap(err, "failed to load business")
		}
		if business.OwnerID != input.UserID {
			return domainerrors.ErrBusinessAccessDenied
		}

		phone, _ := colombia.NormalizePhone(input.Phone)
		whatsapp, _ := colombia.NormalizePhone(input.WhatsappNumber)

		business.Name = input.Name
		business.Description = input.Description
		business.Address = input.Address
		business.Phone = phone
		business.WhatsappNumber = whatsapp
		business.UpdatedAt = time.Now()

		if err := businessRepo.Update(ctx, business); err != nil {
			return errors.Wrap(err, "failed to update business")
		}
		updated = business

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Business profile updated", slog.Any("businessID", input.BusinessID))

	return updated, nil
}

// UpdateSettings validates and replaces the settings. The optimistic
// version closes the race between two concurrent editors: the later write
// fails with a conflict instead of silently overwriting the earlier one.
func (srv *businessService) UpdateSettings(ctx context.Context, input *usecase.UpdateSettingsInput) (*entity.Business, error) {
	if err := input.Settings.Validate(); err != nil {
		return nil, err
	}

	if _, err := srv.loadOwned(ctx, input.UserID, input.BusinessID); err != nil {
		return nil, err
	}

	err := srv.businessRepo.UpdateSettings(ctx, input.BusinessID, input.Settings, input.FromVersion)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSettingsVersionConflict):
			return nil, domainerrors.ErrSettingsConflict
		case errors.Is(err, repository.ErrBusinessNotFound):
			return nil, domainerrors.ErrBusinessNotFound
		default:
			return nil, errors.Wrap(err, "failed to update settings")
		}
	}

	business, err := srv.businessRepo.FindByID(ctx, input.BusinessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload business")
	}

	return business, nil
}

// Search finds businesses by name or email. A blank query matches nothing.
func (srv *businessService) Search(ctx context.Context, query string, limit int) ([]*entity.Business, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.Business{}, nil
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	businesses, err := srv.businessRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	return businesses, nil
}

// Delete soft-deletes the business. Stored logos stay in the bucket; a
// dangling session context pointing here is cleared on its next read.
func (srv *businessService) Delete(ctx context.Context, userID, businessID uuid.UUID) error {
	if _, err := srv.loadOwned(ctx, userID, businessID); err != nil {
		return err
	}

	if err := srv.businessRepo.SoftDelete(ctx, businessID); err != nil {
		return errors.Wrap(err, "failed to delete business")
	}

	srv.log(ctx).Info("Business deleted",
		slog.Any("businessID", businessID), slog.Any("userID", userID))

	return nil
}

// GetBookingQR renders the QR code of the public booking page.
func (srv *businessService) GetBookingQR(ctx context.Context, userID, businessID uuid.UUID) ([]byte, error) {
	if _, err := srv.loadOwned(ctx, userID, businessID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateBookingQR(businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate booking QR")
	}

	return png, nil
}

// UploadLogo stores the image and records its key on the business row. Each
// content type keeps its own key, so switching formats leaves the previous
// object behind; the key on the row decides which one is served.
func (srv *businessService) UploadLogo(ctx context.Context, input *usecase.UploadLogoInput) error {
	ext, ok := logoExtensions[input.ContentType]
	if !ok {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unsupported logo content type %q", input.ContentType))
	}
	if len(input.Data) == 0 || len(input.Data) > maxLogoBytes {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("logo must be between 1 byte and %s", util.FormatBytes(maxLogoBytes)))
	}

	if _, err := srv.loadOwned(ctx, input.UserID, input.BusinessID); err != nil {
		return err
	}

	key := fmt.Sprintf("logos/%s.%s", input.BusinessID, ext)
	if err := srv.storage.Upload(ctx, key, input.ContentType, input.Data); err != nil {
		return errors.Wrap(err, "failed to upload logo")
	}

	if err := srv.businessRepo.UpdateLogoKey(ctx, input.BusinessID, key); err != nil {
		return errors.Wrap(err, "failed to record logo key")
	}

	srv.log(ctx).Debug("Logo uploaded",
		slog.Any("businessID", input.BusinessID), slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(input.Data)))))

	return nil
}

// GetLogo returns the stored logo. Public so the booking page can show it.
func (srv *businessService) GetLogo(ctx context.Context, businessID uuid.UUID) (*usecase.LogoOutput, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to load business")
	}

	if business.LogoKey == "" {
		return nil, domainerrors.ErrNotFound
	}

	data, contentType, err := srv.storage.Download(ctx, business.LogoKey)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to download logo")
	}

	return &usecase.LogoOutput{ContentType: contentType, Data: data}, nil
}
