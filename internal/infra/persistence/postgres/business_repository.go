// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	"turnos/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessRepository implements the repository.BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// Create persists a new business with its serialized settings document.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM, err := fromBusinessDomain(business)
	if err != nil {
		return errors.Wrap(err, "failed to serialize business settings")
	}

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBusinessEmailExists.WrapMessage("business email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBusinessCreationFailed.WrapMessage("missing required business information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessCreationFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	// Update the entity with generated values
	business.ID = businessM.ID
	business.SettingsVersion = businessM.SettingsVersion
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByID retrieves a business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM)
}

// FindByOwner retrieves the business owned by a user.
func (repo *businessRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by owner")
	}

	return toBusinessDomain(&businessM)
}

// EmailExists reports whether a business row already uses the email.
func (repo *businessRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check business email")
	}

	return count > 0, nil
}

// CountByOwner returns how many businesses a user owns.
func (repo *businessRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count businesses by owner")
	}

	return count, nil
}

// IsOwner reports whether the user owns the business. A missing business
// yields (false, nil): callers translate that into an access decision, not
// a lookup failure.
func (repo *businessRepository) IsOwner(ctx context.Context, userID, businessID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ? AND owner_id = ?", businessID, userID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check business ownership")
	}

	return count > 0, nil
}

// Update modifies the profile fields of a business. Settings and their
// version are deliberately excluded: they change only through UpdateSettings.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Updates(map[string]any{
			"name":            business.Name,
			"description":     business.Description,
			"street":          business.Address.Street,
			"city":            business.Address.City,
			"department":      business.Address.Department,
			"postal_code":     business.Address.PostalCode,
			"phone":           business.Phone,
			"whatsapp_number": business.WhatsappNumber,
			"email":           business.Email,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrBusinessEmailExists.WrapMessage("business email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// UpdateSettings replaces the settings document guarded by the optimistic
// version check: the write only lands when settings_version still equals
// fromVersion, and bumps the version in the same statement.
func (repo *businessRepository) UpdateSettings(ctx context.Context, businessID uuid.UUID, settings entity.BusinessSettings, fromVersion int) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to serialize business settings")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ? AND settings_version = ?", businessID, fromVersion).
		Updates(map[string]any{
			"settings":         raw,
			"settings_version": gorm.Expr("settings_version + 1"),
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business settings")
	}

	if result.RowsAffected == 0 {
		// Either the business is gone or someone else already bumped the
		// version. Distinguish the two so the caller can report correctly.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.BusinessModel{}).
			Where("id = ?", businessID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to resolve settings update conflict")
		}
		if count == 0 {
			return repository.ErrBusinessNotFound
		}

		return repository.ErrSettingsVersionConflict
	}

	return nil
}

// UpdateLogoKey records the blob key of the uploaded logo.
func (repo *businessRepository) UpdateLogoKey(ctx context.Context, businessID uuid.UUID, logoKey string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", businessID).
		Update("logo_key", logoKey)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business logo")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// Search finds businesses whose name or email matches the query, newest
// first, capped at limit rows.
func (repo *businessRepository) Search(ctx context.Context, query string, limit int) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	pattern := "%" + query + "%"
	if err := repo.db.WithContext(ctx).
		Where("name ILIKE ? OR email ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Limit(limit).
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		business, err := toBusinessDomain(businessM)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}

	return businesses, nil
}

// SoftDelete marks a business as deleted without dropping its rows.
func (repo *businessRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BusinessModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete business")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity,
// deserializing the settings document.
func toBusinessDomain(data *model.BusinessModel) (*entity.Business, error) {
	if data == nil {
		return nil, nil
	}

	var settings entity.BusinessSettings
	if len(data.Settings) > 0 {
		if err := json.Unmarshal(data.Settings, &settings); err != nil {
			return nil, errors.Wrap(err, "failed to deserialize business settings")
		}
	}

	return &entity.Business{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		Address: entity.Address{
			Street:     data.Street,
			City:       data.City,
			Department: data.Department,
			PostalCode: data.PostalCode,
		},
		Phone:           data.Phone,
		WhatsappNumber:  data.WhatsappNumber,
		Email:           data.Email,
		Settings:        settings,
		SettingsVersion: data.SettingsVersion,
		LogoKey:         data.LogoKey,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) (*model.BusinessModel, error) {
	if data == nil {
		return nil, nil
	}

	raw, err := json.Marshal(data.Settings)
	if err != nil {
		return nil, err
	}

	return &model.BusinessModel{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Name:            data.Name,
		Description:     data.Description,
		Street:          data.Address.Street,
		City:            data.Address.City,
		Department:      data.Address.Department,
		PostalCode:      data.Address.PostalCode,
		Phone:           data.Phone,
		WhatsappNumber:  data.WhatsappNumber,
		Email:           data.Email,
		Settings:        raw,
		SettingsVersion: data.SettingsVersion,
		LogoKey:         data.LogoKey,
	}, nil
}
