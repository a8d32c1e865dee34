// Package identity implements the client of the identity store: the
// separate PostgreSQL database that owns accounts and credentials. The
// client opens its own connection pool, so no transaction can span this
// store and the application store. Registration compensates with
// DeleteAccount instead of relying on an atomic commit.
package identity

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"turnos/config"
	"turnos/internal/domain/entity"
	"turnos/internal/domain/lifecycle"
	"turnos/internal/domain/service"
	"turnos/internal/errors"
	pgdb "turnos/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// accountModel mirrors the 'accounts' table of the identity store. The
// store's own triggers handle verification mail delivery; this client only
// reads and writes rows.
type accountModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	EmailVerified bool      `gorm:"not null;default:false"`
	Metadata      []byte    `gorm:"type:jsonb;not null;default:'{}'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (accountModel) TableName() string {
	return "accounts"
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
}

type identityClient struct {
	db     *gorm.DB
	hasher service.PasswordHasher
	logger *slog.Logger
}

// New opens the identity store pool and returns the client as the domain
// interface.
func New(params Params) (service.IdentityService, error) {
	idCfg := params.Config.Identity
	if idCfg == nil {
		return nil, errors.New("identity store configuration is missing")
	}

	db, err := gorm.Open(postgres.Open(idCfg.DSN()), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 pgdb.NewGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity store client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get identity store sql.DB")
	}

	if idCfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(idCfg.MaxIdleConns)
	}
	if idCfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(idCfg.MaxOpenConns)
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping identity store")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return &identityClient{
		db:     db,
		hasher: params.Hasher,
		logger: params.Logger,
	}, nil
}

// CreateAccount registers a new account. The address starts unverified; the
// store's mail trigger picks up the new row and sends the verification link.
func (c *identityClient) CreateAccount(ctx context.Context, email, password string) (*entity.Account, error) {
	hash, err := c.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	accountM := &accountModel{
		Email:        email,
		PasswordHash: hash,
		Metadata:     []byte("{}"),
	}

	if err := c.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, service.ErrAccountExists
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	return toAccountDomain(accountM)
}

// DeleteAccount removes an account. It is the compensation path of the
// registration saga, so a row that is already gone counts as success.
func (c *identityClient) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := c.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&accountModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

// Authenticate verifies credentials. A missing account and a wrong password
// both come back as ErrBadCredentials so responses do not leak which emails
// are registered. Valid credentials on an unverified address fail with
// ErrAccountUnverified.
func (c *identityClient) Authenticate(ctx context.Context, email, password string) (*entity.Account, error) {
	var accountM accountModel

	if err := c.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrBadCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account")
	}

	if !c.hasher.Check(password, accountM.PasswordHash) {
		return nil, service.ErrBadCredentials
	}

	if !accountM.EmailVerified {
		return nil, service.ErrAccountUnverified
	}

	return toAccountDomain(&accountM)
}

// FindByID retrieves an account by id.
func (c *identityClient) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM accountModel

	if err := c.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM)
}

// EmailExists reports whether the email is registered in the identity store.
func (c *identityClient) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := c.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check account email")
	}

	return count > 0, nil
}

// UpdateMetadata merges the given keys into the account metadata document.
// The merge happens in the database so concurrent writers cannot clobber
// each other's keys.
func (c *identityClient) UpdateMetadata(ctx context.Context, id uuid.UUID, metadata map[string]any) error {
	patch, err := json.Marshal(metadata)
	if err != nil {
		return errors.Wrap(err, "failed to serialize metadata")
	}

	result := c.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("id = ?", id).
		Update("metadata", gorm.Expr("COALESCE(metadata, '{}'::jsonb) || ?::jsonb", string(patch)))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update account metadata")
	}

	if result.RowsAffected == 0 {
		return service.ErrAccountNotFound
	}

	return nil
}

// Ping verifies the identity store is reachable.
func (c *identityClient) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get identity store sql.DB")
	}

	return sqlDB.PingContext(ctx)
}

// toAccountDomain converts the GORM model to a domain Account entity.
func toAccountDomain(data *accountModel) (*entity.Account, error) {
	if data == nil {
		return nil, nil
	}

	var metadata map[string]any
	if len(data.Metadata) > 0 {
		if err := json.Unmarshal(data.Metadata, &metadata); err != nil {
			return nil, errors.Wrap(err, "failed to deserialize account metadata")
		}
	}

	return &entity.Account{
		ID:            data.ID,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		EmailVerified: data.EmailVerified,
		Metadata:      metadata,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}
