// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"strings"

	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tenantContextRepository invokes the database functions that manage the
// row-level-security session variable (app.current_business_id). The
// variable lives on the connection, so this repository is only useful when
// constructed from the transaction factory: the same *gorm.DB must carry
// both the context call and the tenant-scoped queries it is meant to scope.
type tenantContextRepository struct {
	db *gorm.DB
}

// NewTenantContextRepository is the constructor for tenantContextRepository.
func NewTenantContextRepository(db *gorm.DB) repository.TenantContextRepository {
	return &tenantContextRepository{
		db: db,
	}
}

// SetCurrentBusiness sets the session variable to the business id without
// any ownership check. Reserved for internal flows that already verified
// access, such as the public booking page resolving its tenant.
func (repo *tenantContextRepository) SetCurrentBusiness(ctx context.Context, businessID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT set_current_business_id(?)", businessID).Error; err != nil {
		return errors.Wrap(err, "failed to set business context")
	}

	return nil
}

// CurrentBusiness reads the session variable. uuid.Nil means no context is
// set on this connection.
func (repo *tenantContextRepository) CurrentBusiness(ctx context.Context) (uuid.UUID, error) {
	var raw sql.NullString

	if err := repo.db.WithContext(ctx).
		Raw("SELECT get_current_business_id()").
		Scan(&raw).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to read business context")
	}

	if !raw.Valid || raw.String == "" {
		return uuid.Nil, nil
	}

	id, err := uuid.Parse(raw.String)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "business context holds a malformed id")
	}

	return id, nil
}

// SetBusinessContext sets the session variable through the database-side
// ownership check. The function raises when the user does not own the
// business, which surfaces here as an access error.
func (repo *tenantContextRepository) SetBusinessContext(ctx context.Context, userID, businessID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT set_business_context(?, ?)", userID, businessID).Error; err != nil {
		if isAccessDeniedRaise(err) {
			return domainerrors.ErrBusinessAccessDenied
		}

		return errors.Wrap(err, "failed to set business context")
	}

	return nil
}

// ClearBusinessContext resets the session variable.
func (repo *tenantContextRepository) ClearBusinessContext(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT clear_business_context()").Error; err != nil {
		return errors.Wrap(err, "failed to clear business context")
	}

	return nil
}

// TestDataIsolation runs the database self-check for one business: for each
// tenant-scoped table it reports how many rows the context can see and how
// many belong to other tenants. Foreign rows must always be zero.
func (repo *tenantContextRepository) TestDataIsolation(ctx context.Context, businessID uuid.UUID) ([]repository.IsolationResult, error) {
	var rows []struct {
		TableName   string
		VisibleRows int64
		ForeignRows int64
	}

	if err := repo.db.WithContext(ctx).
		Raw("SELECT table_name, visible_rows, foreign_rows FROM test_data_isolation(?)", businessID).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to run isolation check")
	}

	results := make([]repository.IsolationResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, repository.IsolationResult{
			Table:       row.TableName,
			VisibleRows: row.VisibleRows,
			ForeignRows: row.ForeignRows,
		})
	}

	return results, nil
}

// Ping verifies the context functions are installed and responding.
func (repo *tenantContextRepository) Ping(ctx context.Context) error {
	var raw sql.NullString

	if err := repo.db.WithContext(ctx).
		Raw("SELECT get_current_business_id()").
		Scan(&raw).Error; err != nil {
		return errors.Wrap(err, "business context functions unavailable")
	}

	return nil
}

// isAccessDeniedRaise detects the RAISE EXCEPTION the ownership check in
// set_business_context emits (SQLSTATE P0001).
func isAccessDeniedRaise(err error) bool {
	if err == nil {
		return false
	}
	if hasSQLState(err, "P0001") {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "access denied")
}
