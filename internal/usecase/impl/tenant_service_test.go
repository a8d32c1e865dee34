package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"turnos/internal/domain/entity"
	domainerrors "turnos/internal/domain/errors"
	"turnos/internal/domain/repository"
	mockRepo "turnos/internal/mocks/repository"
	"turnos/internal/usecase"
)

// tenantServiceFixtures holds all test dependencies for tenant service tests.
type tenantServiceFixtures struct {
	service      usecase.TenantUsecase
	txManager    *mockRepo.MockTransactionManager
	sessionRepo  *mockRepo.MockSessionRepository
	businessRepo *mockRepo.MockBusinessRepository
	tenantRepo   *mockRepo.MockTenantContextRepository
}

func createTestTenantService(t *testing.T) tenantServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	tenantRepo := mockRepo.NewMockTenantContextRepository(t)

	service := NewTenantService(TenantServiceParams{
		TxManager:    txManager,
		SessionRepo:  sessionRepo,
		BusinessRepo: businessRepo,
		TenantRepo:   tenantRepo,
		Metrics:      newNoopMetrics(),
		Logger:       newDiscardLogger(),
	})

	return tenantServiceFixtures{
		service:      service,
		txManager:    txManager,
		sessionRepo:  sessionRepo,
		businessRepo: businessRepo,
		tenantRepo:   tenantRepo,
	}
}

func testSession(sessionID, userID uuid.UUID, activeBusinessID string) *entity.Session {
	return &entity.Session{
		ID:               sessionID,
		UserID:           userID,
		TokenHash:        "hash",
		ActiveBusinessID: activeBusinessID,
		ExpiresAt:        time.Now().Add(time.Hour),
	}
}

func TestTenantService_CurrentBusinessID_ReturnsStored(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	businessID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(testSession(sessionID, uuid.New(), businessID.String()), nil)

	got, err := fx.service.CurrentBusinessID(ctx, sessionID)

	require.NoError(t, err)
	assert.Equal(t, businessID, got)
}

func TestTenantService_CurrentBusinessID_Empty(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(testSession(sessionID, uuid.New(), ""), nil)

	got, err := fx.service.CurrentBusinessID(ctx, sessionID)

	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)
}

// A malformed stored value is self-healing: the slot is cleared and the
// caller sees an empty context instead of an error.
func TestTenantService_CurrentBusinessID_MalformedValueCleared(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(testSession(sessionID, uuid.New(), "not-a-uuid"), nil)
	fx.sessionRepo.EXPECT().
		UpdateActiveBusiness(ctx, sessionID, "").
		Return(nil)

	got, err := fx.service.CurrentBusinessID(ctx, sessionID)

	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestTenantService_CurrentBusinessID_SessionNotFound(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(nil, repository.ErrSessionNotFound)

	_, err := fx.service.CurrentBusinessID(ctx, sessionID)

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestTenantService_GetContext_DanglingBusinessCleared(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	businessID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(testSession(sessionID, uuid.New(), businessID.String()), nil)
	fx.businessRepo.EXPECT().
		FindByID(ctx, businessID).
		Return(nil, repository.ErrBusinessNotFound)
	fx.sessionRepo.EXPECT().
		UpdateActiveBusiness(ctx, sessionID, "").
		Return(nil)

	output, err := fx.service.GetContext(ctx, sessionID)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, uuid.Nil, output.BusinessID)
	assert.Nil(t, output.Business)
}

func TestTenantService_SwitchBusiness_Success_NotifiesOnce(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	userID := uuid.New()
	fromBusinessID := uuid.New()
	toBusinessID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, toBusinessID).Return(true, nil)
	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(testSession(sessionID, userID, fromBusinessID.String()), nil)
	fx.sessionRepo.EXPECT().
		UpdateActiveBusiness(ctx, sessionID, toBusinessID.String()).
		Return(nil)
	fx.tenantRepo.EXPECT().SetBusinessContext(ctx, userID, toBusinessID).Return(nil)

	var events []usecase.ContextSwitchEvent
	unsubscribe := fx.service.Subscribe(func(event usecase.ContextSwitchEvent) {
		events = append(events, event)
	})
	defer unsubscribe()

	err := fx.service.SwitchBusiness(ctx, sessionID, userID, toBusinessID)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, sessionID, events[0].SessionID)
	assert.Equal(t, userID, events[0].UserID)
	assert.Equal(t, fromBusinessID, events[0].From)
	assert.Equal(t, toBusinessID, events[0].To)
}

// A foreign business must be rejected before anything is written: the
// session mock carries no expectations, so any write fails the test.
func TestTenantService_SwitchBusiness_ForeignBusinessDenied(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	userID := uuid.New()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, businessID).Return(false, nil)

	err := fx.service.SwitchBusiness(ctx, sessionID, userID, businessID)

	assert.ErrorIs(t, err, domainerrors.ErrBusinessAccessDenied)
}

func TestTenantService_SwitchBusiness_NilBusinessID(t *testing.T) {
	fx := createTestTenantService(t)

	err := fx.service.SwitchBusiness(context.Background(), uuid.New(), uuid.New(), uuid.Nil)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidBusinessID)
}

// When the database-side context RPC fails after the session row was
// already written, the row is rolled back to its previous value and no
// event is delivered.
func TestTenantService_SwitchBusiness_DatabaseContextFails_RollsBack(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	userID := uuid.New()
	fromBusinessID := uuid.New()
	toBusinessID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, toBusinessID).Return(true, nil)
	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(testSession(sessionID, userID, fromBusinessID.String()), nil)
	fx.sessionRepo.EXPECT().
		UpdateActiveBusiness(ctx, sessionID, toBusinessID.String()).
		Return(nil)
	fx.tenantRepo.EXPECT().
		SetBusinessContext(ctx, userID, toBusinessID).
		Return(errors.New("connection reset"))
	fx.sessionRepo.EXPECT().
		UpdateActiveBusiness(ctx, sessionID, fromBusinessID.String()).
		Return(nil)

	var notified int
	unsubscribe := fx.service.Subscribe(func(usecase.ContextSwitchEvent) { notified++ })
	defer unsubscribe()

	err := fx.service.SwitchBusiness(ctx, sessionID, userID, toBusinessID)

	require.Error(t, err)
	assert.Zero(t, notified)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "context_switch_failed", appErr.ErrorCode())
}

func TestTenantService_SwitchBusiness_DatabaseDeniesAccess(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	userID := uuid.New()
	toBusinessID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, toBusinessID).Return(true, nil)
	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(testSession(sessionID, userID, ""), nil)
	fx.sessionRepo.EXPECT().
		UpdateActiveBusiness(ctx, sessionID, toBusinessID.String()).
		Return(nil)
	fx.tenantRepo.EXPECT().
		SetBusinessContext(ctx, userID, toBusinessID).
		Return(domainerrors.ErrBusinessAccessDenied)
	fx.sessionRepo.EXPECT().
		UpdateActiveBusiness(ctx, sessionID, "").
		Return(nil)

	err := fx.service.SwitchBusiness(ctx, sessionID, userID, toBusinessID)

	assert.ErrorIs(t, err, domainerrors.ErrBusinessAccessDenied)
}

// The session row is authoritative, so a failed database-side clear is
// logged and swallowed.
func TestTenantService_ClearBusinessContext_DatabaseClearFailureTolerated(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	userID := uuid.New()
	fromBusinessID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(testSession(sessionID, userID, fromBusinessID.String()), nil)
	fx.sessionRepo.EXPECT().
		UpdateActiveBusiness(ctx, sessionID, "").
		Return(nil)
	fx.tenantRepo.EXPECT().
		ClearBusinessContext(ctx).
		Return(errors.New("connection reset"))

	var events []usecase.ContextSwitchEvent
	unsubscribe := fx.service.Subscribe(func(event usecase.ContextSwitchEvent) {
		events = append(events, event)
	})
	defer unsubscribe()

	err := fx.service.ClearBusinessContext(ctx, sessionID, userID)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, fromBusinessID, events[0].From)
	assert.Equal(t, uuid.Nil, events[0].To)
}

func TestTenantService_ClearBusinessContext_AlreadyEmpty_NoEvent(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	userID := uuid.New()

	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(testSession(sessionID, userID, ""), nil)
	fx.sessionRepo.EXPECT().
		UpdateActiveBusiness(ctx, sessionID, "").
		Return(nil)
	fx.tenantRepo.EXPECT().ClearBusinessContext(ctx).Return(nil)

	var notified int
	unsubscribe := fx.service.Subscribe(func(usecase.ContextSwitchEvent) { notified++ })
	defer unsubscribe()

	err := fx.service.ClearBusinessContext(ctx, sessionID, userID)

	require.NoError(t, err)
	assert.Zero(t, notified)
}

func TestTenantService_Subscribe_UnsubscribeStopsDelivery(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	sessionID := uuid.New()
	userID := uuid.New()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, businessID).Return(true, nil).Twice()
	fx.sessionRepo.EXPECT().
		FindByID(ctx, sessionID).
		Return(testSession(sessionID, userID, ""), nil).
		Twice()
	fx.sessionRepo.EXPECT().
		UpdateActiveBusiness(ctx, sessionID, businessID.String()).
		Return(nil).
		Twice()
	fx.tenantRepo.EXPECT().SetBusinessContext(ctx, userID, businessID).Return(nil).Twice()

	var notified int
	unsubscribe := fx.service.Subscribe(func(usecase.ContextSwitchEvent) { notified++ })

	require.NoError(t, fx.service.SwitchBusiness(ctx, sessionID, userID, businessID))
	unsubscribe()
	require.NoError(t, fx.service.SwitchBusiness(ctx, sessionID, userID, businessID))

	assert.Equal(t, 1, notified)
}

func TestTenantService_ValidateBusinessAccess_RepositoryError(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().
		IsOwner(ctx, userID, businessID).
		Return(false, errors.New("connection reset"))

	allowed, err := fx.service.ValidateBusinessAccess(ctx, userID, businessID)

	require.Error(t, err)
	assert.False(t, allowed)
}

func TestTenantService_TestIsolation_Success(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()

	expected := []repository.IsolationResult{
		{Table: "businesses", VisibleRows: 1, ForeignRows: 0},
		{Table: "appointments", VisibleRows: 4, ForeignRows: 0},
	}

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, businessID).Return(true, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)

			mockFactory.EXPECT().NewTenantContextRepository().Return(mockTenantRepo)
			mockTenantRepo.EXPECT().SetBusinessContext(ctx, userID, businessID).Return(nil)
			mockTenantRepo.EXPECT().TestDataIsolation(ctx, businessID).Return(expected, nil)

			return fn(mockFactory)
		})

	results, err := fx.service.TestIsolation(ctx, userID, businessID)

	require.NoError(t, err)
	assert.Equal(t, expected, results)
}

func TestTenantService_TestIsolation_ForeignBusinessDenied(t *testing.T) {
	fx := createTestTenantService(t)
	ctx := context.Background()
	userID := uuid.New()
	businessID := uuid.New()

	fx.businessRepo.EXPECT().IsOwner(ctx, userID, businessID).Return(false, nil)

	results, err := fx.service.TestIsolation(ctx, userID, businessID)

	assert.ErrorIs(t, err, domainerrors.ErrBusinessAccessDenied)
	assert.Nil(t, results)
}
