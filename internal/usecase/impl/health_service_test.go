package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockRepo "turnos/internal/mocks/repository"
	mockSvc "turnos/internal/mocks/service"
	"turnos/internal/usecase"
)

func TestHealthService_Check_AllHealthy(t *testing.T) {
	mockStore := mockRepo.NewMockStoreHealth(t)
	mockIdentity := mockSvc.NewMockIdentityService(t)
	mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)
	service := NewHealthService(mockStore, mockIdentity, mockTenantRepo)

	mockStore.EXPECT().Ping(mock.Anything).Return(nil)
	mockIdentity.EXPECT().Ping(mock.Anything).Return(nil)
	mockTenantRepo.EXPECT().Ping(mock.Anything).Return(nil)

	output := service.Check(context.Background())

	require.NotNil(t, output)
	assert.Equal(t, usecase.HealthOK, output.Status)
	assert.Equal(t, "ok", output.Services["database"])
	assert.Equal(t, "ok", output.Services["identity"])
	assert.Equal(t, "ok", output.Services["rls"])
}

// One failing dependency degrades the overall status; the others still
// report individually.
func TestHealthService_Check_IdentityDown(t *testing.T) {
	mockStore := mockRepo.NewMockStoreHealth(t)
	mockIdentity := mockSvc.NewMockIdentityService(t)
	mockTenantRepo := mockRepo.NewMockTenantContextRepository(t)
	service := NewHealthService(mockStore, mockIdentity, mockTenantRepo)

	mockStore.EXPECT().Ping(mock.Anything).Return(nil)
	mockIdentity.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused"))
	mockTenantRepo.EXPECT().Ping(mock.Anything).Return(nil)

	output := service.Check(context.Background())

	assert.Equal(t, usecase.HealthDegraded, output.Status)
	assert.Equal(t, "ok", output.Services["database"])
	assert.Equal(t, "error: connection refused", output.Services["identity"])
	assert.Equal(t, "ok", output.Services["rls"])
}
