package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTenantRepo struct {
	mock.Mock
}

func (m *mockTenantRepo) FindTenantByDomain(ctx context.Context, host string) (*domain.Tenant, error) {
	args := m.Called(ctx, host)
	var tenant *domain.Tenant
	if args.Get(0) != nil {
		tenant = args.Get(0).(*domain.Tenant)
	}
	return tenant, args.Error(1)
}

func (m *mockTenantRepo) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	var tenant *domain.Tenant
	if args.Get(0) != nil {
		tenant = args.Get(0).(*domain.Tenant)
	}
	return tenant, args.Error(1)
}

func (m *mockTenantRepo) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *mockTenantRepo) UpdateTenantApproval(ctx context.Context, tenantID string, approved bool, updatedBy string) error {
	return m.Called(ctx, tenantID, approved, updatedBy).Error(0)
}

func setupTestCache(t *testing.T) (*miniredis.Miniredis, *mockTenantRepo, *TenantCache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := new(mockTenantRepo)
	return mr, repo, NewTenantCache(repo, client, time.Minute)
}

func TestTenantCache_MissPopulatesCache(t *testing.T) {
	mr, repo, cache := setupTestCache(t)
	ctx := context.Background()
	tenant := &domain.Tenant{TenantID: "t1", Name: "Acme", IsApproved: true, Domains: []string{"acme.example.com"}}
	repo.On("FindTenantByDomain", ctx, "acme.example.com").Return(tenant, nil).Once()

	first, err := cache.FindTenantByDomain(ctx, "acme.example.com")
	require.NoError(t, err)
	second, err := cache.FindTenantByDomain(ctx, "acme.example.com")
	require.NoError(t, err)

	assert.Equal(t, "t1", first.TenantID)
	assert.Equal(t, first.TenantID, second.TenantID)
	assert.True(t, second.IsApproved)
	assert.True(t, mr.Exists("tenant:domain:acme.example.com"))
	assert.Equal(t, time.Minute, mr.TTL("tenant:domain:acme.example.com"))
	repo.AssertNumberOfCalls(t, "FindTenantByDomain", 1)
}

func TestTenantCache_NotFoundIsNotCached(t *testing.T) {
	mr, repo, cache := setupTestCache(t)
	ctx := context.Background()
	repo.On("FindTenantByDomain", ctx, "nobody.example.com").Return(nil, apperrors.NewNotFoundError("tenant not found"))

	_, err := cache.FindTenantByDomain(ctx, "nobody.example.com")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.False(t, mr.Exists("tenant:domain:nobody.example.com"))
}

func TestTenantCache_InvalidateDropsEntries(t *testing.T) {
	mr, repo, cache := setupTestCache(t)
	ctx := context.Background()
	unapproved := &domain.Tenant{TenantID: "t1", IsApproved: false}
	approved := &domain.Tenant{TenantID: "t1", IsApproved: true}
	repo.On("FindTenantByDomain", ctx, "acme.example.com").Return(unapproved, nil).Once()
	repo.On("FindTenantByDomain", ctx, "acme.example.com").Return(approved, nil).Once()

	got, err := cache.FindTenantByDomain(ctx, "acme.example.com")
	require.NoError(t, err)
	assert.False(t, got.IsApproved)

	require.NoError(t, cache.Invalidate(ctx, "acme.example.com", "www.acme.example.com"))
	assert.False(t, mr.Exists("tenant:domain:acme.example.com"))

	got, err = cache.FindTenantByDomain(ctx, "acme.example.com")
	require.NoError(t, err)
	assert.True(t, got.IsApproved)
}

func TestTenantCache_CorruptEntryFallsThrough(t *testing.T) {
	mr, repo, cache := setupTestCache(t)
	ctx := context.Background()
	require.NoError(t, mr.Set("tenant:domain:acme.example.com", "{not json"))
	repo.On("FindTenantByDomain", ctx, "acme.example.com").Return(&domain.Tenant{TenantID: "t1"}, nil).Once()

	got, err := cache.FindTenantByDomain(ctx, "acme.example.com")

	require.NoError(t, err)
	assert.Equal(t, "t1", got.TenantID)
	stored, err := mr.Get("tenant:domain:acme.example.com")
	require.NoError(t, err)
	var decoded domain.Tenant
	require.NoError(t, json.Unmarshal([]byte(stored), &decoded))
	assert.Equal(t, "t1", decoded.TenantID)
}

func TestTenantCache_RedisDownFallsBackToRepository(t *testing.T) {
	mr, repo, cache := setupTestCache(t)
	ctx := context.Background()
	mr.Close()
	repo.On("FindTenantByDomain", ctx, "acme.example.com").Return(&domain.Tenant{TenantID: "t1"}, nil).Once()

	got, err := cache.FindTenantByDomain(ctx, "acme.example.com")

	require.NoError(t, err)
	assert.Equal(t, "t1", got.TenantID)
}
