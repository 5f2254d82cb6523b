package handlers_test

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TenantService ---
type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) ResolveTenant(ctx context.Context, host string) (*domain.Tenant, error) {
	args := m.Called(ctx, host)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) SignupTenant(ctx context.Context, req dto.SignupTenantRequest) (*domain.Tenant, *domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Tenant), args.Get(1).(*domain.User), args.Error(2)
}

func (m *MockTenantService) SetTenantApproval(ctx context.Context, tenantID string, approved bool, actor string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID, approved, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

var _ portssvc.TenantSvcFacade = (*MockTenantService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, tenantID, userID string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, tenantID, email string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	return m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime).Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, tenantID, email, password string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, tenantID, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock BranchService ---
type MockBranchService struct {
	mock.Mock
}

func (m *MockBranchService) CreateBranch(ctx context.Context, tenantID, actorID string, req dto.ProvisionRequest) (*domain.Branch, error) {
	args := m.Called(ctx, tenantID, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchService) UpdateBranch(ctx context.Context, tenantID, actorID, branchID string, req dto.UpdateProvisionRequest) (*domain.Branch, error) {
	args := m.Called(ctx, tenantID, actorID, branchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchService) GetBranch(ctx context.Context, tenantID, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, tenantID, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchService) GetBranchForUser(ctx context.Context, tenantID, userID string) (*domain.Branch, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchService) ListBranches(ctx context.Context, tenantID string, params dto.ListParams) (dto.Page[domain.Branch], error) {
	args := m.Called(ctx, tenantID, params)
	return args.Get(0).(dto.Page[domain.Branch]), args.Error(1)
}

var _ portssvc.BranchSvcFacade = (*MockBranchService)(nil)

// --- Mock AssociateService ---
type MockAssociateService struct {
	mock.Mock
}

func (m *MockAssociateService) CreateAssociate(ctx context.Context, tenantID, actorID, branchID string, req dto.ProvisionRequest, contract *dto.FileUpload) (*domain.Associate, error) {
	args := m.Called(ctx, tenantID, actorID, branchID, req, contract)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Associate), args.Error(1)
}

func (m *MockAssociateService) UpdateAssociate(ctx context.Context, tenantID, actorID, branchID, associateID string, req dto.UpdateProvisionRequest, contract *dto.FileUpload) (*domain.Associate, error) {
	args := m.Called(ctx, tenantID, actorID, branchID, associateID, req, contract)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Associate), args.Error(1)
}

func (m *MockAssociateService) GetAssociate(ctx context.Context, tenantID, branchID, associateID string) (*domain.Associate, error) {
	args := m.Called(ctx, tenantID, branchID, associateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Associate), args.Error(1)
}

func (m *MockAssociateService) ListAssociates(ctx context.Context, tenantID, branchID string, params dto.ListParams) (dto.Page[domain.Associate], error) {
	args := m.Called(ctx, tenantID, branchID, params)
	return args.Get(0).(dto.Page[domain.Associate]), args.Error(1)
}

func (m *MockAssociateService) GetAssociateContractURL(ctx context.Context, tenantID, branchID, associateID string) (string, time.Time, error) {
	args := m.Called(ctx, tenantID, branchID, associateID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.AssociateSvcFacade = (*MockAssociateService)(nil)

// --- Mock PipelineService ---
type MockPipelineService struct {
	mock.Mock
}

func (m *MockPipelineService) CreateRepCountry(ctx context.Context, tenantID, actorID string, req dto.CreateRepCountryRequest) (*domain.RepCountry, error) {
	args := m.Called(ctx, tenantID, actorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepCountry), args.Error(1)
}

func (m *MockPipelineService) ListRepCountries(ctx context.Context, tenantID string) ([]domain.RepCountry, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RepCountry), args.Error(1)
}

func (m *MockPipelineService) GetRepCountry(ctx context.Context, tenantID, repCountryID string) (*domain.RepCountry, error) {
	args := m.Called(ctx, tenantID, repCountryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepCountry), args.Error(1)
}

func (m *MockPipelineService) AddStatus(ctx context.Context, tenantID, actorID, repCountryID string, req dto.AddStatusRequest) (*domain.RepCountryStatus, error) {
	args := m.Called(ctx, tenantID, actorID, repCountryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepCountryStatus), args.Error(1)
}

func (m *MockPipelineService) ToggleStatusActive(ctx context.Context, tenantID, actorID, repCountryID, statusID string, isActive bool) (*domain.RepCountryStatus, error) {
	args := m.Called(ctx, tenantID, actorID, repCountryID, statusID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepCountryStatus), args.Error(1)
}

func (m *MockPipelineService) UpdateStatusNotes(ctx context.Context, tenantID, actorID, repCountryID, statusID string, req dto.UpdateStatusNotesRequest) (*domain.RepCountryStatus, error) {
	args := m.Called(ctx, tenantID, actorID, repCountryID, statusID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RepCountryStatus), args.Error(1)
}

func (m *MockPipelineService) SaveStatusOrder(ctx context.Context, tenantID, actorID, repCountryID string, req dto.SaveStatusOrderRequest) error {
	return m.Called(ctx, tenantID, actorID, repCountryID, req).Error(0)
}

func (m *MockPipelineService) AddSubStatus(ctx context.Context, tenantID, actorID, repCountryID, statusID string, req dto.AddSubStatusRequest) (*domain.SubStatus, error) {
	args := m.Called(ctx, tenantID, actorID, repCountryID, statusID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubStatus), args.Error(1)
}

func (m *MockPipelineService) EditSubStatus(ctx context.Context, tenantID, actorID, repCountryID, statusID, subStatusID string, req dto.EditSubStatusRequest) (*domain.SubStatus, error) {
	args := m.Called(ctx, tenantID, actorID, repCountryID, statusID, subStatusID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubStatus), args.Error(1)
}

func (m *MockPipelineService) ToggleSubStatusActive(ctx context.Context, tenantID, actorID, repCountryID, statusID, subStatusID string, isActive bool) (*domain.SubStatus, error) {
	args := m.Called(ctx, tenantID, actorID, repCountryID, statusID, subStatusID, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubStatus), args.Error(1)
}

var _ portssvc.PipelineSvcFacade = (*MockPipelineService)(nil)

var errConnReset = errors.New("connection reset by peer")
