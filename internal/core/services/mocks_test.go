package services_test

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Transaction manager ---

// MockTxManager runs fn inline and counts outcomes.
type MockTxManager struct {
	Commits   int
	Rollbacks int
}

func (m *MockTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		m.Rollbacks++
		return err
	}
	m.Commits++
	return nil
}

// --- Users ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, tenantID, userID string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, tenantID, email string) (*domain.User, error) {
	args := m.Called(ctx, tenantID, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, tenantID, userID, passwordHash, updatedBy string) error {
	return m.Called(ctx, tenantID, userID, passwordHash, updatedBy).Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshTokenHash string, expiry time.Time) error {
	return m.Called(ctx, userID, refreshTokenHash, expiry).Error(0)
}

// --- Tenants ---

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByDomain(ctx context.Context, host string) (*domain.Tenant, error) {
	args := m.Called(ctx, host)
	var tenant *domain.Tenant
	if args.Get(0) != nil {
		tenant = args.Get(0).(*domain.Tenant)
	}
	return tenant, args.Error(1)
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	var tenant *domain.Tenant
	if args.Get(0) != nil {
		tenant = args.Get(0).(*domain.Tenant)
	}
	return tenant, args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *MockTenantRepository) UpdateTenantApproval(ctx context.Context, tenantID string, approved bool, updatedBy string) error {
	return m.Called(ctx, tenantID, approved, updatedBy).Error(0)
}

type MockTenantCacheInvalidator struct {
	mock.Mock
}

func (m *MockTenantCacheInvalidator) Invalidate(ctx context.Context, domains ...string) error {
	return m.Called(ctx, domains).Error(0)
}

// --- Provisioned entities ---

type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockBranchRepository) FindBranchByID(ctx context.Context, tenantID, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, tenantID, branchID)
	var branch *domain.Branch
	if args.Get(0) != nil {
		branch = args.Get(0).(*domain.Branch)
	}
	return branch, args.Error(1)
}

func (m *MockBranchRepository) FindBranchByUserID(ctx context.Context, tenantID, userID string) (*domain.Branch, error) {
	args := m.Called(ctx, tenantID, userID)
	var branch *domain.Branch
	if args.Get(0) != nil {
		branch = args.Get(0).(*domain.Branch)
	}
	return branch, args.Error(1)
}

func (m *MockBranchRepository) ListBranches(ctx context.Context, tenantID string, params portsrepo.ListParams) ([]domain.Branch, error) {
	args := m.Called(ctx, tenantID, params)
	var branches []domain.Branch
	if args.Get(0) != nil {
		branches = args.Get(0).([]domain.Branch)
	}
	return branches, args.Error(1)
}

type MockAssociateRepository struct {
	mock.Mock
}

func (m *MockAssociateRepository) SaveAssociate(ctx context.Context, associate domain.Associate) error {
	return m.Called(ctx, associate).Error(0)
}

func (m *MockAssociateRepository) UpdateAssociate(ctx context.Context, associate domain.Associate) error {
	return m.Called(ctx, associate).Error(0)
}

func (m *MockAssociateRepository) FindAssociateByID(ctx context.Context, tenantID, associateID string) (*domain.Associate, error) {
	args := m.Called(ctx, tenantID, associateID)
	var associate *domain.Associate
	if args.Get(0) != nil {
		associate = args.Get(0).(*domain.Associate)
	}
	return associate, args.Error(1)
}

func (m *MockAssociateRepository) ListAssociatesByBranch(ctx context.Context, tenantID, branchID string, params portsrepo.ListParams) ([]domain.Associate, error) {
	args := m.Called(ctx, tenantID, branchID, params)
	var associates []domain.Associate
	if args.Get(0) != nil {
		associates = args.Get(0).([]domain.Associate)
	}
	return associates, args.Error(1)
}

type MockProcessingOfficeRepository struct {
	mock.Mock
}

func (m *MockProcessingOfficeRepository) SaveProcessingOffice(ctx context.Context, office domain.ProcessingOffice) error {
	return m.Called(ctx, office).Error(0)
}

func (m *MockProcessingOfficeRepository) UpdateProcessingOffice(ctx context.Context, office domain.ProcessingOffice) error {
	return m.Called(ctx, office).Error(0)
}

func (m *MockProcessingOfficeRepository) FindProcessingOfficeByID(ctx context.Context, tenantID, officeID string) (*domain.ProcessingOffice, error) {
	args := m.Called(ctx, tenantID, officeID)
	var office *domain.ProcessingOffice
	if args.Get(0) != nil {
		office = args.Get(0).(*domain.ProcessingOffice)
	}
	return office, args.Error(1)
}

func (m *MockProcessingOfficeRepository) ListProcessingOffices(ctx context.Context, tenantID string, params portsrepo.ListParams) ([]domain.ProcessingOffice, error) {
	args := m.Called(ctx, tenantID, params)
	var offices []domain.ProcessingOffice
	if args.Get(0) != nil {
		offices = args.Get(0).([]domain.ProcessingOffice)
	}
	return offices, args.Error(1)
}

// --- Attachments ---

type MockAttachmentRepository struct {
	mock.Mock
}

func (m *MockAttachmentRepository) SaveAttachment(ctx context.Context, attachment domain.Attachment) error {
	return m.Called(ctx, attachment).Error(0)
}

func (m *MockAttachmentRepository) FindAttachment(ctx context.Context, tenantID, ownerType, ownerID, collection string) (*domain.Attachment, error) {
	args := m.Called(ctx, tenantID, ownerType, ownerID, collection)
	var att *domain.Attachment
	if args.Get(0) != nil {
		att = args.Get(0).(*domain.Attachment)
	}
	return att, args.Error(1)
}

func (m *MockAttachmentRepository) DeleteAttachment(ctx context.Context, tenantID, attachmentID string) error {
	return m.Called(ctx, tenantID, attachmentID).Error(0)
}

type MockAttachmentStore struct {
	mock.Mock
}

func (m *MockAttachmentStore) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, body, size, contentType).Error(0)
}

func (m *MockAttachmentStore) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockAttachmentStore) GenerateDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

// --- Pipeline ---

type MockPipelineRepository struct {
	mock.Mock
}

func (m *MockPipelineRepository) SaveRepCountry(ctx context.Context, repCountry domain.RepCountry) error {
	return m.Called(ctx, repCountry).Error(0)
}

func (m *MockPipelineRepository) FindRepCountryByID(ctx context.Context, tenantID, repCountryID string) (*domain.RepCountry, error) {
	args := m.Called(ctx, tenantID, repCountryID)
	var rc *domain.RepCountry
	if args.Get(0) != nil {
		rc = args.Get(0).(*domain.RepCountry)
	}
	return rc, args.Error(1)
}

func (m *MockPipelineRepository) ListRepCountries(ctx context.Context, tenantID string) ([]domain.RepCountry, error) {
	args := m.Called(ctx, tenantID)
	var rcs []domain.RepCountry
	if args.Get(0) != nil {
		rcs = args.Get(0).([]domain.RepCountry)
	}
	return rcs, args.Error(1)
}

func (m *MockPipelineRepository) SaveStatus(ctx context.Context, status domain.RepCountryStatus) error {
	return m.Called(ctx, status).Error(0)
}

func (m *MockPipelineRepository) FindStatusByID(ctx context.Context, repCountryID, statusID string) (*domain.RepCountryStatus, error) {
	args := m.Called(ctx, repCountryID, statusID)
	var status *domain.RepCountryStatus
	if args.Get(0) != nil {
		status = args.Get(0).(*domain.RepCountryStatus)
	}
	return status, args.Error(1)
}

func (m *MockPipelineRepository) ListStatuses(ctx context.Context, repCountryID string) ([]domain.RepCountryStatus, error) {
	args := m.Called(ctx, repCountryID)
	var statuses []domain.RepCountryStatus
	if args.Get(0) != nil {
		statuses = args.Get(0).([]domain.RepCountryStatus)
	}
	return statuses, args.Error(1)
}

func (m *MockPipelineRepository) MaxStatusOrder(ctx context.Context, repCountryID string) (int, error) {
	args := m.Called(ctx, repCountryID)
	return args.Int(0), args.Error(1)
}

func (m *MockPipelineRepository) UpdateStatusActive(ctx context.Context, repCountryID, statusID string, isActive bool, updatedBy string) error {
	return m.Called(ctx, repCountryID, statusID, isActive, updatedBy).Error(0)
}

func (m *MockPipelineRepository) UpdateStatusNotes(ctx context.Context, repCountryID, statusID string, notes *string, updatedBy string) error {
	return m.Called(ctx, repCountryID, statusID, notes, updatedBy).Error(0)
}

func (m *MockPipelineRepository) UpdateStatusOrderByName(ctx context.Context, repCountryID, statusName string, order int, updatedBy string) (int64, error) {
	args := m.Called(ctx, repCountryID, statusName, order, updatedBy)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPipelineRepository) SaveSubStatus(ctx context.Context, subStatus domain.SubStatus) error {
	return m.Called(ctx, subStatus).Error(0)
}

func (m *MockPipelineRepository) FindSubStatusByID(ctx context.Context, statusID, subStatusID string) (*domain.SubStatus, error) {
	args := m.Called(ctx, statusID, subStatusID)
	var sub *domain.SubStatus
	if args.Get(0) != nil {
		sub = args.Get(0).(*domain.SubStatus)
	}
	return sub, args.Error(1)
}

func (m *MockPipelineRepository) ListSubStatuses(ctx context.Context, statusIDs []string) ([]domain.SubStatus, error) {
	args := m.Called(ctx, statusIDs)
	var subs []domain.SubStatus
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.SubStatus)
	}
	return subs, args.Error(1)
}

func (m *MockPipelineRepository) MaxSubStatusOrder(ctx context.Context, statusID string) (int, error) {
	args := m.Called(ctx, statusID)
	return args.Int(0), args.Error(1)
}

func (m *MockPipelineRepository) UpdateSubStatusName(ctx context.Context, statusID, subStatusID, name, updatedBy string) error {
	return m.Called(ctx, statusID, subStatusID, name, updatedBy).Error(0)
}

func (m *MockPipelineRepository) UpdateSubStatusActive(ctx context.Context, statusID, subStatusID string, isActive bool, updatedBy string) error {
	return m.Called(ctx, statusID, subStatusID, isActive, updatedBy).Error(0)
}

// --- Institutions ---

type MockInstitutionRepository struct {
	mock.Mock
}

func (m *MockInstitutionRepository) SaveInstitution(ctx context.Context, institution domain.Institution) error {
	return m.Called(ctx, institution).Error(0)
}

func (m *MockInstitutionRepository) UpdateInstitution(ctx context.Context, institution domain.Institution) error {
	return m.Called(ctx, institution).Error(0)
}

func (m *MockInstitutionRepository) FindInstitutionByID(ctx context.Context, tenantID, institutionID string) (*domain.Institution, error) {
	args := m.Called(ctx, tenantID, institutionID)
	var institution *domain.Institution
	if args.Get(0) != nil {
		institution = args.Get(0).(*domain.Institution)
	}
	return institution, args.Error(1)
}

func (m *MockInstitutionRepository) ListInstitutions(ctx context.Context, tenantID string, params portsrepo.ListParams) ([]domain.Institution, error) {
	args := m.Called(ctx, tenantID, params)
	var institutions []domain.Institution
	if args.Get(0) != nil {
		institutions = args.Get(0).([]domain.Institution)
	}
	return institutions, args.Error(1)
}

func (m *MockInstitutionRepository) SaveCourse(ctx context.Context, course domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *MockInstitutionRepository) UpdateCourse(ctx context.Context, course domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *MockInstitutionRepository) FindCourseByID(ctx context.Context, institutionID, courseID string) (*domain.Course, error) {
	args := m.Called(ctx, institutionID, courseID)
	var course *domain.Course
	if args.Get(0) != nil {
		course = args.Get(0).(*domain.Course)
	}
	return course, args.Error(1)
}

func (m *MockInstitutionRepository) ListCourses(ctx context.Context, institutionID string) ([]domain.Course, error) {
	args := m.Called(ctx, institutionID)
	var courses []domain.Course
	if args.Get(0) != nil {
		courses = args.Get(0).([]domain.Course)
	}
	return courses, args.Error(1)
}

var (
	_ portsrepo.TransactionManager               = (*MockTxManager)(nil)
	_ portsrepo.UserRepositoryFacade             = (*MockUserRepository)(nil)
	_ portsrepo.TenantRepositoryFacade           = (*MockTenantRepository)(nil)
	_ portsrepo.TenantCacheInvalidator           = (*MockTenantCacheInvalidator)(nil)
	_ portsrepo.BranchRepositoryFacade           = (*MockBranchRepository)(nil)
	_ portsrepo.AssociateRepositoryFacade        = (*MockAssociateRepository)(nil)
	_ portsrepo.ProcessingOfficeRepositoryFacade = (*MockProcessingOfficeRepository)(nil)
	_ portsrepo.AttachmentRepositoryFacade       = (*MockAttachmentRepository)(nil)
	_ portsrepo.AttachmentStore                  = (*MockAttachmentStore)(nil)
	_ portsrepo.PipelineRepositoryFacade         = (*MockPipelineRepository)(nil)
	_ portsrepo.InstitutionRepositoryFacade      = (*MockInstitutionRepository)(nil)
)
