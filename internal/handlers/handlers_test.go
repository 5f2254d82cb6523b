package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/handlers"
	"github.com/SscSPs/consultancy_admin/internal/platform/config"
	"github.com/SscSPs/consultancy_admin/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testHost     = "acme.example.com"
	testTenantID = "tenant-1"

	otherTenantID     = "5b0f3c2e-8d1a-4e7b-9c6d-2a4f8e1b7c30"
	repCountryID      = "0e6a1d4b-3f2c-4b8a-9e7d-6c5b4a3f2e10"
	protectedStatusID = "7c1e9a2b-5d4f-4e3a-8b6c-1f0e9d8c7b21"
	missingStatusID   = "9f8e7d6c-5b4a-4f3e-8d2c-1b0a9f8e7d32"
	associateID       = "3a2b1c0d-9e8f-4a7b-8c6d-5e4f3a2b1c43"
)

type HandlersTestSuite struct {
	suite.Suite
	router    *gin.Engine
	cfg       *config.Config
	tenants   *MockTenantService
	users     *MockUserService
	tokens    *MockTokenService
	branches  *MockBranchService
	associate *MockAssociateService
	pipeline  *MockPipelineService
	tenant    *domain.Tenant
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		APIBasePath:    "/api/v1",
		JWTSecret:      "test-secret-key-that-is-long-enough",
		LoginRateLimit: "1000-M",
		PlatformAPIKey: "operator-key",
		IsProduction:   true,
	}
	suite.tenants = new(MockTenantService)
	suite.users = new(MockUserService)
	suite.tokens = new(MockTokenService)
	suite.branches = new(MockBranchService)
	suite.associate = new(MockAssociateService)
	suite.pipeline = new(MockPipelineService)
	suite.tenant = &domain.Tenant{TenantID: testTenantID, Name: "Acme", IsApproved: true, Domains: []string{testHost}}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Tenant:       suite.tenants,
		User:         suite.users,
		TokenService: suite.tokens,
		Branch:       suite.branches,
		Associate:    suite.associate,
		Pipeline:     suite.pipeline,
	}, nil)
}

// generateTestToken mints an access token for userID in tenantID.
func (suite *HandlersTestSuite) generateTestToken(userID, tenantID string) string {
	token, err := utils.GenerateJWT(userID, tenantID, suite.cfg.JWTSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return token
}

// withPrincipal registers the tenant and principal lookups for an authenticated request.
func (suite *HandlersTestSuite) withPrincipal(userID string, roles ...domain.Role) string {
	suite.tenants.On("ResolveTenant", mock.Anything, testHost).Return(suite.tenant, nil)
	suite.users.On("GetUserByID", mock.Anything, testTenantID, userID).
		Return(&domain.User{UserID: userID, TenantID: testTenantID, Name: "Principal", IsActive: true, Roles: roles}, nil)
	return suite.generateTestToken(userID, testTenantID)
}

func (suite *HandlersTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Host = testHost
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decodeError(w *httptest.ResponseRecorder) handlers.ErrorResponse {
	var resp handlers.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// --- Tenant gate ---

func (suite *HandlersTestSuite) TestTenantGate_UnknownHost() {
	suite.tenants.On("ResolveTenant", mock.Anything, testHost).Return(nil, apperrors.NewNotFoundError("tenant not found"))

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "a@example.com", Password: "secret123"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Forbidden", decodeError(w).Error)
	suite.users.AssertNotCalled(suite.T(), "AuthenticateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestTenantGate_UnapprovedTenant() {
	suite.tenants.On("ResolveTenant", mock.Anything, testHost).
		Return(&domain.Tenant{TenantID: testTenantID, IsApproved: false}, nil)

	w := suite.do(http.MethodGet, "/api/v1/super-admin/dashboard", suite.generateTestToken("u1", testTenantID), nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

// --- Auth ---

func (suite *HandlersTestSuite) TestLogin_ReturnsDashboardRedirect() {
	suite.tenants.On("ResolveTenant", mock.Anything, testHost).Return(suite.tenant, nil)
	user := &domain.User{UserID: "u1", TenantID: testTenantID, IsActive: true,
		Roles: []domain.Role{domain.RoleAssociate, domain.RoleBranchOffice}}
	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	suite.users.On("AuthenticateUser", mock.Anything, testTenantID, "owner@acme.com", "secret123").Return(user, nil)
	suite.tokens.On("GenerateAccessToken", mock.Anything, user).Return("access", expiry, nil)
	suite.tokens.On("GenerateRefreshToken", mock.Anything, user).Return("refresh", expiry, nil)

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "owner@acme.com", Password: "secret123"})

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("access", resp.Token)
	suite.Equal("refresh", resp.RefreshToken)
	suite.Equal("/api/v1/branch-office/dashboard", resp.RedirectTo)
}

func (suite *HandlersTestSuite) TestLogin_InvalidCredentials() {
	suite.tenants.On("ResolveTenant", mock.Anything, testHost).Return(suite.tenant, nil)
	suite.users.On("AuthenticateUser", mock.Anything, testTenantID, "owner@acme.com", "wrong-pass").Return(nil, apperrors.ErrUnauthorized)

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "owner@acme.com", Password: "wrong-pass"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.tokens.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestLogin_BindErrorListsFields() {
	suite.tenants.On("ResolveTenant", mock.Anything, testHost).Return(suite.tenant, nil)

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})

	suite.Equal(http.StatusBadRequest, w.Code)
	resp := decodeError(w)
	suite.Contains(resp.Errors, "email")
	suite.Contains(resp.Errors, "password")
}

func (suite *HandlersTestSuite) TestRefresh_Expired() {
	suite.tenants.On("ResolveTenant", mock.Anything, testHost).Return(suite.tenant, nil)
	suite.tokens.On("ValidateAndParseRefreshToken", mock.Anything, testTenantID, "u1", "stale").Return(nil, apperrors.ErrRefreshTokenExpired)

	w := suite.do(http.MethodPost, "/api/v1/auth/refresh", "", dto.RefreshTokenRequest{UserID: "u1", RefreshToken: "stale"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Refresh token expired", decodeError(w).Error)
}

func (suite *HandlersTestSuite) TestAuth_TokenFromAnotherTenant() {
	suite.tenants.On("ResolveTenant", mock.Anything, testHost).Return(suite.tenant, nil)

	w := suite.do(http.MethodGet, "/api/v1/super-admin/dashboard", suite.generateTestToken("u1", "tenant-2"), nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.users.AssertNotCalled(suite.T(), "GetUserByID", mock.Anything, mock.Anything, mock.Anything)
}

// --- Role redirect and guards ---

func (suite *HandlersTestSuite) TestRoleRedirect_OutsideOwnNamespace() {
	token := suite.withPrincipal("u1", domain.RoleBranchOffice)

	w := suite.do(http.MethodGet, "/api/v1/super-admin/branches", token, nil)

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/api/v1/branch-office/dashboard", w.Header().Get("Location"))
	suite.branches.AssertNotCalled(suite.T(), "ListBranches", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestRoleRedirect_PrecedenceWins() {
	token := suite.withPrincipal("u1", domain.RoleAssociate, domain.RoleSuperAdmin)

	w := suite.do(http.MethodGet, "/api/v1/associate/dashboard", token, nil)

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/api/v1/super-admin/dashboard", w.Header().Get("Location"))
}

func (suite *HandlersTestSuite) TestDashboard_OwnNamespace() {
	token := suite.withPrincipal("u1", domain.RoleCounsellor)

	w := suite.do(http.MethodGet, "/api/v1/counsellor/dashboard", token, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("counsellor", resp.Namespace)
	suite.Equal(domain.RoleCounsellor, resp.Role)
	suite.Equal(testTenantID, resp.Tenant.TenantID)
	suite.Equal("u1", resp.User.UserID)
}

func (suite *HandlersTestSuite) TestRequireRole_NoRecognisedRole() {
	token := suite.withPrincipal("u1", domain.Role("auditor"))

	w := suite.do(http.MethodGet, "/api/v1/super-admin/dashboard", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestPrincipalLoader_Deactivated() {
	suite.tenants.On("ResolveTenant", mock.Anything, testHost).Return(suite.tenant, nil)
	suite.users.On("GetUserByID", mock.Anything, testTenantID, "u1").
		Return(&domain.User{UserID: "u1", TenantID: testTenantID, IsActive: false, Roles: []domain.Role{domain.RoleSuperAdmin}}, nil)

	w := suite.do(http.MethodGet, "/api/v1/super-admin/dashboard", suite.generateTestToken("u1", testTenantID), nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

// --- Status pipeline ---

func (suite *HandlersTestSuite) TestToggleStatus_ProtectedIsFieldError() {
	token := suite.withPrincipal("admin", domain.RoleSuperAdmin)
	suite.pipeline.On("ToggleStatusActive", mock.Anything, testTenantID, "admin", repCountryID, protectedStatusID, false).
		Return(nil, apperrors.NewFieldError("isActive", "The initial status cannot be deactivated."))

	w := suite.do(http.MethodPatch, "/api/v1/super-admin/rep-countries/"+repCountryID+"/statuses/"+protectedStatusID+"/active", token, map[string]bool{"isActive": false})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal("The initial status cannot be deactivated.", decodeError(w).Errors["isActive"])
}

func (suite *HandlersTestSuite) TestToggleStatus_MissingFlag() {
	token := suite.withPrincipal("admin", domain.RoleSuperAdmin)

	w := suite.do(http.MethodPatch, "/api/v1/super-admin/rep-countries/"+repCountryID+"/statuses/"+protectedStatusID+"/active", token, map[string]string{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(decodeError(w).Errors, "isActive")
}

func (suite *HandlersTestSuite) TestSaveStatusOrder_ReturnsRefreshedPipeline() {
	token := suite.withPrincipal("admin", domain.RoleSuperAdmin)
	req := dto.SaveStatusOrderRequest{Statuses: []dto.StatusOrderItem{{StatusName: "Visa", Order: 1}, {StatusName: "New", Order: 2}}}
	suite.pipeline.On("SaveStatusOrder", mock.Anything, testTenantID, "admin", repCountryID, req).Return(nil)
	suite.pipeline.On("GetRepCountry", mock.Anything, testTenantID, repCountryID).Return(&domain.RepCountry{
		RepCountryID: repCountryID,
		CountryName:  "Australia",
		Statuses: []domain.RepCountryStatus{
			{StatusID: "s2", StatusName: "Visa", Order: 1},
			{StatusID: "s1", StatusName: "New", Order: 2, IsProtected: true},
		},
	}, nil)

	w := suite.do(http.MethodPut, "/api/v1/super-admin/rep-countries/"+repCountryID+"/statuses/order", token, req)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.RepCountryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Statuses, 2)
	suite.Equal("Visa", resp.Statuses[0].StatusName)
	suite.True(resp.Statuses[1].IsProtected)
}

func (suite *HandlersTestSuite) TestSaveStatusOrder_InvalidOrder() {
	token := suite.withPrincipal("admin", domain.RoleSuperAdmin)

	w := suite.do(http.MethodPut, "/api/v1/super-admin/rep-countries/"+repCountryID+"/statuses/order", token,
		map[string]any{"statuses": []map[string]any{{"statusName": "New", "order": 0}}})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(decodeError(w).Errors, "statuses[0].order")
	suite.pipeline.AssertNotCalled(suite.T(), "SaveStatusOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestAddSubStatus_UnknownStatus() {
	token := suite.withPrincipal("admin", domain.RoleSuperAdmin)
	req := dto.AddSubStatusRequest{Name: "Documents received"}
	suite.pipeline.On("AddSubStatus", mock.Anything, testTenantID, "admin", repCountryID, missingStatusID, req).
		Return(nil, apperrors.NewNotFoundError("status not found"))

	w := suite.do(http.MethodPost, "/api/v1/super-admin/rep-countries/"+repCountryID+"/statuses/"+missingStatusID+"/sub-statuses", token, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("status not found", decodeError(w).Error)
}

func (suite *HandlersTestSuite) TestMalformedPathID_IsNotFound() {
	token := suite.withPrincipal("admin", domain.RoleSuperAdmin)

	w := suite.do(http.MethodGet, "/api/v1/super-admin/rep-countries/abc", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.pipeline.AssertNotCalled(suite.T(), "GetRepCountry", mock.Anything, mock.Anything, mock.Anything)

	w = suite.do(http.MethodPatch, "/api/v1/super-admin/rep-countries/"+repCountryID+"/statuses/not-a-uuid/active", token, map[string]bool{"isActive": true})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.pipeline.AssertNotCalled(suite.T(), "ToggleStatusActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestMalformedTenantID_Platform() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/platform/tenants/tenant-9/approve", nil)
	req.Header.Set("x-api-key", "operator-key")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.tenants.AssertNotCalled(suite.T(), "SetTenantApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Provisioning ---

func (suite *HandlersTestSuite) TestCreateBranch_DuplicateEmail() {
	token := suite.withPrincipal("admin", domain.RoleSuperAdmin)
	req := dto.ProvisionRequest{Name: "Sydney", Email: "sydney@acme.com", Password: "secret123"}
	suite.branches.On("CreateBranch", mock.Anything, testTenantID, "admin", req).
		Return(nil, apperrors.NewFieldError("email", "The email has already been taken."))

	w := suite.do(http.MethodPost, "/api/v1/super-admin/branches", token, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal("The email has already been taken.", decodeError(w).Errors["email"])
}

func (suite *HandlersTestSuite) TestCreateBranch_UnexpectedErrorIs500() {
	token := suite.withPrincipal("admin", domain.RoleSuperAdmin)
	req := dto.ProvisionRequest{Name: "Sydney", Email: "sydney@acme.com", Password: "secret123"}
	suite.branches.On("CreateBranch", mock.Anything, testTenantID, "admin", req).
		Return(nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to save branch", errConnReset))

	w := suite.do(http.MethodPost, "/api/v1/super-admin/branches", token, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to create branch", decodeError(w).Error)
}

func (suite *HandlersTestSuite) TestListBranches_PassesPagination() {
	token := suite.withPrincipal("admin", domain.RoleSuperAdmin)
	next := "token-2"
	suite.branches.On("ListBranches", mock.Anything, testTenantID, dto.ListParams{Limit: 2, NextToken: "token-1"}).
		Return(dto.Page[domain.Branch]{Items: []domain.Branch{{BranchID: "b1"}, {BranchID: "b2"}}, NextToken: &next}, nil)

	w := suite.do(http.MethodGet, "/api/v1/super-admin/branches?limit=2&nextToken=token-1", token, nil)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.ListEntitiesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Items, 2)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("token-2", *resp.NextToken)
}

func (suite *HandlersTestSuite) TestCreateAssociate_MultipartContract() {
	token := suite.withPrincipal("bo-user", domain.RoleBranchOffice)
	suite.branches.On("GetBranchForUser", mock.Anything, testTenantID, "bo-user").Return(&domain.Branch{BranchID: "b1"}, nil)
	suite.associate.On("CreateAssociate", mock.Anything, testTenantID, "bo-user", "b1",
		mock.MatchedBy(func(r dto.ProvisionRequest) bool { return r.Email == "agent@acme.com" && r.Name == "Agent" }),
		mock.MatchedBy(func(f *dto.FileUpload) bool { return f != nil && f.FileName == "agreement.pdf" && f.Size == 7 })).
		Return(&domain.Associate{AssociateID: associateID, BranchID: "b1", Name: "Agent", Email: "agent@acme.com"}, nil)

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	suite.Require().NoError(mw.WriteField("name", "Agent"))
	suite.Require().NoError(mw.WriteField("email", "agent@acme.com"))
	suite.Require().NoError(mw.WriteField("password", "secret123"))
	part, err := mw.CreateFormFile("contract", "agreement.pdf")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("%PDF-1."))
	suite.Require().NoError(err)
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/branch-office/associates", body)
	req.Host = testHost
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.EntityResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(associateID, resp.ID)
	suite.Equal("b1", resp.BranchID)
	suite.associate.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) TestAssociateContract_NotFound() {
	token := suite.withPrincipal("bo-user", domain.RoleBranchOffice)
	suite.branches.On("GetBranchForUser", mock.Anything, testTenantID, "bo-user").Return(&domain.Branch{BranchID: "b1"}, nil)
	suite.associate.On("GetAssociateContractURL", mock.Anything, testTenantID, "b1", associateID).
		Return("", time.Time{}, apperrors.NewNotFoundError("contract not found"))

	w := suite.do(http.MethodGet, "/api/v1/branch-office/associates/"+associateID+"/contract", token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Platform ---

func (suite *HandlersTestSuite) TestApproveTenant_RequiresAPIKey() {
	w := suite.do(http.MethodPost, "/api/v1/platform/tenants/"+otherTenantID+"/approve", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.tenants.AssertNotCalled(suite.T(), "SetTenantApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestApproveTenant() {
	suite.tenants.On("SetTenantApproval", mock.Anything, otherTenantID, true, "platform").
		Return(&domain.Tenant{TenantID: otherTenantID, IsApproved: true, Domains: []string{"new.example.com"}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/platform/tenants/"+otherTenantID+"/approve", nil)
	req.Header.Set("x-api-key", "operator-key")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.TenantResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsApproved)
}

func (suite *HandlersTestSuite) TestSignup_DomainTaken() {
	req := dto.SignupTenantRequest{
		TenantName:    "Globex",
		Domain:        "globex.example.com",
		AdminName:     "Hank",
		AdminEmail:    "hank@globex.com",
		AdminPassword: "secret123",
	}
	suite.tenants.On("SignupTenant", mock.Anything, req).
		Return(nil, nil, apperrors.NewFieldError("domain", "This domain is already registered."))

	w := suite.do(http.MethodPost, "/api/v1/tenants/signup", "", req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(decodeError(w).Errors, "domain")
	suite.tenants.AssertNotCalled(suite.T(), "ResolveTenant", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}
