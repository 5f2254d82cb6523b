package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portssvc "github.com/SscSPs/consultancy_admin/internal/core/ports/services"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles password, refresh and Google sign-in for the resolved tenant.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	googleOAuth  portssvc.GoogleOAuthHandlerSvcFacade
	basePath     string
}

func newAuthHandler(services *portssvc.ServiceContainer, basePath string) *authHandler {
	return &authHandler{
		userService:  services.User,
		tokenService: services.TokenService,
		googleOAuth:  services.GoogleOAuthHandler,
		basePath:     basePath,
	}
}

// registerAuthRoutes sets up the routes for authentication.
// rg must already be tenant-gated.
func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, basePath string, limit gin.HandlerFunc) {
	h := newAuthHandler(services, basePath)

	auth := rg.Group("/auth", limit)
	{
		auth.POST("/login", h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/google", h.googleLogin)
	}
}

// login godoc
// @Summary Password login
// @Description Authenticates a principal of the tenant bound to the request host.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Unknown or unapproved tenant"
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenant, ok := middleware.GetTenantFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), tenant.TenantID, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login rejected")
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondWithError(c, err, "Failed to log in")
		return
	}

	h.issueTokens(c, user)
}

// refresh godoc
// @Summary Refresh access token
// @Description Exchanges a refresh token for a new access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenant, ok := middleware.GetTenantFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), tenant.TenantID, req.UserID, req.RefreshToken)
	if err != nil {
		respondWithError(c, err, "Failed to refresh token")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondWithError(c, err, "Failed to generate token")
		return
	}
	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: token, ExpiresAt: expiresAt})
}

// googleLogin godoc
// @Summary Google sign-in
// @Description Accepts a Google authorization code or ID token and signs in the matching principal.
// @Tags auth
// @Accept json
// @Produce json
// @Param google body dto.GoogleLoginRequest true "Code or ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /auth/google [post]
func (h *authHandler) googleLogin(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tenant, ok := middleware.GetTenantFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	idToken := req.IDToken
	if idToken == "" {
		oauth2Token, err := h.googleOAuth.ExchangeCodeForToken(ctx, req.Code)
		if err != nil {
			logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
			lower := strings.ToLower(err.Error())
			if strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
				c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
				return
			}
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to communicate with Google"})
			return
		}
		idToken, _ = oauth2Token.Extra("id_token").(string)
		if idToken == "" {
			logger.Error("ID token not found in Google's token response")
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Google did not return an ID token"})
			return
		}
	}

	payload, err := h.googleOAuth.ValidateGoogleIDToken(ctx, idToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}
	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		logger.Warn("Google account email missing or unverified", slog.String("google_user_id", payload.Subject))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google account email is not verified"})
		return
	}

	user, err := h.userService.GetUserByEmail(ctx, tenant.TenantID, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No principal for Google account", slog.String("google_user_id", payload.Subject))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No account for this Google user"})
			return
		}
		respondWithError(c, err, "Failed to log in")
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Account is deactivated"})
		return
	}

	h.issueTokens(c, user)
}

func (h *authHandler) issueTokens(c *gin.Context, user *domain.User) {
	ctx := c.Request.Context()
	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondWithError(c, err, "Failed to generate token")
		return
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		respondWithError(c, err, "Failed to generate refresh token")
		return
	}

	resp := dto.LoginResponse{Token: token, ExpiresAt: expiresAt, RefreshToken: refreshToken}
	if route, ok := domain.ResolveDashboard(user.Roles); ok {
		resp.RedirectTo = middleware.DashboardPath(h.basePath, route)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Principal logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, resp)
}
