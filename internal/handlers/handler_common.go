package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by every handler.
// Errors lists field level messages keyed by request field name.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors,omitempty"`
}

// respondBindError answers a request whose body or query failed to bind.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	if fields := dto.BindingFieldErrors(err); fields != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "The given data was invalid.", Errors: fields})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
}

// respondWithError maps a service error onto an HTTP response.
// Anything unrecognised is logged and answered with 500 and fallback.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if fields, ok := apperrors.FieldErrors(err); ok {
		logger.Warn("Request rejected with field errors", slog.Any("fields", fields))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "The given data was invalid.", Errors: fields})
		return
	}

	var appErr *apperrors.AppError
	hasAppErr := errors.As(err, &appErr)
	message := func(def string) string {
		if hasAppErr && appErr.Message != "" {
			return appErr.Message
		}
		return def
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: message("Resource not found")})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: message("Resource already exists")})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: message("The given data was invalid.")})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh token expired"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case hasAppErr && appErr.Code >= http.StatusBadRequest && appErr.Code < http.StatusInternalServerError:
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

// requestScope returns the resolved tenant ID and the acting principal's ID.
// It answers 401 itself and reports false when either is missing.
func requestScope(c *gin.Context) (tenantID, actorID string, ok bool) {
	tenant, hasTenant := middleware.GetTenantFromContext(c)
	user, hasUser := middleware.GetPrincipalFromContext(c)
	if !hasTenant || !hasUser {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Tenant or principal missing from context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", "", false
	}
	return tenant.TenantID, user.UserID, true
}

// contractFromForm opens the optional "contract" multipart file.
// The returned close func is never nil.
func contractFromForm(c *gin.Context) (*dto.FileUpload, func(), error) {
	noop := func() {}
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, noop, nil
	}
	fh, err := c.FormFile("contract")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	upload := &dto.FileUpload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}
	return upload, func() { _ = f.Close() }, nil
}
