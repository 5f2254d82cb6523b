package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/apperrors"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/SscSPs/consultancy_admin/internal/dto"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/SscSPs/consultancy_admin/internal/utils/pagination"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request logger from context, falling back to the default logger
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func now() time.Time {
	return time.Now().UTC()
}

// toRepoListParams decodes the continuation token of a list request.
func toRepoListParams(p dto.ListParams) (portsrepo.ListParams, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	params := portsrepo.ListParams{Limit: limit}
	if p.NextToken == "" {
		return params, nil
	}
	createdAt, id, err := pagination.DecodeKeysetToken(p.NextToken)
	if err != nil {
		return params, apperrors.NewFieldError("nextToken", "The pagination token is invalid.")
	}
	params.AfterCreatedAt = &createdAt
	params.AfterID = id
	return params, nil
}

// wrapUnexpected leaves taxonomy errors untouched and wraps everything else with msg.
func wrapUnexpected(err error, msg string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrUnauthorized):
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
