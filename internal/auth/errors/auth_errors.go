package autherrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Refresh token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrMissingRefreshToken = apperror.New(
		apperror.CodeInvalidInput,
		"Refresh token is required",
		http.StatusBadRequest,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"Your account has been deactivated",
		http.StatusForbidden,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"User no longer exists",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to issue token",
		http.StatusInternalServerError,
	)
)
