package usererrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)

	ErrEmployeeAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"Employee is already linked to another user",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidEmployeeID = apperror.InvalidField("employee_id")

	ErrWrongPassword = apperror.Validation(
		"current_password",
		"Current password is incorrect",
	)

	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"User is inactive",
		http.StatusForbidden,
	)

	ErrCannotDeleteSelf = apperror.New(
		apperror.CodeInvalidState,
		"You cannot delete your own account",
		http.StatusUnprocessableEntity,
	)

	ErrCannotDeactivateSelf = apperror.New(
		apperror.CodeInvalidState,
		"You cannot deactivate your own account",
		http.StatusUnprocessableEntity,
	)
)
