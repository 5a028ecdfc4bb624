package rbacerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A role with this name already exists",
		http.StatusConflict,
	)
	ErrSystemRoleLocked = apperror.New(
		apperror.CodeInvalidState,
		"System roles cannot be renamed or deleted",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownPermission = apperror.New(
		apperror.CodeValidationError,
		"One or more permissions do not exist",
		http.StatusUnprocessableEntity,
	)
	ErrUnknownRole = apperror.New(
		apperror.CodeValidationError,
		"One or more roles do not exist",
		http.StatusUnprocessableEntity,
	)
)
