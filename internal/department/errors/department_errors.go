package departmenterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)

	ErrDepartmentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Department name already exists",
		http.StatusConflict,
	)

	ErrDepartmentInUse = apperror.New(
		apperror.CodeConflict,
		"Department still has positions",
		http.StatusConflict,
	)

	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)
