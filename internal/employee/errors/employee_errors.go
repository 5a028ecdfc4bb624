package employeeerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrStaffIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Staff ID already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfBirth = apperror.Validation("date_of_birth", "Date Of Birth must match the format 2006-01-02")
	ErrSpouseNotMarried   = apperror.Validation("has_spouse", "Has Spouse requires a married marital status")
)
