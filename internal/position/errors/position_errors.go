package positionerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)

	ErrPositionAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Position title already exists in this department",
		http.StatusConflict,
	)

	ErrInvalidPositionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid position ID",
		http.StatusBadRequest,
	)

	ErrDepartmentNotFound = apperror.Validation("department_id", "Selected department does not exist")

	ErrReportsToNotFound = apperror.Validation("reports_to_id", "Selected reporting position does not exist")

	ErrReportingCycle = apperror.New(
		apperror.CodeInvalidState,
		"Position cannot report to itself or to one of its subordinates",
		http.StatusUnprocessableEntity,
	)
)
