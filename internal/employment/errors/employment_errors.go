package employmenterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrEmploymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employment not found",
		http.StatusNotFound,
	)

	ErrInvalidEmploymentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employment ID",
		http.StatusBadRequest,
	)

	ErrActiveEmploymentExists = apperror.New(
		apperror.CodeConflict,
		"Employee already has an active employment",
		http.StatusConflict,
	)

	ErrProbationAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"Probation has already been decided for this employment",
		http.StatusUnprocessableEntity,
	)

	ErrNoProbationPeriod = apperror.New(
		apperror.CodeInvalidState,
		"Employment has no probation period",
		http.StatusUnprocessableEntity,
	)

	ErrEmployeeNotFound   = apperror.Validation("employee_id", "Selected employee does not exist")
	ErrDepartmentNotFound = apperror.Validation("department_id", "Selected department does not exist")
	ErrPositionNotFound   = apperror.Validation("position_id", "Selected position does not exist")

	ErrInvalidStartDate      = apperror.Validation("start_date", "Start Date must match the format 2006-01-02")
	ErrInvalidEndDate        = apperror.Validation("end_date", "End Date must be on or after the start date")
	ErrInvalidProbationDate  = apperror.Validation("pass_probation_date", "Pass Probation Date must be after the start date")
	ErrProbationDateRequired = apperror.Validation("pass_probation_date", "Pass Probation Date is required when a probation salary is set")
	ErrInvalidDecisionDate   = apperror.Validation("date", "Date must match the format 2006-01-02")
	ErrExtensionNotLater     = apperror.Validation("new_pass_probation_date", "New Pass Probation Date must be after the current pass probation date")
)
