package personnelactionerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidActionID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid personnel action ID",
		http.StatusBadRequest,
	)

	ErrActionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Personnel action not found",
		http.StatusNotFound,
	)

	ErrEmploymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employment not found",
		http.StatusNotFound,
	)

	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)

	ErrPositionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position not found",
		http.StatusNotFound,
	)

	ErrEmploymentInactive = apperror.New(
		apperror.CodeInvalidState,
		"Personnel actions can only target an active employment",
		http.StatusUnprocessableEntity,
	)

	ErrOnlyPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending personnel actions can be changed",
		http.StatusUnprocessableEntity,
	)

	ErrAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"This approver has already signed the action",
		http.StatusUnprocessableEntity,
	)

	ErrCannotDeleteApplied = apperror.New(
		apperror.CodeInvalidState,
		"Applied personnel actions cannot be deleted",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidDate        = apperror.Validation("effective_date", "must be a date in YYYY-MM-DD format")
	ErrDepartmentRequired = apperror.Validation("new_department_id", "is required for a transfer")
	ErrPositionRequired   = apperror.Validation("new_position_id", "is required for a promotion or position change")
	ErrSalaryRequired     = apperror.Validation("new_salary", "is required for a salary change")
	ErrNoChange           = apperror.Validation("action_type", "the action does not change anything")
)
