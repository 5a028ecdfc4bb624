package travelerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidTravelID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid travel request ID",
		http.StatusBadRequest,
	)

	ErrTravelNotFound = apperror.New(
		apperror.CodeNotFound,
		"Travel request not found",
		http.StatusNotFound,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrGrantNotFound = apperror.New(
		apperror.CodeNotFound,
		"Grant not found",
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

	ErrOnlyPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending travel requests can be changed",
		http.StatusUnprocessableEntity,
	)

	ErrNotApproved = apperror.New(
		apperror.CodeInvalidState,
		"Only approved travel requests can be acknowledged",
		http.StatusUnprocessableEntity,
	)

	ErrCannotCancel = apperror.New(
		apperror.CodeInvalidState,
		"Travel request can no longer be cancelled",
		http.StatusUnprocessableEntity,
	)

	ErrCannotDelete = apperror.New(
		apperror.CodeInvalidState,
		"Approved or completed travel requests cannot be deleted",
		http.StatusUnprocessableEntity,
	)
)

var (
	ErrInvalidDate       = apperror.Validation("start_date", "Dates must be formatted as YYYY-MM-DD")
	ErrInvalidDateRange  = apperror.Validation("end_date", "End date must be on or after the start date")
	ErrOtherDetailNeeded = apperror.Validation("transportation_other", "Describe the transportation when choosing other")
	ErrOtherStayNeeded   = apperror.Validation("accommodation_other", "Describe the accommodation when choosing other")
)
