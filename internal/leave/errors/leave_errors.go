package leaveerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave request ID",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave type ID",
		http.StatusBadRequest,
	)
	ErrInvalidBalanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave balance ID",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave type not found",
		http.StatusNotFound,
	)
	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave balance not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeExists = apperror.New(
		apperror.CodeConflict,
		"A leave type with this name already exists",
		http.StatusConflict,
	)
	ErrLeaveTypeInUse = apperror.New(
		apperror.CodeConflict,
		"Leave type is referenced by balances or requests",
		http.StatusConflict,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"Leave already exists in an overlapping period",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Leave request cannot move to this status",
		http.StatusUnprocessableEntity,
	)
	ErrOnlyPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leave requests can be changed",
		http.StatusUnprocessableEntity,
	)
	ErrAlreadyApproved = apperror.New(
		apperror.CodeInvalidState,
		"This approval has already been given",
		http.StatusUnprocessableEntity,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidState,
		"Insufficient leave balance",
		http.StatusUnprocessableEntity,
	)
	ErrTotalBelowUsed = apperror.New(
		apperror.CodeInvalidState,
		"Total days cannot be less than the days already used",
		http.StatusUnprocessableEntity,
	)
)

var (
	ErrInvalidDateFormat  = apperror.Validation("start_date", "Dates must be formatted as YYYY-MM-DD")
	ErrInvalidDateRange   = apperror.Validation("end_date", "End date must be on or after the start date")
	ErrNoWorkingDays      = apperror.Validation("start_date", "The period contains no working days")
	ErrAttachmentRequired = apperror.Validation("attachment", "This leave type requires an attachment")
)
