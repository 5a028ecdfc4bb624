package payrollerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll not found",
		http.StatusNotFound,
	)

	ErrBatchNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll batch not found",
		http.StatusNotFound,
	)

	ErrEmploymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employment not found",
		http.StatusNotFound,
	)

	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll ID",
		http.StatusBadRequest,
	)

	ErrInvalidBatchID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll batch ID",
		http.StatusBadRequest,
	)

	ErrPayrollExists = apperror.New(
		apperror.CodeConflict,
		"Payroll already exists for this allocation and month",
		http.StatusConflict,
	)

	ErrOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"Only draft payrolls can be changed",
		http.StatusUnprocessableEntity,
	)

	ErrNotApproved = apperror.New(
		apperror.CodeInvalidState,
		"Only approved payrolls can be marked as paid",
		http.StatusUnprocessableEntity,
	)

	ErrEmploymentInactive = apperror.New(
		apperror.CodeInvalidState,
		"Employment is not active",
		http.StatusUnprocessableEntity,
	)

	ErrNoActiveAllocations = apperror.New(
		apperror.CodeInvalidState,
		"Employment has no active funding allocations",
		http.StatusUnprocessableEntity,
	)
)

var (
	ErrInvalidPayPeriod   = apperror.Validation("pay_period_date", "Pay period must be a date in YYYY-MM-DD or YYYY-MM format")
	ErrInvalidEmployment  = apperror.Validation("employment_id", "Invalid employment ID")
	ErrInvalidDepartment  = apperror.Validation("department_id", "Invalid department ID")
	ErrInvalidPeriodQuery = apperror.Validation("pay_period", "Pay period must be in YYYY-MM format")
)
