package granterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrGrantNotFound = apperror.New(
		apperror.CodeNotFound,
		"Grant not found",
		http.StatusNotFound,
	)

	ErrGrantItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"Grant item not found",
		http.StatusNotFound,
	)

	ErrSlotNotFound = apperror.New(
		apperror.CodeNotFound,
		"Position slot not found",
		http.StatusNotFound,
	)

	ErrInvalidGrantID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid grant ID",
		http.StatusBadRequest,
	)

	ErrInvalidGrantItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid grant item ID",
		http.StatusBadRequest,
	)

	ErrGrantCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Grant code already exists",
		http.StatusConflict,
	)

	ErrBudgetLineAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Budget line code is already used by another grant item",
		http.StatusConflict,
	)

	ErrGrantInUse = apperror.New(
		apperror.CodeConflict,
		"Grant still funds active allocations",
		http.StatusConflict,
	)

	ErrGrantItemInUse = apperror.New(
		apperror.CodeConflict,
		"Grant item still has occupied position slots",
		http.StatusConflict,
	)

	ErrSlotsOccupied = apperror.New(
		apperror.CodeInvalidState,
		"Position number cannot drop below an occupied slot",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidEndDate = apperror.Validation("end_date", "End Date must be on or after the start date")
)
