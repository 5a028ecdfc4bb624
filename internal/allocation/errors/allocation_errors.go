package allocationerrors

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

	ErrEmploymentInactive = apperror.New(
		apperror.CodeInvalidState,
		"Funding can only be allocated to an active employment",
		http.StatusUnprocessableEntity,
	)

	ErrSlotTaken = apperror.New(
		apperror.CodeConflict,
		"Position slot is already held by another employment",
		http.StatusConflict,
	)

	ErrFTETotal           = apperror.Validation("allocations", "Total FTE must equal 100%")
	ErrDuplicateSlot      = apperror.Validation("allocations", "A position slot can appear only once")
	ErrSlotNotFound       = apperror.Validation("position_slot_id", "Selected position slot does not exist")
	ErrSlotRequired       = apperror.Validation("position_slot_id", "Position Slot is required for a grant allocation")
	ErrGrantNotFound      = apperror.Validation("grant_id", "Selected grant does not exist")
	ErrGrantRequired      = apperror.Validation("grant_id", "Grant is required for an org-funded allocation")
	ErrGrantNotOrgFunded  = apperror.Validation("grant_id", "Org-funded allocations must reference a grant flagged as org funded")
	ErrInvalidEffectiveAt = apperror.Validation("effective_date", "Effective Date must match the format 2006-01-02")
)
