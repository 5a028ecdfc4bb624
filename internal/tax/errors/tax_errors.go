package taxerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrBracketNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tax bracket not found",
		http.StatusNotFound,
	)

	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tax setting not found",
		http.StatusNotFound,
	)

	ErrInvalidBracketID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid tax bracket ID",
		http.StatusBadRequest,
	)

	ErrInvalidSettingID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid tax setting ID",
		http.StatusBadRequest,
	)

	ErrBracketOrderExists = apperror.New(
		apperror.CodeConflict,
		"A bracket with this order already exists for the year",
		http.StatusConflict,
	)

	ErrSettingExists = apperror.New(
		apperror.CodeConflict,
		"This setting is already defined for the year",
		http.StatusConflict,
	)
)

var (
	ErrUnknownSettingKey = apperror.Validation("key", "Unknown tax setting key")
	ErrBracketOverlap    = apperror.Validation("min_income", "Bracket overlaps another bracket of the same year")
)
