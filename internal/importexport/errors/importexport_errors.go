package importexporterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid import job ID",
		http.StatusBadRequest,
	)

	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Import job not found",
		http.StatusNotFound,
	)

	ErrFileRequired    = apperror.Validation("file", "an .xlsx file is required")
	ErrUnsupportedFile = apperror.Validation("file", "only .xlsx workbooks are supported")
	ErrFileTooLarge    = apperror.Validation("file", "the file exceeds the 10 MB upload limit")
	ErrUnreadableFile  = apperror.Validation("file", "the workbook could not be read")
	ErrMissingColumns  = apperror.Validation("file", "the header row is missing required columns")
	ErrInvalidMonth    = apperror.Validation("month", "must be in YYYY-MM format")
)
