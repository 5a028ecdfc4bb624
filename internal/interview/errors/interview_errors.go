package interviewerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidInterviewID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid interview ID",
		http.StatusBadRequest,
	)

	ErrInterviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"Interview not found",
		http.StatusNotFound,
	)

	ErrCandidateNotFound = apperror.New(
		apperror.CodeNotFound,
		"No interviews found for this candidate",
		http.StatusNotFound,
	)

	ErrInvalidDateFormat = apperror.Validation("interview_date", "must be a date in YYYY-MM-DD format")
	ErrInvalidTimeRange  = apperror.Validation("end_time", "must be after start_time")
	ErrInvalidFilterDate = apperror.Validation("from", "from and to must be dates in YYYY-MM-DD format")
)
