package response

import (
	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	CurrentPage  int   `json:"current_page"`
	PerPage      int   `json:"per_page"`
	Total        int64 `json:"total"`
	LastPage     int   `json:"last_page"`
	From         *int  `json:"from"`
	To           *int  `json:"to"`
	HasMorePages bool  `json:"has_more_pages"`
}

func NewPaginationMeta(total int64, page, perPage int) PaginationMeta {
	lastPage := 1
	if perPage > 0 && total > 0 {
		// pembulatan ke atas: (total + perPage - 1) / perPage
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
	}

	meta := PaginationMeta{
		CurrentPage:  page,
		PerPage:      perPage,
		Total:        total,
		LastPage:     lastPage,
		HasMorePages: page < lastPage,
	}

	offset := (page - 1) * perPage
	if total > 0 && int64(offset) < total {
		from := offset + 1
		to := offset + perPage
		if int64(to) > total {
			to = int(total)
		}
		meta.From = &from
		meta.To = &to
	}

	return meta
}

type ApiEnvelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       any             `json:"data,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Code       string          `json:"code,omitempty"`
	Errors     any             `json:"errors,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Success: false,
		Message: message,
		Code:    errorCode,
		Errors:  details,
	})
}

// FromError writes the envelope for an error returned by a service.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// BindError writes a 422 for validation failures and a 400 for malformed
// bodies or query strings.
func BindError(c *gin.Context, err error) {
	FromError(c, apperror.MapValidationError(err))
}
