package allocation

import (
	"net/http"

	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetAll(c *gin.Context) {
	var req ListAllocationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}
	req.Params = req.Params.Normalize()

	resp, total, err := h.service.GetAll(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, req.Page, req.PerPage)
	response.Success(c, http.StatusOK, "Funding allocations retrieved successfully", resp, &meta)
}

func (h *Handler) GetByEmployment(c *gin.Context) {
	history := c.Query("history") == "true"

	resp, err := h.service.GetByEmployment(c.Request.Context(), c.Param("id"), history)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Funding allocations retrieved successfully", resp, nil)
}

func (h *Handler) Replace(c *gin.Context) {
	var req ReplaceAllocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Replace(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Funding allocations updated successfully", resp, nil)
}

func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Funding allocation calculated successfully", resp, nil)
}
