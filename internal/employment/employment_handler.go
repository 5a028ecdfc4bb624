package employment

import (
	"net/http"

	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employment.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)
	resp, err := h.service.Create(ctx, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Employment created successfully", resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var req ListEmploymentsRequest
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
	response.Success(c, http.StatusOK, "Employments retrieved successfully", resp, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employment retrieved successfully", resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employment updated successfully", resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Employment deleted successfully", nil, nil)
}

func (h *Handler) ProbationHistory(c *gin.Context) {
	resp, err := h.service.ProbationHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Probation history retrieved successfully", resp, nil)
}

func (h *Handler) CompleteProbation(c *gin.Context) {
	var req ProbationDecisionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.CompleteProbation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Probation completed successfully", resp, nil)
}

func (h *Handler) ExtendProbation(c *gin.Context) {
	var req ExtendProbationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.ExtendProbation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Probation extended successfully", resp, nil)
}

func (h *Handler) FailProbation(c *gin.Context) {
	var req ProbationDecisionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.FailProbation(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Probation marked as failed", resp, nil)
}

// bindOptionalJSON accepts an empty body for endpoints whose fields all
// have defaults.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(obj)
}
