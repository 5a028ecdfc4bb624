package travel

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
	var req ListTravelRequestsRequest
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
	response.Success(c, http.StatusOK, "Travel requests retrieved successfully", resp, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Travel request retrieved successfully", resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req TravelRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Travel request created successfully", resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req TravelRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Travel request updated successfully", resp, nil)
}

// bindDecision accepts an empty body.
func bindDecision(c *gin.Context) (DecisionRequest, bool) {
	var req DecisionRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return req, false
	}
	return req, true
}

func (h *Handler) Approve(c *gin.Context) {
	req, ok := bindDecision(c)
	if !ok {
		return
	}

	resp, err := h.service.Approve(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Travel request approved", resp, nil)
}

func (h *Handler) Decline(c *gin.Context) {
	req, ok := bindDecision(c)
	if !ok {
		return
	}

	resp, err := h.service.Decline(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Travel request declined", resp, nil)
}

func (h *Handler) Acknowledge(c *gin.Context) {
	req, ok := bindDecision(c)
	if !ok {
		return
	}

	resp, err := h.service.Acknowledge(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Travel request acknowledged", resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	resp, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Travel request cancelled", resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Travel request deleted successfully", nil, nil)
}
