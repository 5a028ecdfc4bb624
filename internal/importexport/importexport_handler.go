package importexport

import (
	"fmt"
	"net/http"

	importexporterrors "go-hrms/internal/importexport/errors"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	imports ImportService
	exports ExportService
}

func NewHandler(imports ImportService, exports ExportService) *Handler {
	return &Handler{imports: imports, exports: exports}
}

func (h *Handler) ImportEmployees(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		response.FromError(c, importexporterrors.ErrFileRequired)
		return
	}
	if fh.Size > MaxUploadSize {
		response.FromError(c, importexporterrors.ErrFileTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.FromError(c, importexporterrors.ErrUnreadableFile)
		return
	}
	defer f.Close()

	resp, err := h.imports.RequestEmployeeImport(c.Request.Context(), fh.Filename, fh.Size, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, "Employee import queued", resp, nil)
}

func (h *Handler) GetJob(c *gin.Context) {
	resp, err := h.imports.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Import job retrieved successfully", resp, nil)
}

func (h *Handler) EmployeeTemplate(c *gin.Context) {
	data, filename, err := h.imports.EmployeeTemplate(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	attachment(c, Export{FileName: filename, Data: data})
}

func (h *Handler) ExportEmployees(c *gin.Context) {
	var req ExportEmployeesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	out, err := h.exports.ExportEmployees(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	attachment(c, out)
}

func (h *Handler) ExportGrants(c *gin.Context) {
	var req ExportGrantsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	out, err := h.exports.ExportGrants(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	attachment(c, out)
}

func (h *Handler) ExportPayrolls(c *gin.Context) {
	var req ExportPayrollsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BindError(c, err)
		return
	}

	out, err := h.exports.ExportPayrolls(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	attachment(c, out)
}

func attachment(c *gin.Context, out Export) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, out.FileName))
	c.Data(http.StatusOK, out.ContentType(), out.Data)
}
