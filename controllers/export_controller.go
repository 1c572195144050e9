package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/pg-server/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Exporter interface {
	WriteInquiries(ctx context.Context, w io.Writer) error
	WriteOnboardings(ctx context.Context, w io.Writer) error
}

type ExportController struct {
	exports Exporter
}

func NewExportController(exports Exporter) *ExportController {
	return &ExportController{exports: exports}
}

// The workbook is built in memory first so a failure can still become a JSON error.
func (h *ExportController) send(c *gin.Context, prefix string, write func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := write(c.Request.Context(), &buf); err != nil {
		respondError(c, err, "Failed to export "+prefix)
		return
	}

	filename := services.ExportFilename(prefix, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// GET /api/admin/inquiries/export
func (h *ExportController) Inquiries(c *gin.Context) {
	h.send(c, "inquiries", h.exports.WriteInquiries)
}

// GET /api/admin/owner-onboarding/export
func (h *ExportController) Onboardings(c *gin.Context) {
	h.send(c, "owner-onboarding", h.exports.WriteOnboardings)
}
