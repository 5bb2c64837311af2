package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
	"github.com/BruksfildServices01/bridal-rental/internal/httpresp"
	ucReport "github.com/BruksfildServices01/bridal-rental/internal/usecase/report"
)

type ReportHandler struct {
	reports *ucReport.Reports
}

func NewReportHandler(reports *ucReport.Reports) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	d, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "failed_to_build_dashboard")
		return
	}
	httpresp.OK(c, d)
}

func (h *ReportHandler) Monthly(c *gin.Context) {
	m, err := h.reports.Monthly(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "failed_to_build_report")
		return
	}
	httpresp.OK(c, m)
}
