package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
	"github.com/BruksfildServices01/bridal-rental/internal/httpresp"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type LogReader interface {
	List(ctx context.Context, action string, limit int, offset int) ([]models.SystemLog, int64, error)
}

type AuditLogsHandler struct {
	logs LogReader
}

func NewAuditLogsHandler(logs LogReader) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

type logPage struct {
	Action string
	Page   int
	Limit  int
	Logs   []models.SystemLog
	Total  int64
}

func (p logPage) HasMore() bool {
	return int64(p.Page*p.Limit) < p.Total
}

func (h *AuditLogsHandler) page(c *gin.Context) (logPage, error) {
	p := logPage{Action: strings.ToUpper(strings.TrimSpace(c.Query("action")))}

	p.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if p.Page <= 0 {
		p.Page = 1
	}

	p.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if p.Limit <= 0 || p.Limit > 200 {
		p.Limit = 50
	}

	offset := (p.Page - 1) * p.Limit

	var err error
	p.Logs, p.Total, err = h.logs.List(c.Request.Context(), p.Action, p.Limit, offset)
	return p, err
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	p, err := h.page(c)
	if err != nil {
		httperr.FromError(c, err, "audit_list_failed")
		return
	}

	httpresp.Page(c, p.Logs, p.Page, p.Limit, p.Total)
}
