package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
	"github.com/BruksfildServices01/bridal-rental/internal/httpresp"
	ucAvailability "github.com/BruksfildServices01/bridal-rental/internal/usecase/availability"
	ucCatalog "github.com/BruksfildServices01/bridal-rental/internal/usecase/catalog"
)

type AvailabilityHandler struct {
	engine  *ucAvailability.Engine
	dresses *ucCatalog.Queries
}

func NewAvailabilityHandler(
	engine *ucAvailability.Engine,
	dresses *ucCatalog.Queries,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		engine:  engine,
		dresses: dresses,
	}
}

// FindAvailable: GET /api/availability?date=YYYY-MM-DD&category=
func (h *AvailabilityHandler) FindAvailable(c *gin.Context) {
	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		httperr.FromError(c, err, "invalid_date")
		return
	}

	dresses, err := h.engine.FindAvailable(c.Request.Context(), date, c.Query("category"))
	if err != nil {
		httperr.FromError(c, err, "failed_to_check_availability")
		return
	}

	httpresp.OK(c, gin.H{
		"date":    date.Format(domain.DateLayout),
		"dresses": dresses,
		"total":   len(dresses),
	})
}

// CheckDress: GET /api/availability/dresses/:id?start=&end=
func (h *AvailabilityHandler) CheckDress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	start, err := domain.ParseDate(c.Query("start"))
	if err != nil {
		httperr.FromError(c, err, "invalid_date")
		return
	}
	end, err := domain.ParseOptionalDate(c.Query("end"))
	if err != nil {
		httperr.FromError(c, err, "invalid_date")
		return
	}

	if _, err := h.dresses.Get(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err, "failed_to_get_dress")
		return
	}

	conflict, err := h.engine.Conflict(c.Request.Context(), id, start, end)
	if err != nil {
		httperr.FromError(c, err, "failed_to_check_availability")
		return
	}

	httpresp.OK(c, gin.H{
		"dress_id":  id,
		"available": conflict == nil,
		"conflict":  conflict,
	})
}
