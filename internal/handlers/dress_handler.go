package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
	"github.com/BruksfildServices01/bridal-rental/internal/httpresp"
	"github.com/BruksfildServices01/bridal-rental/internal/middleware"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
	ucCatalog "github.com/BruksfildServices01/bridal-rental/internal/usecase/catalog"
)

// ======================================================
// HANDLER
// ======================================================

type DressHandler struct {
	create  *ucCatalog.CreateDress
	update  *ucCatalog.UpdateDress
	remove  *ucCatalog.DeleteDress
	queries *ucCatalog.Queries
}

func NewDressHandler(
	create *ucCatalog.CreateDress,
	update *ucCatalog.UpdateDress,
	remove *ucCatalog.DeleteDress,
	queries *ucCatalog.Queries,
) *DressHandler {
	return &DressHandler{
		create:  create,
		update:  update,
		remove:  remove,
		queries: queries,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateDressRequest struct {
	DressNumber string          `json:"dress_number"`
	ModelName   string          `json:"model_name"`
	Category    string          `json:"category"`
	Color       string          `json:"color"`
	FabricTypes []string        `json:"fabric_types"`
	Size        string          `json:"size"`
	Details     string          `json:"details"`
	RentalPrice decimal.Decimal `json:"rental_price"`
	IsAvailable *bool           `json:"is_available"`
}

// UpdateDressRequest only touches the fields that are present.
type UpdateDressRequest struct {
	ModelName   *string          `json:"model_name"`
	Category    *string          `json:"category"`
	Color       *string          `json:"color"`
	FabricTypes *[]string        `json:"fabric_types"`
	Size        *string          `json:"size"`
	Details     *string          `json:"details"`
	RentalPrice *decimal.Decimal `json:"rental_price"`
	IsAvailable *bool            `json:"is_available"`
	RemoveImage bool             `json:"remove_image"`
}

func inputFromDress(d *models.Dress) ucCatalog.DressInput {
	return ucCatalog.DressInput{
		ModelName:   d.ModelName,
		Category:    d.Category,
		Color:       d.Color,
		FabricTypes: d.FabricTypes,
		Size:        d.Size,
		Details:     d.Details,
		RentalPrice: d.RentalPrice,
		IsAvailable: d.IsAvailable,
	}
}

func (r UpdateDressRequest) applyTo(in *ucCatalog.DressInput) {
	if r.ModelName != nil {
		in.ModelName = *r.ModelName
	}
	if r.Category != nil {
		in.Category = *r.Category
	}
	if r.Color != nil {
		in.Color = *r.Color
	}
	if r.FabricTypes != nil {
		in.FabricTypes = *r.FabricTypes
	}
	if r.Size != nil {
		in.Size = *r.Size
	}
	if r.Details != nil {
		in.Details = *r.Details
	}
	if r.RentalPrice != nil {
		in.RentalPrice = *r.RentalPrice
	}
	if r.IsAvailable != nil {
		in.IsAvailable = *r.IsAvailable
	}
	in.RemoveImage = r.RemoveImage
}

// ======================================================
// QUERIES
// ======================================================

func (h *DressHandler) List(c *gin.Context) {
	dresses, err := h.queries.List(c.Request.Context(), domain.ListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_dresses")
		return
	}

	httpresp.List(c, dresses)
}

func (h *DressHandler) Categories(c *gin.Context) {
	cats, err := h.queries.Categories(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_categories")
		return
	}

	httpresp.List(c, cats)
}

func (h *DressHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	d, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_dress")
		return
	}

	httpresp.OK(c, d)
}

func (h *DressHandler) Image(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	data, contentType, err := h.queries.Image(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_image")
		return
	}

	c.Header("Cache-Control", "private, max-age=60")
	c.Data(http.StatusOK, contentType, data)
}

// ======================================================
// COMMANDS
// ======================================================

// Create accepts JSON, or a multipart form when a photo is attached.
func (h *DressHandler) Create(c *gin.Context) {
	var in ucCatalog.DressInput

	if isMultipart(c) {
		var err error
		if in, err = readDressForm(c); err != nil {
			httperr.FromError(c, err, "invalid_request")
			return
		}
	} else {
		var req CreateDressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid request body.")
			return
		}
		in = ucCatalog.DressInput{
			DressNumber: req.DressNumber,
			ModelName:   req.ModelName,
			Category:    req.Category,
			Color:       req.Color,
			FabricTypes: req.FabricTypes,
			Size:        req.Size,
			Details:     req.Details,
			RentalPrice: req.RentalPrice,
			IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
		}
	}

	d, err := h.create.Execute(c.Request.Context(), middleware.Principal(c), in)
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_dress")
		return
	}

	httpresp.Created(c, d)
}

func (h *DressHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	var in ucCatalog.DressInput

	if isMultipart(c) {
		var err error
		if in, err = readDressForm(c); err != nil {
			httperr.FromError(c, err, "invalid_request")
			return
		}
	} else {
		var req UpdateDressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid request body.")
			return
		}

		current, err := h.queries.Get(c.Request.Context(), id)
		if err != nil {
			httperr.FromError(c, err, "failed_to_get_dress")
			return
		}
		in = inputFromDress(current)
		req.applyTo(&in)
		in.KeepAvailability = req.IsAvailable == nil
	}

	d, err := h.update.Execute(c.Request.Context(), middleware.Principal(c), id, in)
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_dress")
		return
	}

	httpresp.OK(c, d)
}

func (h *DressHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.Principal(c), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_dress")
		return
	}

	c.Status(http.StatusNoContent)
}
