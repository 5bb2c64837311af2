package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	"github.com/BruksfildServices01/bridal-rental/internal/dto"
	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
	"github.com/BruksfildServices01/bridal-rental/internal/httpresp"
	"github.com/BruksfildServices01/bridal-rental/internal/middleware"
	ucBooking "github.com/BruksfildServices01/bridal-rental/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create  *ucBooking.CreateBooking
	ret     *ucBooking.ReturnBooking
	cancel  *ucBooking.CancelBooking
	queries *ucBooking.Queries
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	ret *ucBooking.ReturnBooking,
	cancel *ucBooking.CancelBooking,
	queries *ucBooking.Queries,
) *BookingHandler {
	return &BookingHandler{
		create:  create,
		ret:     ret,
		cancel:  cancel,
		queries: queries,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	DressID       uint            `json:"dress_id" binding:"required"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	CustomerEmail string          `json:"customer_email"`
	BookingDate   string          `json:"booking_date" binding:"required"`
	ReturnDate    string          `json:"return_date"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	DepositPaid   decimal.Decimal `json:"deposit_paid"`
	Notes         string          `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), middleware.Principal(c), ucBooking.CreateBookingInput{
		DressID:       req.DressID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		BookingDate:   req.BookingDate,
		ReturnDate:    req.ReturnDate,
		TotalPrice:    req.TotalPrice,
		DepositPaid:   req.DepositPaid,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_booking")
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) Return(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	b, err := h.ret.Execute(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_return_booking")
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_cancel_booking")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// QUERIES
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.queries.List(c.Request.Context(), domain.ListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_bookings")
		return
	}

	httpresp.List(c, dto.NewBookingList(bookings))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return
	}

	b, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_booking")
		return
	}

	httpresp.OK(c, b)
}
