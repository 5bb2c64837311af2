package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bridal-rental/internal/audit"
	bookingdomain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	catalogdomain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/middleware"
	"github.com/BruksfildServices01/bridal-rental/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

// WebHandler serves the HTML pages on top of the API handlers' use cases.
// Every POST answers with a redirect and a flash message.
type WebHandler struct {
	auth         *AuthHandler
	dresses      *DressHandler
	bookings     *BookingHandler
	availability *AvailabilityHandler
	reports      *ReportHandler
	logs         *AuditLogsHandler
	timezone     string
}

func NewWebHandler(
	auth *AuthHandler,
	dresses *DressHandler,
	bookings *BookingHandler,
	availability *AvailabilityHandler,
	reports *ReportHandler,
	logs *AuditLogsHandler,
	tz string,
) *WebHandler {
	return &WebHandler{
		auth:         auth,
		dresses:      dresses,
		bookings:     bookings,
		availability: availability,
		reports:      reports,
		logs:         logs,
		timezone:     tz,
	}
}

func (h *WebHandler) render(c *gin.Context, page, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Page"] = page
	data["Title"] = title
	data["Flash"] = popFlash(c)
	data["User"] = middleware.Principal(c).Email

	c.HTML(http.StatusOK, "base", data)
}

func (h *WebHandler) redirect(c *gin.Context, to string) {
	c.Redirect(http.StatusSeeOther, to)
}

// back returns to the page that posted the form when it is one of ours.
func (h *WebHandler) back(c *gin.Context, fallback string) {
	if u, err := url.Parse(c.Request.Referer()); err == nil && u.Path != "" {
		if u.Host == "" || u.Host == c.Request.Host {
			h.redirect(c, u.RequestURI())
			return
		}
	}
	h.redirect(c, fallback)
}

func (h *WebHandler) fail(c *gin.Context, err error, fallback string) {
	flashError(c, err)
	h.redirect(c, fallback)
}

// ======================================================
// SESSION
// ======================================================

func (h *WebHandler) LoginPage(c *gin.Context) {
	if token, ok := middleware.Token(c); ok {
		if _, err := h.auth.sessions.Authenticate(c.Request.Context(), token); err == nil {
			h.redirect(c, "/")
			return
		}
	}
	h.render(c, "login", "Log in", nil)
}

func (h *WebHandler) Login(c *gin.Context) {
	_, p, err := h.auth.login(c, c.PostForm("email"), c.PostForm("password"))
	if err != nil {
		h.fail(c, err, "/login")
		return
	}

	setFlash(c, flashSuccess, fmt.Sprintf("Welcome, %s.", p.Email))
	h.redirect(c, "/")
}

func (h *WebHandler) Logout(c *gin.Context) {
	h.auth.logout(c)
	setFlash(c, flashInfo, "You have been logged out.")
	h.redirect(c, "/login")
}

// ======================================================
// DASHBOARD / REPORTS
// ======================================================

func (h *WebHandler) Dashboard(c *gin.Context) {
	stats, err := h.reports.reports.Dashboard(c.Request.Context())
	if err != nil {
		flashError(c, err)
	}
	h.render(c, "dashboard", "Dashboard", gin.H{"Stats": stats})
}

func (h *WebHandler) Reports(c *gin.Context) {
	monthly, err := h.reports.reports.Monthly(c.Request.Context())
	if err != nil {
		flashError(c, err)
	}
	h.render(c, "reports", "Reports", gin.H{"Monthly": monthly})
}

// ======================================================
// DRESSES
// ======================================================

func (h *WebHandler) Dresses(c *gin.Context) {
	ctx := c.Request.Context()
	f := catalogdomain.ListFilter{
		Category: c.DefaultQuery("category", "all"),
		Search:   strings.TrimSpace(c.Query("search")),
	}

	dresses, err := h.dresses.queries.List(ctx, f)
	if err != nil {
		flashError(c, err)
	}
	categories, err := h.dresses.queries.Categories(ctx)
	if err != nil {
		flashError(c, err)
	}

	h.render(c, "dresses", "Dresses", gin.H{
		"Dresses":    dresses,
		"Categories": categories,
		"Category":   f.Category,
		"Search":     f.Search,
	})
}

func (h *WebHandler) categories(c *gin.Context) []string {
	cats, err := h.dresses.queries.Categories(c.Request.Context())
	if err != nil || len(cats) == 0 {
		return catalogdomain.Categories
	}
	return cats
}

func (h *WebHandler) AddDressPage(c *gin.Context) {
	h.render(c, "dress_form", "Add dress", gin.H{
		"Categories": h.categories(c),
		"Sizes":      catalogdomain.Sizes,
	})
}

func (h *WebHandler) AddDress(c *gin.Context) {
	in, err := readDressForm(c)
	if err != nil {
		h.fail(c, err, "/dresses/add")
		return
	}

	d, err := h.dresses.create.Execute(c.Request.Context(), middleware.Principal(c), in)
	if err != nil {
		h.fail(c, err, "/dresses/add")
		return
	}

	setFlash(c, flashSuccess, fmt.Sprintf("Dress %s added.", d.DressNumber))
	h.redirect(c, "/dresses")
}

func (h *WebHandler) EditDressPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.fail(c, catalogdomain.ErrDressNotFound, "/dresses")
		return
	}

	d, err := h.dresses.queries.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "/dresses")
		return
	}

	h.render(c, "dress_form", "Edit dress", gin.H{
		"Dress":      d,
		"Categories": h.categories(c),
		"Sizes":      catalogdomain.Sizes,
	})
}

func (h *WebHandler) EditDress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.fail(c, catalogdomain.ErrDressNotFound, "/dresses")
		return
	}
	form := fmt.Sprintf("/dresses/%d/edit", id)

	in, err := readDressForm(c)
	if err != nil {
		h.fail(c, err, form)
		return
	}

	d, err := h.dresses.update.Execute(c.Request.Context(), middleware.Principal(c), id, in)
	if err != nil {
		h.fail(c, err, form)
		return
	}

	setFlash(c, flashSuccess, fmt.Sprintf("Dress %s updated.", d.DressNumber))
	h.redirect(c, "/dresses")
}

func (h *WebHandler) DeleteDress(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.fail(c, catalogdomain.ErrDressNotFound, "/dresses")
		return
	}

	if err := h.dresses.remove.Execute(c.Request.Context(), middleware.Principal(c), id); err != nil {
		h.fail(c, err, "/dresses")
		return
	}

	setFlash(c, flashSuccess, "Dress deleted.")
	h.redirect(c, "/dresses")
}

// ======================================================
// BOOKINGS
// ======================================================

func (h *WebHandler) AddBookingPage(c *gin.Context) {
	dresses, err := h.dresses.queries.List(c.Request.Context(), catalogdomain.ListFilter{})
	if err != nil {
		flashError(c, err)
	}

	var selected uint
	if id, err := strconv.ParseUint(c.Query("dress_id"), 10, 64); err == nil {
		selected = uint(id)
	}

	h.render(c, "booking_form", "New booking", gin.H{
		"Dresses":       dresses,
		"SelectedDress": selected,
		"Today":         timezone.Today(h.timezone).Format(bookingdomain.DateLayout),
	})
}

func (h *WebHandler) AddBooking(c *gin.Context) {
	in, err := readBookingForm(c)
	if err != nil {
		h.fail(c, err, "/booking/add")
		return
	}

	b, err := h.bookings.create.Execute(c.Request.Context(), middleware.Principal(c), in)
	if err != nil {
		h.fail(c, err, fmt.Sprintf("/booking/add?dress_id=%d", in.DressID))
		return
	}

	setFlash(c, flashSuccess, fmt.Sprintf("Dress %s booked for %s.", b.DressNumber, b.CustomerName))
	h.redirect(c, "/bookings")
}

var bookingStatuses = []string{
	"all",
	string(bookingdomain.StatusActive),
	string(bookingdomain.StatusReturned),
	string(bookingdomain.StatusCancelled),
}

func (h *WebHandler) Bookings(c *gin.Context) {
	f := bookingdomain.ListFilter{
		Status: c.DefaultQuery("status", string(bookingdomain.StatusActive)),
		Search: strings.TrimSpace(c.Query("search")),
	}

	bookings, err := h.bookings.queries.List(c.Request.Context(), f)
	if err != nil {
		flashError(c, err)
	}

	h.render(c, "bookings", "Bookings", gin.H{
		"Bookings": bookings,
		"Statuses": bookingStatuses,
		"Status":   f.Status,
		"Search":   f.Search,
	})
}

func (h *WebHandler) ReturnBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.fail(c, bookingdomain.ErrBookingNotFound, "/bookings")
		return
	}

	b, err := h.bookings.ret.Execute(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		flashError(c, err)
		h.back(c, "/bookings")
		return
	}

	setFlash(c, flashSuccess, fmt.Sprintf("Booking for %s marked returned.", b.CustomerName))
	h.back(c, "/bookings")
}

func (h *WebHandler) CancelBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.fail(c, bookingdomain.ErrBookingNotFound, "/bookings")
		return
	}

	b, err := h.bookings.cancel.Execute(c.Request.Context(), middleware.Principal(c), id)
	if err != nil {
		flashError(c, err)
		h.back(c, "/bookings")
		return
	}

	setFlash(c, flashSuccess, fmt.Sprintf("Booking for %s cancelled.", b.CustomerName))
	h.back(c, "/bookings")
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *WebHandler) AvailabilityPage(c *gin.Context) {
	h.render(c, "availability", "Availability", gin.H{
		"Date":       timezone.Today(h.timezone).Format(bookingdomain.DateLayout),
		"Category":   "all",
		"Categories": h.categories(c),
	})
}

func (h *WebHandler) CheckAvailability(c *gin.Context) {
	raw := c.PostForm("check_date")
	category := c.DefaultPostForm("category", "all")

	date, err := bookingdomain.ParseDate(raw)
	if err != nil {
		h.fail(c, err, "/availability")
		return
	}

	available, err := h.availability.engine.FindAvailable(c.Request.Context(), date, category)
	if err != nil {
		h.fail(c, err, "/availability")
		return
	}

	h.render(c, "availability", "Availability", gin.H{
		"Date":       date.Format(bookingdomain.DateLayout),
		"Category":   category,
		"Categories": h.categories(c),
		"Checked":    true,
		"Available":  available,
	})
}

// ======================================================
// ACTIVITY LOG
// ======================================================

func (h *WebHandler) Logs(c *gin.Context) {
	p, err := h.logs.page(c)
	if err != nil {
		flashError(c, err)
	}

	h.render(c, "logs", "Activity", gin.H{
		"Logs":    p.Logs,
		"Actions": audit.Actions,
		"Action":  p.Action,
		"PageNum": p.Page,
		"HasMore": p.HasMore(),
	})
}
