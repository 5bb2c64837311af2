package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bridal-rental/internal/audit"
	"github.com/BruksfildServices01/bridal-rental/internal/config"
	bookingdomain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	catalogdomain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	reportdomain "github.com/BruksfildServices01/bridal-rental/internal/domain/report"
	"github.com/BruksfildServices01/bridal-rental/internal/handlers"
	"github.com/BruksfildServices01/bridal-rental/internal/media"
	"github.com/BruksfildServices01/bridal-rental/internal/middleware"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
	"github.com/BruksfildServices01/bridal-rental/internal/session"
	ucAvailability "github.com/BruksfildServices01/bridal-rental/internal/usecase/availability"
	ucBooking "github.com/BruksfildServices01/bridal-rental/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/bridal-rental/internal/usecase/catalog"
	ucReport "github.com/BruksfildServices01/bridal-rental/internal/usecase/report"
	"github.com/BruksfildServices01/bridal-rental/internal/web"
)

// LogStore is both ends of the action log.
type LogStore interface {
	Append(ctx context.Context, entry *models.SystemLog) error
	List(ctx context.Context, action string, limit int, offset int) ([]models.SystemLog, int64, error)
}

// Deps are the storage-side singletons. Objects may be nil: photos are then
// kept in the dress rows.
type Deps struct {
	Dresses  catalogdomain.Repository
	Bookings bookingdomain.Repository
	Reports  reportdomain.Repository
	Logs     LogStore
	Sessions *session.Service
	Objects  media.ObjectStore
}

// RegisterRoutes wires every page and endpoint. The returned dispatcher must
// be closed on shutdown so queued log entries are written.
func RegisterRoutes(r *gin.Engine, deps Deps, cfg *config.Config) (*audit.Dispatcher, error) {

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.BodyLimit(cfg.MaxUploadBytes))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(audit.New(deps.Logs))
	images := ucCatalog.NewImages(deps.Objects)

	// ======================================================
	// USE CASES - CATALOG
	// ======================================================
	createDressUC := ucCatalog.NewCreateDress(deps.Dresses, images, auditDispatcher)
	updateDressUC := ucCatalog.NewUpdateDress(deps.Dresses, images, auditDispatcher)
	deleteDressUC := ucCatalog.NewDeleteDress(deps.Dresses, images, auditDispatcher)
	dressQueries := ucCatalog.NewQueries(deps.Dresses, images)

	// ======================================================
	// USE CASES - BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(deps.Bookings, auditDispatcher)
	returnBookingUC := ucBooking.NewReturnBooking(deps.Bookings, auditDispatcher, cfg.Timezone)
	cancelBookingUC := ucBooking.NewCancelBooking(deps.Bookings, auditDispatcher)
	bookingQueries := ucBooking.NewQueries(deps.Bookings)

	engine := ucAvailability.NewEngine(deps.Bookings)
	reports := ucReport.NewReports(deps.Reports, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(deps.Sessions, auditDispatcher, cfg.IsProd())
	dressHandler := handlers.NewDressHandler(createDressUC, updateDressUC, deleteDressUC, dressQueries)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, returnBookingUC, cancelBookingUC, bookingQueries)
	availabilityHandler := handlers.NewAvailabilityHandler(engine, dressQueries)
	reportHandler := handlers.NewReportHandler(reports)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.Logs)

	webHandler := handlers.NewWebHandler(
		authHandler,
		dressHandler,
		bookingHandler,
		availabilityHandler,
		reportHandler,
		auditLogsHandler,
		cfg.Timezone,
	)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/login", webHandler.LoginPage)
	r.POST("/login", webHandler.Login)
	r.GET("/logout", webHandler.Logout)

	r.POST("/api/auth/login", authHandler.Login)
	r.POST("/api/auth/logout", authHandler.Logout)

	// ======================================================
	// API (Bearer or session cookie)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(deps.Sessions))
	{
		api.GET("/dresses", dressHandler.List)
		api.POST("/dresses", dressHandler.Create)
		api.GET("/dresses/categories", dressHandler.Categories)
		api.GET("/dresses/:id", dressHandler.Get)
		api.PATCH("/dresses/:id", dressHandler.Update)
		api.DELETE("/dresses/:id", dressHandler.Delete)
		api.GET("/dresses/:id/image", dressHandler.Image)

		api.GET("/bookings", bookingHandler.List)
		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings/:id", bookingHandler.Get)
		api.PATCH("/bookings/:id/return", bookingHandler.Return)
		api.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)

		api.GET("/availability", availabilityHandler.FindAvailable)
		api.GET("/availability/dresses/:id", availabilityHandler.CheckDress)

		api.GET("/reports/dashboard", reportHandler.Dashboard)
		api.GET("/reports/monthly", reportHandler.Monthly)

		api.GET("/logs", auditLogsHandler.List)
	}

	// ======================================================
	// HTML
	// ======================================================
	app := r.Group("/")
	app.Use(middleware.WebAuthMiddleware(deps.Sessions))
	{
		app.GET("/", webHandler.Dashboard)

		app.GET("/dresses", webHandler.Dresses)
		app.GET("/dresses/add", webHandler.AddDressPage)
		app.POST("/dresses/add", webHandler.AddDress)
		app.GET("/dresses/:id/edit", webHandler.EditDressPage)
		app.POST("/dresses/:id/edit", webHandler.EditDress)
		app.POST("/dresses/:id/delete", webHandler.DeleteDress)
		app.GET("/dresses/:id/image", dressHandler.Image)

		app.GET("/booking/add", webHandler.AddBookingPage)
		app.POST("/booking/add", webHandler.AddBooking)
		app.GET("/bookings", webHandler.Bookings)
		app.POST("/bookings/:id/return", webHandler.ReturnBooking)
		app.POST("/bookings/:id/cancel", webHandler.CancelBooking)

		app.GET("/availability", webHandler.AvailabilityPage)
		app.POST("/availability", webHandler.CheckAvailability)

		app.GET("/reports", webHandler.Reports)
		app.GET("/logs", webHandler.Logs)
	}

	return auditDispatcher, nil
}
