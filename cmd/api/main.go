package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/bridal-rental/internal/config"
	dbpkg "github.com/BruksfildServices01/bridal-rental/internal/db"
	"github.com/BruksfildServices01/bridal-rental/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/bridal-rental/internal/infra/repository"
	"github.com/BruksfildServices01/bridal-rental/internal/media"
	"github.com/BruksfildServices01/bridal-rental/internal/routes"
	"github.com/BruksfildServices01/bridal-rental/internal/session"
	"github.com/BruksfildServices01/bridal-rental/internal/timezone"
	ucCatalog "github.com/BruksfildServices01/bridal-rental/internal/usecase/catalog"
)

func main() {

	ctx := context.Background()
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if !timezone.IsValid(cfg.Timezone) {
		log.Printf("unknown SHOP_TIMEZONE %q, using UTC", cfg.Timezone)
	}

	// ======================================================
	// STORAGE
	// ======================================================
	var deps routes.Deps

	switch cfg.DBDriver {
	case config.DriverMemory:
		log.Println("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		deps.Dresses = memory.NewDressRepository(store)
		deps.Bookings = memory.NewBookingRepository(store)
		deps.Reports = memory.NewReportRepository(store)
		deps.Logs = memory.NewSystemLogRepository(store)
	default:
		db := dbpkg.NewDB(cfg)
		deps.Dresses = infraRepo.NewDressGormRepository(db)
		deps.Bookings = infraRepo.NewBookingGormRepository(db)
		deps.Reports = infraRepo.NewReportGormRepository(db)
		deps.Logs = infraRepo.NewSystemLogGormRepository(db)
	}

	if cfg.UseS3() {
		deps.Objects = media.NewS3Store(media.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		log.Printf("dress photos go to s3 bucket %s", cfg.S3Bucket)
	}

	if cfg.SeedCatalog {
		if err := ucCatalog.SeedDefaults(ctx, deps.Dresses); err != nil {
			log.Printf("seed failed: %v", err)
		}
	}

	// ======================================================
	// SESSIONS
	// ======================================================
	creds, err := session.NewCredentials(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to prepare credentials: %v", err)
	}

	var revoked session.RevocationStore = session.NewMemoryRevocations()
	if cfg.RedisURL != "" {
		if client := session.ConnectRedis(ctx, cfg.RedisURL); client != nil {
			defer client.Close()
			revoked = session.NewRedisRevocations(client)
		}
	}

	deps.Sessions = session.NewService(
		creds,
		session.NewTokens(cfg.JWTSecret, cfg.SessionTTL),
		revoked,
	)

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.Default()

	dispatcher, err := routes.RegisterRoutes(r, deps, cfg)
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", cfg.Addr(), err)
	}

	stop, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("Server running on %s", cfg.Addr())
	if err := serve(stop, &http.Server{Handler: r}, ln, dispatcher.Close); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
