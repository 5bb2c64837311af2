package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

// sqlCapture keeps every statement gorm renders. With DryRun nothing reaches
// a server, so these tests need no database.
type sqlCapture struct {
	statements []string
}

func (l *sqlCapture) LogMode(logger.LogLevel) logger.Interface       { return l }
func (l *sqlCapture) Info(context.Context, string, ...interface{})  {}
func (l *sqlCapture) Warn(context.Context, string, ...interface{})  {}
func (l *sqlCapture) Error(context.Context, string, ...interface{}) {}

func (l *sqlCapture) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	l.statements = append(l.statements, sql)
}

func (l *sqlCapture) last(t *testing.T) string {
	t.Helper()
	if len(l.statements) == 0 {
		t.Fatal("no statement rendered")
	}
	return l.statements[len(l.statements)-1]
}

func dryRun(t *testing.T) (*gorm.DB, *sqlCapture) {
	t.Helper()
	capture := &sqlCapture{}
	db, err := gorm.Open(postgres.Open("host=localhost user=bride dbname=bride sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               capture,
	})
	if err != nil {
		t.Fatal(err)
	}
	return db, capture
}

func TestCreateDressStoresUnavailableFlag(t *testing.T) {
	db, capture := dryRun(t)
	repo := NewDressGormRepository(db)

	d := &models.Dress{DressNumber: "X1", IsAvailable: false}
	if err := repo.CreateDress(context.Background(), d); err != nil {
		t.Fatal(err)
	}

	sql := capture.last(t)
	if !strings.HasPrefix(sql, `INSERT INTO "dresses"`) || !strings.Contains(sql, `"is_available"`) {
		t.Fatalf("is_available missing from insert: %s", sql)
	}
	if strings.Contains(sql, "true") {
		t.Fatalf("an unchecked dress must not be inserted as available: %s", sql)
	}
}

func TestDressWritesAndLocks(t *testing.T) {
	db, capture := dryRun(t)
	repo := NewDressGormRepository(db)
	ctx := context.Background()

	if _, err := repo.LockDress(ctx, 7); err != nil {
		t.Fatal(err)
	}
	if sql := capture.last(t); !strings.HasSuffix(sql, "FOR UPDATE") {
		t.Fatalf("lock without FOR UPDATE: %s", sql)
	}

	if err := repo.UpdateDress(ctx, &models.Dress{ID: 7, DressNumber: "X1", BookingCount: 3}); err != nil {
		t.Fatal(err)
	}
	sql := capture.last(t)
	if !strings.Contains(sql, `"is_available"=false`) {
		t.Fatalf("update must write the flag even when false: %s", sql)
	}
	for _, col := range []string{`"dress_number"=`, `"booking_count"=`, `"created_at"=`} {
		if strings.Contains(sql, col) {
			t.Fatalf("update touched %s: %s", col, sql)
		}
	}
}

func TestSaveDressStateWritesOnlyBookingColumns(t *testing.T) {
	db, capture := dryRun(t)
	repo := NewBookingGormRepository(db)

	if err := repo.SaveDressState(context.Background(), &models.Dress{ID: 7, ModelName: "Royal", BookingCount: 2}); err != nil {
		t.Fatal(err)
	}

	sql := capture.last(t)
	if !strings.Contains(sql, `"is_available"=false`) || !strings.Contains(sql, `"booking_count"=2`) {
		t.Fatalf("unexpected update: %s", sql)
	}
	if strings.Contains(sql, "model_name") {
		t.Fatalf("booking path must not rewrite catalog fields: %s", sql)
	}
}
