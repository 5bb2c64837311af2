package web

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/bridal-rental/internal/domain/report"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

func TestTemplatesRenderEveryPage(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatal(err)
	}

	day := time.Date(2030, 6, 10, 0, 0, 0, 0, time.UTC)
	back := day.AddDate(0, 0, 2)
	dress := &models.Dress{
		ID:          7,
		DressNumber: "1001A",
		ModelName:   "The Royal Princess",
		Category:    "wedding",
		FabricTypes: []string{"Satin", "Lace"},
		Size:        "M",
		RentalPrice: decimal.NewFromInt(5500),
		IsAvailable: true,
	}
	booking := models.Booking{
		ID:               3,
		Reference:        "0b5e7c44-1c1f-4e8a-9f55-3d2a3f7e9a10",
		CustomerName:     "Sara",
		BookingDate:      day,
		ReturnDate:       &back,
		TotalPrice:       decimal.NewFromInt(5500),
		DepositPaid:      decimal.NewFromInt(1500),
		RemainingBalance: decimal.NewFromInt(4000),
		Status:           "active",
		DressNumber:      "1001A",
	}

	pages := map[string]map[string]any{
		"login": {},
		"dashboard": {
			"Stats": &report.Dashboard{
				TotalDresses: 1,
				Upcoming:     []models.Booking{booking},
				DueToday:     []models.Booking{booking},
			},
		},
		"dresses": {
			"Dresses":    []models.Dress{*dress},
			"Categories": []string{"wedding"},
			"Category":   "all",
		},
		"dress_form": {
			"Dress":      dress,
			"Categories": []string{"wedding"},
			"Sizes":      []string{"S", "M"},
		},
		"booking_form": {
			"Dresses":       []models.Dress{*dress},
			"SelectedDress": uint(7),
			"Today":         "2030-06-10",
		},
		"bookings": {
			"Bookings": []models.Booking{booking},
			"Statuses": []string{"all", "active"},
			"Status":   "active",
		},
		"availability": {
			"Date":      "2030-06-10",
			"Category":  "all",
			"Checked":   true,
			"Available": []models.Dress{*dress},
		},
		"reports": {
			"Monthly": &report.Monthly{
				Bookings: 1,
				Revenue:  decimal.NewFromInt(1500),
				Popular:  []report.PopularDress{{DressNumber: "1001A", BookingCount: 1}},
			},
		},
		"logs": {
			"Logs":    []models.SystemLog{{Timestamp: day, Action: "ADD_DRESS", Details: "Added dress 1001A"}},
			"Actions": []string{"ADD_DRESS"},
			"PageNum": 2,
			"HasMore": true,
		},
	}

	for page, data := range pages {
		t.Run(page, func(t *testing.T) {
			data["Page"] = page
			data["Title"] = page
			data["User"] = "owner@shop.test"

			var buf bytes.Buffer
			if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
				t.Fatalf("render %s: %v", page, err)
			}
			if strings.Contains(buf.String(), "Page not found") {
				t.Fatalf("%s fell through to the not-found body", page)
			}
		})
	}
}

func TestDressFormForNewDress(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "base", map[string]any{
		"Page":  "dress_form",
		"Sizes": []string{"M"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `name="dress_number"`) {
		t.Fatal("new dress form must ask for the number")
	}
}

func TestFuncs(t *testing.T) {
	date := funcs["date"].(func(any) string)
	var none *time.Time
	if got := date(none); got != "-" {
		t.Fatalf("nil date: %q", got)
	}
	if got := date(time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)); got != "2030-01-02" {
		t.Fatalf("date: %q", got)
	}

	short := funcs["short"].(func(string) string)
	if short("abc") != "abc" || short("0123456789") != "01234567" {
		t.Fatal("short should keep at most 8 characters")
	}
}
