package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	bookingdomain "github.com/BruksfildServices01/bridal-rental/internal/domain/booking"
	catalogdomain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/media"
	ucBooking "github.com/BruksfildServices01/bridal-rental/internal/usecase/booking"
	ucCatalog "github.com/BruksfildServices01/bridal-rental/internal/usecase/catalog"
)

// multipart parts beyond this stay on disk
const multipartMemory = 8 << 20

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseAmount reads a money field; blank means zero.
func parseAmount(s string, invalid error) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid
	}
	return d, nil
}

func checkbox(v string) bool {
	switch strings.ToLower(v) {
	case "on", "1", "true", "yes":
		return true
	}
	return false
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe) || strings.Contains(err.Error(), "request body too large")
}

// --------------------------------------------------
// Dress form
// --------------------------------------------------

func readDressForm(c *gin.Context) (ucCatalog.DressInput, error) {
	if isMultipart(c) {
		if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
			if tooLarge(err) {
				return ucCatalog.DressInput{}, media.ErrUploadTooLarge
			}
			return ucCatalog.DressInput{}, err
		}
	}

	price, err := parseAmount(c.PostForm("rental_price"), catalogdomain.ErrInvalidAmount)
	if err != nil {
		return ucCatalog.DressInput{}, err
	}

	in := ucCatalog.DressInput{
		DressNumber: c.PostForm("dress_number"),
		ModelName:   c.PostForm("model_name"),
		Category:    c.PostForm("category"),
		Color:       c.PostForm("color"),
		FabricTypes: catalogdomain.ParseFabrics(c.PostForm("fabric_types")),
		Size:        c.PostForm("size"),
		Details:     c.PostForm("details"),
		RentalPrice: price,
		IsAvailable: checkbox(c.PostForm("is_available")),
		RemoveImage: c.PostForm("remove_image") == "1",
	}

	upload, err := readUpload(c, "image")
	if err != nil {
		return ucCatalog.DressInput{}, err
	}
	in.Image = upload

	return in, nil
}

func readUpload(c *gin.Context, field string) (*ucCatalog.ImageUpload, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh.Filename == "" {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &ucCatalog.ImageUpload{Filename: fh.Filename, Data: data}, nil
}

// --------------------------------------------------
// Booking form
// --------------------------------------------------

func readBookingForm(c *gin.Context) (ucBooking.CreateBookingInput, error) {
	dressID, err := strconv.ParseUint(strings.TrimSpace(c.PostForm("dress_id")), 10, 64)
	if err != nil {
		return ucBooking.CreateBookingInput{}, bookingdomain.ErrDressNotFound
	}

	total, err := parseAmount(c.PostForm("total_price"), bookingdomain.ErrInvalidAmount)
	if err != nil {
		return ucBooking.CreateBookingInput{}, err
	}
	deposit, err := parseAmount(c.PostForm("deposit_paid"), bookingdomain.ErrInvalidAmount)
	if err != nil {
		return ucBooking.CreateBookingInput{}, err
	}

	return ucBooking.CreateBookingInput{
		DressID:       uint(dressID),
		CustomerName:  c.PostForm("customer_name"),
		CustomerPhone: c.PostForm("customer_phone"),
		CustomerEmail: c.PostForm("customer_email"),
		BookingDate:   c.PostForm("booking_date"),
		ReturnDate:    c.PostForm("return_date"),
		TotalPrice:    total,
		DepositPaid:   deposit,
		Notes:         c.PostForm("notes"),
	}, nil
}
