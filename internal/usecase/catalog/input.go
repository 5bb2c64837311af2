package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ImageUpload struct {
	Filename string
	Data     []byte
}

type DressInput struct {
	// Ignored by UpdateDress.
	DressNumber string

	ModelName   string
	Category    string
	Color       string
	FabricTypes []string
	Size        string
	Details     string
	RentalPrice decimal.Decimal
	IsAvailable bool
	// KeepAvailability leaves the stored is_available untouched.
	KeepAvailability bool

	Image       *ImageUpload
	RemoveImage bool
}

// apply validates in and copies the editable fields onto d.
func (in DressInput) apply(d *models.Dress) error {
	if err := domain.ValidatePrice(in.RentalPrice); err != nil {
		return err
	}
	size, err := domain.NormalizeSize(in.Size)
	if err != nil {
		return err
	}

	fabrics := make([]string, 0, len(in.FabricTypes))
	for _, f := range in.FabricTypes {
		if f = strings.TrimSpace(f); f != "" {
			fabrics = append(fabrics, f)
		}
	}

	d.ModelName = strings.TrimSpace(in.ModelName)
	d.Category = strings.TrimSpace(in.Category)
	d.Color = strings.TrimSpace(in.Color)
	d.FabricTypes = fabrics
	d.Size = size
	d.Details = strings.TrimSpace(in.Details)
	d.RentalPrice = in.RentalPrice.Round(2)
	if !in.KeepAvailability {
		d.IsAvailable = in.IsAvailable
	}
	return nil
}
