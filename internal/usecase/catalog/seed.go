package catalog

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/bridal-rental/internal/domain/catalog"
	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

var defaultDresses = []models.Dress{
	{
		DressNumber: "1001A",
		ModelName:   "The Royal Princess",
		Category:    "wedding",
		Color:       "Ivory white",
		FabricTypes: []string{"Silk satin", "Chiffon", "French lace"},
		RentalPrice: decimal.NewFromInt(5500),
		Size:        "M",
		Details:     "Classic wedding dress with hand-embroidered lace",
		IsAvailable: true,
	},
	{
		DressNumber: "1002B",
		ModelName:   "The Modern Bride",
		Category:    "wedding",
		Color:       "Snow white",
		FabricTypes: []string{"Velvet", "Tulle", "Lace"},
		RentalPrice: decimal.NewFromInt(4800),
		Size:        "L",
		Details:     "Modern wedding dress with a geometric cut",
		IsAvailable: true,
	},
	{
		DressNumber: "2001C",
		ModelName:   "The Evening Star",
		Category:    "soiree",
		Color:       "Crimson red",
		FabricTypes: []string{"Crepe", "Crystal embroidery"},
		RentalPrice: decimal.NewFromInt(3200),
		Size:        "S",
		Details:     "Embroidered evening soiree dress",
		IsAvailable: true,
	},
}

// SeedDefaults inserts the demo dresses when the catalog is empty.
func SeedDefaults(ctx context.Context, repo domain.Repository) error {
	n, err := repo.CountDresses(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, d := range defaultDresses {
		d.FabricTypes = append([]string(nil), d.FabricTypes...)
		if err := repo.CreateDress(ctx, &d); err != nil {
			return err
		}
	}

	log.Printf("seeded %d demo dresses", len(defaultDresses))
	return nil
}
