package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/bridal-rental/internal/httperr"
)

var (
	ErrDuplicateIdentifier = httperr.ErrBusiness("duplicate_identifier")
	ErrHasActiveBookings   = httperr.ErrBusiness("has_active_bookings")
	ErrDressNotFound       = httperr.ErrBusiness("dress_not_found")
	ErrNumberRequired      = httperr.ErrBusiness("dress_number_required")
	ErrInvalidAmount       = httperr.ErrBusiness("invalid_amount")
	ErrInvalidSize         = httperr.ErrBusiness("invalid_size")
)

// Suggested categories shown in forms; any free text is accepted.
var Categories = []string{"wedding", "soiree", "evening", "engagement", "other"}

var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// NormalizeNumber trims and upper-cases a dress number so that "1001a " and
// "1001A" identify the same dress.
func NormalizeNumber(n string) string {
	return strings.ToUpper(strings.TrimSpace(n))
}

// NormalizeSize upper-cases s and checks it against Sizes. Blank is allowed.
func NormalizeSize(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	for _, v := range Sizes {
		if v == s {
			return s, nil
		}
	}
	return "", ErrInvalidSize
}

// ParseFabrics splits a comma separated list, dropping blanks.
func ParseFabrics(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func ValidatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}
