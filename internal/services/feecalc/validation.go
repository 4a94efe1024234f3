package feecalc

import (
	"lexofis/internal/models"
	"lexofis/internal/validation"

	"github.com/shopspring/decimal"
)

var vatRateMax = decimal.NewFromInt(100)

// ValidateRequest checks every precondition and reports all violations
// together. The category must already be defaulted by the caller; an empty
// or unknown category is reported on calculation_type.
func ValidateRequest(req Request) validation.Errors {
	v := validation.New()

	v.Check(req.SubjectValue.IsPositive(), "subject_value", "must be greater than zero")
	v.Check(req.PartyCount >= 1, "party_count", "must be at least 1")
	if req.VATRate != nil {
		inRange := !req.VATRate.IsNegative() && req.VATRate.LessThanOrEqual(vatRateMax)
		v.Check(inRange, "vat_rate", "must be between 0 and 100")
	}
	v.Check(models.KnownTariffCategory(req.Category), "calculation_type",
		"must be one of standard, commercial, urgent")

	if v.Valid() {
		return nil
	}
	return v.Errors
}
