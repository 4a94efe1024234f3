// Package feecalc computes mediation fees from the tariff bracket ladders.
// The calculator is stateless and deterministic: validation runs first and
// in full, then the calculation either fully succeeds or fails with no
// partial result.
package feecalc

import (
	"lexofis/internal/models"
	"lexofis/internal/services/tariff"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DefaultVATRate applies when a request does not carry a VAT rate.
var DefaultVATRate = decimal.NewFromInt(18)

// Calculator derives fee breakdowns from the tariff table.
type Calculator struct {
	table          *tariff.Table
	defaultVATRate decimal.Decimal
}

// NewCalculator returns a calculator over the given table. A zero
// defaultVATRate is replaced with DefaultVATRate.
func NewCalculator(table *tariff.Table, defaultVATRate decimal.Decimal) *Calculator {
	if defaultVATRate.IsZero() {
		defaultVATRate = DefaultVATRate
	}
	return &Calculator{table: table, defaultVATRate: defaultVATRate}
}

// Calculate validates the request and derives the full fee breakdown.
// Validation failures come back as validation.Errors with every violated
// field; no partial result is ever returned.
func (c *Calculator) Calculate(req Request) (*Result, error) {
	// Absent category keeps the historical default rather than failing,
	// for compatibility with existing callers.
	if req.Category == "" {
		req.Category = models.TariffCategoryStandard
	}

	if errs := ValidateRequest(req); errs != nil {
		return nil, errs
	}

	vatRate := c.defaultVATRate
	if req.VATRate != nil {
		vatRate = *req.VATRate
	}

	bracket, ok, err := c.table.Find(req.Category, req.SubjectValue)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoBracket
	}

	var baseFee decimal.Decimal
	switch {
	case bracket.FixedFee != nil:
		// A fixed fee does not scale with the subject value.
		baseFee = *bracket.FixedFee
	case bracket.Percentage != nil:
		baseFee = req.SubjectValue.Mul(*bracket.Percentage).Div(hundred)
	}

	vatAmount := baseFee.Mul(vatRate).Div(hundred)
	totalFee := baseFee.Add(vatAmount)

	// A per-party bracket already expresses a per-party amount; only a
	// total-apportioned fee is divided. The split runs over the post-VAT
	// total, matching established tariff practice.
	feePerParty := totalFee
	if bracket.Apportionment == models.ApportionmentTotal {
		feePerParty = totalFee.Div(decimal.NewFromInt(int64(req.PartyCount)))
	}

	res := &Result{
		Category:       req.Category,
		SubjectValue:   req.SubjectValue,
		PartyCount:     req.PartyCount,
		VATRate:        vatRate,
		BaseFee:        baseFee,
		VATAmount:      vatAmount,
		TotalFee:       totalFee,
		FeePerParty:    feePerParty,
		AppliedBracket: bracket,
	}
	res.Steps = Steps(res)
	return res, nil
}
