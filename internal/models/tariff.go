package models

import "github.com/shopspring/decimal"

// TariffCategory selects which bracket ladder applies to a calculation.
type TariffCategory string

const (
	TariffCategoryStandard   TariffCategory = "standard"
	TariffCategoryCommercial TariffCategory = "commercial"
	TariffCategoryUrgent     TariffCategory = "urgent"
)

// KnownTariffCategory reports whether c is one of the defined categories.
func KnownTariffCategory(c TariffCategory) bool {
	switch c {
	case TariffCategoryStandard, TariffCategoryCommercial, TariffCategoryUrgent:
		return true
	}
	return false
}

// Apportionment says whether a bracket's fee figure is a total to be split
// across parties, or an amount that is already per party.
type Apportionment string

const (
	ApportionmentTotal    Apportionment = "total"
	ApportionmentPerParty Apportionment = "per_party"
)

// TariffBracket is one contiguous value range with its fee rule.
// Exactly one of FixedFee and Percentage is set. Bounds are inclusive;
// a nil MaxValue means the bracket is unbounded above.
type TariffBracket struct {
	MinValue      decimal.Decimal  `json:"min_value"`
	MaxValue      *decimal.Decimal `json:"max_value"`
	FixedFee      *decimal.Decimal `json:"fixed_fee,omitempty"`
	Percentage    *decimal.Decimal `json:"percentage,omitempty"`
	Apportionment Apportionment    `json:"apportionment"`
}

// Unbounded reports whether the bracket has no upper limit.
func (b TariffBracket) Unbounded() bool { return b.MaxValue == nil }

// Contains reports whether value falls inside the bracket, bounds inclusive.
func (b TariffBracket) Contains(value decimal.Decimal) bool {
	if value.LessThan(b.MinValue) {
		return false
	}
	return b.MaxValue == nil || value.LessThanOrEqual(*b.MaxValue)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func fixedBracket(min, max, fee string) TariffBracket {
	b := TariffBracket{
		MinValue:      dec(min),
		FixedFee:      decPtr(fee),
		Apportionment: ApportionmentTotal,
	}
	if max != "" {
		b.MaxValue = decPtr(max)
	}
	return b
}

func percentBracket(min, pct string, app Apportionment) TariffBracket {
	return TariffBracket{
		MinValue:      dec(min),
		Percentage:    decPtr(pct),
		Apportionment: app,
	}
}

// TariffBrackets holds the deploy-time fee ladders per category, amounts in
// TRY (mediation minimum fee tariff). Ordered ascending by MinValue, never
// mutated at runtime.
var TariffBrackets = map[TariffCategory][]TariffBracket{
	TariffCategoryStandard: {
		fixedBracket("0", "5000", "650"),
		fixedBracket("5000.01", "10000", "950"),
		fixedBracket("10000.01", "20000", "1250"),
		fixedBracket("20000.01", "50000", "1950"),
		fixedBracket("50000.01", "100000", "2950"),
		fixedBracket("100000.01", "250000", "4350"),
		fixedBracket("250000.01", "500000", "5850"),
		fixedBracket("500000.01", "1000000", "7350"),
		fixedBracket("1000000.01", "2500000", "9150"),
		fixedBracket("2500000.01", "5000000", "10950"),
		fixedBracket("5000000.01", "10000000", "12750"),
		fixedBracket("10000000.01", "", "14630"),
	},
	TariffCategoryCommercial: {
		fixedBracket("0", "50000", "2960"),
		fixedBracket("50000.01", "100000", "4650"),
		fixedBracket("100000.01", "250000", "6450"),
		fixedBracket("250000.01", "500000", "8320"),
		fixedBracket("500000.01", "1000000", "10470"),
		fixedBracket("1000000.01", "2500000", "13120"),
		fixedBracket("2500000.01", "5000000", "16040"),
		fixedBracket("5000000.01", "10000000", "19150"),
		fixedBracket("10000000.01", "25000000", "21780"),
		fixedBracket("25000000.01", "", "24370"),
	},
	TariffCategoryUrgent: {
		percentBracket("0", "2.0", ApportionmentPerParty),
	},
}
