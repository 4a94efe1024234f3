// Package tariff supplies the deploy-time fee bracket ladders and the
// lookup over them. The ladders themselves live in models.TariffBrackets;
// this package guards their integrity and answers which bracket applies
// to a subject value.
package tariff

import (
	"fmt"

	"lexofis/internal/models"

	"github.com/shopspring/decimal"
)

// Table answers bracket lookups for the static tariff ladders.
type Table struct {
	brackets map[models.TariffCategory][]models.TariffBracket
}

// NewTable returns a Table over the deploy-time ladders.
func NewTable() *Table {
	return &Table{brackets: models.TariffBrackets}
}

// BracketsFor returns the ordered bracket ladder for a category.
func (t *Table) BracketsFor(category models.TariffCategory) ([]models.TariffBracket, error) {
	brackets, ok := t.brackets[category]
	if !ok || len(brackets) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return brackets, nil
}

// Categories returns every category with the brackets it maps to,
// for the read-only tariff endpoint.
func (t *Table) Categories() map[models.TariffCategory][]models.TariffBracket {
	return t.brackets
}

// Find returns the first bracket containing value, scanning in ascending
// order. ok is false when no bracket matches, which given a well-formed
// table only happens for negative values.
func (t *Table) Find(category models.TariffCategory, value decimal.Decimal) (models.TariffBracket, bool, error) {
	brackets, err := t.BracketsFor(category)
	if err != nil {
		return models.TariffBracket{}, false, err
	}
	for _, b := range brackets {
		if b.Contains(value) {
			return b, true, nil
		}
	}
	return models.TariffBracket{}, false, nil
}

// Validate checks every ladder for contiguity and well-formed fee rules.
// Run once at startup; a failure means the static tariff data is wrong
// and the process must not serve calculations.
func (t *Table) Validate() error {
	step := decimal.RequireFromString("0.01")
	for category, brackets := range t.brackets {
		if len(brackets) == 0 {
			return fmt.Errorf("%w: category %q has no brackets", ErrMalformedTable, category)
		}
		if !brackets[0].MinValue.IsZero() {
			return fmt.Errorf("%w: category %q does not start at zero", ErrMalformedTable, category)
		}
		for i, b := range brackets {
			hasFixed := b.FixedFee != nil
			hasPct := b.Percentage != nil
			if hasFixed == hasPct {
				return fmt.Errorf("%w: category %q bracket %d must set exactly one of fixed fee and percentage",
					ErrMalformedTable, category, i)
			}
			last := i == len(brackets)-1
			if last {
				if !b.Unbounded() {
					return fmt.Errorf("%w: category %q terminal bracket is bounded", ErrMalformedTable, category)
				}
				continue
			}
			if b.Unbounded() {
				return fmt.Errorf("%w: category %q bracket %d is unbounded but not terminal",
					ErrMalformedTable, category, i)
			}
			next := brackets[i+1]
			if !next.MinValue.Equal(b.MaxValue.Add(step)) {
				return fmt.Errorf("%w: category %q brackets %d and %d are not contiguous",
					ErrMalformedTable, category, i, i+1)
			}
		}
	}
	return nil
}
