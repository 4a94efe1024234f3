package feecalc

import "fmt"

// Steps renders the human-readable narration of a calculation. Formatting
// lives here so the numeric core stays free of presentation concerns;
// figures are rounded to 2 decimals for display only.
func Steps(res *Result) []string {
	b := res.AppliedBracket

	steps := make([]string, 0, 5)
	steps = append(steps, fmt.Sprintf("Subject value: %s TRY", res.SubjectValue.StringFixed(2)))

	if b.Unbounded() {
		steps = append(steps, fmt.Sprintf("Applicable bracket: %s TRY and above", b.MinValue.StringFixed(2)))
	} else {
		steps = append(steps, fmt.Sprintf("Applicable bracket: %s - %s TRY",
			b.MinValue.StringFixed(2), b.MaxValue.StringFixed(2)))
	}

	if b.FixedFee != nil {
		steps = append(steps, fmt.Sprintf("Tariff fee: %s TRY", res.BaseFee.StringFixed(2)))
	} else {
		steps = append(steps, fmt.Sprintf("Percentage: %s%% -> %s x %s%% = %s TRY",
			b.Percentage.StringFixed(2), res.SubjectValue.StringFixed(2),
			b.Percentage.StringFixed(2), res.BaseFee.StringFixed(2)))
	}

	steps = append(steps, fmt.Sprintf("VAT (%s%%): %s TRY",
		res.VATRate.StringFixed(2), res.VATAmount.StringFixed(2)))
	steps = append(steps, fmt.Sprintf("Total fee: %s TRY", res.TotalFee.StringFixed(2)))

	return steps
}
