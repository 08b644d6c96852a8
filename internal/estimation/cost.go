package estimation

import "github.com/jonathan/project-estimator/internal/types"

// CalculateCostBreakdown prices each breakdown category at the current
// hourly rate, then applies overhead and profit margin. Every monetary
// value is rounded to 2 decimal places at the step it is produced, so
// rounding error accumulates identically on every calculation path.
func (e *Engine) CalculateCostBreakdown(estimate types.TimeEstimate) types.CostBreakdown {
	lines := make([]types.CostLine, 0, len(estimate.Breakdown))
	var subtotal float64
	for _, b := range estimate.Breakdown {
		cost := round2(b.Hours * e.rates.HourlyRate)
		lines = append(lines, types.CostLine{Category: b.Category, Hours: b.Hours, Cost: cost})
		subtotal += cost
	}
	subtotal = round2(subtotal)

	overhead := round2(subtotal * e.rates.Overhead)
	profit := round2((subtotal + overhead) * e.rates.ProfitMargin)

	return types.CostBreakdown{
		Lines:    lines,
		Subtotal: subtotal,
		Overhead: overhead,
		Profit:   profit,
		Total:    round2(subtotal + overhead + profit),
		Currency: e.rates.Currency,
	}
}

// CalculateTotalCost prices a raw hour count through the same
// rate/overhead/profit chain, with the same per-step rounding.
func (e *Engine) CalculateTotalCost(hours float64) float64 {
	subtotal := round2(hours * e.rates.HourlyRate)
	overhead := round2(subtotal * e.rates.Overhead)
	profit := round2((subtotal + overhead) * e.rates.ProfitMargin)
	return round2(subtotal + overhead + profit)
}
