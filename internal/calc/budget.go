package calc

import (
	"strings"

	"github.com/shopspring/decimal"
)

// BudgetLineItem is one cost category as entered by the user.
type BudgetLineItem struct {
	Category string `json:"category"`
	Cost     string `json:"cost"`
}

// BudgetSpec is the input of the budget aggregator.
type BudgetSpec struct {
	Items          []BudgetLineItem `json:"items"`
	ReservePercent float64          `json:"reserve_percent"`
}

// BudgetLine is a normalized line item.
type BudgetLine struct {
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
}

// BudgetResult is the output of the budget aggregator.
type BudgetResult struct {
	Lines          []BudgetLine `json:"lines"`
	Subtotal       float64      `json:"subtotal"`
	ReservePercent float64      `json:"reserve_percent"`
	ReserveAmount  float64      `json:"reserve_amount"`
	Total          float64      `json:"total"`
}

// Budget sums line items and adds a contingency reserve. Costs that do not
// parse, or parse as negative, count as zero.
func (c *Calculator) Budget(spec BudgetSpec) (BudgetResult, error) {
	if !isFinite(spec.ReservePercent) {
		return BudgetResult{}, errNonFiniteResult
	}

	lines := make([]BudgetLine, 0, len(spec.Items))
	subtotal := decimal.Zero
	for _, item := range spec.Items {
		cost := decimal.NewFromFloat(ParseNonNegative(item.Cost))
		subtotal = subtotal.Add(cost)
		lines = append(lines, BudgetLine{
			Category: strings.TrimSpace(item.Category),
			Cost:     cost.InexactFloat64(),
		})
	}

	reservePercent := nonNegative(spec.ReservePercent)
	reserve := subtotal.Mul(decimal.NewFromFloat(reservePercent)).Div(decimal.NewFromInt(100))
	total := subtotal.Add(reserve)

	res := BudgetResult{
		Lines:          lines,
		Subtotal:       subtotal.InexactFloat64(),
		ReservePercent: reservePercent,
		ReserveAmount:  reserve.InexactFloat64(),
		Total:          total.InexactFloat64(),
	}
	if !allFinite(res.Subtotal, res.ReserveAmount, res.Total) {
		return BudgetResult{}, errNonFiniteResult
	}
	return res, nil
}
