package cart

import "wednest/models"

// BudgetSummary compares aggregated cart cost against the couple's budget.
type BudgetSummary struct {
	TotalCost    float64 `json:"total_cost"`
	Remaining    float64 `json:"remaining"`
	IsOverBudget bool    `json:"is_over_budget"`
}

// TotalCost sums entry prices. An entry with no price contributes 0, and the
// sum is order-independent.
func TotalCost(entries []models.AggregatedCartEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		total += entry.Price
	}
	return total
}

// Reconcile maps (entries, budget) onto a budget summary. Spending exactly
// the budget is not over budget; only a strictly greater total is.
func Reconcile(entries []models.AggregatedCartEntry, budget float64) BudgetSummary {
	total := TotalCost(entries)
	return BudgetSummary{
		TotalCost:    total,
		Remaining:    budget - total,
		IsOverBudget: total > budget,
	}
}
