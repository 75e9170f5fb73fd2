package cart

import (
	"testing"

	"wednest/models"

	"github.com/stretchr/testify/assert"
)

func entries(prices ...float64) []models.AggregatedCartEntry {
	out := make([]models.AggregatedCartEntry, len(prices))
	for i, p := range prices {
		out[i] = models.AggregatedCartEntry{Price: p}
	}
	return out
}

func TestTotalCost(t *testing.T) {
	assert.Equal(t, 0.0, TotalCost(nil))
	assert.Equal(t, 0.0, TotalCost(entries()))
	assert.Equal(t, 300.0, TotalCost(entries(100, 200)))
	assert.Equal(t, 200.0, TotalCost(entries(200, 0)))

	// Order does not matter.
	assert.Equal(t, TotalCost(entries(100, 200, 50)), TotalCost(entries(50, 100, 200)))
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name      string
		prices    []float64
		budget    float64
		remaining float64
		over      bool
	}{
		{name: "under budget", prices: []float64{1000, 500}, budget: 2500, remaining: 1000, over: false},
		{name: "exactly on budget is not over", prices: []float64{1000, 1500}, budget: 2500, remaining: 0, over: false},
		{name: "over budget", prices: []float64{1000, 2000}, budget: 2500, remaining: -500, over: true},
		{name: "empty cart", prices: nil, budget: 2500, remaining: 2500, over: false},
		{name: "zero budget with spending", prices: []float64{1}, budget: 0, remaining: -1, over: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			summary := Reconcile(entries(tc.prices...), tc.budget)
			assert.Equal(t, tc.remaining, summary.Remaining)
			assert.Equal(t, tc.over, summary.IsOverBudget)
		})
	}
}
