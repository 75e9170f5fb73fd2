package models

// CartEntry is a raw cart row as served by the backend. The vendor reference
// arrives populated (at least the id, usually the add-time snapshot). Price is
// captured when the vendor is added and is never re-synced with the vendor's
// current pricing; the add-time price is the one the couple agreed to.
type CartEntry struct {
	Vendor Vendor  `json:"vendor_id"`
	Price  float64 `json:"price"`
}

// Resolution states for an aggregated cart entry. Degraded means the vendor
// detail lookup failed and the entry carries its raw cart fields instead.
const (
	ResolutionOK       = "ok"
	ResolutionDegraded = "degraded"
)

// AggregatedCartEntry is a cart entry annotated with full vendor details and
// the live request status for display.
type AggregatedCartEntry struct {
	Vendor     Vendor  `json:"vendor"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	Resolution string  `json:"resolution"`
}

// CartView is the display-ready aggregate the cart screen renders.
// Budget and Remaining are nil when the budget lookup failed; the cart
// still renders without a reconciliation in that case.
type CartView struct {
	Entries      []AggregatedCartEntry `json:"entries"`
	TotalCost    float64               `json:"total_cost"`
	Budget       *float64              `json:"budget,omitempty"`
	Remaining    *float64              `json:"remaining,omitempty"`
	IsOverBudget bool                  `json:"is_over_budget"`
	OverBudgetBy float64               `json:"over_budget_by,omitempty"`
}

// CheckoutView lists the accepted (locked) entries ready for payment.
type CheckoutView struct {
	Entries   []AggregatedCartEntry `json:"entries"`
	TotalCost float64               `json:"total_cost"`
}
