// File: services/cart/aggregator.go
package cart

import (
	"context"
	"sync"

	"wednest/models"

	"go.uber.org/zap"
)

// DefaultCartService implements Service on top of the backend client and the
// vendor directory.
type DefaultCartService struct {
	Backend Backend
	Vendors VendorLookup
	Logger  *zap.Logger
}

// AggregateCart produces the display-ready cart: each entry enriched with
// full vendor details and its live request status, plus the running total
// and the budget reconciliation.
//
// The primary cart fetch is a hard failure. Everything after it is
// best-effort: the budget lookup degrades to an unknown budget, and each
// entry's enrichment failure degrades that entry only. Entries are
// independent, so enrichment fans out one goroutine per entry, each writing
// only its own slot of the result slice.
func (s *DefaultCartService) AggregateCart(ctx context.Context, sess *models.Session) (*models.CartView, error) {
	if sess == nil || sess.UserID == "" {
		return nil, ErrNotAuthenticated
	}
	coupleID := sess.UserID

	// The budget read is independent of the cart read; run it alongside.
	type budgetResult struct {
		value float64
		err   error
	}
	budgetCh := make(chan budgetResult, 1)
	go func() {
		value, err := s.Backend.FetchBudget(ctx, sess, coupleID)
		budgetCh <- budgetResult{value: value, err: err}
	}()

	entries, err := s.Backend.FetchCart(ctx, sess, coupleID)
	if err != nil {
		return nil, err
	}

	aggregated := make([]models.AggregatedCartEntry, len(entries))
	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func(i int, entry models.CartEntry) {
			defer wg.Done()
			aggregated[i] = s.enrichEntry(ctx, sess, coupleID, entry)
		}(i, entry)
	}
	wg.Wait()

	view := &models.CartView{
		Entries:   aggregated,
		TotalCost: TotalCost(aggregated),
	}

	if res := <-budgetCh; res.err != nil {
		s.Logger.Warn("Budget lookup failed; rendering cart without reconciliation",
			zap.String("coupleID", coupleID), zap.Error(res.err))
	} else {
		budget := res.value
		summary := Reconcile(aggregated, budget)
		view.Budget = &budget
		view.Remaining = &summary.Remaining
		view.IsOverBudget = summary.IsOverBudget
		if summary.IsOverBudget {
			view.OverBudgetBy = -summary.Remaining
		}
	}
	return view, nil
}

// enrichEntry resolves one cart entry. A vendor-detail failure keeps the raw
// cart fields and marks the entry degraded instead of dropping it.
func (s *DefaultCartService) enrichEntry(ctx context.Context, sess *models.Session, coupleID string, entry models.CartEntry) models.AggregatedCartEntry {
	vendor, err := s.Vendors.VendorDetails(ctx, sess, entry.Vendor.ID)
	if err != nil {
		s.Logger.Warn("Vendor detail lookup failed; keeping raw cart entry",
			zap.String("vendorID", entry.Vendor.ID), zap.Error(err))
		return models.AggregatedCartEntry{
			Vendor:     entry.Vendor,
			Price:      entry.Price,
			Resolution: models.ResolutionDegraded,
		}
	}

	return models.AggregatedCartEntry{
		Vendor:     *vendor,
		Price:      entry.Price,
		Status:     s.resolveStatus(ctx, sess, coupleID, vendor.ID),
		Resolution: models.ResolutionOK,
	}
}

// resolveStatus finds the request behind a cart entry and returns its current
// status. A missing request defaults to Declined; the cart shows unrequested
// vendors as declined rather than invent a pending state for them.
func (s *DefaultCartService) resolveStatus(ctx context.Context, sess *models.Session, coupleID, vendorID string) string {
	requestID, found, err := s.Backend.ResolveRequestID(ctx, sess, coupleID, vendorID)
	if err != nil || !found {
		return models.RequestDeclined
	}
	status, err := s.Backend.FetchRequestStatus(ctx, sess, requestID)
	if err != nil || status == "" {
		return models.RequestDeclined
	}
	return status
}
