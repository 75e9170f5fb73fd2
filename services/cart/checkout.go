package cart

import (
	"context"
	"strings"

	"wednest/models"
)

// Checkout returns the locked portion of the cart: entries whose request the
// vendor has accepted, ready for payment. Status comparison is tolerant of
// casing and whitespace since the value travels through several backends.
func (s *DefaultCartService) Checkout(ctx context.Context, sess *models.Session) (*models.CheckoutView, error) {
	view, err := s.AggregateCart(ctx, sess)
	if err != nil {
		return nil, err
	}

	locked := make([]models.AggregatedCartEntry, 0, len(view.Entries))
	for _, entry := range view.Entries {
		if strings.EqualFold(strings.TrimSpace(entry.Status), models.RequestAccepted) {
			locked = append(locked, entry)
		}
	}
	return &models.CheckoutView{
		Entries:   locked,
		TotalCost: TotalCost(locked),
	}, nil
}
