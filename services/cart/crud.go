package cart

import (
	"context"

	"wednest/models"
)

// AddVendor adds a vendor to the couple's cart. A vendor already present is
// rejected so the cart never grows a second entry for the same pair.
func (s *DefaultCartService) AddVendor(ctx context.Context, sess *models.Session, vendorID string) error {
	if sess == nil || sess.UserID == "" {
		return ErrNotAuthenticated
	}
	entries, err := s.Backend.FetchCart(ctx, sess, sess.UserID)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.Vendor.ID == vendorID {
			return ErrDuplicateVendor
		}
	}
	return s.Backend.AddToCart(ctx, sess, sess.UserID, vendorID)
}

// RemoveVendor removes a cart entry unless its request has been confirmed by
// the vendor. Confirmation locks the entry; the front end disables the button
// but the gateway enforces it regardless.
func (s *DefaultCartService) RemoveVendor(ctx context.Context, sess *models.Session, vendorID string) error {
	if sess == nil || sess.UserID == "" {
		return ErrNotAuthenticated
	}
	if s.resolveStatus(ctx, sess, sess.UserID, vendorID) == models.RequestConfirmed {
		return ErrEntryLocked
	}
	return s.Backend.RemoveFromCart(ctx, sess, sess.UserID, vendorID)
}
