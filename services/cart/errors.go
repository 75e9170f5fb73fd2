package cart

import "errors"

var (
	// ErrNotAuthenticated is returned when no couple identity is available;
	// aggregation halts before any network call.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrDuplicateVendor is returned when the vendor is already in the cart.
	// The cart holds at most one entry per (couple, vendor) pair.
	ErrDuplicateVendor = errors.New("vendor already in cart")

	// ErrEntryLocked is returned when removing an entry whose request has
	// been confirmed by the vendor.
	ErrEntryLocked = errors.New("cart entry is confirmed by vendor and cannot be removed")
)
