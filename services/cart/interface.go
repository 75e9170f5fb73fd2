package cart

import (
	"context"

	"wednest/models"
)

// Backend is the slice of the upstream client the cart service needs.
type Backend interface {
	FetchCart(ctx context.Context, sess *models.Session, coupleID string) ([]models.CartEntry, error)
	FetchBudget(ctx context.Context, sess *models.Session, coupleID string) (float64, error)
	AddToCart(ctx context.Context, sess *models.Session, coupleID, vendorID string) error
	RemoveFromCart(ctx context.Context, sess *models.Session, coupleID, vendorID string) error
	ResolveRequestID(ctx context.Context, sess *models.Session, coupleID, vendorID string) (string, bool, error)
	FetchRequestStatus(ctx context.Context, sess *models.Session, requestID string) (string, error)
}

// VendorLookup resolves full vendor detail records for enrichment. The
// directory service satisfies this with its cache in front of the backend.
type VendorLookup interface {
	VendorDetails(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error)
}

// Service produces display-ready cart aggregates and mutates the cart.
type Service interface {
	AggregateCart(ctx context.Context, sess *models.Session) (*models.CartView, error)
	Checkout(ctx context.Context, sess *models.Session) (*models.CheckoutView, error)
	AddVendor(ctx context.Context, sess *models.Session, vendorID string) error
	RemoveVendor(ctx context.Context, sess *models.Session, vendorID string) error
}
