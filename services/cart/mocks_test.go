package cart

import (
	"context"
	"errors"

	"wednest/models"
)

// fakeBackend satisfies Backend with canned data per couple/vendor pair.
type fakeBackend struct {
	cart      []models.CartEntry
	cartErr   error
	budget    float64
	budgetErr error

	// requestIDs maps vendorID to requestID; statuses maps requestID to
	// status. A vendor absent from requestIDs has no request.
	requestIDs map[string]string
	statuses   map[string]string
	resolveErr error
	statusErr  error

	added      []string
	removed    []string
	addErr     error
	removeErr  error
}

func (f *fakeBackend) FetchCart(ctx context.Context, sess *models.Session, coupleID string) ([]models.CartEntry, error) {
	if f.cartErr != nil {
		return nil, f.cartErr
	}
	return f.cart, nil
}

func (f *fakeBackend) FetchBudget(ctx context.Context, sess *models.Session, coupleID string) (float64, error) {
	if f.budgetErr != nil {
		return 0, f.budgetErr
	}
	return f.budget, nil
}

func (f *fakeBackend) AddToCart(ctx context.Context, sess *models.Session, coupleID, vendorID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, vendorID)
	return nil
}

func (f *fakeBackend) RemoveFromCart(ctx context.Context, sess *models.Session, coupleID, vendorID string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, vendorID)
	return nil
}

func (f *fakeBackend) ResolveRequestID(ctx context.Context, sess *models.Session, coupleID, vendorID string) (string, bool, error) {
	if f.resolveErr != nil {
		return "", false, f.resolveErr
	}
	id, ok := f.requestIDs[vendorID]
	return id, ok, nil
}

func (f *fakeBackend) FetchRequestStatus(ctx context.Context, sess *models.Session, requestID string) (string, error) {
	if f.statusErr != nil {
		return "", f.statusErr
	}
	return f.statuses[requestID], nil
}

// fakeVendorLookup satisfies VendorLookup from a fixed vendor map. Unknown
// ids fail the lookup.
type fakeVendorLookup struct {
	vendors map[string]models.Vendor
}

func (f *fakeVendorLookup) VendorDetails(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error) {
	vendor, ok := f.vendors[vendorID]
	if !ok {
		return nil, errors.New("vendor lookup failed")
	}
	return &vendor, nil
}
