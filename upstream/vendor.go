package upstream

import (
	"context"
	"net/http"
	"net/url"

	"wednest/models"
)

// FetchVendorDetails fetches a single vendor's full record. A nonexistent id
// comes back as a not-found error.
func (c *Client) FetchVendorDetails(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error) {
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/vendor/details/"+vendorID, nil)
	if err != nil {
		return nil, err
	}
	var vendor models.Vendor
	if err := decodeData(env, "/api/vendor/details", &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

// FetchVendorsByType lists vendors whose category tag exactly matches
// vendorType (e.g. "Venue", "Catering"). No pagination or fuzzy matching.
func (c *Client) FetchVendorsByType(ctx context.Context, sess *models.Session, vendorType string) ([]models.Vendor, error) {
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/vendors/type/"+url.PathEscape(vendorType), nil)
	if err != nil {
		return nil, err
	}
	var vendors []models.Vendor
	if err := decodeData(env, "/api/vendors/type", &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// FetchVendorDashboard reads the vendor's own dashboard payload.
func (c *Client) FetchVendorDashboard(ctx context.Context, sess *models.Session, vendorID string) (*models.VendorDashboard, error) {
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/vendor/dashboard/"+vendorID, nil)
	if err != nil {
		return nil, err
	}
	var dash models.VendorDashboard
	if err := decodeData(env, "/api/vendor/dashboard", &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// FetchVendorRequests lists the requests addressed to a vendor, couple
// references populated.
func (c *Client) FetchVendorRequests(ctx context.Context, sess *models.Session, vendorID string) ([]models.VendorRequest, error) {
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/vendor/requests/"+vendorID, nil)
	if err != nil {
		return nil, err
	}
	var requests []models.VendorRequest
	if err := decodeData(env, "/api/vendor/requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
