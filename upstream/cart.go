package upstream

import (
	"context"
	"net/http"

	"wednest/models"
)

// FetchCart returns the couple's raw cart entries from GET /api/cart/:coupleId.
// An empty cart is a success with zero entries, not an error.
func (c *Client) FetchCart(ctx context.Context, sess *models.Session, coupleID string) ([]models.CartEntry, error) {
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/cart/"+coupleID, nil)
	if err != nil {
		return nil, err
	}
	var entries []models.CartEntry
	if err := decodeData(env, "/api/cart", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddToCart adds a vendor to the couple's cart via POST /api/cart/add.
// The add-time price is captured by the backend from the vendor's current
// pricing and is not re-synced afterwards.
func (c *Client) AddToCart(ctx context.Context, sess *models.Session, coupleID, vendorID string) error {
	body := map[string]string{"couple_id": coupleID, "vendor_id": vendorID}
	_, err := c.doJSON(ctx, sess, http.MethodPost, "/api/cart/add", body)
	return err
}

// RemoveFromCart removes a vendor from the cart via DELETE /api/cart/remove.
func (c *Client) RemoveFromCart(ctx context.Context, sess *models.Session, coupleID, vendorID string) error {
	body := map[string]string{"couple_id": coupleID, "vendor_id": vendorID}
	_, err := c.doJSON(ctx, sess, http.MethodDelete, "/api/cart/remove", body)
	return err
}

// FetchBudget reads the couple's declared budget from GET /api/couple/budget/:coupleId.
// The data field is a bare number.
func (c *Client) FetchBudget(ctx context.Context, sess *models.Session, coupleID string) (float64, error) {
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/couple/budget/"+coupleID, nil)
	if err != nil {
		return 0, err
	}
	var budget float64
	if err := decodeData(env, "/api/couple/budget", &budget); err != nil {
		return 0, err
	}
	return budget, nil
}
