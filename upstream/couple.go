package upstream

import (
	"context"
	"net/http"

	"wednest/models"
)

// FetchCoupleDashboard reads the couple's dashboard payload.
func (c *Client) FetchCoupleDashboard(ctx context.Context, sess *models.Session, coupleID string) (*models.CoupleDashboard, error) {
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/couple/dashboard/"+coupleID, nil)
	if err != nil {
		return nil, err
	}
	var dash models.CoupleDashboard
	if err := decodeData(env, "/api/couple/dashboard", &dash); err != nil {
		return nil, err
	}
	return &dash, nil
}

// FetchCoupleRequests lists the couple's requests with vendor references
// populated, for the "Vendors Booked" dashboard panel.
func (c *Client) FetchCoupleRequests(ctx context.Context, sess *models.Session, coupleID string) ([]models.CoupleRequest, error) {
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/couple/requests/"+coupleID, nil)
	if err != nil {
		return nil, err
	}
	var requests []models.CoupleRequest
	if err := decodeData(env, "/api/couple/requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
