package upstream

import (
	"context"
	"net/http"
	"net/url"

	"wednest/models"
)

// CreateRequest files a service request from a couple to a vendor via
// POST /api/request. The backend enforces request uniqueness per
// (couple, vendor) pair; a duplicate surfaces as a duplicate error.
func (c *Client) CreateRequest(ctx context.Context, sess *models.Session, coupleID, vendorID string) error {
	body := map[string]string{"couple_id": coupleID, "vendor_id": vendorID}
	_, err := c.doJSON(ctx, sess, http.MethodPost, "/api/request", body)
	return err
}

// ResolveRequestID looks up the request id for a (couple, vendor) pair via
// GET /api/request-id. A missing request is a valid outcome, reported as
// found == false with no error; the aggregator reads it as "no request yet".
func (c *Client) ResolveRequestID(ctx context.Context, sess *models.Session, coupleID, vendorID string) (string, bool, error) {
	q := url.Values{}
	q.Set("couple_id", coupleID)
	q.Set("vendor_id", vendorID)
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/request-id?"+q.Encode(), nil)
	if err != nil {
		if IsNetwork(err) {
			return "", false, err
		}
		// Any backend-side rejection means no resolvable request.
		return "", false, nil
	}
	if env.RequestID == "" {
		return "", false, nil
	}
	return env.RequestID, true, nil
}

type requestStatusData struct {
	Status string `json:"status"`
}

// FetchRequestStatus reads a request's current status from
// GET /api/request/status/:id. The returned status is authoritative for
// cart-entry display.
func (c *Client) FetchRequestStatus(ctx context.Context, sess *models.Session, requestID string) (string, error) {
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/request/status/"+requestID, nil)
	if err != nil {
		return "", err
	}
	var data requestStatusData
	if err := decodeData(env, "/api/request/status", &data); err != nil {
		return "", err
	}
	return data.Status, nil
}

// UpdateRequestStatus mutates a request via PUT /api/request/:id. Transition
// legality is validated by the request workflow service before this call.
func (c *Client) UpdateRequestStatus(ctx context.Context, sess *models.Session, requestID, status string) error {
	body := map[string]string{"status": status}
	_, err := c.doJSON(ctx, sess, http.MethodPut, "/api/request/"+requestID, body)
	return err
}
