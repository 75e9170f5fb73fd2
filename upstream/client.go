// File: upstream/client.go
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wednest/models"

	"go.uber.org/zap"
)

// Client talks to the WedNest REST backend. Every response follows the
// envelope {status: "success"|"error", data, message}; login additionally
// carries a top-level token field.
//
// The session is passed explicitly to each call. Whenever the session holds
// an auth token it is attached as a bearer header; there are no call sites
// that skip it.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  *zap.Logger
}

// NewClient builds a backend client with a bounded per-call timeout.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		timeout: timeout,
		logger:  logger,
	}
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`

	// Top-level extras some endpoints use instead of data.
	Token     string `json:"token,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *envelope) success() bool {
	return e.Status == "success"
}

// do performs a single backend call and decodes the envelope. A non-2xx
// status or an envelope status of "error" is mapped onto the error taxonomy;
// transport failures come back as network errors.
func (c *Client) do(ctx context.Context, sess *models.Session, method, path string, body io.Reader, contentType string) (*envelope, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, newError(CodeNetwork, fmt.Sprintf("build request for %s", path), err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if sess != nil && sess.AuthToken != "" {
		req.Header.Set("Authorization", "Bearer "+sess.AuthToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Backend call failed", zap.String("path", path), zap.Error(err))
		return nil, newError(CodeNetwork, fmt.Sprintf("%s %s unreachable", method, path), err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, newError(CodeUpstream, fmt.Sprintf("decode response from %s", path), err)
	}

	if !env.success() {
		return &env, c.mapFailure(resp.StatusCode, path, env.Message)
	}
	return &env, nil
}

func (c *Client) mapFailure(httpStatus int, path, message string) error {
	if message == "" {
		message = fmt.Sprintf("backend rejected %s", path)
	}
	switch httpStatus {
	case http.StatusUnauthorized, http.StatusForbidden:
		return newError(CodeUnauthenticated, message, nil)
	case http.StatusNotFound:
		return newError(CodeNotFound, message, nil)
	case http.StatusConflict:
		return newError(CodeDuplicate, message, nil)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return newError(CodeValidation, message, nil)
	default:
		return newError(CodeUpstream, message, nil)
	}
}

// doJSON marshals body (when non-nil) and performs the call.
func (c *Client) doJSON(ctx context.Context, sess *models.Session, method, path string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, newError(CodeValidation, "encode request body", err)
		}
		reader = bytes.NewReader(payload)
	}
	return c.do(ctx, sess, method, path, reader, "application/json")
}

// decodeData unmarshals the envelope's data field into out.
func decodeData(env *envelope, path string, out any) error {
	if len(env.Data) == 0 {
		return newError(CodeUpstream, fmt.Sprintf("empty data from %s", path), nil)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return newError(CodeUpstream, fmt.Sprintf("decode data from %s", path), err)
	}
	return nil
}
