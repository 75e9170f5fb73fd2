package request

import (
	"context"
	"errors"

	"wednest/models"
)

var (
	// ErrNotAuthenticated is returned when no couple identity is available.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrDuplicateRequest is returned when a request for the (couple, vendor)
	// pair already exists. Once sent, the requested flag is sticky.
	ErrDuplicateRequest = errors.New("request already sent to this vendor")

	// ErrInvalidTransition is returned for a status change the request state
	// machine does not allow.
	ErrInvalidTransition = errors.New("request status transition not allowed")
)

// Backend is the slice of the upstream client the workflow needs.
type Backend interface {
	CreateRequest(ctx context.Context, sess *models.Session, coupleID, vendorID string) error
	ResolveRequestID(ctx context.Context, sess *models.Session, coupleID, vendorID string) (string, bool, error)
	FetchRequestStatus(ctx context.Context, sess *models.Session, requestID string) (string, error)
	UpdateRequestStatus(ctx context.Context, sess *models.Session, requestID, status string) error
}

// Service creates and mutates service requests between couples and vendors.
type Service interface {
	Create(ctx context.Context, sess *models.Session, vendorID string) error
	Status(ctx context.Context, sess *models.Session, requestID string) (string, error)
	UpdateStatus(ctx context.Context, sess *models.Session, requestID, status string) error
	HasRequested(ctx context.Context, sess *models.Session, vendorID string) (bool, error)
}
