// File: services/request/workflow.go
package request

import (
	"context"

	"wednest/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const requestSentPrefix = "requestSent:"

// DefaultWorkflowService implements Service. A sticky "requested" flag per
// (couple, vendor) pair lives in Redis, mirroring the request_sent_<vendor>
// marker the web client keeps in browser storage: once a couple has sent a
// request it stays sent, and repeat submission is refused.
type DefaultWorkflowService struct {
	Backend Backend
	Cache   *redis.Client
	Logger  *zap.Logger
}

func sentKey(coupleID, vendorID string) string {
	return requestSentPrefix + coupleID + ":" + vendorID
}

// Create files a request from the session's couple to a vendor. Duplicates
// are refused locally via the sticky flag, then against the backend's own
// record; the backend remains the final arbiter of uniqueness.
func (s *DefaultWorkflowService) Create(ctx context.Context, sess *models.Session, vendorID string) error {
	if sess == nil || sess.UserID == "" {
		return ErrNotAuthenticated
	}
	coupleID := sess.UserID

	if requested, err := s.HasRequested(ctx, sess, vendorID); err == nil && requested {
		return ErrDuplicateRequest
	}

	if err := s.Backend.CreateRequest(ctx, sess, coupleID, vendorID); err != nil {
		return err
	}
	s.markRequested(ctx, coupleID, vendorID)
	return nil
}

// HasRequested reports whether the couple already has a request out for the
// vendor. It consults the sticky flag first and falls back to resolving the
// request id upstream (re-priming the flag on a hit).
func (s *DefaultWorkflowService) HasRequested(ctx context.Context, sess *models.Session, vendorID string) (bool, error) {
	if sess == nil || sess.UserID == "" {
		return false, ErrNotAuthenticated
	}
	coupleID := sess.UserID

	if s.Cache != nil {
		exists, err := s.Cache.Exists(ctx, sentKey(coupleID, vendorID)).Result()
		if err != nil {
			s.Logger.Warn("Request flag read failed", zap.String("coupleID", coupleID), zap.Error(err))
		} else if exists > 0 {
			return true, nil
		}
	}

	_, found, err := s.Backend.ResolveRequestID(ctx, sess, coupleID, vendorID)
	if err != nil {
		return false, err
	}
	if found {
		s.markRequested(ctx, coupleID, vendorID)
	}
	return found, nil
}

// Status reads a request's current status; the backend's answer is
// authoritative.
func (s *DefaultWorkflowService) Status(ctx context.Context, sess *models.Session, requestID string) (string, error) {
	return s.Backend.FetchRequestStatus(ctx, sess, requestID)
}

// UpdateStatus applies a vendor's accept/decline/confirm action after
// validating it against the state machine: Pending may become Accepted or
// Declined, Accepted may become Confirmed by Vendor, terminal states are
// immutable.
func (s *DefaultWorkflowService) UpdateStatus(ctx context.Context, sess *models.Session, requestID, status string) error {
	current, err := s.Backend.FetchRequestStatus(ctx, sess, requestID)
	if err != nil {
		return err
	}
	if !models.CanTransition(current, status) {
		s.Logger.Warn("Rejected request transition",
			zap.String("requestID", requestID),
			zap.String("from", current),
			zap.String("to", status))
		return ErrInvalidTransition
	}
	return s.Backend.UpdateRequestStatus(ctx, sess, requestID, status)
}

func (s *DefaultWorkflowService) markRequested(ctx context.Context, coupleID, vendorID string) {
	if s.Cache == nil {
		return
	}
	// No expiry: the flag is sticky for the lifetime of the request.
	if err := s.Cache.Set(ctx, sentKey(coupleID, vendorID), "1", 0).Err(); err != nil {
		s.Logger.Warn("Request flag write failed", zap.String("coupleID", coupleID), zap.Error(err))
	}
}
