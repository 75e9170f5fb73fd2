package session

import (
	"context"
	"errors"

	"wednest/models"
)

// ErrSessionNotFound signals that no live session exists for a token.
var ErrSessionNotFound = errors.New("session not found or expired")

// Service owns the session lifecycle: login creates, logout deletes, every
// authenticated call reads. Sessions are keyed by the backend-issued auth
// token so the browser keeps using that token as its bearer credential.
type Service interface {
	Create(ctx context.Context, sess *models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}
