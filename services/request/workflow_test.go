package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"wednest/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	created []string

	// requestIDs maps vendorID to requestID; statuses maps requestID to
	// its current status.
	requestIDs map[string]string
	statuses   map[string]string

	createErr  error
	resolveErr error
	updates    map[string]string
	updateErr  error
}

func (f *fakeBackend) CreateRequest(ctx context.Context, sess *models.Session, coupleID, vendorID string) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, vendorID)
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
	return f.statuses[requestID], nil
}

func (f *fakeBackend) UpdateRequestStatus(ctx context.Context, sess *models.Session, requestID, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updates == nil {
		f.updates = make(map[string]string)
	}
	f.updates[requestID] = status
	return nil
}

func coupleSession() *models.Session {
	return &models.Session{UserID: "couple-1", AuthToken: "tok", Role: models.RoleCouple}
}

func vendorSession() *models.Session {
	return &models.Session{UserID: "vendor-1", AuthToken: "tok", Role: models.RoleVendor}
}

func newWorkflow(backend *fakeBackend) *DefaultWorkflowService {
	// Cache is nil here; uniqueness falls through to the backend record,
	// which is the authoritative path anyway.
	return &DefaultWorkflowService{Backend: backend, Logger: zap.NewNop()}
}

func TestCreateFilesRequest(t *testing.T) {
	backend := &fakeBackend{}
	svc := newWorkflow(backend)

	err := svc.Create(context.Background(), coupleSession(), "v1")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1"}, backend.created)
}

func TestCreateRefusesDuplicate(t *testing.T) {
	backend := &fakeBackend{requestIDs: map[string]string{"v1": "r1"}}
	svc := newWorkflow(backend)

	err := svc.Create(context.Background(), coupleSession(), "v1")
	assert.ErrorIs(t, err, ErrDuplicateRequest)
	assert.Empty(t, backend.created)
}

func TestCreateRequiresSession(t *testing.T) {
	svc := newWorkflow(&fakeBackend{})
	err := svc.Create(context.Background(), nil, "v1")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestHasRequested(t *testing.T) {
	backend := &fakeBackend{requestIDs: map[string]string{"v1": "r1"}}
	svc := newWorkflow(backend)

	requested, err := svc.HasRequested(context.Background(), coupleSession(), "v1")
	require.NoError(t, err)
	assert.True(t, requested)

	requested, err = svc.HasRequested(context.Background(), coupleSession(), "v2")
	require.NoError(t, err)
	assert.False(t, requested)
}

func TestHasRequestedPropagatesResolveFailure(t *testing.T) {
	backend := &fakeBackend{resolveErr: errors.New("backend down")}
	svc := newWorkflow(backend)

	_, err := svc.HasRequested(context.Background(), coupleSession(), "v1")
	assert.Error(t, err)
}

func TestRequestedFlagIsSticky(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	backend := &fakeBackend{}
	svc := &DefaultWorkflowService{Backend: backend, Cache: client, Logger: zap.NewNop()}

	require.NoError(t, svc.Create(context.Background(), coupleSession(), "v1"))

	// The second attempt is refused from the flag alone, before the
	// backend is consulted for the request record.
	err := svc.Create(context.Background(), coupleSession(), "v1")
	assert.ErrorIs(t, err, ErrDuplicateRequest)
	assert.Equal(t, []string{"v1"}, backend.created)

	// The flag has no expiry.
	mr.FastForward(24 * 365 * time.Hour)
	requested, err := svc.HasRequested(context.Background(), coupleSession(), "v1")
	require.NoError(t, err)
	assert.True(t, requested)
}

func TestHasRequestedRePrimesFlagFromBackend(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	backend := &fakeBackend{requestIDs: map[string]string{"v1": "r1"}}
	svc := &DefaultWorkflowService{Backend: backend, Cache: client, Logger: zap.NewNop()}

	requested, err := svc.HasRequested(context.Background(), coupleSession(), "v1")
	require.NoError(t, err)
	assert.True(t, requested)

	// The upstream hit wrote the flag back.
	assert.True(t, mr.Exists("requestSent:couple-1:v1"))
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		allowed bool
	}{
		{name: "pending to accepted", current: models.RequestPending, next: models.RequestAccepted, allowed: true},
		{name: "pending to declined", current: models.RequestPending, next: models.RequestDeclined, allowed: true},
		{name: "accepted to confirmed", current: models.RequestAccepted, next: models.RequestConfirmed, allowed: true},
		{name: "pending straight to confirmed", current: models.RequestPending, next: models.RequestConfirmed, allowed: false},
		{name: "declined is terminal", current: models.RequestDeclined, next: models.RequestAccepted, allowed: false},
		{name: "confirmed is terminal", current: models.RequestConfirmed, next: models.RequestDeclined, allowed: false},
		{name: "accepted cannot revert", current: models.RequestAccepted, next: models.RequestPending, allowed: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			backend := &fakeBackend{statuses: map[string]string{"r1": tc.current}}
			svc := newWorkflow(backend)

			err := svc.UpdateStatus(context.Background(), vendorSession(), "r1", tc.next)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.next, backend.updates["r1"])
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Empty(t, backend.updates)
			}
		})
	}
}
