package directory

import (
	"context"
	"errors"
	"sync/atomic"
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
	vendors     map[string]models.Vendor
	listings    map[string][]models.Vendor
	detailCalls int32
}

func (f *fakeBackend) FetchVendorsByType(ctx context.Context, sess *models.Session, vendorType string) ([]models.Vendor, error) {
	return f.listings[vendorType], nil
}

func (f *fakeBackend) FetchVendorDetails(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error) {
	atomic.AddInt32(&f.detailCalls, 1)
	vendor, ok := f.vendors[vendorID]
	if !ok {
		return nil, errors.New("vendor not found")
	}
	return &vendor, nil
}

func setupDirectory(t *testing.T, backend *fakeBackend) (*DefaultDirectoryService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &DefaultDirectoryService{
		Backend: backend,
		Cache:   client,
		TTL:     time.Minute,
		Logger:  zap.NewNop(),
	}, mr
}

func TestVendorDetailsCachesSecondRead(t *testing.T) {
	backend := &fakeBackend{vendors: map[string]models.Vendor{
		"v1": {ID: "v1", BusinessName: "Rose Gardens", Pricing: 1200},
	}}
	svc, _ := setupDirectory(t, backend)

	first, err := svc.VendorDetails(context.Background(), nil, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Rose Gardens", first.BusinessName)

	second, err := svc.VendorDetails(context.Background(), nil, "v1")
	require.NoError(t, err)
	assert.Equal(t, first.BusinessName, second.BusinessName)

	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.detailCalls))
}

func TestVendorDetailsCacheExpiryRefetches(t *testing.T) {
	backend := &fakeBackend{vendors: map[string]models.Vendor{
		"v1": {ID: "v1", BusinessName: "Rose Gardens"},
	}}
	svc, mr := setupDirectory(t, backend)

	_, err := svc.VendorDetails(context.Background(), nil, "v1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = svc.VendorDetails(context.Background(), nil, "v1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&backend.detailCalls))
}

func TestVendorDetailsCorruptCacheEntryIsAMiss(t *testing.T) {
	backend := &fakeBackend{vendors: map[string]models.Vendor{
		"v1": {ID: "v1", BusinessName: "Rose Gardens"},
	}}
	svc, mr := setupDirectory(t, backend)

	require.NoError(t, mr.Set("vendorDetails:v1", "{not json"))

	vendor, err := svc.VendorDetails(context.Background(), nil, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Rose Gardens", vendor.BusinessName)
	assert.Equal(t, int32(1), atomic.LoadInt32(&backend.detailCalls))
}

func TestVendorDetailsBackendErrorPropagates(t *testing.T) {
	svc, _ := setupDirectory(t, &fakeBackend{})

	_, err := svc.VendorDetails(context.Background(), nil, "missing")
	assert.Error(t, err)
}

func TestVendorDetailsWorksWithoutCache(t *testing.T) {
	backend := &fakeBackend{vendors: map[string]models.Vendor{
		"v1": {ID: "v1", BusinessName: "Rose Gardens"},
	}}
	svc := &DefaultDirectoryService{Backend: backend, Logger: zap.NewNop()}

	vendor, err := svc.VendorDetails(context.Background(), nil, "v1")
	require.NoError(t, err)
	assert.Equal(t, "Rose Gardens", vendor.BusinessName)
}

func TestVendorsByTypePassesThrough(t *testing.T) {
	backend := &fakeBackend{listings: map[string][]models.Vendor{
		"Florist": {{ID: "v1"}, {ID: "v2"}},
	}}
	svc, _ := setupDirectory(t, backend)

	vendors, err := svc.VendorsByType(context.Background(), nil, "Florist")
	require.NoError(t, err)
	assert.Len(t, vendors, 2)
}
