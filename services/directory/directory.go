// File: services/directory/directory.go
package directory

import (
	"context"
	"encoding/json"
	"time"

	"wednest/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const vendorDetailPrefix = "vendorDetails:"

// DefaultDirectoryService serves vendor lookups with a short-TTL Redis cache
// in front of the backend. The cart aggregator shares this service, so one
// screenful of cart entries pointing at the same vendor costs a single
// upstream call.
type DefaultDirectoryService struct {
	Backend Backend
	Cache   *redis.Client
	TTL     time.Duration
	Logger  *zap.Logger

	sfg singleflight.Group // collapses concurrent misses for the same vendor
}

// VendorsByType lists vendors for an exact-match category tag. Listings are
// not cached; categories change rarely but the list itself is cheap and the
// front end polls it infrequently.
func (s *DefaultDirectoryService) VendorsByType(ctx context.Context, sess *models.Session, vendorType string) ([]models.Vendor, error) {
	return s.Backend.FetchVendorsByType(ctx, sess, vendorType)
}

// VendorDetails resolves one vendor's full record, preferring the cache.
// Cache failures are logged and treated as misses; only the backend error is
// authoritative.
func (s *DefaultDirectoryService) VendorDetails(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error) {
	v, err, _ := s.sfg.Do(vendorID, func() (interface{}, error) {
		if cached := s.fromCache(ctx, vendorID); cached != nil {
			return cached, nil
		}

		vendor, err := s.Backend.FetchVendorDetails(ctx, sess, vendorID)
		if err != nil {
			return nil, err
		}
		s.toCache(ctx, vendor)
		return vendor, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Vendor), nil
}

func (s *DefaultDirectoryService) fromCache(ctx context.Context, vendorID string) *models.Vendor {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, vendorDetailPrefix+vendorID).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		s.Logger.Warn("Vendor cache read failed", zap.String("vendorID", vendorID), zap.Error(err))
		return nil
	}
	var vendor models.Vendor
	if err := json.Unmarshal([]byte(data), &vendor); err != nil {
		s.Logger.Warn("Vendor cache entry corrupt", zap.String("vendorID", vendorID), zap.Error(err))
		return nil
	}
	return &vendor
}

func (s *DefaultDirectoryService) toCache(ctx context.Context, vendor *models.Vendor) {
	if s.Cache == nil || vendor == nil || vendor.ID == "" {
		return
	}
	data, err := json.Marshal(vendor)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, vendorDetailPrefix+vendor.ID, data, s.TTL).Err(); err != nil {
		s.Logger.Warn("Vendor cache write failed", zap.String("vendorID", vendor.ID), zap.Error(err))
	}
}
