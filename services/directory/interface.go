package directory

import (
	"context"

	"wednest/models"
)

// Backend is the slice of the upstream client the directory needs.
type Backend interface {
	FetchVendorsByType(ctx context.Context, sess *models.Session, vendorType string) ([]models.Vendor, error)
	FetchVendorDetails(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error)
}

// Service lists vendors by category and resolves single vendor records.
type Service interface {
	VendorsByType(ctx context.Context, sess *models.Session, vendorType string) ([]models.Vendor, error)
	VendorDetails(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error)
}
