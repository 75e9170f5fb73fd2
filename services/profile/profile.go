// File: services/profile/profile.go
package profile

import (
	"context"
	"errors"

	"wednest/models"
	"wednest/upstream"
)

var (
	// ErrNotAuthenticated is returned when no session identity is available.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrForbidden is returned when a session tries to edit another account's
	// profile.
	ErrForbidden = errors.New("cannot edit another account's profile")

	// ErrMissingFields is returned when required form fields are absent.
	ErrMissingFields = errors.New("required profile fields are missing")
)

// Backend is the slice of the upstream client the profile editors need.
type Backend interface {
	UpdateCoupleProfile(ctx context.Context, sess *models.Session, update models.CoupleProfileUpdate, profileImage *upstream.FileUpload) (string, error)
	UpdateVendorProfile(ctx context.Context, sess *models.Session, update models.VendorProfileUpdate, profileImage *upstream.FileUpload, serviceImages []upstream.FileUpload) (string, error)
	FetchVendorProfile(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error)
}

// Service is the read-modify-write flow behind both profile editors. It is
// independent of the cart aggregator.
type Service interface {
	UpdateCouple(ctx context.Context, sess *models.Session, update models.CoupleProfileUpdate, profileImage *upstream.FileUpload) (string, error)
	UpdateVendor(ctx context.Context, sess *models.Session, update models.VendorProfileUpdate, profileImage *upstream.FileUpload, serviceImages []upstream.FileUpload) (string, error)
	VendorProfile(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error)
}

// DefaultProfileService implements Service.
type DefaultProfileService struct {
	Backend Backend
}

// UpdateCouple validates and forwards a couple profile update.
func (s *DefaultProfileService) UpdateCouple(ctx context.Context, sess *models.Session, update models.CoupleProfileUpdate, profileImage *upstream.FileUpload) (string, error) {
	if sess == nil || sess.UserID == "" {
		return "", ErrNotAuthenticated
	}
	if update.UserID == "" {
		update.UserID = sess.UserID
	}
	if update.UserID != sess.UserID {
		return "", ErrForbidden
	}
	if update.Username == "" || update.ContactNumber == "" {
		return "", ErrMissingFields
	}
	return s.Backend.UpdateCoupleProfile(ctx, sess, update, profileImage)
}

// UpdateVendor validates and forwards a vendor profile update.
func (s *DefaultProfileService) UpdateVendor(ctx context.Context, sess *models.Session, update models.VendorProfileUpdate, profileImage *upstream.FileUpload, serviceImages []upstream.FileUpload) (string, error) {
	if sess == nil || sess.UserID == "" {
		return "", ErrNotAuthenticated
	}
	if update.UserID == "" {
		update.UserID = sess.UserID
	}
	if update.UserID != sess.UserID {
		return "", ErrForbidden
	}
	if update.BusinessName == "" || update.VendorType == "" {
		return "", ErrMissingFields
	}
	return s.Backend.UpdateVendorProfile(ctx, sess, update, profileImage, serviceImages)
}

// VendorProfile reads the vendor's editable record to prefill the editor.
func (s *DefaultProfileService) VendorProfile(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error) {
	if sess == nil || sess.UserID == "" {
		return nil, ErrNotAuthenticated
	}
	return s.Backend.FetchVendorProfile(ctx, sess, vendorID)
}
