// File: handlers/profile.go
package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"wednest/middleware"
	"wednest/models"
	"wednest/services/profile"
	"wednest/upstream"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Multipart profile updates are capped; images beyond this are rejected
// before anything is forwarded upstream.
const maxProfileUploadBytes = 16 << 20

// ProfileHandler serves the couple and vendor profile editors.
type ProfileHandler struct {
	Svc profile.Service
}

// NewProfileHandler builds a ProfileHandler.
func NewProfileHandler(svc profile.Service) *ProfileHandler {
	return &ProfileHandler{Svc: svc}
}

// UpdateCoupleProfileHandler forwards the couple's multipart profile update
// (fields plus an optional profileImage part).
func (h *ProfileHandler) UpdateCoupleProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Insufficient authorization"})
		return
	}

	if err := c.Request.ParseMultipartForm(maxProfileUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid multipart form: " + err.Error()})
		return
	}

	update := models.CoupleProfileUpdate{
		UserID:        c.PostForm("user_id"),
		Username:      c.PostForm("username"),
		ContactNumber: c.PostForm("contactNumber"),
		WeddingDate:   c.PostForm("weddingDate"),
		BudgetRange:   c.PostForm("budgetRange"),
	}

	image, err := readFormFile(c, "profileImage")
	if err != nil {
		logger.Warn("Profile image unreadable", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Could not read profile image"})
		return
	}

	message, err := h.Svc.UpdateCouple(c.Request.Context(), sess, update, image)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	if message == "" {
		message = "Profile updated successfully!"
	}
	respondMessage(c, http.StatusOK, message)
}

// UpdateVendorProfileHandler forwards the vendor's multipart profile update
// (fields plus optional profileImage and repeated serviceImages parts).
func (h *ProfileHandler) UpdateVendorProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Insufficient authorization"})
		return
	}

	if err := c.Request.ParseMultipartForm(maxProfileUploadBytes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid multipart form: " + err.Error()})
		return
	}

	update := models.VendorProfileUpdate{
		UserID:             c.PostForm("user_id"),
		BusinessName:       c.PostForm("businessName"),
		VendorType:         c.PostForm("vendorType"),
		ContactNumber:      c.PostForm("contactNumber"),
		Location:           c.PostForm("location"),
		Pricing:            c.PostForm("pricing"),
		ServiceDescription: c.PostForm("serviceDescription"),
	}

	image, err := readFormFile(c, "profileImage")
	if err != nil {
		logger.Warn("Profile image unreadable", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Could not read profile image"})
		return
	}

	var serviceImages []upstream.FileUpload
	if c.Request.MultipartForm != nil {
		for _, header := range c.Request.MultipartForm.File["serviceImages"] {
			upload, err := readFileHeader(header)
			if err != nil {
				logger.Warn("Service image unreadable", zap.String("file", header.Filename), zap.Error(err))
				c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Could not read service image"})
				return
			}
			serviceImages = append(serviceImages, *upload)
		}
	}

	message, err := h.Svc.UpdateVendor(c.Request.Context(), sess, update, image, serviceImages)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	if message == "" {
		message = "Profile updated successfully!"
	}
	respondMessage(c, http.StatusOK, message)
}

// VendorProfileHandler returns the vendor's editable record for prefilling
// the editor.
func (h *ProfileHandler) VendorProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	sess, ok := ownSession(c, c.Param("id"))
	if !ok {
		return
	}
	vendor, err := h.Svc.VendorProfile(c.Request.Context(), sess, sess.UserID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	respondData(c, http.StatusOK, vendor, "")
}

func readFormFile(c *gin.Context, field string) (*upstream.FileUpload, error) {
	header, err := c.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return readFileHeader(header)
}

func readFileHeader(header *multipart.FileHeader) (*upstream.FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &upstream.FileUpload{Filename: header.Filename, Content: content}, nil
}
