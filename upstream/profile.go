package upstream

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"

	"wednest/models"
)

// FileUpload is an image part forwarded inside a multipart profile update.
type FileUpload struct {
	Filename string
	Content  []byte
}

// UpdateCoupleProfile writes the couple profile via PUT /api/couple/profile
// (multipart, profileImage optional).
func (c *Client) UpdateCoupleProfile(ctx context.Context, sess *models.Session, update models.CoupleProfileUpdate, profileImage *FileUpload) (string, error) {
	fields := map[string]string{
		"user_id":       update.UserID,
		"username":      update.Username,
		"contactNumber": update.ContactNumber,
		"weddingDate":   update.WeddingDate,
		"budgetRange":   update.BudgetRange,
	}
	var files []filePart
	if profileImage != nil {
		files = append(files, filePart{field: "profileImage", upload: *profileImage})
	}
	return c.putMultipart(ctx, sess, "/api/couple/profile", fields, files)
}

// UpdateVendorProfile writes the vendor profile via PUT /api/vendor/profile
// (multipart, profile image and service images optional).
func (c *Client) UpdateVendorProfile(ctx context.Context, sess *models.Session, update models.VendorProfileUpdate, profileImage *FileUpload, serviceImages []FileUpload) (string, error) {
	fields := map[string]string{
		"user_id":            update.UserID,
		"businessName":       update.BusinessName,
		"vendorType":         update.VendorType,
		"contactNumber":      update.ContactNumber,
		"location":           update.Location,
		"pricing":            update.Pricing,
		"serviceDescription": update.ServiceDescription,
	}
	var files []filePart
	if profileImage != nil {
		files = append(files, filePart{field: "profileImage", upload: *profileImage})
	}
	for _, img := range serviceImages {
		files = append(files, filePart{field: "serviceImages", upload: img})
	}
	return c.putMultipart(ctx, sess, "/api/vendor/profile", fields, files)
}

// FetchVendorProfile reads the vendor's editable profile record, used to
// prefill the profile editor.
func (c *Client) FetchVendorProfile(ctx context.Context, sess *models.Session, vendorID string) (*models.Vendor, error) {
	env, err := c.doJSON(ctx, sess, http.MethodGet, "/api/vendor/profile/"+vendorID, nil)
	if err != nil {
		return nil, err
	}
	var vendor models.Vendor
	if err := decodeData(env, "/api/vendor/profile", &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

type filePart struct {
	field  string
	upload FileUpload
}

func (c *Client) putMultipart(ctx context.Context, sess *models.Session, path string, fields map[string]string, files []filePart) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := writer.WriteField(name, value); err != nil {
			return "", newError(CodeValidation, "write multipart field "+name, err)
		}
	}
	for _, part := range files {
		fw, err := writer.CreateFormFile(part.field, part.upload.Filename)
		if err != nil {
			return "", newError(CodeValidation, "write multipart file "+part.field, err)
		}
		if _, err := fw.Write(part.upload.Content); err != nil {
			return "", newError(CodeValidation, "write multipart file "+part.field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", newError(CodeValidation, "finalize multipart body", err)
	}

	env, err := c.do(ctx, sess, http.MethodPut, path, &buf, writer.FormDataContentType())
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
