package models

// Vendor is the full vendor detail record as served by the backend.
// The gateway holds transient copies only; the backend owns the data.
type Vendor struct {
	ID                 string   `json:"_id"`
	BusinessName       string   `json:"businessName"`
	VendorType         string   `json:"vendorType"`
	Location           string   `json:"location"`
	Pricing            float64  `json:"pricing"`
	ServiceDescription string   `json:"serviceDescription"`
	ProfileImage       string   `json:"profile_image"`
	ServiceImages      []string `json:"service_images"`
	Email              string   `json:"email"`
	ContactNumber      string   `json:"contactNumber"`
}

// VendorDashboard is the vendor's own dashboard payload.
type VendorDashboard struct {
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	BusinessName  string   `json:"businessName"`
	VendorType    string   `json:"vendorType"`
	Location      string   `json:"location"`
	Pricing       float64  `json:"pricing"`
	ProfileImage  string   `json:"profile_image"`
	ServiceImages []string `json:"service_images"`
}
