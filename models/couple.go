package models

// CoupleDashboard is the couple's dashboard payload.
type CoupleDashboard struct {
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	ProfileImage string   `json:"profile_image"`
	WeddingDate  string   `json:"wedding_date"`
	Budget       *float64 `json:"budget"`
}

// CoupleProfileUpdate carries the multipart fields of the couple profile
// editor. The profile image travels separately as a file part.
type CoupleProfileUpdate struct {
	UserID        string
	Username      string
	ContactNumber string
	WeddingDate   string
	BudgetRange   string
}

// VendorProfileUpdate carries the multipart fields of the vendor profile
// editor. Profile and service images travel separately as file parts.
type VendorProfileUpdate struct {
	UserID             string
	BusinessName       string
	VendorType         string
	ContactNumber      string
	Location           string
	Pricing            string
	ServiceDescription string
}
