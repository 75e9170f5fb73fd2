package models

// Request status values. The strings are wire-level and shared with the
// backend and the front end; do not localize or re-case them.
const (
	RequestPending   = "Pending"
	RequestAccepted  = "Accepted"
	RequestDeclined  = "Declined"
	RequestConfirmed = "Confirmed by Vendor"
)

// Request is a couple's expressed interest in booking a vendor.
type Request struct {
	ID       string `json:"_id"`
	CoupleID string `json:"couple_id"`
	VendorID string `json:"vendor_id"`
	Status   string `json:"status"`
}

// IsTerminalStatus reports whether a status admits no further transitions.
func IsTerminalStatus(status string) bool {
	return status == RequestDeclined || status == RequestConfirmed
}

// CanTransition validates a request status transition:
// Pending -> Accepted | Declined, Accepted -> Confirmed by Vendor.
func CanTransition(from, to string) bool {
	switch from {
	case RequestPending:
		return to == RequestAccepted || to == RequestDeclined
	case RequestAccepted:
		return to == RequestConfirmed
	default:
		return false
	}
}

// CoupleRequest is a request as listed on the couple dashboard, with the
// vendor reference populated by the backend.
type CoupleRequest struct {
	ID     string `json:"_id"`
	Vendor Vendor `json:"vendor_id"`
	Status string `json:"status"`
}

// VendorRequest is a request as listed on the vendor's bookings screen,
// with the couple reference populated by the backend.
type VendorRequest struct {
	ID     string        `json:"_id"`
	Couple RequestCouple `json:"couple_id"`
	Status string        `json:"status"`
}

// RequestCouple is the slice of couple data a vendor sees on a request.
type RequestCouple struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	WeddingDate string `json:"wedding_date"`
}
