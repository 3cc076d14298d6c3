package domain

import "time"

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusConfirmed TransferStatus = "confirmed"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusCancelled TransferStatus = "cancelled"
)

// ValidTransferStatus reports whether s is a member of the transfer booking
// allowed-status set.
func ValidTransferStatus(s string) bool {
	switch TransferStatus(s) {
	case TransferStatusPending, TransferStatusConfirmed, TransferStatusCompleted, TransferStatusCancelled:
		return true
	}
	return false
}

// TransferBooking is an airport transfer request. VehicleType must resolve to
// an available vehicle at creation time; ArrivalTime is a wall-clock value in
// HH:MM form.
type TransferBooking struct {
	ID              string         `json:"id"`
	CustomerName    string         `json:"customer_name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	FlightNumber    string         `json:"flight_number"`
	ArrivalDate     time.Time      `json:"arrival_date"`
	ArrivalTime     string         `json:"arrival_time"`
	Passengers      int            `json:"passengers"`
	VehicleType     string         `json:"vehicle_type"`
	Destination     string         `json:"destination"`
	SpecialRequests string         `json:"special_requests"`
	Status          TransferStatus `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}
