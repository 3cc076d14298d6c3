package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a customer tour booking. TourID is verified against the tours
// collection at creation time only.
type Booking struct {
	ID              string        `json:"id"`
	TourID          string        `json:"tour_id"`
	CustomerName    string        `json:"customer_name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	BookingDate     time.Time     `json:"booking_date"`
	Guests          int           `json:"guests"`
	SpecialRequests string        `json:"special_requests"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}
