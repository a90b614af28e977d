// File: /models/booking.go
package models

import (
	"time"
)

// Booking statuses
const (
	BookingStatusPendingPayment = "pending_payment"
	BookingStatusConfirmed      = "confirmed"
	BookingStatusCancelled      = "cancelled"
)

// Experience levels declared on a booking
const (
	ExperienceNone         = "none"
	ExperienceBasic        = "basic"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

type Booking struct {
	ID       string  `json:"id" gorm:"primaryKey;size:191"`
	BoatID   string  `json:"boat_id" gorm:"not null;index:idx_bookings_boat_range;size:191"`
	RenterID *string `json:"renter_id" gorm:"size:191"` // optional, bookings can be placed unauthenticated

	// Half-open range: StartDate inclusive, EndDate exclusive
	StartDate time.Time `json:"start_date" gorm:"not null;index:idx_bookings_boat_range"`
	EndDate   time.Time `json:"end_date" gorm:"not null;index:idx_bookings_boat_range"`
	Guests    int       `json:"guests" gorm:"not null"`

	ExtraCaptain bool `json:"extra_captain" gorm:"default:false"`
	ExtraFuel    bool `json:"extra_fuel" gorm:"default:false"`

	RentalType           string `json:"rental_type" gorm:"default:'boat_only';size:20"`
	FlexibleCancellation bool   `json:"flexible_cancellation" gorm:"default:false"`

	Currency    string  `json:"currency" gorm:"default:'EUR';size:3"`
	TotalAmount float64 `json:"total_amount" gorm:"not null"`

	// Passenger and experience declarations
	ContactPhone          string `json:"contact_phone" gorm:"size:50"`
	HasChildren           bool   `json:"has_children" gorm:"default:false"`
	SailingExperience     string `json:"sailing_experience" gorm:"default:'none';size:20"`
	MotorExperience       string `json:"motor_experience" gorm:"default:'none';size:20"`
	LicenseType           string `json:"license_type" gorm:"size:100"`
	OwnershipExperience   string `json:"ownership_experience" gorm:"default:'none';size:20"`
	AdditionalDescription string `json:"additional_description" gorm:"size:1000"`

	Status string `json:"status" gorm:"default:'pending_payment';index;size:20"`

	// Mock payment identifiers, no real settlement behind them
	PaymentIntentID string `json:"payment_intent_id" gorm:"size:100"`
	ClientSecret    string `json:"client_secret" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Overlaps reports whether two half-open [start, end) ranges intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Nights returns the number of billable nights for a half-open range,
// rounded up to whole days and floored at zero.
func Nights(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	d := end.Sub(start)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}
