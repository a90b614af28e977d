// File: /models/boat.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Listing review statuses
const (
	BoatStatusDraft         = "draft"
	BoatStatusPendingReview = "pending_review"
	BoatStatusApproved      = "approved"
	BoatStatusRejected      = "rejected"
)

// Rental types a boat can offer
const (
	RentalTypeBoatOnly     = "boat_only"
	RentalTypeWithCaptain  = "with_captain"
	RentalTypeOwnerOnboard = "owner_onboard"
)

// Price units
const (
	PriceUnitDay  = "day"
	PriceUnitWeek = "week"
)

// Audit actions recorded on the listing review trail
const (
	AuditActionSubmit  = "submit"
	AuditActionApprove = "approve"
	AuditActionReject  = "reject"
)

type Boat struct {
	ID      string `json:"id" gorm:"primaryKey;size:191"`
	OwnerID string `json:"owner_id" gorm:"not null;index;size:191"`

	Name        string          `json:"name" gorm:"not null;size:255"`
	RentalTypes StringSliceType `json:"rental_types" gorm:"type:json"`
	Area        string          `json:"area" gorm:"size:255"`
	BoatType    string          `json:"boat_type" gorm:"not null;size:100"`
	Brand       string          `json:"brand" gorm:"not null;size:100"`
	Model       string          `json:"model" gorm:"not null;size:100"`
	BuildYear   int             `json:"build_year" gorm:"not null"`
	Capacity    int             `json:"capacity" gorm:"not null"`
	EnginePower float64         `json:"engine_power" gorm:"not null"`
	Length      float64         `json:"length" gorm:"not null"`

	ContactNumber string  `json:"contact_number" gorm:"not null;size:50"`
	City          string  `json:"city" gorm:"not null;size:100"`
	Description   string  `json:"description" gorm:"not null;type:text"`
	Price         float64 `json:"price" gorm:"not null"`
	PriceUnit     string  `json:"price_unit" gorm:"default:'day';size:10"`

	Photos    StringSliceType `json:"photos" gorm:"type:json"`
	Amenities StringSliceType `json:"amenities" gorm:"type:json"`

	AllowsFlexibleCancellation bool `json:"allows_flexible_cancellation" gorm:"default:false"`

	// Rental conditions
	CancellationPolicy string          `json:"cancellation_policy" gorm:"size:500"`
	Deposit            float64         `json:"deposit" gorm:"default:0"`
	CheckInTime        string          `json:"check_in_time" gorm:"size:20"`
	CheckOutTime       string          `json:"check_out_time" gorm:"size:20"`
	LicenseRequired    bool            `json:"license_required" gorm:"default:false"`
	Includes           StringSliceType `json:"includes" gorm:"type:json"`
	NotIncluded        StringSliceType `json:"not_included" gorm:"type:json"`

	// Geolocation. LocationLng/LocationLat form the derived spatial point and
	// must always mirror Longitude/Latitude (kept in sync by BeforeSave).
	Latitude         float64 `json:"latitude" gorm:"not null"`
	Longitude        float64 `json:"longitude" gorm:"not null"`
	AddressFormatted string  `json:"address_formatted" gorm:"size:500"`
	LocationLng      float64 `json:"-" gorm:"index:idx_boats_location"`
	LocationLat      float64 `json:"-" gorm:"index:idx_boats_location"`

	// Publication / review state
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	Status      string     `json:"status" gorm:"default:'draft';index;size:20"`
	SubmittedAt *time.Time `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	ReviewedBy  *string    `json:"reviewed_by" gorm:"size:191"`
	ReviewNotes string     `json:"review_notes" gorm:"size:1000"`

	Audit []BoatAuditEntry `json:"audit" gorm:"foreignKey:BoatID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BoatAuditEntry records a submit/approve/reject action on a listing.
type BoatAuditEntry struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	BoatID  string  `json:"boat_id" gorm:"not null;index;size:191"`
	Action  string  `json:"action" gorm:"not null;size:20"`
	ActorID *string `json:"actor_id" gorm:"size:191"`
	Notes   string  `json:"notes" gorm:"size:1000"`

	CreatedAt time.Time `json:"created_at"`
}

// BeforeSave keeps the spatial point in lockstep with the lat/lon pair.
func (b *Boat) BeforeSave(tx *gorm.DB) error {
	b.SyncLocation()
	return nil
}

// SyncLocation mirrors Latitude/Longitude into the derived location columns.
func (b *Boat) SyncLocation() {
	b.LocationLng = b.Longitude
	b.LocationLat = b.Latitude
}

// IsPubliclyVisible reports whether the listing appears in public search,
// detail and geospatial endpoints.
func (b *Boat) IsPubliclyVisible() bool {
	return b.Status == BoatStatusApproved && b.IsActive
}

// CanSubmit reports whether the listing may be sent for review.
// Resubmission after a rejection is allowed; approved is terminal.
func (b *Boat) CanSubmit() bool {
	return b.Status == BoatStatusDraft || b.Status == BoatStatusRejected
}

// CanReview reports whether an admin may approve or reject the listing.
func (b *Boat) CanReview() bool {
	return b.Status == BoatStatusPendingReview
}

// OffersRentalType reports whether the requested rental type is among the
// listing's declared offers. Listings with no declared types accept any.
func (b *Boat) OffersRentalType(rentalType string) bool {
	if len(b.RentalTypes) == 0 {
		return true
	}
	return b.RentalTypes.Contains(rentalType)
}

// IsValidRentalType reports whether the value is a known rental type.
func IsValidRentalType(rentalType string) bool {
	switch rentalType {
	case RentalTypeBoatOnly, RentalTypeWithCaptain, RentalTypeOwnerOnboard:
		return true
	}
	return false
}
