// File: /repositories/booking_repository.go
package repositories

import (
	"time"

	"gorm.io/gorm"

	"sailshare-api/models"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// DateRange is a half-open [start, end) blocked interval.
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// HasOverlap reports whether any non-cancelled booking for the boat
// intersects the half-open [start, end) range.
//
// The check and the subsequent insert are not wrapped in a transaction, so
// two concurrent submissions for intersecting ranges can both pass before
// either write lands. Known limitation.
func (r *BookingRepository) HasOverlap(boatID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).
		Where("boat_id = ? AND status <> ?", boatID, models.BookingStatusCancelled).
		Where("start_date < ? AND end_date > ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// BlockedRanges lists the upcoming non-cancelled ranges for a boat, sorted by
// start date.
func (r *BookingRepository) BlockedRanges(boatID string, from time.Time) ([]DateRange, error) {
	var ranges []DateRange
	err := r.db.Model(&models.Booking{}).
		Select("start_date", "end_date").
		Where("boat_id = ? AND status <> ? AND end_date >= ?", boatID, models.BookingStatusCancelled, from).
		Order("start_date ASC").
		Scan(&ranges).Error
	if err != nil {
		return nil, err
	}
	return ranges, nil
}

func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepository) FindByID(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByRenter returns a renter's bookings, newest first.
func (r *BookingRepository) ListByRenter(renterID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("renter_id = ?", renterID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

// ListByBoats returns all bookings for a set of boats, newest first.
func (r *BookingRepository) ListByBoats(boatIDs []string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Where("boat_id IN ?", boatIDs).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *BookingRepository) UpdateFields(booking *models.Booking, updates map[string]interface{}) error {
	return r.db.Model(booking).Updates(updates).Error
}
