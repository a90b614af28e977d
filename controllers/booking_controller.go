// File: /controllers/booking_controller.go
package controllers

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sailshare-api/models"
	"sailshare-api/repositories"
	"sailshare-api/services"
	"sailshare-api/utils"
)

// Pricing add-ons, flat amounts in EUR
const (
	CaptainFee      = 200.0
	FuelFee         = 100.0
	WithCaptainFee  = 200.0
	OwnerOnboardFee = 150.0

	// Flexible cancellation surcharge, fraction of the base amount
	FlexibleCancellationRate = 0.10
)

type BookingController struct {
	db           *gorm.DB
	bookings     *repositories.BookingRepository
	emailService *services.EmailService
}

func NewBookingController(db *gorm.DB, emailService *services.EmailService) *BookingController {
	return &BookingController{
		db:           db,
		bookings:     repositories.NewBookingRepository(db),
		emailService: emailService,
	}
}

// PriceBreakdown itemizes how a booking total was computed.
type PriceBreakdown struct {
	Nights               int     `json:"nights"`
	BaseAmount           float64 `json:"base_amount"`
	CaptainFee           float64 `json:"captain_fee"`
	FuelFee              float64 `json:"fuel_fee"`
	RentalTypeFee        float64 `json:"rental_type_fee"`
	FlexibleCancellation float64 `json:"flexible_cancellation"`
	Total                float64 `json:"total"`
	Currency             string  `json:"currency"`
}

// ComputePrice prices a stay on a boat. The base amount is the nightly price
// times the number of nights; add-ons stack on top, and the flexible
// cancellation surcharge is a rounded percentage of the base only.
func ComputePrice(pricePerNight float64, start, end time.Time, extraCaptain, extraFuel bool, rentalType string, flexible bool) PriceBreakdown {
	nights := models.Nights(start, end)
	base := pricePerNight * float64(nights)

	breakdown := PriceBreakdown{
		Nights:     nights,
		BaseAmount: base,
		Currency:   "EUR",
	}

	if extraCaptain {
		breakdown.CaptainFee = CaptainFee
	}
	if extraFuel {
		breakdown.FuelFee = FuelFee
	}

	switch rentalType {
	case models.RentalTypeWithCaptain:
		breakdown.RentalTypeFee = WithCaptainFee
	case models.RentalTypeOwnerOnboard:
		breakdown.RentalTypeFee = OwnerOnboardFee
	}

	if flexible {
		breakdown.FlexibleCancellation = math.Round(base * FlexibleCancellationRate)
	}

	breakdown.Total = breakdown.BaseAmount + breakdown.CaptainFee + breakdown.FuelFee +
		breakdown.RentalTypeFee + breakdown.FlexibleCancellation
	return breakdown
}

func newPaymentRef() (intentID, clientSecret string) {
	intentID = fmt.Sprintf("pi_mock_%d_%d", time.Now().UnixMilli(), rand.Intn(1000000))
	clientSecret = intentID + "_secret"
	return intentID, clientSecret
}

type CreateBookingRequest struct {
	BoatID    string `json:"boat_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Guests    int    `json:"guests" binding:"required,min=1"`

	ExtraCaptain bool `json:"extra_captain"`
	ExtraFuel    bool `json:"extra_fuel"`

	RentalType           string `json:"rental_type"`
	FlexibleCancellation bool   `json:"flexible_cancellation"`

	ContactPhone          string `json:"contact_phone"`
	HasChildren           bool   `json:"has_children"`
	SailingExperience     string `json:"sailing_experience"`
	MotorExperience       string `json:"motor_experience"`
	LicenseType           string `json:"license_type"`
	OwnershipExperience   string `json:"ownership_experience"`
	AdditionalDescription string `json:"additional_description"`
}

func parseBookingDates(startStr, endStr string) (start, end time.Time, errMsg string) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
	}
	if err != nil {
		return start, end, "Invalid start_date"
	}

	end, err = time.Parse(time.RFC3339, endStr)
	if err != nil {
		end, err = time.Parse("2006-01-02", endStr)
	}
	if err != nil {
		return start, end, "Invalid end_date"
	}

	if !end.After(start) {
		return start, end, "end_date must be after start_date"
	}
	return start, end, ""
}

func normalizeExperience(value string) string {
	switch value {
	case models.ExperienceBasic, models.ExperienceIntermediate, models.ExperienceAdvanced:
		return value
	}
	return models.ExperienceNone
}

// CreateBooking reserves a date range on a boat and issues a mock payment
// intent. Conflicting dates answer 409.
func (bkc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	start, end, errMsg := parseBookingDates(req.StartDate, req.EndDate)
	if errMsg != "" {
		utils.SendError(c, http.StatusBadRequest, errMsg)
		return
	}

	var boat models.Boat
	if err := bkc.db.First(&boat, "id = ?", req.BoatID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}
	if !boat.IsPubliclyVisible() {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}

	if req.Guests > boat.Capacity {
		utils.SendError(c, http.StatusBadRequest,
			fmt.Sprintf("This boat holds up to %d guests", boat.Capacity))
		return
	}

	rentalType := req.RentalType
	if rentalType == "" {
		rentalType = models.RentalTypeBoatOnly
	}
	if !models.IsValidRentalType(rentalType) {
		utils.SendError(c, http.StatusBadRequest, "Invalid rental type")
		return
	}
	if !boat.OffersRentalType(rentalType) {
		utils.SendError(c, http.StatusBadRequest, "This boat does not offer that rental type")
		return
	}

	if req.FlexibleCancellation && !boat.AllowsFlexibleCancellation {
		utils.SendError(c, http.StatusBadRequest, "This boat does not offer flexible cancellation")
		return
	}

	overlap, err := bkc.bookings.HasOverlap(boat.ID, start, end)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to check availability")
		return
	}
	if overlap {
		utils.SendErrorCode(c, http.StatusConflict, "DATES_UNAVAILABLE",
			"The selected dates are no longer available")
		return
	}

	breakdown := ComputePrice(boat.Price, start, end,
		req.ExtraCaptain, req.ExtraFuel, rentalType, req.FlexibleCancellation)

	intentID, clientSecret := newPaymentRef()

	booking := models.Booking{
		ID:        uuid.New().String(),
		BoatID:    boat.ID,
		StartDate: start,
		EndDate:   end,
		Guests:    req.Guests,

		ExtraCaptain:         req.ExtraCaptain,
		ExtraFuel:            req.ExtraFuel,
		RentalType:           rentalType,
		FlexibleCancellation: req.FlexibleCancellation,

		Currency:    breakdown.Currency,
		TotalAmount: breakdown.Total,

		ContactPhone:          req.ContactPhone,
		HasChildren:           req.HasChildren,
		SailingExperience:     normalizeExperience(req.SailingExperience),
		MotorExperience:       normalizeExperience(req.MotorExperience),
		LicenseType:           req.LicenseType,
		OwnershipExperience:   normalizeExperience(req.OwnershipExperience),
		AdditionalDescription: req.AdditionalDescription,

		Status:          models.BookingStatusPendingPayment,
		PaymentIntentID: intentID,
		ClientSecret:    clientSecret,
	}

	if userID := c.GetString("user_id"); userID != "" {
		booking.RenterID = &userID
	}

	if err := bkc.bookings.Create(&booking); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Booking created, pending payment",
		"booking":   booking,
		"breakdown": breakdown,
	})
}

// GetAvailability answers a specific date range when start and end are given,
// otherwise lists the boat's booked ranges from today onward so clients can
// block out dates.
// GET /api/bookings/availability/:boatId?start=&end=
func (bkc *BookingController) GetAvailability(c *gin.Context) {
	boatID := c.Param("boatId")

	var boat models.Boat
	if err := bkc.db.First(&boat, "id = ?", boatID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}

	startStr, endStr := c.Query("start"), c.Query("end")
	if startStr != "" || endStr != "" {
		start, end, errMsg := parseBookingDates(startStr, endStr)
		if errMsg != "" {
			utils.SendError(c, http.StatusBadRequest, errMsg)
			return
		}

		overlap, err := bkc.bookings.HasOverlap(boatID, start, end)
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to check availability")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"boat_id":   boatID,
			"available": !overlap,
		})
		return
	}

	ranges, err := bkc.bookings.BlockedRanges(boatID, time.Now())
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"boat_id":        boatID,
		"blocked_ranges": ranges,
	})
}

// GetMyBookings lists the authenticated renter's bookings, newest first.
func (bkc *BookingController) GetMyBookings(c *gin.Context) {
	userID := c.GetString("user_id")

	bookings, err := bkc.bookings.ListByRenter(userID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

type ownerBookingView struct {
	models.Booking
	BoatName string `json:"boat_name"`
}

// GetOwnerBookings lists bookings received across all the owner's boats.
func (bkc *BookingController) GetOwnerBookings(c *gin.Context) {
	userID := c.GetString("user_id")

	var boats []models.Boat
	if err := bkc.db.Select("id, name").Where("owner_id = ?", userID).Find(&boats).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	if len(boats) == 0 {
		c.JSON(http.StatusOK, gin.H{"bookings": []ownerBookingView{}})
		return
	}

	boatIDs := make([]string, 0, len(boats))
	names := make(map[string]string, len(boats))
	for _, b := range boats {
		boatIDs = append(boatIDs, b.ID)
		names[b.ID] = b.Name
	}

	bookings, err := bkc.bookings.ListByBoats(boatIDs)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	views := make([]ownerBookingView, 0, len(bookings))
	for _, booking := range bookings {
		views = append(views, ownerBookingView{Booking: booking, BoatName: names[booking.BoatID]})
	}

	c.JSON(http.StatusOK, gin.H{"bookings": views})
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus lets the boat's owner confirm or cancel a booking.
func (bkc *BookingController) UpdateStatus(c *gin.Context) {
	userID := c.GetString("user_id")

	booking, err := bkc.bookings.FindByID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Booking not found")
		return
	}

	var boat models.Boat
	if err := bkc.db.First(&boat, "id = ?", booking.BoatID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}
	if boat.OwnerID != userID {
		utils.SendError(c, http.StatusForbidden, "Only the boat owner can update this booking")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "status is required")
		return
	}

	switch req.Status {
	case models.BookingStatusConfirmed, models.BookingStatusCancelled:
	default:
		utils.SendError(c, http.StatusBadRequest, "Invalid status (confirmed|cancelled)")
		return
	}

	if err := bkc.bookings.UpdateFields(booking, map[string]interface{}{"status": req.Status}); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	booking.Status = req.Status
	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated",
		"booking": booking,
	})
}

type SimulatePaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

// SimulatePayment settles a mock payment intent, moving the booking from
// pending_payment to confirmed. There is no real charge behind it. Bookings
// placed anonymously are unclaimed: the first authenticated payer adopts them.
// POST /api/bookings/:id/simulate-payment
func (bkc *BookingController) SimulatePayment(c *gin.Context) {
	userID := c.GetString("user_id")

	booking, err := bkc.bookings.FindByID(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Booking not found")
		return
	}

	if booking.RenterID != nil && (userID == "" || *booking.RenterID != userID) {
		utils.SendError(c, http.StatusForbidden, "This booking belongs to another user")
		return
	}

	var req SimulatePaymentRequest
	_ = c.ShouldBindJSON(&req)
	if req.PaymentIntentID != "" && req.PaymentIntentID != booking.PaymentIntentID {
		utils.SendError(c, http.StatusBadRequest, "Payment reference does not match this booking")
		return
	}

	if booking.Status != models.BookingStatusPendingPayment {
		utils.SendError(c, http.StatusBadRequest,
			fmt.Sprintf("Booking is already %s", booking.Status))
		return
	}

	updates := map[string]interface{}{
		"status": models.BookingStatusConfirmed,
	}
	if booking.RenterID == nil && userID != "" {
		updates["renter_id"] = userID
		booking.RenterID = &userID
	}

	if err := bkc.bookings.UpdateFields(booking, updates); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to confirm booking")
		return
	}
	booking.Status = models.BookingStatusConfirmed

	// Confirmation email is best effort
	if booking.RenterID != nil {
		var renter models.User
		if err := bkc.db.First(&renter, "id = ?", *booking.RenterID).Error; err == nil {
			var boat models.Boat
			boatName := ""
			if err := bkc.db.Select("name").First(&boat, "id = ?", booking.BoatID).Error; err == nil {
				boatName = boat.Name
			}
			if err := bkc.emailService.SendBookingConfirmedEmail(renter.Email, renter.FirstName, boatName, booking.TotalAmount); err != nil {
				fmt.Printf("Failed to send booking confirmation to %s: %v\n", renter.Email, err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment confirmed",
		"booking": booking,
	})
}
