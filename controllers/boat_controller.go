// File: /controllers/boat_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sailshare-api/models"
	"sailshare-api/utils"
)

type BoatController struct {
	db *gorm.DB
}

func NewBoatController(db *gorm.DB) *BoatController {
	return &BoatController{db: db}
}

type BoatRequest struct {
	Name          string   `json:"name"`
	RentalTypes   []string `json:"rental_types"`
	Area          string   `json:"area"`
	BoatType      string   `json:"boat_type"`
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	BuildYear     int      `json:"build_year"`
	Capacity      int      `json:"capacity"`
	EnginePower   float64  `json:"engine_power"`
	Length        float64  `json:"length"`
	ContactNumber string   `json:"contact_number"`
	City          string   `json:"city"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	PriceUnit     string   `json:"price_unit"`
	Photos        []string `json:"photos"`
	Amenities     []string `json:"amenities"`

	AllowsFlexibleCancellation bool `json:"allows_flexible_cancellation"`

	CancellationPolicy string   `json:"cancellation_policy"`
	Deposit            float64  `json:"deposit"`
	CheckInTime        string   `json:"check_in_time"`
	CheckOutTime       string   `json:"check_out_time"`
	LicenseRequired    bool     `json:"license_required"`
	Includes           []string `json:"includes"`
	NotIncluded        []string `json:"not_included"`

	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	AddressFormatted string  `json:"address_formatted"`
}

// validateBoatRequest returns a field-level message for the first violation,
// or "" when the payload is complete and valid.
func validateBoatRequest(req *BoatRequest) string {
	required := map[string]string{
		"name":           strings.TrimSpace(req.Name),
		"boat_type":      req.BoatType,
		"brand":          req.Brand,
		"model":          req.Model,
		"contact_number": req.ContactNumber,
		"city":           req.City,
		"description":    req.Description,
	}
	for _, field := range []string{"name", "boat_type", "brand", "model", "contact_number", "city", "description"} {
		if required[field] == "" {
			return fmt.Sprintf("Missing required field: %s", field)
		}
	}

	if len(req.RentalTypes) == 0 {
		return "Select at least one rental type"
	}
	for _, rt := range req.RentalTypes {
		if !models.IsValidRentalType(rt) {
			return fmt.Sprintf("Invalid rental type: %s", rt)
		}
	}

	if req.PriceUnit != models.PriceUnitDay && req.PriceUnit != models.PriceUnitWeek {
		return "Invalid price_unit (day|week)"
	}

	if len(req.Photos) == 0 {
		return "At least one photo is required"
	}

	if !utils.IsValidBuildYear(req.BuildYear) {
		return "Invalid build year"
	}

	numerics := []struct {
		name  string
		value float64
	}{
		{"capacity", float64(req.Capacity)},
		{"engine_power", req.EnginePower},
		{"length", req.Length},
		{"price", req.Price},
	}
	for _, n := range numerics {
		if n.value <= 0 {
			return fmt.Sprintf("Invalid or non-positive numeric field: %s", n.name)
		}
	}

	if !utils.IsValidPhone(req.ContactNumber) {
		return "Invalid contact number"
	}

	if !utils.IsValidLatitude(req.Latitude) {
		return "Latitude must be between -90 and 90"
	}
	if !utils.IsValidLongitude(req.Longitude) {
		return "Longitude must be between -180 and 180"
	}

	return ""
}

func (bc *BoatController) applyRequest(boat *models.Boat, req *BoatRequest) {
	boat.Name = strings.TrimSpace(req.Name)
	boat.RentalTypes = models.StringSliceType(req.RentalTypes)
	boat.Area = req.Area
	boat.BoatType = req.BoatType
	boat.Brand = req.Brand
	boat.Model = req.Model
	boat.BuildYear = req.BuildYear
	boat.Capacity = req.Capacity
	boat.EnginePower = req.EnginePower
	boat.Length = req.Length
	boat.ContactNumber = req.ContactNumber
	boat.City = req.City
	boat.Description = req.Description
	boat.Price = req.Price
	boat.PriceUnit = req.PriceUnit
	boat.Photos = models.StringSliceType(req.Photos)
	boat.Amenities = models.StringSliceType(req.Amenities)
	boat.AllowsFlexibleCancellation = req.AllowsFlexibleCancellation
	boat.CancellationPolicy = req.CancellationPolicy
	boat.Deposit = req.Deposit
	boat.CheckInTime = req.CheckInTime
	boat.CheckOutTime = req.CheckOutTime
	boat.LicenseRequired = req.LicenseRequired
	boat.Includes = models.StringSliceType(req.Includes)
	boat.NotIncluded = models.StringSliceType(req.NotIncluded)
	boat.Latitude = req.Latitude
	boat.Longitude = req.Longitude
	boat.AddressFormatted = req.AddressFormatted
}

// CreateBoat publishes a new listing in draft state. Requires a verified
// email and a complete profile.
func (bc *BoatController) CreateBoat(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := bc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "User not found")
		return
	}

	if !user.IsVerified {
		utils.SendError(c, http.StatusBadRequest, "You must verify your email before publishing")
		return
	}
	if !user.HasCompleteProfile() {
		utils.SendError(c, http.StatusBadRequest, "Complete your personal details and phone before publishing")
		return
	}

	var req BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if msg := validateBoatRequest(&req); msg != "" {
		utils.SendError(c, http.StatusBadRequest, msg)
		return
	}

	boat := models.Boat{
		ID:       uuid.New().String(),
		OwnerID:  user.ID,
		IsActive: true,
		Status:   models.BoatStatusDraft,
	}
	bc.applyRequest(&boat, &req)

	if err := bc.db.Create(&boat).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create boat")
		return
	}

	utils.SendCreated(c, "Boat created", boat)
}

func (bc *BoatController) ownedBoat(c *gin.Context) (*models.Boat, bool) {
	userID := c.GetString("user_id")

	var boat models.Boat
	if err := bc.db.First(&boat, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return nil, false
	}

	if boat.OwnerID != userID {
		utils.SendError(c, http.StatusForbidden, "You do not have permission to modify this boat")
		return nil, false
	}

	return &boat, true
}

// UpdateBoat replaces the listing's editable fields. The full payload is
// validated, same as on creation.
func (bc *BoatController) UpdateBoat(c *gin.Context) {
	boat, ok := bc.ownedBoat(c)
	if !ok {
		return
	}

	var req BoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if msg := validateBoatRequest(&req); msg != "" {
		utils.SendError(c, http.StatusBadRequest, msg)
		return
	}

	bc.applyRequest(boat, &req)

	if err := bc.db.Save(boat).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update boat")
		return
	}

	utils.SendSuccess(c, "Boat updated", boat)
}

func (bc *BoatController) DeleteBoat(c *gin.Context) {
	boat, ok := bc.ownedBoat(c)
	if !ok {
		return
	}

	if err := bc.db.Delete(boat).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to delete boat")
		return
	}

	utils.SendSuccess(c, "Boat deleted", nil)
}

type ToggleActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ToggleActive flips listing visibility independently of the review state.
func (bc *BoatController) ToggleActive(c *gin.Context) {
	boat, ok := bc.ownedBoat(c)
	if !ok {
		return
	}

	var req ToggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "is_active must be a boolean")
		return
	}

	if err := bc.db.Model(boat).Update("is_active", *req.IsActive).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update status")
		return
	}

	boat.IsActive = *req.IsActive
	utils.SendSuccess(c, "Status updated", boat)
}

// Submit sends a draft or rejected listing to the admin review queue.
func (bc *BoatController) Submit(c *gin.Context) {
	userID := c.GetString("user_id")

	boat, ok := bc.ownedBoat(c)
	if !ok {
		return
	}

	if !boat.CanSubmit() {
		utils.SendError(c, http.StatusBadRequest,
			fmt.Sprintf("Boat cannot be submitted from status %q", boat.Status))
		return
	}

	// A submission must be complete; re-validate the stored listing
	req := BoatRequest{
		Name:          boat.Name,
		RentalTypes:   boat.RentalTypes,
		BoatType:      boat.BoatType,
		Brand:         boat.Brand,
		Model:         boat.Model,
		BuildYear:     boat.BuildYear,
		Capacity:      boat.Capacity,
		EnginePower:   boat.EnginePower,
		Length:        boat.Length,
		ContactNumber: boat.ContactNumber,
		City:          boat.City,
		Description:   boat.Description,
		Price:         boat.Price,
		PriceUnit:     boat.PriceUnit,
		Photos:        boat.Photos,
		Latitude:      boat.Latitude,
		Longitude:     boat.Longitude,
	}
	if msg := validateBoatRequest(&req); msg != "" {
		utils.SendError(c, http.StatusBadRequest, msg)
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.BoatStatusPendingReview,
		"submitted_at": now,
	}
	if err := bc.db.Model(boat).Updates(updates).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to submit boat")
		return
	}

	audit := models.BoatAuditEntry{
		BoatID:  boat.ID,
		Action:  models.AuditActionSubmit,
		ActorID: &userID,
	}
	if err := bc.db.Create(&audit).Error; err != nil {
		fmt.Printf("Failed to record submit audit entry for boat %s: %v\n", boat.ID, err)
	}

	boat.Status = models.BoatStatusPendingReview
	boat.SubmittedAt = &now
	utils.SendSuccess(c, "Boat submitted for review", boat)
}

func parsePagination(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 50 {
		limit = 50
	}
	return page, limit
}

var boatSortColumns = map[string]string{
	"created_at": "created_at",
	"price":      "price",
	"name":       "name",
	"build_year": "build_year",
}

func parseSort(c *gin.Context) string {
	column, ok := boatSortColumns[c.DefaultQuery("sort", "created_at")]
	if !ok {
		column = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(c.DefaultQuery("order", "desc"), "asc") {
		order = "ASC"
	}
	return column + " " + order
}

// GetMyBoats lists the owner's listings regardless of review state.
func (bc *BoatController) GetMyBoats(c *gin.Context) {
	userID := c.GetString("user_id")
	page, limit := parsePagination(c, 10)

	filter := bc.db.Model(&models.Boat{}).Where("owner_id = ?", userID)

	var total int64
	if err := filter.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch boats")
		return
	}

	var boats []models.Boat
	if err := filter.Order(parseSort(c)).
		Offset((page - 1) * limit).Limit(limit).
		Find(&boats).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch boats")
		return
	}

	utils.SendPaginated(c, boats, page, limit, total)
}

// ListPublicBoats lists approved, active listings.
func (bc *BoatController) ListPublicBoats(c *gin.Context) {
	page, limit := parsePagination(c, 12)

	filter := bc.db.Model(&models.Boat{}).
		Where("status = ? AND is_active = ?", models.BoatStatusApproved, true)

	var total int64
	if err := filter.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch boats")
		return
	}

	var boats []models.Boat
	if err := filter.Order(parseSort(c)).
		Offset((page - 1) * limit).Limit(limit).
		Find(&boats).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch boats")
		return
	}

	utils.SendPaginated(c, boats, page, limit, total)
}

// GetBoatPublic serves the public detail view. Listings outside the public
// surface read as not found.
func (bc *BoatController) GetBoatPublic(c *gin.Context) {
	var boat models.Boat
	if err := bc.db.Preload("Audit").First(&boat, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}

	if !boat.IsPubliclyVisible() {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}

	utils.SendSuccess(c, "Boat retrieved", boat)
}

// GetBoatsNear returns approved, active listings whose location falls within
// the given north/south/east/west bounding box.
// GET /api/boats/near?north=&south=&east=&west=
func (bc *BoatController) GetBoatsNear(c *gin.Context) {
	north, errN := strconv.ParseFloat(c.Query("north"), 64)
	south, errS := strconv.ParseFloat(c.Query("south"), 64)
	east, errE := strconv.ParseFloat(c.Query("east"), 64)
	west, errW := strconv.ParseFloat(c.Query("west"), 64)
	if errN != nil || errS != nil || errE != nil || errW != nil {
		utils.SendError(c, http.StatusBadRequest, "north, south, east and west are required numeric parameters")
		return
	}

	if !utils.IsValidBoundingBox(north, south, east, west) {
		utils.SendError(c, http.StatusBadRequest, "Bounding box coordinates out of range")
		return
	}

	query := bc.db.Model(&models.Boat{}).
		Where("status = ? AND is_active = ?", models.BoatStatusApproved, true).
		Where("location_lat BETWEEN ? AND ?", south, north)

	// Boxes crossing the antimeridian wrap around
	if west <= east {
		query = query.Where("location_lng BETWEEN ? AND ?", west, east)
	} else {
		query = query.Where("location_lng >= ? OR location_lng <= ?", west, east)
	}

	var boats []models.Boat
	if err := query.Find(&boats).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to search boats")
		return
	}

	utils.SendSuccess(c, "Boats retrieved", boats)
}
