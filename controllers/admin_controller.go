// File: /controllers/admin_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sailshare-api/models"
	"sailshare-api/utils"
)

type AdminController struct {
	db *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

type licenseQueueEntry struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	LicenseStatus string `json:"license_status"`
	LicenseURL    string `json:"license_url"`
}

// GetLicenseQueue lists users with a pending license document.
func (ac *AdminController) GetLicenseQueue(c *gin.Context) {
	var entries []licenseQueueEntry
	err := ac.db.Model(&models.User{}).
		Select("id", "first_name", "last_name", "email", "license_status", "license_url").
		Where("license_status = ?", models.LicenseStatusPending).
		Order("updated_at ASC").
		Scan(&entries).Error
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch license queue")
		return
	}

	utils.SendSuccess(c, "License queue retrieved", entries)
}

func (ac *AdminController) pendingLicenseUser(c *gin.Context) (*models.User, bool) {
	var user models.User
	if err := ac.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return nil, false
	}

	if user.LicenseStatus != models.LicenseStatusPending {
		utils.SendError(c, http.StatusBadRequest,
			fmt.Sprintf("License is not pending review (status %q)", user.LicenseStatus))
		return nil, false
	}

	return &user, true
}

// ApproveLicense marks a pending license document as approved.
func (ac *AdminController) ApproveLicense(c *gin.Context) {
	user, ok := ac.pendingLicenseUser(c)
	if !ok {
		return
	}

	if err := ac.db.Model(user).Update("license_status", models.LicenseStatusApproved).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to approve license")
		return
	}

	user.LicenseStatus = models.LicenseStatusApproved
	utils.SendSuccess(c, "License approved", user)
}

type RejectRequest struct {
	Notes string `json:"notes"`
}

// RejectLicense marks a pending license document as rejected. The user can
// upload a new document afterwards.
func (ac *AdminController) RejectLicense(c *gin.Context) {
	user, ok := ac.pendingLicenseUser(c)
	if !ok {
		return
	}

	if err := ac.db.Model(user).Update("license_status", models.LicenseStatusRejected).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to reject license")
		return
	}

	user.LicenseStatus = models.LicenseStatusRejected
	utils.SendSuccess(c, "License rejected", user)
}

// GetPendingBoats lists listings waiting for review, oldest submission first.
func (ac *AdminController) GetPendingBoats(c *gin.Context) {
	page, limit := parsePagination(c, 20)

	filter := ac.db.Model(&models.Boat{}).
		Where("status = ?", models.BoatStatusPendingReview)

	var total int64
	if err := filter.Count(&total).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch review queue")
		return
	}

	var boats []models.Boat
	if err := filter.Order("submitted_at ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&boats).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch review queue")
		return
	}

	utils.SendPaginated(c, boats, page, limit, total)
}

func (ac *AdminController) reviewBoat(c *gin.Context, status, action string) {
	adminID := c.GetString("user_id")

	var boat models.Boat
	if err := ac.db.First(&boat, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}

	if !boat.CanReview() {
		utils.SendError(c, http.StatusBadRequest,
			fmt.Sprintf("Boat is not pending review (status %q)", boat.Status))
		return
	}

	var req RejectRequest
	_ = c.ShouldBindJSON(&req)

	now := time.Now()
	updates := map[string]interface{}{
		"status":       status,
		"reviewed_at":  now,
		"reviewed_by":  adminID,
		"review_notes": req.Notes,
	}

	err := ac.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&boat).Updates(updates).Error; err != nil {
			return err
		}
		audit := models.BoatAuditEntry{
			BoatID:  boat.ID,
			Action:  action,
			ActorID: &adminID,
			Notes:   req.Notes,
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update boat")
		return
	}

	boat.Status = status
	boat.ReviewedAt = &now
	boat.ReviewedBy = &adminID
	boat.ReviewNotes = req.Notes
	utils.SendSuccess(c, fmt.Sprintf("Boat %s", status), boat)
}

// ApproveBoat publishes a pending listing.
func (ac *AdminController) ApproveBoat(c *gin.Context) {
	ac.reviewBoat(c, models.BoatStatusApproved, models.AuditActionApprove)
}

// RejectBoat sends a pending listing back to its owner with review notes.
func (ac *AdminController) RejectBoat(c *gin.Context) {
	ac.reviewBoat(c, models.BoatStatusRejected, models.AuditActionReject)
}
