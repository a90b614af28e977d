// File: /controllers/validation_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sailshare-api/models"
	"sailshare-api/services"
	"sailshare-api/utils"
)

// ValidationController handles boating-license document submissions.
type ValidationController struct {
	db            *gorm.DB
	uploadService *services.UploadService
}

func NewValidationController(db *gorm.DB, uploadService *services.UploadService) *ValidationController {
	return &ValidationController{
		db:            db,
		uploadService: uploadService,
	}
}

// UploadLicense stores the license document and flags the request as pending.
// Submissions are single-flight: a new upload is rejected while an earlier
// one is pending or already approved.
// Expects multipart/form-data with field name "file".
func (vc *ValidationController) UploadLicense(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := vc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	switch user.LicenseStatus {
	case models.LicenseStatusPending:
		utils.SendError(c, http.StatusBadRequest, "Your document was already submitted and is pending review")
		return
	case models.LicenseStatusApproved:
		utils.SendError(c, http.StatusBadRequest, "Your license was already approved")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Missing file (field name: file)")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	isPDF := contentType == "application/pdf" || strings.EqualFold(filepath.Ext(fileHeader.Filename), ".pdf")
	if !isPDF && !strings.HasPrefix(contentType, "image/") {
		utils.SendError(c, http.StatusBadRequest, "License must be a PDF or an image")
		return
	}

	key := fmt.Sprintf("licenses/license_%s_%d%s", user.ID, time.Now().Unix(), filepath.Ext(fileHeader.Filename))
	result, err := vc.uploadService.Upload(c.Request.Context(), key, file, fileHeader.Size, contentType)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to upload license document")
		return
	}

	if err := vc.db.Model(&user).Updates(map[string]interface{}{
		"license_url":    result.URL,
		"license_status": models.LicenseStatusPending,
	}).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to record license submission")
		return
	}

	utils.SendSuccess(c, "License uploaded, pending review", gin.H{
		"license_url":    result.URL,
		"license_status": models.LicenseStatusPending,
	})
}
