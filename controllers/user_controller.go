// File: /controllers/user_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sailshare-api/models"
	"sailshare-api/services"
	"sailshare-api/utils"
)

type UserController struct {
	db            *gorm.DB
	uploadService *services.UploadService
}

func NewUserController(db *gorm.DB, uploadService *services.UploadService) *UserController {
	return &UserController{
		db:            db,
		uploadService: uploadService,
	}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	user.Password = ""
	utils.SendSuccess(c, "Profile retrieved", user)
}

type UpdateProfileRequest struct {
	FirstName             *string `json:"first_name"`
	LastName              *string `json:"last_name"`
	Phone                 *string `json:"phone"`
	DNIOrLicense          *string `json:"dni_or_license"`
	ExperienceDeclaration *string `json:"experience_declaration"`
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			utils.SendError(c, http.StatusBadRequest, "first_name cannot be empty")
			return
		}
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if strings.TrimSpace(*req.LastName) == "" {
			utils.SendError(c, http.StatusBadRequest, "last_name cannot be empty")
			return
		}
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		if !utils.IsValidPhone(*req.Phone) {
			utils.SendError(c, http.StatusBadRequest, "Invalid phone number")
			return
		}
		updates["phone"] = *req.Phone
	}
	if req.DNIOrLicense != nil {
		updates["dni_or_license"] = strings.TrimSpace(*req.DNIOrLicense)
	}
	if req.ExperienceDeclaration != nil {
		updates["experience_declaration"] = strings.TrimSpace(*req.ExperienceDeclaration)
	}

	if len(updates) > 0 {
		if err := uc.db.Model(&user).Updates(updates).Error; err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update profile")
			return
		}
	}

	uc.db.First(&user, "id = ?", userID)
	user.Password = ""
	utils.SendSuccess(c, "Profile updated", user)
}

// UploadAvatar replaces the authenticated user's avatar in object storage.
// Expects multipart/form-data with field name "file".
func (uc *UserController) UploadAvatar(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := uc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
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
	if !strings.HasPrefix(contentType, "image/") {
		utils.SendError(c, http.StatusBadRequest, "Avatar must be an image")
		return
	}

	key := fmt.Sprintf("avatars/%s%s", user.ID, filepath.Ext(fileHeader.Filename))
	result, err := uc.uploadService.Upload(c.Request.Context(), key, file, fileHeader.Size, contentType)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to upload avatar")
		return
	}

	// Remove the previous object when the key changed
	if user.AvatarKey != nil && *user.AvatarKey != result.Key {
		if err := uc.uploadService.Remove(c.Request.Context(), *user.AvatarKey); err != nil {
			fmt.Printf("Failed to remove previous avatar %s: %v\n", *user.AvatarKey, err)
		}
	}

	if err := uc.db.Model(&user).Updates(map[string]interface{}{
		"avatar":     result.URL,
		"avatar_key": result.Key,
	}).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to save avatar")
		return
	}

	utils.SendSuccess(c, "Avatar updated", result)
}

// GetUserByID is the public profile view: identity and reputation only.
func (uc *UserController) GetUserByID(c *gin.Context) {
	var user models.User
	if err := uc.db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	utils.SendSuccess(c, "User retrieved", gin.H{
		"id":           user.ID,
		"first_name":   user.FirstName,
		"last_name":    user.LastName,
		"avatar":       user.Avatar,
		"rating":       user.Rating,
		"rating_count": user.RatingCount,
		"created_at":   user.CreatedAt,
	})
}
