// File: /controllers/favorite_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sailshare-api/models"
	"sailshare-api/utils"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

// GetFavorites lists the user's saved boats. Listings that have since left
// the public surface are filtered out.
func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	userID := c.GetString("user_id")

	var user models.User
	if err := fc.db.Preload("Favorites", "status = ? AND is_active = ?", models.BoatStatusApproved, true).
		First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": user.Favorites})
}

// ToggleFavorite adds the boat to the user's favorites, or removes it when
// already saved. Responds with the resulting state.
func (fc *FavoriteController) ToggleFavorite(c *gin.Context) {
	userID := c.GetString("user_id")
	boatID := c.Param("boatId")

	var user models.User
	if err := fc.db.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	var boat models.Boat
	if err := fc.db.First(&boat, "id = ?", boatID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}

	var count int64
	if err := fc.db.Table("user_favorites").
		Where("user_id = ? AND boat_id = ?", userID, boatID).
		Count(&count).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update favorites")
		return
	}

	// Delisted boats can still be removed, only additions require visibility
	if count == 0 && !boat.IsPubliclyVisible() {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}

	assoc := fc.db.Model(&user).Association("Favorites")
	if count > 0 {
		if err := assoc.Delete(&boat); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Failed to update favorites")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":   "Removed from favorites",
			"boat_id":   boatID,
			"favorited": false,
		})
		return
	}

	if err := assoc.Append(&boat); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to update favorites")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Added to favorites",
		"boat_id":   boatID,
		"favorited": true,
	})
}
