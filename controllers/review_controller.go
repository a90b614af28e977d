// File: /controllers/review_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sailshare-api/models"
	"sailshare-api/utils"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

type CreateReviewRequest struct {
	BoatID  string `json:"boat_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// CreateReview posts a rating on a publicly visible boat and folds it into
// the owner's running average.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !utils.IsValidRating(req.Rating) {
		utils.SendError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	var boat models.Boat
	if err := rc.db.First(&boat, "id = ?", req.BoatID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}
	if !boat.IsPubliclyVisible() {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}

	review := models.Review{
		ID:      uuid.New().String(),
		BoatID:  boat.ID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	err := rc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var owner models.User
		if err := tx.First(&owner, "id = ?", boat.OwnerID).Error; err != nil {
			return err
		}

		newCount := owner.RatingCount + 1
		newRating := (owner.Rating*float64(owner.RatingCount) + float64(req.Rating)) / float64(newCount)
		return tx.Model(&owner).Updates(map[string]interface{}{
			"rating":       newRating,
			"rating_count": newCount,
		}).Error
	})
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create review")
		return
	}

	utils.SendCreated(c, "Review created", review)
}

type myReviewView struct {
	models.Review
	BoatName string `json:"boat_name"`
}

// GetMyReviews lists the reviews the authenticated user has written.
func (rc *ReviewController) GetMyReviews(c *gin.Context) {
	userID := c.GetString("user_id")

	var reviews []models.Review
	if err := rc.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	names := map[string]string{}
	if len(reviews) > 0 {
		boatIDs := make([]string, 0, len(reviews))
		for _, r := range reviews {
			boatIDs = append(boatIDs, r.BoatID)
		}
		var boats []models.Boat
		if err := rc.db.Select("id, name").Where("id IN ?", boatIDs).Find(&boats).Error; err == nil {
			for _, b := range boats {
				names[b.ID] = b.Name
			}
		}
	}

	views := make([]myReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, myReviewView{Review: r, BoatName: names[r.BoatID]})
	}

	utils.SendSuccess(c, "Reviews retrieved", views)
}

// GetBoatReviews lists a boat's reviews, newest first, with reviewer names.
func (rc *ReviewController) GetBoatReviews(c *gin.Context) {
	boatID := c.Param("boatId")

	var reviews []models.Review
	if err := rc.db.Where("boat_id = ?", boatID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	type reviewerInfo struct {
		Name   string  `json:"name"`
		Avatar *string `json:"avatar"`
	}
	type boatReviewView struct {
		models.Review
		Reviewer reviewerInfo `json:"reviewer"`
	}

	reviewers := map[string]reviewerInfo{}
	if len(reviews) > 0 {
		userIDs := make([]string, 0, len(reviews))
		for _, r := range reviews {
			userIDs = append(userIDs, r.UserID)
		}
		var users []models.User
		if err := rc.db.Select("id, first_name, last_name, avatar").
			Where("id IN ?", userIDs).Find(&users).Error; err == nil {
			for _, u := range users {
				reviewers[u.ID] = reviewerInfo{Name: u.FirstName + " " + u.LastName, Avatar: u.Avatar}
			}
		}
	}

	views := make([]boatReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, boatReviewView{Review: r, Reviewer: reviewers[r.UserID]})
	}

	utils.SendSuccess(c, "Reviews retrieved", views)
}
