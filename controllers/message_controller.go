// File: /controllers/message_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sailshare-api/models"
	"sailshare-api/services"
	"sailshare-api/utils"
)

type MessageController struct {
	db           *gorm.DB
	emailService *services.EmailService
}

func NewMessageController(db *gorm.DB, emailService *services.EmailService) *MessageController {
	return &MessageController{db: db, emailService: emailService}
}

type ContactOwnerRequest struct {
	BoatID  string `json:"boat_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactOwner forwards an inquiry about a listing to its owner. The message
// is persisted first; the email relay is best effort and the delivery outcome
// is recorded on the message.
// POST /api/messages/contact-owner
func (mc *MessageController) ContactOwner(c *gin.Context) {
	var req ContactOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, "boat_id, name, email and message are required")
		return
	}
	boatID := req.BoatID

	if !utils.IsValidEmail(req.Email) {
		utils.SendError(c, http.StatusBadRequest, "Invalid email address")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		utils.SendError(c, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	var boat models.Boat
	if err := mc.db.First(&boat, "id = ?", boatID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}
	if !boat.IsPubliclyVisible() {
		utils.SendError(c, http.StatusNotFound, "Boat not found")
		return
	}

	var owner models.User
	if err := mc.db.First(&owner, "id = ?", boat.OwnerID).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	message := models.Message{
		ID:      uuid.New().String(),
		BoatID:  boat.ID,
		OwnerID: owner.ID,
		Name:    req.Name,
		Email:   req.Email,
		Body:    req.Message,
		Status:  models.MessageStatusSent,
	}
	if senderID := c.GetString("user_id"); senderID != "" {
		message.SenderID = &senderID
	}

	if err := mc.db.Create(&message).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	status := models.MessageStatusDelivered
	if err := mc.emailService.SendOwnerContactEmail(owner.Email, owner.FirstName, boat.Name, req.Name, req.Email, req.Message); err != nil {
		fmt.Printf("Failed to relay contact message %s to %s: %v\n", message.ID, owner.Email, err)
		status = models.MessageStatusFailed
	}
	if err := mc.db.Model(&message).Update("status", status).Error; err != nil {
		fmt.Printf("Failed to record delivery status for message %s: %v\n", message.ID, err)
	}
	message.Status = status

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Message sent to the owner",
		"message_id": message.ID,
		"status":     message.Status,
	})
}
