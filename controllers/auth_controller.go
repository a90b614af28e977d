// File: /controllers/auth_controller.go
package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sailshare-api/models"
	"sailshare-api/services"
	"sailshare-api/utils"
)

// How long an emailed verification link stays valid.
const verificationTokenTTL = 24 * time.Hour

type AuthController struct {
	db           *gorm.DB
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(db *gorm.DB, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		db:           db,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	FirstName             string `json:"first_name" binding:"required"`
	LastName              string `json:"last_name" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	Phone                 string `json:"phone" binding:"required"`
	Password              string `json:"password" binding:"required,min=6"`
	DNIOrLicense          string `json:"dni_or_license"`
	ExperienceDeclaration string `json:"experience_declaration"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if !utils.IsValidPhone(req.Phone) {
		utils.SendError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	// Check if user already exists
	var existingUser models.User
	if err := ac.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		utils.SendError(c, http.StatusBadRequest, "Email already registered")
		return
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	token := generateVerificationToken()
	expires := time.Now().Add(verificationTokenTTL)

	user := models.User{
		ID:                       uuid.New().String(),
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		Email:                    req.Email,
		Phone:                    req.Phone,
		Password:                 string(hashedPassword),
		DNIOrLicense:             req.DNIOrLicense,
		ExperienceDeclaration:    req.ExperienceDeclaration,
		IsVerified:               false,
		VerificationToken:        &token,
		VerificationTokenExpires: &expires,
		Role:                     models.RoleUser,
		LicenseStatus:            models.LicenseStatusNone,
		IsActive:                 true,
	}

	if err := ac.db.Create(&user).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	// Email dispatch is best-effort, registration succeeds either way
	if err := ac.emailService.SendVerificationEmail(user.Email, user.FirstName, token); err != nil {
		fmt.Printf("Failed to send verification email to %s: %v\n", user.Email, err)
	}

	user.Password = ""
	utils.SendCreated(c, "Registration successful! Please check your email to verify your account.", user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Find user
	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// OAuth accounts are pre-verified; everyone else must confirm their email
	if !user.IsVerified && !user.IsOAuth() {
		utils.SendErrorCode(c, http.StatusUnauthorized, "EMAIL_NOT_VERIFIED",
			"Please verify your email before logging in")
		return
	}

	token, err := signToken(ac.jwtSecret, user.ID, user.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  user,
	})
}

// VerifyEmail consumes the emailed verification token.
// GET /api/auth/verify-email?token=
func (ac *AuthController) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.SendError(c, http.StatusBadRequest, "Verification token required")
		return
	}

	var user models.User
	if err := ac.db.Where("verification_token = ?", token).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid verification token")
		return
	}

	if user.VerificationTokenExpires == nil || time.Now().After(*user.VerificationTokenExpires) {
		utils.SendError(c, http.StatusBadRequest, "Verification token expired. Please request a new one.")
		return
	}

	updates := map[string]interface{}{
		"is_verified":                true,
		"verification_token":         nil,
		"verification_token_expires": nil,
	}
	if err := ac.db.Model(&user).Updates(updates).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to verify email")
		return
	}

	utils.SendSuccess(c, "Email verified successfully", nil)
}

type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResendVerification regenerates the token and re-sends the email.
func (ac *AuthController) ResendVerification(c *gin.Context) {
	var req ResendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	if user.IsVerified {
		utils.SendError(c, http.StatusBadRequest, "Email already verified")
		return
	}

	token := generateVerificationToken()
	expires := time.Now().Add(verificationTokenTTL)

	updates := map[string]interface{}{
		"verification_token":         token,
		"verification_token_expires": expires,
	}
	if err := ac.db.Model(&user).Updates(updates).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to regenerate verification token")
		return
	}

	if err := ac.emailService.SendVerificationEmail(user.Email, user.FirstName, token); err != nil {
		fmt.Printf("Failed to resend verification email to %s: %v\n", user.Email, err)
	}

	utils.SendSuccess(c, "Verification email sent", nil)
}

func (ac *AuthController) Logout(c *gin.Context) {
	// Stateless JWT, logout is handled client-side
	utils.SendSuccess(c, "Successfully logged out", nil)
}

// Helper functions

func signToken(jwtSecret, userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func generateVerificationToken() string {
	b := make([]byte, 24)
	rand.Read(b)
	return hex.EncodeToString(b)
}
