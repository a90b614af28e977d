// File: /controllers/social_auth_controller.go
package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sailshare-api/models"
	"sailshare-api/services"
	"sailshare-api/utils"
)

type SocialAuthController struct {
	db            *gorm.DB
	jwtSecret     string
	uploadService *services.UploadService
}

func NewSocialAuthController(db *gorm.DB, jwtSecret string, uploadService *services.UploadService) *SocialAuthController {
	return &SocialAuthController{
		db:            db,
		jwtSecret:     jwtSecret,
		uploadService: uploadService,
	}
}

// =========================
// GOOGLE AUTHENTICATION
// =========================

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type GoogleUserInfo struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}

func (sac *SocialAuthController) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Verify Google ID token
	userInfo, err := sac.verifyGoogleToken(req.IDToken)
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid Google token")
		return
	}

	user, isNewUser, err := sac.findOrCreateSocialUser(
		userInfo.Email, userInfo.GivenName, userInfo.FamilyName,
		"google", userInfo.Sub, userInfo.Picture,
	)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to process user")
		return
	}

	token, err := signToken(sac.jwtSecret, user.ID, user.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"user":        user,
		"is_new_user": isNewUser,
	})
}

func (sac *SocialAuthController) verifyGoogleToken(idToken string) (*GoogleUserInfo, error) {
	resp, err := http.Get("https://www.googleapis.com/oauth2/v3/tokeninfo?id_token=" + idToken)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invalid token")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var userInfo GoogleUserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return nil, err
	}

	if userInfo.Email == "" {
		return nil, fmt.Errorf("token carries no email")
	}

	return &userInfo, nil
}

// =========================
// FACEBOOK AUTHENTICATION
// =========================

type FacebookLoginRequest struct {
	AccessToken string `json:"access_token" binding:"required"`
}

type FacebookUserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Picture   struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

func (sac *SocialAuthController) FacebookLogin(c *gin.Context) {
	var req FacebookLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	// Verify Facebook access token
	userInfo, err := sac.verifyFacebookToken(req.AccessToken)
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid Facebook token")
		return
	}

	user, isNewUser, err := sac.findOrCreateSocialUser(
		userInfo.Email, userInfo.FirstName, userInfo.LastName,
		"facebook", userInfo.ID, userInfo.Picture.Data.URL,
	)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to process user")
		return
	}

	token, err := signToken(sac.jwtSecret, user.ID, user.Email)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"token":       token,
		"user":        user,
		"is_new_user": isNewUser,
	})
}

func (sac *SocialAuthController) verifyFacebookToken(accessToken string) (*FacebookUserInfo, error) {
	resp, err := http.Get(fmt.Sprintf("https://graph.facebook.com/me?fields=id,first_name,last_name,email,picture&access_token=%s", accessToken))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invalid token")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var userInfo FacebookUserInfo
	if err := json.Unmarshal(body, &userInfo); err != nil {
		return nil, err
	}

	if userInfo.Email == "" {
		return nil, fmt.Errorf("token carries no email")
	}

	return &userInfo, nil
}

// =========================
// HELPER FUNCTIONS
// =========================

// findOrCreateSocialUser resolves an OAuth login to a user record by email.
// New accounts are created pre-verified. Existing accounts get the provider
// ID linked when missing.
func (sac *SocialAuthController) findOrCreateSocialUser(email, firstName, lastName, provider, providerID, photoURL string) (models.User, bool, error) {
	var user models.User
	isNewUser := false

	err := sac.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return user, false, err
		}

		user = models.User{
			ID:         uuid.New().String(),
			FirstName:  firstName,
			LastName:   lastName,
			Email:      email,
			Password:   uuid.New().String(), // random, never used for login
			IsVerified: true,                // provider already verified the email
			Role:       models.RoleUser,
			IsActive:   true,
		}
		sac.linkProvider(&user, provider, providerID)

		if err := sac.db.Create(&user).Error; err != nil {
			return user, false, err
		}
		isNewUser = true
	} else {
		// Link the provider ID on first social login of an existing account
		if sac.linkProvider(&user, provider, providerID) {
			sac.db.Save(&user)
		}
	}

	// Best-effort avatar import: a failure never blocks the login
	if user.Avatar == nil && photoURL != "" {
		sac.importAvatar(&user, photoURL)
	}

	return user, isNewUser, nil
}

func (sac *SocialAuthController) linkProvider(user *models.User, provider, providerID string) bool {
	switch provider {
	case "google":
		if user.GoogleID == nil {
			user.GoogleID = &providerID
			return true
		}
	case "facebook":
		if user.FacebookID == nil {
			user.FacebookID = &providerID
			return true
		}
	}
	return false
}

func (sac *SocialAuthController) importAvatar(user *models.User, photoURL string) {
	key := fmt.Sprintf("avatars/%s", user.ID)

	result, err := sac.uploadService.ImportRemoteImage(context.Background(), photoURL, key)
	if err != nil {
		fmt.Printf("Avatar import failed for %s, falling back to provider URL: %v\n", user.Email, err)
		// Fall back to the provider's raw photo URL
		user.Avatar = &photoURL
		sac.db.Model(user).Update("avatar", photoURL)
		return
	}

	user.Avatar = &result.URL
	user.AvatarKey = &result.Key
	sac.db.Model(user).Updates(map[string]interface{}{
		"avatar":     result.URL,
		"avatar_key": result.Key,
	})
}
