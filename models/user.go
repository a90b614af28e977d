// File: /models/user.go
package models

import (
	"time"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// License review statuses
const (
	LicenseStatusNone     = "none"
	LicenseStatusPending  = "pending"
	LicenseStatusApproved = "approved"
	LicenseStatusRejected = "rejected"
)

type User struct {
	ID        string `json:"id" gorm:"primaryKey;size:191"`
	FirstName string `json:"first_name" gorm:"not null;size:100"`
	LastName  string `json:"last_name" gorm:"not null;size:100"`
	Email     string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Phone     string `json:"phone" gorm:"size:50"`
	Password  string `json:"-" gorm:"not null;size:255"`

	DNIOrLicense          string `json:"dni_or_license" gorm:"size:100"`
	ExperienceDeclaration string `json:"experience_declaration" gorm:"size:1000"`

	Avatar    *string `json:"avatar" gorm:"size:500"`
	AvatarKey *string `json:"-" gorm:"size:255"` // object storage key, used for replacements

	IsVerified               bool       `json:"is_verified" gorm:"default:false"`
	VerificationToken        *string    `json:"-" gorm:"uniqueIndex;size:64"`
	VerificationTokenExpires *time.Time `json:"-"`
	IsActive                 bool       `json:"is_active" gorm:"default:true"`

	// OAuth provider IDs, unique across the system when present
	GoogleID   *string `json:"-" gorm:"uniqueIndex;size:191"`
	FacebookID *string `json:"-" gorm:"uniqueIndex;size:191"`

	Role string `json:"role" gorm:"default:'user';size:20"`

	// Reputation
	Rating      float64 `json:"rating" gorm:"default:0"`
	RatingCount int     `json:"rating_count" gorm:"default:0"`

	// Boating license review
	LicenseStatus string  `json:"license_status" gorm:"default:'none';size:20"`
	LicenseURL    *string `json:"license_url" gorm:"size:500"`

	Favorites []Boat `json:"-" gorm:"many2many:user_favorites"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsOAuth reports whether the account was created through a social provider.
func (u *User) IsOAuth() bool {
	return u.GoogleID != nil || u.FacebookID != nil
}

// HasCompleteProfile reports whether the user filled the fields required
// before publishing a listing.
func (u *User) HasCompleteProfile() bool {
	return u.FirstName != "" && u.LastName != "" && u.Phone != ""
}

// CanSubmitLicense enforces single-flight license submissions: a new upload
// is rejected while a previous one is pending or already approved.
func (u *User) CanSubmitLicense() bool {
	return u.LicenseStatus == LicenseStatusNone || u.LicenseStatus == LicenseStatusRejected
}
