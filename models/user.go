package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles a storefront account can hold.
const (
	RoleBuyer     = "buyer"
	RoleShopOwner = "shop_owner"
)

type User struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Phone         string     `json:"phone" gorm:"type:varchar(50);uniqueIndex;not null"`
	Email         *string    `json:"email,omitempty" gorm:"type:varchar(255);uniqueIndex:idx_users_email,where:email IS NOT NULL"`
	Name          string     `json:"name" gorm:"type:varchar(255);not null"`
	PasswordHash  string     `json:"-" gorm:"column:password_hash;type:text;not null"`
	Role          string     `json:"role" gorm:"type:varchar(50);default:'buyer';index"`
	Status        string     `json:"status" gorm:"type:varchar(50);default:'active';index"`
	PhoneVerified bool       `json:"phoneVerified" gorm:"column:phone_verified;default:false"`
	UserImg       *string    `json:"user_img,omitempty" gorm:"column:user_img;type:text"`
	Balance       float64    `json:"balance" gorm:"default:0"`
	DivisionName  string     `json:"division_name" gorm:"type:varchar(100)"`
	DistrictName  string     `json:"district_name" gorm:"type:varchar(100)"`
	UpazilaName   string     `json:"upazila_name" gorm:"type:varchar(100)"`
	ReferralCode  string     `json:"referral_code" gorm:"type:varchar(20);uniqueIndex"`
	ReferredBy    *uuid.UUID `json:"referred_by,omitempty" gorm:"type:uuid"`
	CreatedAt     time.Time  `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Phone         string    `json:"phone"`
	Email         *string   `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	PhoneVerified bool      `json:"phone_verified"`
	UserImg       *string   `json:"user_img,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Phone:         u.Phone,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		PhoneVerified: u.PhoneVerified,
		UserImg:       u.UserImg,
		CreatedAt:     u.CreatedAt,
	}
}

// AuthResponse is returned after successful authentication
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// RegisterRequest for account creation
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     string  `json:"role" binding:"omitempty,oneof=buyer shop_owner"`
}

// LoginRequest for phone + password login
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// OTPRequest asks for a one-time code to be sent to a phone
type OTPRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// OTPVerifyRequest exchanges a one-time code for a session token
type OTPVerifyRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required,len=6"`
}

// UpdateProfileRequest for profile edits (all fields optional)
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email" binding:"omitempty,email"`
	DivisionName *string `json:"division_name"`
	DistrictName *string `json:"district_name"`
	UpazilaName  *string `json:"upazila_name"`
}
