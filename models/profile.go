package models

import "github.com/google/uuid"

// UserProfile is the identity document served to the profile area and
// held by the profile cache. It mirrors what the identity endpoint
// returns for the authenticated user.
type UserProfile struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	UserImg      string    `json:"user_img,omitempty"`
	Balance      float64   `json:"balance"`
	DivisionName string    `json:"division_name,omitempty"`
	DistrictName string    `json:"district_name,omitempty"`
	UpazilaName  string    `json:"upazila_name,omitempty"`
	ReferralCode string    `json:"referral_code,omitempty"`
	ReferredBy   string    `json:"referred_by,omitempty"`
}

// ToProfile builds the identity document for a user row.
func (u *User) ToProfile() *UserProfile {
	p := &UserProfile{
		ID:           u.ID,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         u.Role,
		Balance:      u.Balance,
		DivisionName: u.DivisionName,
		DistrictName: u.DistrictName,
		UpazilaName:  u.UpazilaName,
		ReferralCode: u.ReferralCode,
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.UserImg != nil {
		p.UserImg = *u.UserImg
	}
	if u.ReferredBy != nil {
		p.ReferredBy = u.ReferredBy.String()
	}
	return p
}

// SessionUser is the opaque session object the profile cache receives.
// The cache reads it and never mutates it.
type SessionUser struct {
	UserID      uuid.UUID `json:"user_id"`
	AccessToken string    `json:"access_token"`
	Role        string    `json:"role"`
}
