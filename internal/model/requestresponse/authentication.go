package requestresponse

import "medical-directory/internal/model"

// RegisterRequest : registration body
type RegisterRequest struct {
	FullName string `json:"fullName" example:"Mohamed Bensalem"`
	Email    string `json:"email" example:"a@x.com"`
	Phone    string `json:"phone" example:"0550000000"`
	Password string `json:"password" example:"secret1"`
}

// LoginRequest : either email or phone identifies the user
type LoginRequest struct {
	Email    string `json:"email,omitempty" example:"a@x.com"`
	Phone    string `json:"phone,omitempty" example:"0550000000"`
	Password string `json:"password" example:"secret1"`
}

// RefreshTokenRequest : body of refresh and logout
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// ChangePasswordRequest : body of PATCH /api/auth/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" example:"secret1"`
	NewPassword     string `json:"newPassword" example:"secret2"`
}

// AuthData : payload of register, login and refresh
type AuthData struct {
	User   *model.PublicUser `json:"user"`
	Tokens *model.TokensPair `json:"tokens"`
}

// ProfileData : payload of GET /api/auth/profile
type ProfileData struct {
	User *model.PublicUser `json:"user"`
}

// EmailAvailabilityData : payload of GET /api/auth/email-available
type EmailAvailabilityData struct {
	Available bool   `json:"available" example:"true"`
	Email     string `json:"email" example:"a@x.com"`
}

// PhoneAvailabilityData : payload of GET /api/auth/phone-available
type PhoneAvailabilityData struct {
	Available bool   `json:"available" example:"true"`
	Phone     string `json:"phone" example:"0550000000"`
}
