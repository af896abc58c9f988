package auth

import "time"

// User is an API principal. Login is anonymous: every login creates a fresh
// user with the uploader role, so there are no credentials to store.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Role      string    `gorm:"type:text;not null;default:'anonymous'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// RoleUploader is required by every upload/analysis/event endpoint.
const RoleUploader = "uploader"

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// TokenResponse represents the issued access token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// LoginResponse represents the login payload: the created user plus its token
type LoginResponse struct {
	UserID uint          `json:"id_usuario"`
	Role   string        `json:"rol"`
	Token  TokenResponse `json:"token"`
}
