package dto

// Data Transfer Objects for authentication requests and responses

// LoginRequest: payload for creating a session
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenPairResponse: the data payload of login and refresh responses.
// The same tokens also travel in httpOnly cookies.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
