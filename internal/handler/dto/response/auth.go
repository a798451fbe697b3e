package response

import (
	"hotelres/internal/usecase/commands"
)

type LoginResponse struct {
	UserID      int64  `json:"userId"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	AccessToken string `json:"accessToken"`
}

type MeResponse struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

func FromLoginResult(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID:      result.UserID,
		Email:       result.Email,
		Role:        result.Role.String(),
		AccessToken: result.AccessToken,
	}
}
