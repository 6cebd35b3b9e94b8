package response

import (
	"resource-desk/internal/usecase/commands"
	"resource-desk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID         int64   `json:"id"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Department *string `json:"department,omitempty"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func NewUserResponse(view *queries.AuthorizedUserView) (*UserResponse, error) {
	var u UserResponse
	if err := copier.Copy(&u, view); err != nil {
		return nil, err
	}
	return &u, nil
}

func NewLoginResponse(result *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.Token,
		TokenType:   "bearer",
		ExpiresIn:   result.ExpiresIn,
	}
}
