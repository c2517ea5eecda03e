package contracts

import (
	"Caixa/internal/domain/user"
)

type RegisterRequest struct {
	Name         string `json:"name" binding:"required,notblank,max=100"`
	Email        string `json:"email" binding:"required,email,max=100"`
	Password     string `json:"password" binding:"required,min=6,max=72"`
	CNPJ         string `json:"cnpj" binding:"omitempty,max=20"`
	BusinessType string `json:"businessType" binding:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthRequest struct {
	Credential string `json:"credential" binding:"required"`
}

type OAuthInitResponse struct {
	AuthURL string `json:"url"`
	State   string `json:"state"`
}

type OAuthCallbackRequest struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state" binding:"required"`
}

// AuthResponse é devolvido por cadastro e login, já com o token.
type AuthResponse struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	CNPJ         string `json:"cnpj"`
	BusinessType string `json:"businessType"`
	Token        string `json:"token"`
}

func NewAuthResponse(u *user.User, token string) AuthResponse {
	return AuthResponse{
		Id:           u.Id.String(),
		Name:         u.Name,
		Email:        u.Email,
		CNPJ:         u.CNPJ,
		BusinessType: u.BusinessType,
		Token:        token,
	}
}
