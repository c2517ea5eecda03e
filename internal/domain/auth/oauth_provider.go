package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"Caixa/internal/domain/user"
	appErrors "Caixa/internal/errors"
)

type OAuthUserInfo struct {
	Email string
	Name  string
}

type OAuthProvider interface {
	VerifyToken(ctx context.Context, credential string) (*OAuthUserInfo, error)
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
}

func randomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// createUserFromOAuth cadastra quem entra pela primeira vez com o Google.
// A senha aleatória nunca é exposta, então o login por senha fica bloqueado.
func createUserFromOAuth(ctx context.Context, users *user.Service, info *OAuthUserInfo) (*user.User, error) {
	password, err := randomToken()
	if err != nil {
		return nil, err
	}

	name := info.Name
	if name == "" {
		name = "Usuário Google"
	}

	newUser := user.User{
		Name:     name,
		Email:    info.Email,
		Password: password,
	}

	if err := users.Create(ctx, &newUser); err != nil {
		return nil, err
	}

	return &newUser, nil
}

func GenerateState() (string, error) {
	return randomToken()
}
