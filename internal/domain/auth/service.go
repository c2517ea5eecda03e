package auth

import (
	"context"
	"strings"
	"unicode/utf8"

	"Caixa/internal/domain/user"
	appErrors "Caixa/internal/errors"
	"Caixa/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Users  *user.Service
	Google OAuthProvider
}

// NewService aceita google nil quando o login social está desligado.
func NewService(users *user.Service, google OAuthProvider) *Service {
	return &Service{
		Users:  users,
		Google: google,
	}
}

func (s *Service) Register(ctx context.Context, newUser *user.User) error {
	if strings.TrimSpace(newUser.Name) == "" {
		return appErrors.NewValidationError("name", "Nome é obrigatório")
	}
	if user.NormalizeEmail(newUser.Email) == "" {
		return appErrors.NewValidationError("email", "Email inválido")
	}
	if err := PasswordRequirements(newUser.Password); err != nil {
		return err
	}

	taken, err := s.Users.EmailTaken(ctx, newUser.Email)
	if err != nil {
		return err
	}
	if taken {
		return appErrors.ErrEmailAlreadyExists
	}

	return s.Users.Create(ctx, newUser)
}

func (s *Service) Login(ctx context.Context, login Login) (*user.User, error) {
	entity, err := s.Users.GetByEmail(ctx, login.Email)
	if err != nil {
		if appErrors.HasCode(err, appErrors.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := PasswordValidate(login.Password, entity.Password); err != nil {
		return nil, err
	}
	return entity, nil
}

// GoogleLogin valida o ID token do Google e devolve o usuário, criando-o no
// primeiro acesso.
func (s *Service) GoogleLogin(ctx context.Context, credential string) (*user.User, error) {
	if s.Google == nil {
		return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth não está configurado. Configure GOOGLE_OAUTH_CLIENT_ID e GOOGLE_OAUTH_ENABLED=true")
	}
	if credential == "" {
		return nil, appErrors.NewAuthError("CREDENTIAL_MISSING", "Credencial do Google não fornecida")
	}

	info, err := s.Google.VerifyToken(ctx, credential)
	if err != nil {
		return nil, err
	}

	entity, err := s.Users.GetByEmail(ctx, info.Email)
	if err == nil {
		return entity, nil
	}
	if !appErrors.HasCode(err, appErrors.ErrUserNotFound) {
		return nil, err
	}

	created, err := createUserFromOAuth(ctx, s.Users, info)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("user_id", created.Id.String()).Msg("usuário criado via Google")
	return created, nil
}

// GoogleAuthURL monta a URL do fluxo por código e o state que o cliente deve devolver.
func (s *Service) GoogleAuthURL() (string, string, error) {
	if s.Google == nil {
		return "", "", appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth não está configurado")
	}
	state, err := GenerateState()
	if err != nil {
		return "", "", err
	}
	url := s.Google.GetAuthURL(state)
	if url == "" {
		return "", "", appErrors.NewAuthError("OAUTH_CONFIG_INCOMPLETE", "Configuração OAuth incompleta para fluxo de código")
	}
	return url, state, nil
}

func (s *Service) GoogleCallback(ctx context.Context, code string) (*user.User, error) {
	if s.Google == nil {
		return nil, appErrors.NewAuthError("OAUTH_NOT_CONFIGURED", "Google OAuth não está configurado")
	}
	if code == "" {
		return nil, appErrors.NewValidationError("code", "Código de autorização não fornecido")
	}

	idToken, err := s.Google.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.GoogleLogin(ctx, idToken)
}

func PasswordRequirements(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return appErrors.NewValidationError("password", "Senha deve ter no mínimo 6 caracteres")
	}
	return nil
}

func PasswordValidate(inputPassword string, storedPassword string) error {
	if inputPassword == "" {
		return appErrors.NewValidationError("password", "Senha é obrigatória")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(inputPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}
