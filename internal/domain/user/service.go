package user

import (
	"context"
	"strings"

	appErrors "Caixa/internal/errors"
	"Caixa/internal/logger"
	"Caixa/internal/pkg"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// Create gera id e timestamps e grava o usuário com a senha já em hash.
func (s *Service) Create(ctx context.Context, user *User) error {
	user.Id = pkg.GenerateULIDObject()
	user.Name = strings.TrimSpace(user.Name)
	user.Email = NormalizeEmail(user.Email)
	user.CNPJ = strings.TrimSpace(user.CNPJ)
	user.BusinessType = strings.TrimSpace(user.BusinessType)

	now := pkg.SetTimestamps()
	user.CreatedAt = now
	user.UpdatedAt = now

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcryptCost)
	if err != nil {
		return appErrors.ErrInternalServer.WithError(err)
	}
	user.Password = string(hashedPassword)

	if err := s.Repository.Create(ctx, user); err != nil {
		return err
	}

	logger.Info().Str("user_id", user.Id.String()).Msg("usuário criado")
	return nil
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	user, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.Repository.GetByEmail(ctx, NormalizeEmail(email))
}

func (s *Service) Exists(ctx context.Context, userID ulid.ULID) error {
	_, err := s.GetByID(ctx, userID)
	return err
}

// EmailTaken informa se o email pertence a algum usuário.
func (s *Service) EmailTaken(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if appErrors.HasCode(err, appErrors.ErrUserNotFound) {
		return false, nil
	}
	return false, err
}

func (s *Service) UpdateProfile(ctx context.Context, userID ulid.ULID, patch ProfilePatch) (*User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "Nome não pode ser vazio")
		}
		user.Name = name
	}

	if patch.Email != nil {
		email := NormalizeEmail(*patch.Email)
		if email == "" {
			return nil, appErrors.NewValidationError("email", "Email inválido")
		}
		if email != user.Email {
			taken, err := s.EmailTaken(ctx, email)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, appErrors.ErrEmailInUse
			}
			user.Email = email
		}
	}

	if patch.CNPJ != nil {
		user.CNPJ = strings.TrimSpace(*patch.CNPJ)
	}
	if patch.BusinessType != nil {
		user.BusinessType = strings.TrimSpace(*patch.BusinessType)
	}

	user.UpdatedAt = pkg.SetTimestamps()
	if err := s.Repository.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type UserServiceAdapter struct {
	service *Service
}

func NewUserServiceAdapter(service *Service) *UserServiceAdapter {
	return &UserServiceAdapter{service: service}
}

func (a *UserServiceAdapter) Exists(ctx context.Context, userID ulid.ULID) error {
	return a.service.Exists(ctx, userID)
}
