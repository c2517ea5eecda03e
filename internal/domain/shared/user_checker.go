package shared

import (
	"context"

	appErrors "Caixa/internal/errors"

	"github.com/oklog/ulid/v2"
)

type UserCheckerService struct {
	userService UserChecker
}

func NewUserCheckerService(userService UserChecker) *UserCheckerService {
	return &UserCheckerService{userService: userService}
}

func (s *UserCheckerService) EnsureUserExists(ctx context.Context, userID ulid.ULID) error {
	if s.userService == nil {
		return appErrors.ErrInternalServer
	}

	if err := s.userService.Exists(ctx, userID); err != nil {
		if appErrors.HasCode(err, appErrors.ErrUserNotFound) {
			return appErrors.ErrUserNotFound.WithError(err)
		}
		return err
	}

	return nil
}
