package revenue

import (
	"context"
	"strings"

	appErrors "Caixa/internal/errors"
	"Caixa/internal/events"
	"Caixa/internal/logger"
	"Caixa/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
	Events     events.Publisher
}

func NewService(repo Repository, publisher events.Publisher) *Service {
	return &Service{
		Repository: repo,
		Events:     publisher,
	}
}

func (s *Service) Create(ctx context.Context, userID ulid.ULID, r *Revenue) error {
	r.Description = strings.TrimSpace(r.Description)
	r.Notes = strings.TrimSpace(r.Notes)
	if err := validateRevenue(r); err != nil {
		return err
	}

	now := pkg.SetTimestamps()
	r.Id = pkg.GenerateULIDObject()
	r.UserId = userID
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.Date.IsZero() {
		r.Date = now
	}
	r.Date = r.Date.UTC()

	if err := s.Repository.ForOwner(userID).Create(ctx, r); err != nil {
		return err
	}

	logger.Info().
		Str("user_id", userID.String()).
		Str("revenue_id", r.Id.String()).
		Str("category", r.Category.String()).
		Msg("Receita criada")

	events.Emit(ctx, s.Events, events.New(events.RevenueCreated, userID, r.Id, r))
	return nil
}

func (s *Service) Update(ctx context.Context, userID, id ulid.ULID, patch Patch) (*Revenue, error) {
	store := s.Repository.ForOwner(userID)

	current, err := store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(current)
	current.Description = strings.TrimSpace(current.Description)
	current.Notes = strings.TrimSpace(current.Notes)
	if err := validateRevenue(current); err != nil {
		return nil, err
	}
	current.UpdatedAt = pkg.SetTimestamps()

	if err := store.Update(ctx, current); err != nil {
		return nil, err
	}

	events.Emit(ctx, s.Events, events.New(events.RevenueUpdated, userID, current.Id, current))
	return current, nil
}

func (s *Service) Delete(ctx context.Context, userID, id ulid.ULID) error {
	if err := s.Repository.ForOwner(userID).Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().
		Str("user_id", userID.String()).
		Str("revenue_id", id.String()).
		Msg("Receita removida")

	events.Emit(ctx, s.Events, events.New(events.RevenueDeleted, userID, id, nil))
	return nil
}

func (s *Service) GetByID(ctx context.Context, userID, id ulid.ULID) (*Revenue, error) {
	return s.Repository.ForOwner(userID).GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, userID ulid.ULID, filter Filter) ([]*Revenue, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, appErrors.NewValidationError("category", "Categoria inválida")
	}
	if filter.HasPeriod() && (!pkg.ValidMonth(filter.Month) || !pkg.ValidYear(filter.Year)) {
		return nil, appErrors.NewValidationError("month", "Período inválido")
	}
	return s.Repository.ForOwner(userID).List(ctx, filter)
}

func validateRevenue(r *Revenue) error {
	switch {
	case r.Description == "":
		return appErrors.NewValidationError("description", "Descrição é obrigatória")
	case r.Amount < 0:
		return appErrors.NewValidationError("amount", "Valor não pode ser negativo")
	case r.Category == "":
		return appErrors.NewValidationError("category", "Categoria é obrigatória")
	case !r.Category.IsValid():
		return appErrors.NewValidationError("category", "Categoria inválida")
	}
	return nil
}
