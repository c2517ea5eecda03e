package expense

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

func (s *Service) Create(ctx context.Context, userID ulid.ULID, e *Expense) error {
	normalize(e)
	if err := validate(e); err != nil {
		return err
	}

	now := pkg.SetTimestamps()
	e.Id = pkg.GenerateULIDObject()
	e.UserId = userID
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Date.IsZero() {
		e.Date = now
	}
	e.Date = e.Date.UTC()

	if err := s.Repository.ForOwner(userID).Create(ctx, e); err != nil {
		return err
	}

	logger.Info().
		Str("user_id", userID.String()).
		Str("expense_id", e.Id.String()).
		Str("category", e.Category.String()).
		Msg("Despesa criada")

	events.Emit(ctx, s.Events, events.New(events.ExpenseCreated, userID, e.Id, e))
	return nil
}

func (s *Service) Update(ctx context.Context, userID, id ulid.ULID, patch Patch) (*Expense, error) {
	store := s.Repository.ForOwner(userID)

	current, err := store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(current)
	normalize(current)
	if err := validate(current); err != nil {
		return nil, err
	}
	current.UpdatedAt = pkg.SetTimestamps()

	if err := store.Update(ctx, current); err != nil {
		return nil, err
	}

	events.Emit(ctx, s.Events, events.New(events.ExpenseUpdated, userID, current.Id, current))
	return current, nil
}

func (s *Service) Delete(ctx context.Context, userID, id ulid.ULID) error {
	if err := s.Repository.ForOwner(userID).Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().
		Str("user_id", userID.String()).
		Str("expense_id", id.String()).
		Msg("Despesa removida")

	events.Emit(ctx, s.Events, events.New(events.ExpenseDeleted, userID, id, nil))
	return nil
}

func (s *Service) GetByID(ctx context.Context, userID, id ulid.ULID) (*Expense, error) {
	return s.Repository.ForOwner(userID).GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, userID ulid.ULID, filter Filter) ([]*Expense, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, appErrors.NewValidationError("category", "Categoria inválida")
	}
	if filter.HasPeriod() {
		if !pkg.ValidMonth(filter.Month) {
			return nil, appErrors.NewValidationError("month", "Mês deve estar entre 1 e 12")
		}
		if !pkg.ValidYear(filter.Year) {
			return nil, appErrors.NewValidationError("year", "Ano inválido")
		}
	}
	return s.Repository.ForOwner(userID).List(ctx, filter)
}

func normalize(e *Expense) {
	e.Description = strings.TrimSpace(e.Description)
	e.Notes = strings.TrimSpace(e.Notes)
}

func validate(e *Expense) error {
	if e.Description == "" {
		return appErrors.NewValidationError("description", "Descrição é obrigatória")
	}
	if e.Amount < 0 {
		return appErrors.NewValidationError("amount", "Valor não pode ser negativo")
	}
	if e.Category == "" {
		return appErrors.NewValidationError("category", "Categoria é obrigatória")
	}
	if !e.Category.IsValid() {
		return appErrors.NewValidationError("category", "Categoria inválida")
	}
	return nil
}
