package events

import (
	"context"
	"time"

	"Caixa/internal/logger"

	"github.com/oklog/ulid/v2"
)

type Type string

const (
	ExpenseCreated Type = "expense.created"
	ExpenseUpdated Type = "expense.updated"
	ExpenseDeleted Type = "expense.deleted"
	RevenueCreated Type = "revenue.created"
	RevenueUpdated Type = "revenue.updated"
	RevenueDeleted Type = "revenue.deleted"
)

// Event notifica consumidores externos sobre alterações em lançamentos.
// Nada é persistido: sem consumidor, o evento é descartado.
type Event struct {
	Type       Type        `json:"type"`
	UserID     ulid.ULID   `json:"userId"`
	RecordID   ulid.ULID   `json:"recordId"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload,omitempty"`
}

func New(typ Type, userID, recordID ulid.ULID, payload interface{}) Event {
	return Event{
		Type:       typ,
		UserID:     userID,
		RecordID:   recordID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

func (NoopPublisher) Close() error { return nil }

// Emit publica sem propagar falhas: o lançamento já foi gravado.
func Emit(ctx context.Context, p Publisher, event Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		logger.Warn().
			Err(err).
			Str("event", string(event.Type)).
			Str("record_id", event.RecordID.String()).
			Msg("Falha ao publicar evento")
	}
}
