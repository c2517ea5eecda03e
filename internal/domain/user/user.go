package user

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type User struct {
	Id           ulid.ULID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	CNPJ         string    `json:"cnpj"`
	BusinessType string    `json:"businessType"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProfilePatch contém apenas os campos enviados pelo cliente.
type ProfilePatch struct {
	Name         *string
	Email        *string
	CNPJ         *string
	BusinessType *string
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
