package user_test

import (
	"context"
	"errors"
	"testing"

	"Caixa/internal/domain/user"
	appErrors "Caixa/internal/errors"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	byID     map[ulid.ULID]*user.User
	updateFn func(ctx context.Context, u *user.User) error
}

func newFakeUserRepository(users ...*user.User) *fakeUserRepository {
	repo := &fakeUserRepository{byID: make(map[ulid.ULID]*user.User)}
	for _, u := range users {
		repo.byID[u.Id] = u
	}
	return repo
}

func (f *fakeUserRepository) Create(_ context.Context, u *user.User) error {
	f.byID[u.Id] = u
	return nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	f.byID[u.Id] = u
	return nil
}

func (f *fakeUserRepository) GetByID(_ context.Context, id ulid.ULID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, appErrors.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepository) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, appErrors.ErrUserNotFound
}

func strPtr(s string) *string { return &s }

func TestService_Create_HashesPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepository()
	svc := user.NewService(repo)

	u := &user.User{Name: " Padaria Central ", Email: " Contato@Padaria.com ", Password: "segredo1"}
	if err := svc.Create(context.Background(), u); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if u.Id == (ulid.ULID{}) {
		t.Fatalf("id não gerado")
	}
	if u.Email != "contato@padaria.com" || u.Name != "Padaria Central" {
		t.Fatalf("dados não normalizados: %+v", u)
	}
	if u.Password == "segredo1" {
		t.Fatalf("senha gravada em texto puro")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("segredo1")); err != nil {
		t.Fatalf("hash não confere: %v", err)
	}
	if cost, _ := bcrypt.Cost([]byte(u.Password)); cost != 12 {
		t.Fatalf("custo bcrypt inesperado: %d", cost)
	}
}

func TestService_UpdateProfile(t *testing.T) {
	t.Parallel()

	owner := &user.User{Id: ulid.Make(), Name: "Loja", Email: "loja@exemplo.com"}
	other := &user.User{Id: ulid.Make(), Name: "Outra", Email: "outra@exemplo.com"}

	tests := []struct {
		name     string
		patch    user.ProfilePatch
		wantCode *appErrors.AppError
		check    func(t *testing.T, got *user.User)
	}{
		{
			name:  "atualiza campos opcionais",
			patch: user.ProfilePatch{CNPJ: strPtr("12.345.678/0001-90"), BusinessType: strPtr("varejo")},
			check: func(t *testing.T, got *user.User) {
				if got.CNPJ != "12.345.678/0001-90" || got.BusinessType != "varejo" || got.Name != "Loja" {
					t.Fatalf("perfil inesperado: %+v", got)
				}
			},
		},
		{
			name:     "nome vazio",
			patch:    user.ProfilePatch{Name: strPtr("   ")},
			wantCode: appErrors.ErrValidation,
		},
		{
			name:     "email de outro usuário",
			patch:    user.ProfilePatch{Email: strPtr("OUTRA@exemplo.com")},
			wantCode: appErrors.ErrEmailInUse,
		},
		{
			name:  "mesmo email não conflita",
			patch: user.ProfilePatch{Email: strPtr("loja@exemplo.com"), Name: strPtr("Loja Nova")},
			check: func(t *testing.T, got *user.User) {
				if got.Name != "Loja Nova" || got.Email != "loja@exemplo.com" {
					t.Fatalf("perfil inesperado: %+v", got)
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ownerCopy, otherCopy := *owner, *other
			svc := user.NewService(newFakeUserRepository(&ownerCopy, &otherCopy))

			got, err := svc.UpdateProfile(context.Background(), owner.Id, tt.patch)
			if tt.wantCode != nil {
				if !appErrors.HasCode(err, tt.wantCode) {
					t.Fatalf("esperava %s, obtido %v", tt.wantCode.Code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestService_UpdateProfile_PropagatesStoreError(t *testing.T) {
	t.Parallel()

	owner := &user.User{Id: ulid.Make(), Name: "Loja", Email: "loja@exemplo.com"}
	repo := newFakeUserRepository(owner)
	repo.updateFn = func(context.Context, *user.User) error {
		return appErrors.NewDatabaseError(errors.New("falha"))
	}
	svc := user.NewService(repo)

	_, err := svc.UpdateProfile(context.Background(), owner.Id, user.ProfilePatch{Name: strPtr("Nova")})
	if !appErrors.HasCode(err, appErrors.ErrDatabase) {
		t.Fatalf("esperava DATABASE_ERROR, obtido %v", err)
	}
}

func TestService_EmailTaken(t *testing.T) {
	t.Parallel()

	svc := user.NewService(newFakeUserRepository(&user.User{Id: ulid.Make(), Email: "a@b.com"}))

	taken, err := svc.EmailTaken(context.Background(), " A@B.com")
	if err != nil || !taken {
		t.Fatalf("esperava email em uso: %v %v", taken, err)
	}
	taken, err = svc.EmailTaken(context.Background(), "livre@b.com")
	if err != nil || taken {
		t.Fatalf("esperava email livre: %v %v", taken, err)
	}
}
