package infrastructure

import (
	"context"
	"errors"
	"time"

	"Caixa/internal/domain/shared"
	"Caixa/internal/domain/user"
	appErrors "Caixa/internal/errors"
	"Caixa/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

var _ user.Repository = (*UserRepository)(nil)

type userDB struct {
	Id           string    `gorm:"type:varchar(26);primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex:idx_users_email;not null"`
	Password     string    `gorm:"type:varchar(255);not null"`
	CNPJ         string    `gorm:"type:varchar(20);column:cnpj"`
	BusinessType string    `gorm:"type:varchar(100);column:business_type"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (userDB) TableName() string {
	return "users"
}

func toDomainUser(udb *userDB) (*user.User, error) {
	id, err := pkg.ParseULID(udb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &user.User{
		Id:           id,
		Name:         udb.Name,
		Email:        udb.Email,
		Password:     udb.Password,
		CNPJ:         udb.CNPJ,
		BusinessType: udb.BusinessType,
		CreatedAt:    udb.CreatedAt,
		UpdatedAt:    udb.UpdatedAt,
	}, nil
}

func toDBUser(u *user.User) *userDB {
	return &userDB{
		Id:           u.Id.String(),
		Name:         u.Name,
		Email:        u.Email,
		Password:     u.Password,
		CNPJ:         u.CNPJ,
		BusinessType: u.BusinessType,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	udb := toDBUser(u)
	if err := r.DB.WithContext(ctx).Table("users").Create(udb).Error; err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.ErrEmailAlreadyExists.WithError(err)
		}
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	udb := toDBUser(u)
	result := r.DB.WithContext(ctx).Table("users").Where("id = ?", udb.Id).Updates(map[string]interface{}{
		"name":          udb.Name,
		"email":         udb.Email,
		"password":      udb.Password,
		"cnpj":          udb.CNPJ,
		"business_type": udb.BusinessType,
		"updated_at":    udb.UpdatedAt,
	})
	if result.Error != nil {
		if shared.IsUniqueConstraintError(result.Error) {
			return appErrors.ErrEmailInUse.WithError(result.Error)
		}
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("id = ?", id.String()).First(&udb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainUser(&udb)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("email = ?", email).First(&udb).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return toDomainUser(&udb)
}
