package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Caixa/config"
	"Caixa/internal/domain/shared"
	appErrors "Caixa/internal/errors"
	"Caixa/internal/logger"
	"Caixa/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

const UserIDKey = "user_id"

type JwtService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	users      *shared.UserCheckerService
	now        func() time.Time
}

func NewJwtService(cfg config.JWTConfig, users shared.UserChecker) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("JWT_SECRET não configurado")
	}
	if cfg.Expiration <= 0 {
		return nil, errors.New("JWT_EXPIRATION deve ser positivo")
	}

	return &JwtService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.Expiration.Std(),
		issuer:     cfg.Issuer,
		users:      shared.NewUserCheckerService(users),
		now:        time.Now,
	}, nil
}

// GenerateToken emite um HS256 com o id do usuário em "sub".
func (j *JwtService) GenerateToken(userID ulid.ULID) (string, error) {
	now := j.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.expiration)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return token, nil
}

func (j *JwtService) ValidateToken(tokenString string) (ulid.ULID, error) {
	claims := &jwt.RegisteredClaims{}
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}
	if j.issuer != "" {
		options = append(options, jwt.WithIssuer(j.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return j.secret, nil
	}, options...)
	if err != nil {
		return ulid.ULID{}, appErrors.ErrTokenInvalid.WithError(err)
	}

	userID, err := pkg.ParseULID(claims.Subject)
	if err != nil {
		return ulid.ULID{}, appErrors.ErrTokenInvalid.WithError(err)
	}
	return userID, nil
}

// EnsureUser confirma que o dono do token ainda existe.
func (j *JwtService) EnsureUser(ctx context.Context, userID ulid.ULID) error {
	return j.users.EnsureUserExists(ctx, userID)
}

// AuthMiddleware exige "Authorization: Bearer <token>" e grava o id do
// usuário no contexto em UserIDKey.
func AuthMiddleware(j *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortWithError(c, appErrors.NewAuthError("UNAUTHORIZED", "Não autorizado, token não fornecido"))
			return
		}

		userID, err := j.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			abortWithError(c, appErrors.FromError(err))
			return
		}

		if err := j.EnsureUser(c.Request.Context(), userID); err != nil {
			if appErrors.HasCode(err, appErrors.ErrUserNotFound) {
				abortWithError(c, appErrors.NewAuthError("UNAUTHORIZED", "Não autorizado, usuário não encontrado"))
				return
			}
			logger.Error().Err(err).Str("user_id", userID.String()).Msg("falha ao verificar usuário do token")
			abortWithError(c, appErrors.FromError(err))
			return
		}

		c.Set(UserIDKey, userID.String())
		c.Next()
	}
}
