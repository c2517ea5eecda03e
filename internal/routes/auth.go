package routes

import (
	"crypto/subtle"
	"net/http"

	"Caixa/internal/contracts"
	"Caixa/internal/domain/auth"
	"Caixa/internal/domain/user"
	appErrors "Caixa/internal/errors"

	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "caixa_oauth_state"

func (h *Handler) Registration(c *gin.Context) {
	var body contracts.RegisterRequest
	if !h.bindJSON(c, &body) {
		return
	}

	newUser := &user.User{
		Name:         body.Name,
		Email:        body.Email,
		Password:     body.Password,
		CNPJ:         body.CNPJ,
		BusinessType: body.BusinessType,
	}

	ctx := c.Request.Context()
	if err := h.AuthService.Register(ctx, newUser); err != nil {
		h.respondError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, newUser)
}

func (h *Handler) Authenticate(c *gin.Context) {
	var body contracts.LoginRequest
	if !h.bindJSON(c, &body) {
		return
	}

	ctx := c.Request.Context()
	u, err := h.AuthService.Login(ctx, auth.Login{Email: body.Email, Password: body.Password})
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, u)
}

func (h *Handler) GoogleAuth(c *gin.Context) {
	var body contracts.GoogleAuthRequest
	if !h.bindJSON(c, &body) {
		return
	}

	ctx := c.Request.Context()
	u, err := h.AuthService.GoogleLogin(ctx, body.Credential)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, u)
}

// GoogleAuthURL inicia o fluxo de redirecionamento e guarda o state em cookie.
func (h *Handler) GoogleAuthURL(c *gin.Context) {
	url, state, err := h.AuthService.GoogleAuthURL()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/api/auth/google", "", c.Request.TLS != nil, true)
	c.JSON(http.StatusOK, contracts.OAuthInitResponse{AuthURL: url, State: state})
}

func (h *Handler) GoogleCallback(c *gin.Context) {
	var body contracts.OAuthCallbackRequest
	if !h.bindJSON(c, &body) {
		return
	}

	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || subtle.ConstantTimeCompare([]byte(expected), []byte(body.State)) != 1 {
		h.respondError(c, appErrors.NewAuthError("OAUTH_STATE_INVALID", "Estado OAuth inválido ou expirado"))
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/api/auth/google", "", c.Request.TLS != nil, true)

	ctx := c.Request.Context()
	u, err := h.AuthService.GoogleCallback(ctx, body.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, u)
}

func (h *Handler) respondWithToken(c *gin.Context, status int, u *user.User) {
	token, err := h.JwtService.GenerateToken(u.Id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(status, contracts.NewAuthResponse(u, token))
}
