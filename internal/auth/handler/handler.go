package handler

import (
	"net/http"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/auth"
	"github.com/fekuna/secure-duka/internal/httpx"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth         *auth.Authenticator
	secureCookie bool
	logger       logger.ZapLogger
}

func NewAuthHandler(a *auth.Authenticator, secureCookie bool, log logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		auth:         a,
		secureCookie: secureCookie,
		logger:       log,
	}
}

// tokenRequest accepts the OAuth2 password form or a JSON body.
type tokenRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBind(&req); err != nil {
		httpx.Abort(c, http.StatusBadRequest, apperror.Code(apperror.ErrInvalidInput), "username and password are required")
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		h.logger.Warn("login failed", zap.String("username", req.Username), zap.String("client_ip", c.ClientIP()))
		c.Header("WWW-Authenticate", "Bearer")
		httpx.Error(c, h.logger, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token.AccessToken, int(token.ExpiresIn), "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, token)
}
