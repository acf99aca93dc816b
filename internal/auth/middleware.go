package auth

import (
	"net/http"
	"strings"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/httpx"
	"github.com/gin-gonic/gin"
)

// CookieName carries the token for browser clients such as the dashboard.
const CookieName = "token"

// Middleware requires a valid token in the Authorization header or the
// token cookie. Failing requests are aborted with 401 before any handler runs.
func Middleware(a *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject, err := a.Verify(tokenFromRequest(c))
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			httpx.Abort(c, http.StatusUnauthorized, apperror.Code(apperror.ErrUnauthorized), "could not validate credentials")
			return
		}

		c.Set(ginKeySubject, subject)
		c.Request = c.Request.WithContext(WithSubject(c.Request.Context(), subject))
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		scheme, token, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "bearer") {
			return strings.TrimSpace(token)
		}
		return ""
	}
	token, _ := c.Cookie(CookieName)
	return token
}
