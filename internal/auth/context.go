package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type ctxKey int

const ctxKeySubject ctxKey = iota

// ginKeySubject is where Middleware stores the authenticated username.
const ginKeySubject = "auth_subject"

func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ctxKeySubject, subject)
}

// SubjectFromContext returns the authenticated username, or "" when the
// request did not pass through Middleware.
func SubjectFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeySubject).(string)
	return v
}

func GetSubject(c *gin.Context) string {
	if v := c.GetString(ginKeySubject); v != "" {
		return v
	}
	return SubjectFromContext(c.Request.Context())
}
