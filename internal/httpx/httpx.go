// Package httpx holds the small request and response helpers shared by the
// gin handlers.
package httpx

import (
	"net/http"
	"strconv"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type jsonError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Abort writes status with a JSON error payload and stops the handler chain.
func Abort(c *gin.Context, status int, code, details string) {
	c.AbortWithStatusJSON(status, jsonError{Error: code, Details: details})
}

// Error maps err onto its HTTP status. Unexpected errors are logged and their
// message is not echoed to the client.
func Error(c *gin.Context, log logger.ZapLogger, err error) {
	status := apperror.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Abort(c, status, apperror.Code(err), "")
		return
	}
	Abort(c, status, apperror.Code(err), err.Error())
}

// ParamID reads a positive integer path parameter, writing a 400 when it is
// malformed.
func ParamID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		Abort(c, http.StatusBadRequest, apperror.Code(apperror.ErrInvalidInput), param+" must be a positive integer")
		return 0, false
	}
	return id, true
}
