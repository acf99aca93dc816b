package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fekuna/secure-duka/internal/analytics"
	"github.com/fekuna/secure-duka/internal/analytics/report"
	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/httpx"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgInsufficientData = "Not enough sales data to predict yet."
	msgNoVelocity       = "No daily sales recorded."
)

type AnalyticsHandler struct {
	uc               analytics.UseCase
	defaultThreshold int
	logger           logger.ZapLogger
}

func NewAnalyticsHandler(uc analytics.UseCase, defaultThreshold int, log logger.ZapLogger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:               uc,
		defaultThreshold: defaultThreshold,
		logger:           log,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *AnalyticsHandler) Forecast(c *gin.Context) {
	id, ok := httpx.ParamID(c, "product_id")
	if !ok {
		return
	}

	f, err := h.uc.Forecast(c.Request.Context(), id)
	switch {
	case errors.Is(err, apperror.ErrInsufficientData):
		c.JSON(http.StatusOK, messageResponse{Message: msgInsufficientData})
	case errors.Is(err, apperror.ErrNoVelocity):
		c.JSON(http.StatusOK, messageResponse{Message: msgNoVelocity})
	case err != nil:
		httpx.Error(c, h.logger, err)
	default:
		c.JSON(http.StatusOK, f)
	}
}

func (h *AnalyticsHandler) RestockReport(c *gin.Context) {
	threshold, ok := h.threshold(c)
	if !ok {
		return
	}
	r, err := h.uc.RestockReport(c.Request.Context(), threshold)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *AnalyticsHandler) RestockReportPDF(c *gin.Context) {
	threshold, ok := h.threshold(c)
	if !ok {
		return
	}
	r, err := h.uc.RestockReport(c.Request.Context(), threshold)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	out, err := report.RenderRestockPDF(r, threshold)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	h.logger.Debug("restock pdf rendered", zap.Int("bytes", len(out)))

	c.Header("Content-Disposition", `attachment; filename="restock-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

func (h *AnalyticsHandler) RawSales(c *gin.Context) {
	id, ok := httpx.ParamID(c, "product_id")
	if !ok {
		return
	}
	rows, err := h.uc.RawSales(c.Request.Context(), id)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *AnalyticsHandler) threshold(c *gin.Context) (int, bool) {
	raw, present := c.GetQuery("days_threshold")
	if !present || raw == "" {
		return h.defaultThreshold, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		httpx.Abort(c, http.StatusBadRequest, apperror.Code(apperror.ErrInvalidInput), "days_threshold must be a non-negative integer")
		return 0, false
	}
	return n, true
}
