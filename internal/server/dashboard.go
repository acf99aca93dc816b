package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fekuna/secure-duka/internal/analytics"
	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/auth"
	"github.com/fekuna/secure-duka/internal/forecast"
	"github.com/fekuna/secure-duka/internal/httpx"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/fekuna/secure-duka/internal/model"
	"github.com/fekuna/secure-duka/internal/product"
	"github.com/fekuna/secure-duka/internal/product/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

func loadTemplates(r *gin.Engine) error {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"days": func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)
	return nil
}

type dashboardHandler struct {
	products  product.UseCase
	analytics analytics.UseCase
	threshold int
	logger    logger.ZapLogger
}

func newDashboardHandler(products product.UseCase, a analytics.UseCase, threshold int, log logger.ZapLogger) *dashboardHandler {
	return &dashboardHandler{
		products:  products,
		analytics: a,
		threshold: threshold,
		logger:    log,
	}
}

type dashboardView struct {
	User         string
	Notice       string
	Failed       bool
	Threshold    int
	Report       *forecast.RestockReport
	UrgentCount  int
	WarningCount int
	Products     []model.Product
	GeneratedAt  string
}

func (h *dashboardHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	report, err := h.analytics.RestockReport(ctx, h.threshold)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	products, err := h.products.ListProducts(ctx)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	view := dashboardView{
		User:        auth.GetSubject(c),
		Notice:      c.Query("notice"),
		Failed:      c.Query("failed") == "1",
		Threshold:   h.threshold,
		Report:      report,
		Products:    products,
		GeneratedAt: report.ReportGeneratedAt.Format("2006-01-02 15:04 MST"),
	}
	for _, item := range report.UrgentRestocks {
		if item.Status == forecast.StatusUrgent {
			view.UrgentCount++
		} else {
			view.WarningCount++
		}
	}
	c.HTML(http.StatusOK, "dashboard.html", view)
}

type dashboardRestockForm struct {
	ProductID int64 `form:"product_id" binding:"required"`
	Quantity  int   `form:"quantity" binding:"required"`
}

// Restock handles the dashboard form and redirects back with a notice.
func (h *dashboardHandler) Restock(c *gin.Context) {
	var form dashboardRestockForm
	if err := c.ShouldBind(&form); err != nil {
		redirectDashboard(c, "Choose a product and a quantity.", true)
		return
	}

	p, err := h.products.Restock(c.Request.Context(), &dto.RestockInput{ProductID: form.ProductID, Quantity: form.Quantity})
	if err != nil {
		if apperror.HTTPStatus(err) == http.StatusInternalServerError {
			h.logger.Error("dashboard restock failed", zap.Error(err))
			redirectDashboard(c, "Restock failed.", true)
			return
		}
		redirectDashboard(c, err.Error(), true)
		return
	}
	redirectDashboard(c, fmt.Sprintf("Successfully added %d units. New stock: %d", form.Quantity, p.Stock), false)
}

func redirectDashboard(c *gin.Context, notice string, failed bool) {
	q := url.Values{"notice": {notice}}
	if failed {
		q.Set("failed", "1")
	}
	c.Redirect(http.StatusSeeOther, "/dashboard?"+q.Encode())
}
