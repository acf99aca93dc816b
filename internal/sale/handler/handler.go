package handler

import (
	"fmt"
	"net/http"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/httpx"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/fekuna/secure-duka/internal/model"
	"github.com/fekuna/secure-duka/internal/sale"
	"github.com/fekuna/secure-duka/internal/sale/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SaleHandler struct {
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: log,
	}
}

// createSaleRequest binds from the query string or a JSON body.
type createSaleRequest struct {
	ProductID int64 `form:"product_id" json:"product_id" binding:"required"`
	Quantity  int   `form:"quantity" json:"quantity" binding:"required"`
}

type createSaleResponse struct {
	Message        string     `json:"message"`
	Sale           model.Sale `json:"sale"`
	RemainingStock int        `json:"remaining_stock"`
}

func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req createSaleRequest
	var err error
	if c.ContentType() == gin.MIMEJSON {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindQuery(&req)
	}
	if err != nil {
		httpx.Abort(c, http.StatusBadRequest, apperror.Code(apperror.ErrInvalidInput), "product_id and a non-zero quantity are required")
		return
	}

	res, err := h.uc.RecordSale(c.Request.Context(), &dto.RecordSaleInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	h.logger.Debug("sale handled", zap.Int64("sale_id", res.Sale.ID))
	c.JSON(http.StatusCreated, createSaleResponse{
		Message:        fmt.Sprintf("Sold %d of %s. Remaining: %d", res.Sale.QuantitySold, res.Product.Name, res.Product.Stock),
		Sale:           res.Sale,
		RemainingStock: res.Product.Stock,
	})
}
