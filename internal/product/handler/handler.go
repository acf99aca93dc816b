package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/httpx"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/fekuna/secure-duka/internal/product"
	"github.com/fekuna/secure-duka/internal/product/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

type createProductRequest struct {
	Name  string          `json:"name" binding:"required"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

type restockResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
	NewStock  int    `json:"new_stock"`
}

func (h *ProductHandler) ListInventory(c *gin.Context) {
	products, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := httpx.ParamID(c, "id")
	if !ok {
		return
	}
	p, err := h.uc.GetProduct(c.Request.Context(), id)
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Abort(c, http.StatusBadRequest, apperror.Code(apperror.ErrInvalidInput), err.Error())
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &dto.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Restock(c *gin.Context) {
	id, ok := httpx.ParamID(c, "product_id")
	if !ok {
		return
	}
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		httpx.Abort(c, http.StatusBadRequest, apperror.Code(apperror.ErrInvalidInput), "quantity must be an integer")
		return
	}

	p, err := h.uc.Restock(c.Request.Context(), &dto.RestockInput{ProductID: id, Quantity: quantity})
	if err != nil {
		httpx.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, restockResponse{
		Message:   fmt.Sprintf("Successfully added %d units. New stock: %d", quantity, p.Stock),
		ProductID: p.ID,
		NewStock:  p.Stock,
	})
}
