package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/fekuna/secure-duka/internal/model"
	"github.com/fekuna/secure-duka/internal/product"
	"github.com/fekuna/secure-duka/internal/product/dto"
	"go.uber.org/zap"
)

type productUseCase struct {
	repo   product.Repository
	logger logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperror.ErrInvalidInput)
	}
	if input.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be >= 0", apperror.ErrInvalidInput)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", apperror.ErrInvalidInput)
	}

	p := &model.Product{
		Name:  name,
		Price: input.Price,
		Stock: input.Stock,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.logger.Info("product created", zap.Int64("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.ErrNotFound
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *productUseCase) Restock(ctx context.Context, input *dto.RestockInput) (*model.Product, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperror.ErrInvalidInput)
	}

	p, err := uc.repo.AddStock(ctx, input.ProductID, input.Quantity)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("product restocked",
		zap.Int64("product_id", p.ID),
		zap.Int("quantity", input.Quantity),
		zap.Int("new_stock", p.Stock),
	)
	return p, nil
}
