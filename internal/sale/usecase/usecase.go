package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/fekuna/secure-duka/internal/model"
	"github.com/fekuna/secure-duka/internal/sale"
	"github.com/fekuna/secure-duka/internal/sale/dto"
	"go.uber.org/zap"
)

type saleUseCase struct {
	repo   sale.Repository
	now    func() time.Time
	logger logger.ZapLogger
}

func NewSaleUseCase(repo sale.Repository, log logger.ZapLogger) sale.UseCase {
	return &saleUseCase{
		repo:   repo,
		now:    time.Now,
		logger: log,
	}
}

func (uc *saleUseCase) RecordSale(ctx context.Context, input *dto.RecordSaleInput) (*dto.SaleResult, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperror.ErrInvalidInput)
	}

	s := &model.Sale{
		ProductID:    input.ProductID,
		QuantitySold: input.Quantity,
		SaleDate:     uc.now().UTC(),
	}

	p, err := uc.repo.RecordWithStock(ctx, s)
	if err != nil {
		uc.logger.Debug("sale rejected",
			zap.Int64("product_id", input.ProductID),
			zap.Int("quantity", input.Quantity),
			zap.Error(err),
		)
		return nil, err
	}

	uc.logger.Info("sale recorded",
		zap.Int64("sale_id", s.ID),
		zap.Int64("product_id", p.ID),
		zap.Int("quantity", s.QuantitySold),
		zap.Int("remaining_stock", p.Stock),
	)
	return &dto.SaleResult{Sale: *s, Product: *p}, nil
}

func (uc *saleUseCase) ImportSale(ctx context.Context, input *dto.ImportSaleInput) (*model.Sale, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", apperror.ErrInvalidInput)
	}
	if input.SaleDate.IsZero() {
		return nil, fmt.Errorf("%w: sale date is required", apperror.ErrInvalidInput)
	}

	s := &model.Sale{
		ProductID:    input.ProductID,
		QuantitySold: input.Quantity,
		SaleDate:     input.SaleDate.UTC(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *saleUseCase) ListSales(ctx context.Context, productID int64) ([]model.Sale, error) {
	return uc.repo.ListByProduct(ctx, productID)
}
