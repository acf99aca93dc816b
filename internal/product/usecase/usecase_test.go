package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/database"
	"github.com/fekuna/secure-duka/internal/logger"
	"github.com/fekuna/secure-duka/internal/product"
	"github.com/fekuna/secure-duka/internal/product/dto"
	"github.com/fekuna/secure-duka/internal/product/repository"
	"github.com/shopspring/decimal"
)

func setupUseCase(t *testing.T) product.UseCase {
	t.Helper()
	db, err := database.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewProductUseCase(repository.NewSQLRepository(db), logger.NewNop())
}

func TestCreateAndGetProduct(t *testing.T) {
	uc := setupUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "  Blue Band 500g ", Price: decimal.RequireFromString("250.50"), Stock: 50})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if p.ID == 0 || p.Name != "Blue Band 500g" {
		t.Fatalf("unexpected product: %+v", p)
	}

	got, err := uc.GetProduct(ctx, p.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got.Stock != 50 || !got.Price.Equal(decimal.RequireFromString("250.5")) {
		t.Fatalf("unexpected stored product: %+v", got)
	}
}

func TestCreateProductValidation(t *testing.T) {
	uc := setupUseCase(t)
	ctx := context.Background()

	inputs := []*dto.CreateProductInput{
		{Name: " ", Price: decimal.NewFromInt(1)},
		{Name: "Salt", Price: decimal.NewFromInt(-1)},
		{Name: "Salt", Price: decimal.NewFromInt(1), Stock: -3},
	}
	for _, in := range inputs {
		if _, err := uc.CreateProduct(ctx, in); !errors.Is(err, apperror.ErrInvalidInput) {
			t.Errorf("CreateProduct(%+v) error = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestGetProductNotFound(t *testing.T) {
	uc := setupUseCase(t)
	if _, err := uc.GetProduct(context.Background(), 42); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListProductsOrderedByID(t *testing.T) {
	uc := setupUseCase(t)
	ctx := context.Background()

	empty, err := uc.ListProducts(ctx)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list, got %v, %v", empty, err)
	}

	for _, name := range []string{"Milk", "Bread", "Eggs"} {
		if _, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: name, Price: decimal.NewFromInt(1), Stock: 1}); err != nil {
			t.Fatalf("CreateProduct: %v", err)
		}
	}
	products, err := uc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 3 || products[0].Name != "Milk" || products[2].Name != "Eggs" {
		t.Fatalf("unexpected order: %+v", products)
	}
}

func TestRestock(t *testing.T) {
	uc := setupUseCase(t)
	ctx := context.Background()

	p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Sugar 1kg", Price: decimal.NewFromInt(180), Stock: 5})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	got, err := uc.Restock(ctx, &dto.RestockInput{ProductID: p.ID, Quantity: 20})
	if err != nil {
		t.Fatalf("Restock: %v", err)
	}
	if got.Stock != 25 {
		t.Fatalf("expected stock 25, got %d", got.Stock)
	}

	stored, _ := uc.GetProduct(ctx, p.ID)
	if stored.Stock != 25 {
		t.Fatalf("restock not persisted: %+v", stored)
	}
}

func TestRestockFailures(t *testing.T) {
	uc := setupUseCase(t)
	ctx := context.Background()

	if _, err := uc.Restock(ctx, &dto.RestockInput{ProductID: 99, Quantity: 5}); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	p, _ := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Tea", Price: decimal.NewFromInt(90), Stock: 3})
	for _, q := range []int{0, -4} {
		if _, err := uc.Restock(ctx, &dto.RestockInput{ProductID: p.ID, Quantity: q}); !errors.Is(err, apperror.ErrInvalidInput) {
			t.Fatalf("quantity %d: expected ErrInvalidInput, got %v", q, err)
		}
	}
	stored, _ := uc.GetProduct(ctx, p.ID)
	if stored.Stock != 3 {
		t.Fatalf("failed restock must not change stock, got %d", stored.Stock)
	}
}
