package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/model"
	"github.com/jmoiron/sqlx"
)

const insertSaleQuery = `
        INSERT INTO sales (product_id, quantity_sold, sale_date)
        VALUES (:product_id, :quantity_sold, :sale_date)
        RETURNING id
    `

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, s *model.Sale) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := ensureProduct(ctx, tx, s.ProductID); err != nil {
		return err
	}
	if err := insertSale(ctx, tx, s); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLRepository) ListByProduct(ctx context.Context, productID int64) ([]model.Sale, error) {
	sales := []model.Sale{}
	query := r.DB.Rebind(`
        SELECT id, product_id, quantity_sold, sale_date FROM sales
        WHERE product_id = ?
        ORDER BY sale_date, id
    `)
	err := r.DB.SelectContext(ctx, &sales, query, productID)
	return sales, err
}

func (r *SQLRepository) RecordWithStock(ctx context.Context, s *model.Sale) (*model.Product, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// 1. Decrement stock only if enough is on hand
	res, err := tx.ExecContext(ctx,
		tx.Rebind(`UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?`),
		s.QuantitySold, s.ProductID, s.QuantitySold,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if err := ensureProduct(ctx, tx, s.ProductID); err != nil {
			return nil, err
		}
		return nil, apperror.ErrInsufficientStock
	}

	// 2. Log the sale
	if err := insertSale(ctx, tx, s); err != nil {
		return nil, err
	}

	var p model.Product
	if err := tx.GetContext(ctx, &p, tx.Rebind(`SELECT id, name, price, stock FROM products WHERE id = ?`), s.ProductID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &p, nil
}

func ensureProduct(ctx context.Context, tx *sqlx.Tx, productID int64) error {
	var count int
	if err := tx.GetContext(ctx, &count, tx.Rebind(`SELECT COUNT(*) FROM products WHERE id = ?`), productID); err != nil {
		return err
	}
	if count == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

func insertSale(ctx context.Context, tx *sqlx.Tx, s *model.Sale) error {
	stmt, err := tx.PrepareNamedContext(ctx, insertSaleQuery)
	if err != nil {
		return err
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &s.ID, s); err != nil {
		return fmt.Errorf("failed to log sale: %w", err)
	}
	return nil
}
