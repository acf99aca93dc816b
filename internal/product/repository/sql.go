package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/secure-duka/internal/apperror"
	"github.com/fekuna/secure-duka/internal/model"
	"github.com/jmoiron/sqlx"
)

// SQLRepository works against both PostgreSQL and SQLite; queries are
// written with ? placeholders and rebound for the active driver.
type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, p *model.Product) error {
	stmt, err := r.DB.PrepareNamedContext(ctx, `
        INSERT INTO products (name, price, stock)
        VALUES (:name, :price, :stock)
        RETURNING id
    `)
	if err != nil {
		return err
	}
	defer stmt.Close()

	return stmt.GetContext(ctx, &p.ID, p)
}

func (r *SQLRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := r.DB.Rebind(`SELECT id, name, price, stock FROM products WHERE id = ? LIMIT 1`)
	err := r.DB.GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *SQLRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	err := r.DB.SelectContext(ctx, &products, `SELECT id, name, price, stock FROM products ORDER BY id`)
	return products, err
}

func (r *SQLRepository) AddStock(ctx context.Context, id int64, quantity int) (*model.Product, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, tx.Rebind(`UPDATE products SET stock = stock + ? WHERE id = ?`), quantity, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperror.ErrNotFound
	}

	var p model.Product
	if err := tx.GetContext(ctx, &p, tx.Rebind(`SELECT id, name, price, stock FROM products WHERE id = ?`), id); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &p, nil
}
