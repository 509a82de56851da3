package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductPriceRepository = (*ProductPriceRepo)(nil)

// ProductPriceRepo histórico de precios por (producto, año, mes) sobre PostgreSQL.
type ProductPriceRepo struct {
	q Querier
}

// NewProductPriceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductPriceRepository(q Querier) *ProductPriceRepo {
	return &ProductPriceRepo{q: q}
}

// Upsert inserta o actualiza el precio del mes. El histórico de meses
// anteriores no se toca.
func (r *ProductPriceRepo) Upsert(price *entity.ProductPrice) error {
	query := `
		INSERT INTO product_prices (product_id, year, month, price, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id, year, month)
		DO UPDATE SET price = EXCLUDED.price, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		price.ProductID, price.Year, price.Month, price.Price, price.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert product price: %w", err)
	}
	return nil
}

// Get obtiene el precio de un (producto, año, mes); nil si no hay fila.
func (r *ProductPriceRepo) Get(productID string, year, month int) (*entity.ProductPrice, error) {
	query := `
		SELECT product_id, year, month, price, updated_at
		FROM product_prices WHERE product_id = $1 AND year = $2 AND month = $3`
	var p entity.ProductPrice
	err := r.q.QueryRow(context.Background(), query, productID, year, month).Scan(
		&p.ProductID, &p.Year, &p.Month, &p.Price, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product price: %w", err)
	}
	return &p, nil
}

// ListByProduct histórico completo de precios de un producto.
func (r *ProductPriceRepo) ListByProduct(productID string) ([]*entity.ProductPrice, error) {
	query := `
		SELECT product_id, year, month, price, updated_at
		FROM product_prices WHERE product_id = $1 ORDER BY year DESC, month DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product prices: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductPrice
	for rows.Next() {
		var p entity.ProductPrice
		if err := rows.Scan(&p.ProductID, &p.Year, &p.Month, &p.Price, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product price: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
