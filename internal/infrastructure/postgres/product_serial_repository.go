package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductSerialRepository = (*ProductSerialRepo)(nil)

// ProductSerialRepo unidades serializadas sobre PostgreSQL (usable con pool o tx).
type ProductSerialRepo struct {
	q Querier
}

// NewProductSerialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductSerialRepository(q Querier) *ProductSerialRepo {
	return &ProductSerialRepo{q: q}
}

// CreateBatch persiste el lote de seriales de una entrada.
func (r *ProductSerialRepo) CreateBatch(serials []*entity.ProductSerial) error {
	query := `
		INSERT INTO product_serials (id, product_id, serial_number, movement_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, s := range serials {
		_, err := r.q.Exec(context.Background(), query,
			s.ID, s.ProductID, s.SerialNumber, s.MovementID, s.Status, s.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrSerialAlreadyUsed
			}
			return fmt.Errorf("insert product serial: %w", err)
		}
	}
	return nil
}

// UsedSerials devuelve cuáles de los números dados ya existen para el producto.
func (r *ProductSerialRepo) UsedSerials(productID string, serialNumbers []string) ([]string, error) {
	if len(serialNumbers) == 0 {
		return nil, nil
	}
	query := `
		SELECT serial_number FROM product_serials
		WHERE product_id = $1 AND serial_number = ANY($2)`
	rows, err := r.q.Query(context.Background(), query, productID, serialNumbers)
	if err != nil {
		return nil, fmt.Errorf("used serials: %w", err)
	}
	defer rows.Close()
	var used []string
	for rows.Next() {
		var sn string
		if err := rows.Scan(&sn); err != nil {
			return nil, fmt.Errorf("scan serial: %w", err)
		}
		used = append(used, sn)
	}
	return used, rows.Err()
}

// ListByProduct seriales registrados de un producto.
func (r *ProductSerialRepo) ListByProduct(productID string) ([]*entity.ProductSerial, error) {
	query := `
		SELECT id, product_id, serial_number, movement_id, status, created_at
		FROM product_serials WHERE product_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list product serials: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductSerial
	for rows.Next() {
		var s entity.ProductSerial
		if err := rows.Scan(&s.ID, &s.ProductID, &s.SerialNumber, &s.MovementID, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product serial: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
