package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var (
	_ repository.TransferOrderRepository   = (*TransferOrderRepo)(nil)
	_ repository.TransferCounterRepository = (*TransferCounterRepo)(nil)
)

// TransferOrderRepo persistencia de órdenes de traslado sobre PostgreSQL.
type TransferOrderRepo struct {
	q Querier
}

// NewTransferOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferOrderRepository(q Querier) *TransferOrderRepo {
	return &TransferOrderRepo{q: q}
}

const transferOrderColumns = `id, order_number, order_date, product_id, quantity, source_warehouse_id, destination_warehouse_id, cost_center, requester_id, project_manager_id, status, notes, created_at, updated_at`

// Create persiste una nueva orden de traslado.
func (r *TransferOrderRepo) Create(order *entity.TransferOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transfer_orders (` + transferOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	pmID := (*string)(nil)
	if order.ProjectManagerID != "" {
		pmID = &order.ProjectManagerID
	}
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.OrderDate, order.ProductID, order.Quantity,
		order.SourceWarehouseID, order.DestinationWarehouseID, order.CostCenter,
		order.RequesterID, pmID, order.Status, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create transfer order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *TransferOrderRepo) GetByID(id string) (*entity.TransferOrder, error) {
	query := `SELECT ` + transferOrderColumns + ` FROM transfer_orders WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate bloquea la fila de la orden para decidirla exactamente una
// vez. Solo tiene sentido dentro de una transacción.
func (r *TransferOrderRepo) GetByIDForUpdate(id string) (*entity.TransferOrder, error) {
	query := `SELECT ` + transferOrderColumns + ` FROM transfer_orders WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *TransferOrderRepo) scanOne(row pgx.Row) (*entity.TransferOrder, error) {
	var o entity.TransferOrder
	var pmID *string
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.OrderDate, &o.ProductID, &o.Quantity,
		&o.SourceWarehouseID, &o.DestinationWarehouseID, &o.CostCenter,
		&o.RequesterID, &pmID, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer order: %w", err)
	}
	if pmID != nil {
		o.ProjectManagerID = *pmID
	}
	return &o, nil
}

// Update persiste la decisión sobre la orden (estado, decisor, notas).
func (r *TransferOrderRepo) Update(order *entity.TransferOrder) error {
	query := `
		UPDATE transfer_orders
		SET status = $2, project_manager_id = $3, notes = $4, updated_at = $5
		WHERE id = $1`
	pmID := (*string)(nil)
	if order.ProjectManagerID != "" {
		pmID = &order.ProjectManagerID
	}
	tag, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, pmID, order.Notes, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update transfer order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista órdenes, opcionalmente filtradas por estado, más recientes primero.
func (r *TransferOrderRepo) List(status string, limit, offset int) ([]*entity.TransferOrder, error) {
	query := `SELECT ` + transferOrderColumns + ` FROM transfer_orders`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfer orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransferOrder
	for rows.Next() {
		var o entity.TransferOrder
		var pmID *string
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.OrderDate, &o.ProductID, &o.Quantity,
			&o.SourceWarehouseID, &o.DestinationWarehouseID, &o.CostCenter,
			&o.RequesterID, &pmID, &o.Status, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer order: %w", err)
		}
		if pmID != nil {
			o.ProjectManagerID = *pmID
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// TransferCounterRepo consecutivo diario de órdenes sobre una tabla de
// contadores. El upsert con RETURNING es atómico: dos creaciones concurrentes
// del mismo día nunca obtienen el mismo número.
type TransferCounterRepo struct {
	q Querier
}

// NewTransferCounterRepository construye el adaptador del contador.
func NewTransferCounterRepository(q Querier) *TransferCounterRepo {
	return &TransferCounterRepo{q: q}
}

// NextNumber devuelve el siguiente consecutivo para el día indicado.
func (r *TransferCounterRepo) NextNumber(day time.Time) (int, error) {
	query := `
		INSERT INTO transfer_order_counters (day, last_number)
		VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE SET last_number = transfer_order_counters.last_number + 1
		RETURNING last_number`
	var n int
	if err := r.q.QueryRow(context.Background(), query, day.Format("2006-01-02")).Scan(&n); err != nil {
		return 0, fmt.Errorf("next transfer order number: %w", err)
	}
	return n, nil
}
