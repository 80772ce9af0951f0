package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/vitasport-api/internal/domain/entity"
	"github.com/jhoicas/vitasport-api/internal/domain/repository"
)

var _ repository.CashMovementRepository = (*CashMovementRepo)(nil)

// CashMovementRepo persistencia de movimientos de caja sobre PostgreSQL.
type CashMovementRepo struct {
	pool *pgxpool.Pool
}

func NewCashMovementRepository(pool *pgxpool.Pool) *CashMovementRepo {
	return &CashMovementRepo{pool: pool}
}

func (r *CashMovementRepo) Create(ctx context.Context, m *entity.CashMovement) (int64, error) {
	query := `
		INSERT INTO cash_movements (movement_type, amount, category, description, movement_date, created_by)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		string(m.Type), m.Amount, m.Category, m.Description, m.MovementDate, m.CreatedBy,
	).Scan(&m.ID)
	if err != nil {
		return 0, fmt.Errorf("insert cash movement: %w", err)
	}
	return m.ID, nil
}

func (r *CashMovementRepo) List(ctx context.Context, limit int) ([]*entity.CashMovement, error) {
	query := `
		SELECT id, movement_type, amount, COALESCE(category, ''), COALESCE(description, ''),
			movement_date, created_by
		FROM cash_movements
		ORDER BY movement_date DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cash movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashMovement
	for rows.Next() {
		var m entity.CashMovement
		var kind string
		if err := rows.Scan(&m.ID, &kind, &m.Amount, &m.Category, &m.Description, &m.MovementDate, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan cash movement: %w", err)
		}
		m.Type = entity.MovementType(kind)
		list = append(list, &m)
	}
	return list, rows.Err()
}
