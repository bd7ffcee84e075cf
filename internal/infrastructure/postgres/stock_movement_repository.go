package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/sistock-api/internal/domain"
	"github.com/jhoicas/sistock-api/internal/domain/entity"
	"github.com/jhoicas/sistock-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementViewSelect = `
	SELECT m.id, m.product_id, m.type, m.quantity, m.reason, m.user_id,
	       m.stock_before, m.stock_after, m.created_at,
	       p.sku, p.name, u.username
	FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	JOIN users u ON u.id = m.user_id`

// StockMovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// Solo inserta y lee: no hay ruta de update ni delete.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Append persiste el movimiento; id y created_at los asigna la base.
func (r *StockMovementRepo) Append(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, type, quantity, reason, user_id, stock_before, stock_after)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.ProductID, m.Type, m.Quantity, m.Reason, m.UserID, m.StockBefore, m.StockAfter,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("append stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento con datos de producto y usuario.
func (r *StockMovementRepo) GetByID(ctx context.Context, id int64) (*entity.MovementView, error) {
	v, err := scanMovementView(r.q.QueryRow(ctx, movementViewSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return v, nil
}

// List devuelve la página pedida, más reciente primero, y el total que cumple el filtro.
func (r *StockMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementView, int, error) {
	where, args := buildMovementWhere(f)

	var total int
	countSQL := `SELECT COUNT(*) FROM stock_movements m
	JOIN products p ON p.id = m.product_id
	JOIN users u ON u.id = m.user_id` + where
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	query, args := paginate(movementViewSelect+where+` ORDER BY m.created_at DESC, m.id DESC`, args, f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementView
	for rows.Next() {
		v, err := scanMovementView(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, v)
	}
	return list, total, rows.Err()
}

// Count cuenta las entradas del ledger.
func (r *StockMovementRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// buildMovementWhere arma el WHERE y sus argumentos posicionales. Campos vacíos no filtran.
func buildMovementWhere(f repository.MovementFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.ProductID != "" {
		add("m.product_id = $%d", f.ProductID)
	}
	if f.Type != "" {
		add("m.type = $%d", f.Type)
	}
	if f.UserID != "" {
		add("m.user_id = $%d", f.UserID)
	}
	if f.Username != "" {
		add("u.username ILIKE $%d", "%"+escapeLike(f.Username)+"%")
	}
	if f.From != nil {
		add("m.created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("m.created_at < $%d", *f.To)
	}
	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(p.name ILIKE $%d OR p.sku ILIKE $%d OR m.reason ILIKE $%d OR u.username ILIKE $%d)", n, n, n, n))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func paginate(query string, args []any, limit, offset int) (string, []any) {
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}

// escapeLike escapa los comodines de LIKE para que el texto se busque literal.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanMovementView(row pgxScanner) (*entity.MovementView, error) {
	var v entity.MovementView
	if err := row.Scan(
		&v.ID, &v.ProductID, &v.Type, &v.Quantity, &v.Reason, &v.UserID,
		&v.StockBefore, &v.StockAfter, &v.CreatedAt,
		&v.ProductSKU, &v.ProductName, &v.Username,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
