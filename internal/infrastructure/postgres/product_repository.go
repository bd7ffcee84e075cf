package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sistock-api/internal/domain"
	"github.com/jhoicas/sistock-api/internal/domain/entity"
	"github.com/jhoicas/sistock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productSelect = `
	SELECT p.id, p.sku, p.category_id, c.name, p.name, p.description, p.price,
	       p.stock_quantity, p.minimum_stock, p.created_at, p.updated_at
	FROM products p
	JOIN categories c ON c.id = p.category_id`

// applyDeltaSQL bloquea la fila en el CTE para leer el saldo previo; el UPDATE sigue siendo
// relativo al valor almacenado, con piso en cero.
const applyDeltaSQL = `
	WITH prev AS (
		SELECT id, stock_quantity FROM products WHERE id = $1 FOR UPDATE
	)
	UPDATE products p
	SET stock_quantity = GREATEST(p.stock_quantity + $2, 0), updated_at = now()
	FROM prev
	WHERE p.id = prev.id
	RETURNING prev.stock_quantity, p.stock_quantity`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El saldo inicia en 0.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, category_id, name, description, price, stock_quantity, minimum_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.CategoryID, product.Name, product.Description, product.Price,
		product.MinimumStock, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	product.StockQuantity = 0
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, productSelect+` WHERE p.sku = $1`, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// List lista productos por nombre con los filtros dados y devuelve el total filtrado.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	where, args := buildProductWhere(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query, args := paginate(productSelect+where+` ORDER BY p.name, p.sku`, args, f.Limit, f.Offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update guarda nombre, categoría, descripción, precio y mínimo. El saldo no se toca.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products
		SET category_id = $2, name = $3, description = $4, price = $5, minimum_stock = $6, updated_at = $7
		WHERE id = $1`,
		product.ID, product.CategoryID, product.Name, product.Description, product.Price,
		product.MinimumStock, product.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReferentialConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ApplyDelta suma delta al saldo sin bajar de cero y devuelve el saldo anterior y el nuevo.
func (r *ProductRepo) ApplyDelta(ctx context.Context, id string, delta int) (int, int, error) {
	var before, after int
	err := r.q.QueryRow(ctx, applyDeltaSQL, id, delta).Scan(&before, &after)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, domain.ErrNotFound
		}
		return 0, 0, fmt.Errorf("apply stock delta: %w", err)
	}
	return before, after, nil
}

// Balance devuelve el saldo almacenado.
func (r *ProductRepo) Balance(ctx context.Context, id string) (int, error) {
	var qty int
	err := r.q.QueryRow(ctx, `SELECT stock_quantity FROM products WHERE id = $1`, id).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return qty, nil
}

// ListLowStock devuelve los productos con saldo <= mínimo, mayor déficit primero.
func (r *ProductRepo) ListLowStock(ctx context.Context, limit int) ([]repository.LowStockItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, sku, name, stock_quantity, minimum_stock, price
		FROM products
		WHERE stock_quantity <= minimum_stock
		ORDER BY (minimum_stock - stock_quantity) DESC, sku
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var items []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.SKU, &it.Name, &it.StockQuantity, &it.MinimumStock, &it.Price); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Count cuenta los productos del catálogo.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

// CountLowStock cuenta los productos en o bajo su mínimo.
func (r *ProductRepo) CountLowStock(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE stock_quantity <= minimum_stock`)
}

// StockValuation suma saldo * precio de todo el catálogo.
func (r *ProductRepo) StockValuation(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(stock_quantity * price), 0) FROM products`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("stock valuation: %w", err)
	}
	return total, nil
}

func (r *ProductRepo) count(ctx context.Context, query string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// buildProductWhere arma el WHERE del listado de catálogo sobre el alias p.
func buildProductWhere(f repository.ProductFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Name != "" {
		args = append(args, "%"+escapeLike(f.Name)+"%")
		conds = append(conds, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(
		&p.ID, &p.SKU, &p.CategoryID, &p.CategoryName, &p.Name, &p.Description, &p.Price,
		&p.StockQuantity, &p.MinimumStock, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}
