package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pasarku-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	FindMany(ctx context.Context, filter Filter) ([]Product, error)
	Create(ctx context.Context, params CreateParams) (Product, error)
	Update(ctx context.Context, id string, params UpdateParams) (Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, seller_id, name, category, description, price, discount, created_at, updated_at`

func scanProduct(row *sql.Row) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.SellerID,
		&p.Name,
		&p.Category,
		&p.Description,
		&p.Price,
		&p.Discount,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) FindMany(ctx context.Context, filter Filter) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "FindManyProducts"),
	)

	start := time.Now()

	// ---------- where ----------
	where := []string{}
	args := []any{}

	if filter.NameContains != "" {
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.NameContains+"%")
		log = log.With(zap.String("filter_name", filter.NameContains))
	}

	if filter.CategoryEquals != "" {
		where = append(where, fmt.Sprintf("LOWER(category) = LOWER($%d)", len(args)+1))
		args = append(args, filter.CategoryEquals)
		log = log.With(zap.String("filter_category", filter.CategoryEquals))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.SellerID,
			&p.Name,
			&p.Category,
			&p.Description,
			&p.Price,
			&p.Discount,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

func (r *repository) Create(ctx context.Context, params CreateParams) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.Uint("seller_id", params.SellerID),
	)

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO products (seller_id, name, category, description, price, discount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+productColumns,
		params.SellerID,
		params.Name,
		params.Category,
		params.Description,
		params.Price,
		params.Discount,
	)

	p, err := scanProduct(row)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return Product{}, err
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return *p, nil
}

// Update overwrites only the provided fields; omitted fields keep their
// stored values via COALESCE.
func (r *repository) Update(ctx context.Context, id string, params UpdateParams) (Product, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE products
		SET name        = COALESCE($2, name),
		    category    = COALESCE($3, category),
		    description = COALESCE($4, description),
		    price       = COALESCE($5, price),
		    discount    = COALESCE($6, discount),
		    updated_at  = NOW()
		WHERE id = $1
		RETURNING `+productColumns,
		id,
		params.Name,
		params.Category,
		params.Description,
		params.Price,
		params.Discount,
	)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, err
	}

	return *p, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
