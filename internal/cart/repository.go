package cart

import (
	"context"
	"database/sql"
	"time"

	"pasarku-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindCartByBuyer(ctx context.Context, buyerID uint) (*Cart, error)
	UpsertCart(ctx context.Context, buyerID uint) (Cart, error)
	UpsertLine(ctx context.Context, cartID int64, productID string, quantity int64) (CartLine, error)
	LineRows(ctx context.Context, cartID int64) ([]LineRow, error)
	DeleteLine(ctx context.Context, buyerID uint, productID string) (int64, error)
	DeleteLines(ctx context.Context, cartID int64) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindCartByBuyer(ctx context.Context, buyerID uint) (*Cart, error) {
	query := `
	SELECT id, buyer_id, created_at, updated_at
	FROM carts
	WHERE buyer_id = $1
	`

	var c Cart
	err := r.db.QueryRowContext(ctx, query, buyerID).Scan(
		&c.ID,
		&c.BuyerID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// UpsertCart returns the buyer's cart, creating it when absent. The whole
// find-or-create is one statement so concurrent first-adds land on the
// same row instead of racing to insert two carts.
func (r *repository) UpsertCart(ctx context.Context, buyerID uint) (Cart, error) {
	query := `
	INSERT INTO carts (buyer_id)
	VALUES ($1)
	ON CONFLICT (buyer_id) DO UPDATE
	SET updated_at = NOW()
	RETURNING id, buyer_id, created_at, updated_at
	`

	var c Cart
	err := r.db.QueryRowContext(ctx, query, buyerID).Scan(
		&c.ID,
		&c.BuyerID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return Cart{}, err
	}

	return c, nil
}

// UpsertLine inserts a cart line or, when one already exists for the
// (cart, product) pair, increments its quantity by the requested amount.
// One statement; two concurrent adds both land on the same line and the
// quantities sum.
func (r *repository) UpsertLine(ctx context.Context, cartID int64, productID string, quantity int64) (CartLine, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpsertLine"),
		zap.Int64("cart_id", cartID),
		zap.String("product_id", productID),
	)

	query := `
	INSERT INTO cart_items (cart_id, product_id, quantity)
	VALUES ($1, $2, $3)
	ON CONFLICT (cart_id, product_id) DO UPDATE
	SET quantity = cart_items.quantity + EXCLUDED.quantity,
	    updated_at = NOW()
	RETURNING id, cart_id, product_id, quantity, created_at, updated_at
	`

	var line CartLine
	err := r.db.QueryRowContext(ctx, query, cartID, productID, quantity).Scan(
		&line.ID,
		&line.CartID,
		&line.ProductID,
		&line.Quantity,
		&line.CreatedAt,
		&line.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert cart line", zap.Error(err))
		return CartLine{}, err
	}

	log.Info("cart line upserted",
		zap.Int64("line_id", line.ID),
		zap.Int64("quantity", line.Quantity),
	)

	return line, nil
}

func (r *repository) LineRows(ctx context.Context, cartID int64) ([]LineRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "LineRows"),
		zap.Int64("cart_id", cartID),
	)

	start := time.Now()

	query := `
	SELECT
		ci.id,
		ci.product_id,
		p.name,
		p.price,
		p.discount,
		ci.quantity,
		ci.updated_at
	FROM cart_items ci
	JOIN products p ON ci.product_id = p.id
	WHERE ci.cart_id = $1
	ORDER BY ci.created_at, ci.id
	`

	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	result := make([]LineRow, 0)
	for rows.Next() {
		var row LineRow
		if err := rows.Scan(
			&row.LineID,
			&row.ProductID,
			&row.ProductName,
			&row.Price,
			&row.Discount,
			&row.Quantity,
			&row.UpdatedAt,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// DeleteLine removes the buyer's line for one product and reports how many
// rows went away. A buyer without a cart simply deletes zero rows.
func (r *repository) DeleteLine(ctx context.Context, buyerID uint, productID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	DELETE FROM cart_items
	USING carts
	WHERE cart_items.cart_id = carts.id
	  AND carts.buyer_id = $1
	  AND cart_items.product_id = $2
	`, buyerID, productID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// DeleteLines empties a cart, keeping the cart row itself.
func (r *repository) DeleteLines(ctx context.Context, cartID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	DELETE FROM cart_items
	WHERE cart_id = $1
	`, cartID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
