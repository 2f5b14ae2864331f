package category

import (
	"context"
	"database/sql"
	"time"

	"pasarku-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, nameContains string) ([]Summary, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// List groups the catalog by category name. Products without a category are
// left out; the optional filter is a case-insensitive substring match.
func (r *repository) List(ctx context.Context, nameContains string) ([]Summary, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListCategories"),
	)

	start := time.Now()

	query := `
	SELECT category, COUNT(*)
	FROM products
	WHERE category <> ''
	`
	args := []any{}

	if nameContains != "" {
		query += ` AND category ILIKE $1`
		args = append(args, "%"+nameContains+"%")
		log = log.With(zap.String("filter_name", nameContains))
	}

	query += `
	GROUP BY category
	ORDER BY category ASC
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}
	defer rows.Close()

	summaries := make([]Summary, 0)
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.Name, &s.Products); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	log.Debug("query success",
		zap.Int("rows", len(summaries)),
		zap.Duration("duration", time.Since(start)),
	)

	return summaries, nil
}
