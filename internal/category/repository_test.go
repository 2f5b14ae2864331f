package category

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"category", "count"})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := summaryRows().
			AddRow("groceries", int64(12)).
			AddRow("household", int64(3))

		mock.ExpectQuery(`SELECT category, COUNT\(\*\)\s+FROM products\s+WHERE category <> ''`).
			WillReturnRows(rows)

		summaries, err := repo.List(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, summaries, 2)
		assert.Equal(t, "groceries", summaries[0].Name)
		assert.Equal(t, int64(12), summaries[0].Products)
	})

	t.Run("Success - name filter", func(t *testing.T) {
		rows := summaryRows().AddRow("groceries", int64(12))

		mock.ExpectQuery(`WHERE category <> ''\s+AND category ILIKE \$1`).
			WithArgs("%groc%").
			WillReturnRows(rows)

		summaries, err := repo.List(ctx, "groc")
		assert.NoError(t, err)
		assert.Len(t, summaries, 1)
	})

	t.Run("Success - empty catalog", func(t *testing.T) {
		mock.ExpectQuery(`SELECT category, COUNT\(\*\)`).
			WillReturnRows(summaryRows())

		summaries, err := repo.List(ctx, "")
		assert.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`SELECT category, COUNT\(\*\)`).
			WillReturnError(errors.New("db error"))

		_, err := repo.List(ctx, "")
		assert.Error(t, err)
	})
}
