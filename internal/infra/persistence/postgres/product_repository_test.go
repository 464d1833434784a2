package postgres

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newDryRunDB opens a gorm handle that builds SQL without touching a
// database, with a callback recording every generated update statement.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]string) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	var statements []string
	err = db.Callback().Update().After("gorm:update").Register("record_update_sql", func(tx *gorm.DB) {
		statements = append(statements, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	return db, &statements
}

func TestProductRepository_Update_NeverWritesViews(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewProductRepository(db)

	product := &entity.Product{
		ID:          uuid.New(),
		SellerID:    uuid.New(),
		CategoryID:  uuid.New(),
		Title:       "Mechanical keyboard",
		Price:       800,
		Condition:   entity.ConditionGood,
		IsAvailable: true,
		Views:       8,
	}

	require.NoError(t, repo.Update(context.Background(), product))

	require.Len(t, *statements, 1)
	updateSQL := (*statements)[0]
	assert.Contains(t, updateSQL, `"title"`)
	// The counter stays out of the assignment list so an increment committed
	// between the owner's read and this write is never overwritten.
	assert.NotContains(t, updateSQL, `"views"`)
}

func TestProductRepository_IncrementViews_SingleAtomicUpdate(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewProductRepository(db)

	err := repo.IncrementViews(context.Background(), uuid.New())

	// A dry run affects no rows, which surfaces as the not-found translation.
	require.ErrorIs(t, err, repository.ErrProductNotFound)

	require.Len(t, *statements, 1)
	assert.Contains(t, (*statements)[0], "views + ")
}
