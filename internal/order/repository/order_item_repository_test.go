package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/internal/domain"
	"tienda/internal/testutil"
)

func insertTestItems(t *testing.T, db *sql.DB, repo *MySQLOrderItemRepository, items ...domain.OrderItem) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err)

	for _, item := range items {
		require.NoError(t, repo.Insert(context.Background(), tx, item))
	}
	require.NoError(t, tx.Commit())
}

func TestOrderItemRepository_InsertAndFindByOrderID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orderRepo := NewMySQLOrderRepository(db)
	itemRepo := NewMySQLOrderItemRepository(db)

	order := testOrder("user-1", 30)
	insertTestOrder(t, db, orderRepo, order)

	items := []domain.OrderItem{
		{ID: uuid.New().String(), OrderID: order.ID, ProductID: "prod-1", Quantity: 2},
		{ID: uuid.New().String(), OrderID: order.ID, ProductID: "prod-2", Quantity: 1},
	}
	insertTestItems(t, db, itemRepo, items...)

	found, err := itemRepo.FindByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestOrderItemRepository_FindByOrderIDEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	itemRepo := NewMySQLOrderItemRepository(db)

	found, err := itemRepo.FindByOrderID(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestOrderItemRepository_DeleteByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orderRepo := NewMySQLOrderRepository(db)
	itemRepo := NewMySQLOrderItemRepository(db)

	order := testOrder("user-1", 10)
	insertTestOrder(t, db, orderRepo, order)

	item := domain.OrderItem{ID: uuid.New().String(), OrderID: order.ID, ProductID: "prod-1", Quantity: 1}
	insertTestItems(t, db, itemRepo, item)

	require.NoError(t, itemRepo.DeleteByID(context.Background(), item.ID))

	found, err := itemRepo.FindByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, found)

	// deleting an already removed line is not an error
	require.NoError(t, itemRepo.DeleteByID(context.Background(), item.ID))
}

func TestOrderItemRepository_CascadeOnOrderDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	orderRepo := NewMySQLOrderRepository(db)
	itemRepo := NewMySQLOrderItemRepository(db)

	order := testOrder("user-1", 10)
	insertTestOrder(t, db, orderRepo, order)
	insertTestItems(t, db, itemRepo, domain.OrderItem{
		ID: uuid.New().String(), OrderID: order.ID, ProductID: "prod-1", Quantity: 1,
	})

	require.NoError(t, orderRepo.DeleteByID(context.Background(), order.ID))

	found, err := itemRepo.FindByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Empty(t, found)
}
