package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/internal/domain"
	apperrors "tienda/internal/errors"
	"tienda/internal/testutil"
)

func insertTestOrder(t *testing.T, db *sql.DB, repo *MySQLOrderRepository, order domain.Order) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err)

	require.NoError(t, repo.Insert(context.Background(), tx, order))
	require.NoError(t, tx.Commit())
}

func testOrder(userID string, totalPrice float64) domain.Order {
	return domain.Order{
		ID:               uuid.New().String(),
		ShippingAddress1: "Av. Colon 1234",
		City:             "Cordoba",
		Zip:              "5000",
		Country:          "Argentina",
		Phone:            "+54 351 555 0000",
		Status:           domain.OrderStatusPending,
		TotalPrice:       totalPrice,
		UserID:           userID,
		DateOrdered:      time.Now().UTC().Truncate(time.Second),
	}
}

func TestOrderRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	order := testOrder("user-1", 150.25)

	insertTestOrder(t, db, repo, order)

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, order.UserID, found.UserID)
	assert.Equal(t, domain.OrderStatusPending, found.Status)
	assert.InDelta(t, 150.25, found.TotalPrice, 0.001)
}

func TestOrderRepository_FindByIDMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New().String())

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_FindAllNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	older := testOrder("user-1", 10)
	older.DateOrdered = time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	newer := testOrder("user-1", 20)

	insertTestOrder(t, db, repo, older)
	insertTestOrder(t, db, repo, newer)

	orders, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestOrderRepository_FindByUserIDFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	mine := testOrder("user-1", 10)
	theirs := testOrder("user-2", 20)

	insertTestOrder(t, db, repo, mine)
	insertTestOrder(t, db, repo, theirs)

	orders, err := repo.FindByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	order := testOrder("user-1", 10)
	insertTestOrder(t, db, repo, order)

	require.NoError(t, repo.UpdateStatus(context.Background(), order.ID, domain.OrderStatusShipped))

	found, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, found.Status)

	// repeating the same status must not fail
	require.NoError(t, repo.UpdateStatus(context.Background(), order.ID, domain.OrderStatusShipped))
}

func TestOrderRepository_DeleteByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)
	order := testOrder("user-1", 10)
	insertTestOrder(t, db, repo, order)

	require.NoError(t, repo.DeleteByID(context.Background(), order.ID))

	_, err := repo.FindByID(context.Background(), order.ID)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)

	err = repo.DeleteByID(context.Background(), order.ID)
	_, ok = apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestOrderRepository_CountAndSum(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	total, err := repo.SumTotalPrice(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)

	insertTestOrder(t, db, repo, testOrder("user-1", 100.50))
	insertTestOrder(t, db, repo, testOrder("user-2", 49.50))

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	total, err = repo.SumTotalPrice(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 150.0, total, 0.001)
}
