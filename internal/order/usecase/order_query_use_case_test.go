package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tienda/internal/domain"
	apperrors "tienda/internal/errors"
)

type mockOrderRepo struct {
	findAllFunc       func(ctx context.Context) ([]domain.Order, error)
	findByIDFunc      func(ctx context.Context, id string) (*domain.Order, error)
	findByUserIDFunc  func(ctx context.Context, userID string) ([]domain.Order, error)
	countFunc         func(ctx context.Context) (int64, error)
	sumTotalPriceFunc func(ctx context.Context) (float64, error)
}

func (m *mockOrderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	return m.findAllFunc(ctx)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockOrderRepo) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	return m.findByUserIDFunc(ctx, userID)
}

func (m *mockOrderRepo) Count(ctx context.Context) (int64, error) {
	return m.countFunc(ctx)
}

func (m *mockOrderRepo) SumTotalPrice(ctx context.Context) (float64, error) {
	return m.sumTotalPriceFunc(ctx)
}

type mockItemRepo struct {
	findByOrderIDFunc func(ctx context.Context, orderID string) ([]domain.OrderItem, error)
}

func (m *mockItemRepo) FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	return m.findByOrderIDFunc(ctx, orderID)
}

type mockProducts struct {
	findByIDFunc func(ctx context.Context, productID string) (*domain.Product, error)
}

func (m *mockProducts) FindByID(ctx context.Context, productID string) (*domain.Product, error) {
	return m.findByIDFunc(ctx, productID)
}

type mockCategories struct {
	findByIDFunc func(ctx context.Context, categoryID string) (*domain.Category, error)
}

func (m *mockCategories) FindByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return m.findByIDFunc(ctx, categoryID)
}

type mockUsers struct {
	findByIDFunc func(ctx context.Context, userID string) (*domain.User, error)
}

func (m *mockUsers) FindByID(ctx context.Context, userID string) (*domain.User, error) {
	return m.findByIDFunc(ctx, userID)
}

func noItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	return nil, nil
}

func userFound(ctx context.Context, userID string) (*domain.User, error) {
	return &domain.User{ID: userID, Name: "Tadeo", Email: "tadeo@example.com"}, nil
}

func newTestUseCase(orders *mockOrderRepo, items *mockItemRepo, products *mockProducts, categories *mockCategories, users *mockUsers) *OrderQueryUseCase {
	if items == nil {
		items = &mockItemRepo{findByOrderIDFunc: noItems}
	}
	if products == nil {
		products = &mockProducts{findByIDFunc: func(ctx context.Context, productID string) (*domain.Product, error) {
			return &domain.Product{ID: productID, Name: "producto", Price: 1}, nil
		}}
	}
	if categories == nil {
		categories = &mockCategories{findByIDFunc: func(ctx context.Context, categoryID string) (*domain.Category, error) {
			return &domain.Category{ID: categoryID, Name: "categoria"}, nil
		}}
	}
	if users == nil {
		users = &mockUsers{findByIDFunc: userFound}
	}
	return NewOrderQueryUseCase(orders, items, products, categories, users, zap.NewNop())
}

func TestTotalRevenue_EmptyIsZero(t *testing.T) {
	orders := &mockOrderRepo{
		sumTotalPriceFunc: func(ctx context.Context) (float64, error) {
			return 0, nil
		},
	}

	uc := newTestUseCase(orders, nil, nil, nil, nil)

	total, err := uc.TotalRevenue(context.Background())

	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestTotalRevenue_SumsNumericTotals(t *testing.T) {
	orders := &mockOrderRepo{
		sumTotalPriceFunc: func(ctx context.Context) (float64, error) {
			return 321.75, nil
		},
	}

	uc := newTestUseCase(orders, nil, nil, nil, nil)

	total, err := uc.TotalRevenue(context.Background())

	require.NoError(t, err)
	assert.InDelta(t, 321.75, total, 0.001)
}

func TestListByUser_ReturnsOnlyThatUsersOrders(t *testing.T) {
	orders := &mockOrderRepo{
		findByUserIDFunc: func(ctx context.Context, userID string) ([]domain.Order, error) {
			assert.Equal(t, "user-1", userID)
			return []domain.Order{
				{ID: "order-2", UserID: userID},
				{ID: "order-1", UserID: userID},
			}, nil
		},
	}

	uc := newTestUseCase(orders, nil, nil, nil, nil)

	result, err := uc.ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "order-2", result[0].ID)
	assert.Equal(t, "order-1", result[1].ID)
}

func TestGetByID_EnrichesUserAndLines(t *testing.T) {
	orders := &mockOrderRepo{
		findByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return &domain.Order{ID: id, UserID: "user-1", TotalPrice: 42}, nil
		},
	}
	items := &mockItemRepo{
		findByOrderIDFunc: func(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
			return []domain.OrderItem{{ID: "item-1", OrderID: orderID, ProductID: "prod-1", Quantity: 3}}, nil
		},
	}
	products := &mockProducts{
		findByIDFunc: func(ctx context.Context, productID string) (*domain.Product, error) {
			return &domain.Product{ID: productID, Name: "remera", Price: 14, CategoryID: "cat-1"}, nil
		},
	}
	categories := &mockCategories{
		findByIDFunc: func(ctx context.Context, categoryID string) (*domain.Category, error) {
			return &domain.Category{ID: categoryID, Name: "ropa", Icon: "shirt", Color: "#fff"}, nil
		},
	}

	uc := newTestUseCase(orders, items, products, categories, nil)

	result, err := uc.GetByID(context.Background(), "order-1")

	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "user-1", result.User.ID)
	assert.Equal(t, "tadeo@example.com", result.User.Email)
	require.Len(t, result.OrderItems, 1)
	require.NotNil(t, result.OrderItems[0].Product)
	assert.Equal(t, "remera", result.OrderItems[0].Product.Name)
	require.NotNil(t, result.OrderItems[0].Product.Category)
	assert.Equal(t, "ropa", result.OrderItems[0].Product.Category.Name)
}

func TestGetByID_MissingOrderReturnsNotFound(t *testing.T) {
	orders := &mockOrderRepo{
		findByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}

	uc := newTestUseCase(orders, nil, nil, nil, nil)

	_, err := uc.GetByID(context.Background(), "missing")

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestEnrich_MissingUserIsOmitted(t *testing.T) {
	orders := &mockOrderRepo{
		findByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return &domain.Order{ID: id, UserID: "gone"}, nil
		},
	}
	users := &mockUsers{
		findByIDFunc: func(ctx context.Context, userID string) (*domain.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}

	uc := newTestUseCase(orders, nil, nil, nil, users)

	result, err := uc.GetByID(context.Background(), "order-1")

	require.NoError(t, err)
	assert.Nil(t, result.User)
}

func TestEnrich_MissingProductIsOmittedFromLine(t *testing.T) {
	orders := &mockOrderRepo{
		findByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return &domain.Order{ID: id, UserID: "user-1"}, nil
		},
	}
	items := &mockItemRepo{
		findByOrderIDFunc: func(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
			return []domain.OrderItem{{ID: "item-1", ProductID: "gone", Quantity: 2}}, nil
		},
	}
	products := &mockProducts{
		findByIDFunc: func(ctx context.Context, productID string) (*domain.Product, error) {
			return nil, apperrors.NewNotFoundError("product not found")
		},
	}

	uc := newTestUseCase(orders, items, products, nil, nil)

	result, err := uc.GetByID(context.Background(), "order-1")

	require.NoError(t, err)
	require.Len(t, result.OrderItems, 1)
	assert.Nil(t, result.OrderItems[0].Product)
	assert.Equal(t, 2, result.OrderItems[0].Quantity)
}

func TestEnrich_MissingCategoryIsOmittedFromProduct(t *testing.T) {
	orders := &mockOrderRepo{
		findByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return &domain.Order{ID: id, UserID: "user-1"}, nil
		},
	}
	items := &mockItemRepo{
		findByOrderIDFunc: func(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
			return []domain.OrderItem{{ID: "item-1", ProductID: "prod-1", Quantity: 1}}, nil
		},
	}
	products := &mockProducts{
		findByIDFunc: func(ctx context.Context, productID string) (*domain.Product, error) {
			return &domain.Product{ID: productID, Name: "remera", CategoryID: "gone"}, nil
		},
	}
	categories := &mockCategories{
		findByIDFunc: func(ctx context.Context, categoryID string) (*domain.Category, error) {
			return nil, apperrors.NewNotFoundError("category not found")
		},
	}

	uc := newTestUseCase(orders, items, products, categories, nil)

	result, err := uc.GetByID(context.Background(), "order-1")

	require.NoError(t, err)
	require.NotNil(t, result.OrderItems[0].Product)
	assert.Nil(t, result.OrderItems[0].Product.Category)
}

func TestListAll_PreservesRepositoryOrdering(t *testing.T) {
	orders := &mockOrderRepo{
		findAllFunc: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{
				{ID: "newest", UserID: "user-1"},
				{ID: "middle", UserID: "user-1"},
				{ID: "oldest", UserID: "user-1"},
			}, nil
		},
	}

	uc := newTestUseCase(orders, nil, nil, nil, nil)

	result, err := uc.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "newest", result[0].ID)
	assert.Equal(t, "oldest", result[2].ID)
}

func TestCount_DelegatesToRepository(t *testing.T) {
	orders := &mockOrderRepo{
		countFunc: func(ctx context.Context) (int64, error) {
			return 7, nil
		},
	}

	uc := newTestUseCase(orders, nil, nil, nil, nil)

	count, err := uc.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}
