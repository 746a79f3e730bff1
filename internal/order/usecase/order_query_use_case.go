package usecase

import (
	"context"

	"go.uber.org/zap"

	"tienda/internal/domain"
	"tienda/internal/dto"
	apperrors "tienda/internal/errors"
)

type OrderRepository interface {
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	Count(ctx context.Context) (int64, error)
	SumTotalPrice(ctx context.Context) (float64, error)
}

type OrderItemRepository interface {
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error)
}

type ProductResolver interface {
	FindByID(ctx context.Context, productID string) (*domain.Product, error)
}

type CategoryResolver interface {
	FindByID(ctx context.Context, categoryID string) (*domain.Category, error)
}

type UserResolver interface {
	FindByID(ctx context.Context, userID string) (*domain.User, error)
}

// OrderQueryUseCase serves order reads: listing, single retrieval, per-user
// history, count and revenue. Reads are enriched with the referenced user,
// products and categories; a dangling reference is omitted from the payload
// instead of failing the request.
type OrderQueryUseCase struct {
	orderRepo  OrderRepository
	itemRepo   OrderItemRepository
	products   ProductResolver
	categories CategoryResolver
	users      UserResolver
	logger     *zap.Logger
}

func NewOrderQueryUseCase(
	orderRepo OrderRepository,
	itemRepo OrderItemRepository,
	products ProductResolver,
	categories CategoryResolver,
	users UserResolver,
	logger *zap.Logger,
) *OrderQueryUseCase {
	return &OrderQueryUseCase{
		orderRepo:  orderRepo,
		itemRepo:   itemRepo,
		products:   products,
		categories: categories,
		users:      users,
		logger:     logger,
	}
}

func (uc *OrderQueryUseCase) ListAll(ctx context.Context) ([]dto.EnrichedOrder, error) {
	orders, err := uc.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	return uc.enrichAll(ctx, orders)
}

func (uc *OrderQueryUseCase) GetByID(ctx context.Context, id string) (*dto.EnrichedOrder, error) {
	order, err := uc.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enriched, err := uc.enrich(ctx, *order)
	if err != nil {
		return nil, err
	}

	return &enriched, nil
}

func (uc *OrderQueryUseCase) ListByUser(ctx context.Context, userID string) ([]dto.EnrichedOrder, error) {
	orders, err := uc.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return uc.enrichAll(ctx, orders)
}

func (uc *OrderQueryUseCase) Count(ctx context.Context) (int64, error) {
	return uc.orderRepo.Count(ctx)
}

// TotalRevenue sums the numeric totalPrice over all orders, 0 when there are
// none.
func (uc *OrderQueryUseCase) TotalRevenue(ctx context.Context) (float64, error) {
	return uc.orderRepo.SumTotalPrice(ctx)
}

func (uc *OrderQueryUseCase) enrichAll(ctx context.Context, orders []domain.Order) ([]dto.EnrichedOrder, error) {
	enriched := make([]dto.EnrichedOrder, 0, len(orders))
	for _, order := range orders {
		e, err := uc.enrich(ctx, order)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, e)
	}

	return enriched, nil
}

func (uc *OrderQueryUseCase) enrich(ctx context.Context, order domain.Order) (dto.EnrichedOrder, error) {
	enriched := dto.EnrichedOrder{
		ID:               order.ID,
		ShippingAddress1: order.ShippingAddress1,
		ShippingAddress2: order.ShippingAddress2,
		City:             order.City,
		Zip:              order.Zip,
		Country:          order.Country,
		Phone:            order.Phone,
		Status:           order.Status,
		Channel:          order.Channel,
		TotalPrice:       order.TotalPrice,
		DateOrdered:      order.DateOrdered,
	}

	if user, err := uc.users.FindByID(ctx, order.UserID); err == nil {
		enriched.User = &dto.OrderUser{ID: user.ID, Name: user.Name, Email: user.Email}
	} else if _, ok := apperrors.IsNotFoundError(err); !ok {
		return dto.EnrichedOrder{}, err
	} else {
		uc.logger.Debug("order user missing", zap.String("orderId", order.ID), zap.String("userId", order.UserID))
	}

	items, err := uc.itemRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return dto.EnrichedOrder{}, err
	}

	enriched.OrderItems = make([]dto.EnrichedOrderItem, 0, len(items))
	for _, item := range items {
		line := dto.EnrichedOrderItem{ID: item.ID, Quantity: item.Quantity}

		product, err := uc.products.FindByID(ctx, item.ProductID)
		switch {
		case err == nil:
			line.Product = &dto.OrderProduct{ID: product.ID, Name: product.Name, Price: product.Price}
			line.Product.Category = uc.resolveCategory(ctx, product.CategoryID)
		default:
			if _, ok := apperrors.IsNotFoundError(err); !ok {
				return dto.EnrichedOrder{}, err
			}
			uc.logger.Debug("order line product missing",
				zap.String("orderId", order.ID),
				zap.String("productId", item.ProductID),
			)
		}

		enriched.OrderItems = append(enriched.OrderItems, line)
	}

	return enriched, nil
}

// resolveCategory never fails enrichment: an unresolvable category is simply
// left out.
func (uc *OrderQueryUseCase) resolveCategory(ctx context.Context, categoryID string) *dto.OrderCategory {
	if categoryID == "" {
		return nil
	}

	category, err := uc.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil
	}

	return &dto.OrderCategory{
		ID:    category.ID,
		Name:  category.Name,
		Icon:  category.Icon,
		Color: category.Color,
	}
}
