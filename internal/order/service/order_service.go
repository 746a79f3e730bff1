package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tienda/internal/domain"
	"tienda/internal/dto"
	apperrors "tienda/internal/errors"
	"tienda/internal/events"
)

type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	DeleteByID(ctx context.Context, id string) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) error
	FindByOrderID(ctx context.Context, orderID string) ([]domain.OrderItem, error)
	DeleteByID(ctx context.Context, id string) error
}

// ProductResolver is the read-only lookup the order workflow depends on.
// Products are referenced, never owned.
type ProductResolver interface {
	FindByID(ctx context.Context, productID string) (*domain.Product, error)
}

// OrderService orchestrates the order lifecycle: creation (build lines,
// resolve prices, aggregate, persist), status transitions and cascading
// deletion.
type OrderService struct {
	db        TransactionManager
	orderRepo OrderRepository
	itemRepo  OrderItemRepository
	products  ProductResolver
	publisher events.Publisher
	logger    *zap.Logger
}

func NewOrderService(
	db TransactionManager,
	orderRepo OrderRepository,
	itemRepo OrderItemRepository,
	products ProductResolver,
	publisher events.Publisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		db:        db,
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		products:  products,
		publisher: publisher,
		logger:    logger,
	}
}

// Create builds the order lines in memory, resolves every product price,
// aggregates the total and commits lines plus order in one transaction.
// Any unresolvable product fails the whole request before anything is
// written, so a failed creation leaves no orphaned lines behind.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.OrderStatusPending
	}

	orderID := uuid.New().String()

	items := make([]domain.OrderItem, len(req.OrderItems))
	lines := make([]domain.PricedLine, len(req.OrderItems))
	for i, line := range req.OrderItems {
		product, err := s.products.FindByID(ctx, line.Product)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewValidationError(
					fmt.Sprintf("product %s could not be resolved", line.Product),
					apperrors.ValidationDetail{
						Field:   fmt.Sprintf("orderItems[%d].product", i),
						Message: "product does not exist",
					})
			}
			return nil, err
		}

		items[i] = domain.OrderItem{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ProductID: line.Product,
			Quantity:  line.Quantity,
		}
		lines[i] = domain.PricedLine{Quantity: line.Quantity, Price: product.Price}
	}

	order := domain.Order{
		ID:               orderID,
		ShippingAddress1: req.ShippingAddress1,
		ShippingAddress2: req.ShippingAddress2,
		City:             req.City,
		Zip:              req.Zip,
		Country:          req.Country,
		Phone:            req.Phone,
		Status:           status,
		Channel:          req.Channel,
		TotalPrice:       domain.OrderTotal(lines),
		UserID:           req.User,
		DateOrdered:      time.Now().UTC(),
		Items:            items,
	}

	err := s.db.WithinTx(ctx, func(tx *sql.Tx) error {
		for _, item := range items {
			if err := s.itemRepo.Insert(ctx, tx, item); err != nil {
				return err
			}
		}
		return s.orderRepo.Insert(ctx, tx, order)
	})
	if err != nil {
		return nil, apperrors.NewInternalError("persisting order", err)
	}

	s.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.String("userId", order.UserID),
		zap.Int("lineCount", len(items)),
		zap.Float64("totalPrice", order.TotalPrice),
	)

	s.publish(ctx, events.OrderEvent{
		Type:       events.EventOrderCreated,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		OccurredAt: order.DateOrdered,
	})

	return &order, nil
}

// UpdateStatus is the only mutation allowed after creation.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error) {
	if status == "" {
		return nil, apperrors.NewValidationError("status is required", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must not be empty",
		})
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, apperrors.NewInternalError("updating order status", err)
	}
	order.Status = status

	items, err := s.itemRepo.FindByOrderID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError("loading order items", err)
	}
	order.Items = items

	s.publish(ctx, events.OrderEvent{
		Type:       events.EventOrderStatusUpdated,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     status,
		OccurredAt: time.Now().UTC(),
	})

	return order, nil
}

// Delete removes the order and every line it owns. Line deletion is
// best-effort: a failing line is logged and skipped, never aborting the
// parent delete; the foreign key cascade clears any stragglers.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	items, err := s.itemRepo.FindByOrderID(ctx, id)
	if err != nil {
		s.logger.Warn("listing order items for cascade failed", zap.String("orderId", id), zap.Error(err))
		items = nil
	}

	for _, item := range items {
		if err := s.itemRepo.DeleteByID(ctx, item.ID); err != nil {
			s.logger.Warn("order item delete failed",
				zap.String("orderId", id),
				zap.String("orderItemId", item.ID),
				zap.Error(err),
			)
		}
	}

	if err := s.orderRepo.DeleteByID(ctx, id); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return err
		}
		return apperrors.NewInternalError("deleting order", err)
	}

	s.logger.Info("order deleted", zap.String("orderId", id), zap.Int("lineCount", len(items)))

	s.publish(ctx, events.OrderEvent{
		Type:       events.EventOrderDeleted,
		OrderID:    id,
		UserID:     order.UserID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

// publish is best-effort: event delivery never fails the request.
func (s *OrderService) publish(ctx context.Context, event events.OrderEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("publishing order event failed",
			zap.String("type", event.Type),
			zap.String("orderId", event.OrderID),
			zap.Error(err),
		)
	}
}

func validateCreateRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.User == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "user",
			Message: "user is required",
		})
	}

	if len(req.OrderItems) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "orderItems",
			Message: "orderItems must not be empty",
		})
	}

	for i, item := range req.OrderItems {
		if item.Product == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("orderItems[%d].product", i),
				Message: "product is required",
			})
		}
		if item.Quantity <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("orderItems[%d].quantity", i),
				Message: "quantity must be a positive integer",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}
