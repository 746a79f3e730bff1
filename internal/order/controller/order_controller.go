package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tienda/internal/domain"
	"tienda/internal/dto"
	apperrors "tienda/internal/errors"
)

type OrderLifecycle interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type OrderQueries interface {
	ListAll(ctx context.Context) ([]dto.EnrichedOrder, error)
	GetByID(ctx context.Context, id string) (*dto.EnrichedOrder, error)
	ListByUser(ctx context.Context, userID string) ([]dto.EnrichedOrder, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type OrderController struct {
	lifecycle OrderLifecycle
	queries   OrderQueries
	logger    *zap.Logger
}

func NewOrderController(lifecycle OrderLifecycle, queries OrderQueries, logger *zap.Logger) *OrderController {
	return &OrderController{
		lifecycle: lifecycle,
		queries:   queries,
		logger:    logger,
	}
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	orders, err := c.queries.ListAll(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, orders)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	order, err := c.queries.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, order)
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := decodeStrict(r, &req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.lifecycle.Create(r.Context(), req)
	if err != nil {
		if _, ok := apperrors.IsValidationError(err); !ok {
			logger.Error("order creation failed", zap.Error(err))
		}
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateOrderStatusRequest
	if err := decodeStrict(r, &req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.lifecycle.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.lifecycle.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "the order was deleted successfully",
	})
}

func (c *OrderController) Total(w http.ResponseWriter, r *http.Request) {
	total, err := c.queries.TotalRevenue(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.TotalSalesResponse{Total: total})
}

func (c *OrderController) Count(w http.ResponseWriter, r *http.Request) {
	count, err := c.queries.Count(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.OrderCountResponse{OrderCount: count})
}

func (c *OrderController) UserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.queries.ListByUser(r.Context(), chi.URLParam(r, "userid"))
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.UserOrdersResponse{UserOrderList: orders})
}

func toOrderResponse(order *domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemResponse{
			ID:       item.ID,
			Product:  item.ProductID,
			Quantity: item.Quantity,
		}
	}

	return dto.OrderResponse{
		ID:               order.ID,
		OrderItems:       items,
		ShippingAddress1: order.ShippingAddress1,
		ShippingAddress2: order.ShippingAddress2,
		City:             order.City,
		Zip:              order.Zip,
		Country:          order.Country,
		Phone:            order.Phone,
		Status:           order.Status,
		Channel:          order.Channel,
		TotalPrice:       order.TotalPrice,
		User:             order.UserID,
		DateOrdered:      order.DateOrdered,
	}
}

func decodeStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (c *OrderController) handleError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"message": nfe.Message,
		})
		return
	}

	c.logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
