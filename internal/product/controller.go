package product

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tienda/internal/domain"
	"tienda/internal/dto"
	apperrors "tienda/internal/errors"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context, categoryIDs []string) ([]domain.Product, error)
	FindFeatured(ctx context.Context, limit int) ([]domain.Product, error)
	Insert(ctx context.Context, product domain.Product) error
	Update(ctx context.Context, product domain.Product) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Category, error)
}

type Controller struct {
	products   ProductRepository
	categories CategoryRepository
	logger     *zap.Logger
}

func NewController(products ProductRepository, categories CategoryRepository, logger *zap.Logger) *Controller {
	return &Controller{
		products:   products,
		categories: categories,
		logger:     logger,
	}
}

// List returns the catalog, optionally filtered by a comma separated
// `categories` query parameter.
func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	var categoryIDs []string
	if raw := r.URL.Query().Get("categories"); raw != "" {
		categoryIDs = strings.Split(raw, ",")
	}

	products, err := c.products.FindAll(r.Context(), categoryIDs)
	if err != nil {
		c.handleError(w, err)
		return
	}

	responses := make([]dto.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = c.toResponse(r.Context(), product)
	}

	c.writeJSON(w, http.StatusOK, responses)
}

func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	product, err := c.products.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, c.toResponse(r.Context(), *product))
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body")
		return
	}

	if err := c.validateRequest(r.Context(), req); err != nil {
		c.handleError(w, err)
		return
	}

	product := domain.Product{
		ID:              uuid.New().String(),
		Name:            req.Name,
		Description:     req.Description,
		RichDescription: req.RichDescription,
		Image:           req.Image,
		Brand:           req.Brand,
		Price:           req.Price,
		CategoryID:      req.Category,
		CountInStock:    req.CountInStock,
		Rating:          req.Rating,
		NumReviews:      req.NumReviews,
		IsFeatured:      req.IsFeatured,
		DateCreated:     time.Now().UTC(),
	}

	if err := c.products.Insert(r.Context(), product); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, c.toResponse(r.Context(), product))
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body")
		return
	}

	if err := c.validateRequest(r.Context(), req); err != nil {
		c.handleError(w, err)
		return
	}

	existing, err := c.products.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.handleError(w, err)
		return
	}

	product := domain.Product{
		ID:              existing.ID,
		Name:            req.Name,
		Description:     req.Description,
		RichDescription: req.RichDescription,
		Image:           req.Image,
		Brand:           req.Brand,
		Price:           req.Price,
		CategoryID:      req.Category,
		CountInStock:    req.CountInStock,
		Rating:          req.Rating,
		NumReviews:      req.NumReviews,
		IsFeatured:      req.IsFeatured,
		DateCreated:     existing.DateCreated,
	}

	if err := c.products.Update(r.Context(), product); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, c.toResponse(r.Context(), product))
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.products.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "the product was deleted successfully",
	})
}

func (c *Controller) Count(w http.ResponseWriter, r *http.Request) {
	count, err := c.products.Count(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.ProductCountResponse{Count: count})
}

func (c *Controller) Featured(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(chi.URLParam(r, "count"))
	if err != nil || limit < 0 {
		c.writeValidationError(w, "count must be a non-negative integer")
		return
	}

	products, err := c.products.FindFeatured(r.Context(), limit)
	if err != nil {
		c.handleError(w, err)
		return
	}

	responses := make([]dto.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = c.toResponse(r.Context(), product)
	}

	c.writeJSON(w, http.StatusOK, dto.FeaturedProductsResponse{Products: responses})
}

func (c *Controller) validateRequest(ctx context.Context, req dto.ProductRequest) error {
	var details []apperrors.ValidationDetail

	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.Price < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "price", Message: "price must be non-negative"})
	}
	if req.Category == "" {
		details = append(details, apperrors.ValidationDetail{Field: "category", Message: "category is required"})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	if _, err := c.categories.FindByID(ctx, req.Category); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return apperrors.NewValidationError("invalid category", apperrors.ValidationDetail{
				Field:   "category",
				Message: "category does not exist",
			})
		}
		return err
	}

	return nil
}

func (c *Controller) toResponse(ctx context.Context, product domain.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		RichDescription: product.RichDescription,
		Image:           product.Image,
		Brand:           product.Brand,
		Price:           product.Price,
		CountInStock:    product.CountInStock,
		Rating:          product.Rating,
		NumReviews:      product.NumReviews,
		IsFeatured:      product.IsFeatured,
		DateCreated:     product.DateCreated,
	}

	if product.CategoryID != "" {
		if category, err := c.categories.FindByID(ctx, product.CategoryID); err == nil {
			resp.Category = &dto.OrderCategory{
				ID:    category.ID,
				Name:  category.Name,
				Icon:  category.Icon,
				Color: category.Color,
			}
		}
	}

	return resp
}

func (c *Controller) handleError(w http.ResponseWriter, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "VALIDATION_ERROR",
			"message": ve.Message,
			"details": ve.Details,
		})
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

func (c *Controller) writeValidationError(w http.ResponseWriter, message string) {
	c.writeJSON(w, http.StatusBadRequest, map[string]string{
		"error":   "VALIDATION_ERROR",
		"message": message,
	})
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
