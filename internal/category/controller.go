package category

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

type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Insert(ctx context.Context, category domain.Category) error
	Update(ctx context.Context, category domain.Category) error
	DeleteByID(ctx context.Context, id string) error
}

type Controller struct {
	categories CategoryRepository
	logger     *zap.Logger
}

func NewController(categories CategoryRepository, logger *zap.Logger) *Controller {
	return &Controller{
		categories: categories,
		logger:     logger,
	}
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categories.FindAll(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = toResponse(category)
	}

	c.writeJSON(w, http.StatusOK, responses)
}

func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	category, err := c.categories.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toResponse(*category))
}

func (c *Controller) Create(w http.ResponseWriter, r *http.Request) {
	req, err := c.decode(r)
	if err != nil {
		c.handleError(w, err)
		return
	}

	category := domain.Category{
		ID:    uuid.New().String(),
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}

	if err := c.categories.Insert(r.Context(), category); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toResponse(category))
}

func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	req, err := c.decode(r)
	if err != nil {
		c.handleError(w, err)
		return
	}

	category := domain.Category{
		ID:    chi.URLParam(r, "id"),
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}

	if err := c.categories.Update(r.Context(), category); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toResponse(category))
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.categories.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "the category was deleted successfully",
	})
}

func (c *Controller) decode(r *http.Request) (dto.CategoryRequest, error) {
	var req dto.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, apperrors.NewValidationError("invalid JSON body")
	}

	if req.Name == "" {
		return req, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	return req, nil
}

func toResponse(category domain.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Icon:  category.Icon,
		Color: category.Color,
	}
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

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
