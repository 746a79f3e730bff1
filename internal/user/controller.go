package user

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tienda/internal/domain"
	"tienda/internal/dto"
	apperrors "tienda/internal/errors"
)

type Controller struct {
	service *Service
	users   UserRepository
	logger  *zap.Logger
}

func NewController(service *Service, users UserRepository, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		users:   users,
		logger:  logger,
	}
}

func (c *Controller) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.handleError(w, apperrors.NewValidationError("invalid JSON body"))
		return
	}

	user, err := c.service.Register(r.Context(), req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toResponse(*user))
}

func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.handleError(w, apperrors.NewValidationError("invalid JSON body"))
		return
	}

	resp, err := c.service.Login(r.Context(), req)
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *Controller) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.users.FindAll(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	responses := make([]dto.UserResponse, len(users))
	for i, user := range users {
		responses[i] = toResponse(user)
	}

	c.writeJSON(w, http.StatusOK, responses)
}

func (c *Controller) Get(w http.ResponseWriter, r *http.Request) {
	user, err := c.users.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toResponse(*user))
}

func (c *Controller) Count(w http.ResponseWriter, r *http.Request) {
	count, err := c.users.Count(r.Context())
	if err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.UserCountResponse{UserCount: count})
}

func (c *Controller) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.users.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		c.handleError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "the user was deleted successfully",
	})
}

// toResponse never exposes the password hash.
func toResponse(user domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		IsAdmin:   user.IsAdmin,
		Street:    user.Street,
		Apartment: user.Apartment,
		Zip:       user.Zip,
		City:      user.City,
		Country:   user.Country,
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

	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeJSON(w, http.StatusUnauthorized, map[string]string{
			"message": ue.Message,
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
