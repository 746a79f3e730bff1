package user

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tienda/internal/auth"
	"tienda/internal/domain"
	"tienda/internal/dto"
	apperrors "tienda/internal/errors"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Insert(ctx context.Context, user domain.User) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// Service handles registration and credential checks; everything else is
// plain repository access.
type Service struct {
	users  UserRepository
	tokens *auth.TokenManager
}

func NewService(users UserRepository, tokens *auth.TokenManager) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

func (s *Service) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	var details []apperrors.ValidationDetail
	if req.Name == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if !strings.Contains(req.Email, "@") {
		details = append(details, apperrors.ValidationDetail{Field: "email", Message: "email must be a valid address"})
	}
	if len(req.Password) < 6 {
		details = append(details, apperrors.ValidationDetail{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.NewInternalError("hashing password", err)
	}

	user := domain.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		IsAdmin:      req.IsAdmin,
		Street:       req.Street,
		Apartment:    req.Apartment,
		Zip:          req.Zip,
		City:         req.City,
		Country:      req.Country,
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, apperrors.NewInternalError("persisting user", err)
	}

	return &user, nil
}

// Login checks the credentials and issues a signed token. Wrong email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return nil, apperrors.NewInternalError("issuing token", err)
	}

	return &dto.LoginResponse{User: user.Email, Token: token}, nil
}
