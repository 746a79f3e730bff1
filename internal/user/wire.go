package user

import (
	"database/sql"

	"go.uber.org/zap"

	"tienda/internal/auth"
	"tienda/internal/user/repository"
)

func NewModule(db *sql.DB, tokens *auth.TokenManager, logger *zap.Logger) *Controller {
	users := repository.NewMySQLUserRepository(db)
	service := NewService(users, tokens)
	return NewController(service, users, logger)
}
