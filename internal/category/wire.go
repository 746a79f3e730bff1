package category

import (
	"database/sql"

	"go.uber.org/zap"

	"tienda/internal/category/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	return NewController(repository.NewMySQLCategoryRepository(db), logger)
}
