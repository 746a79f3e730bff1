package product

import (
	"database/sql"

	"go.uber.org/zap"

	categoryrepo "tienda/internal/category/repository"
	productrepo "tienda/internal/product/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	products := productrepo.NewMySQLProductRepository(db)
	categories := categoryrepo.NewMySQLCategoryRepository(db)
	return NewController(products, categories, logger)
}
