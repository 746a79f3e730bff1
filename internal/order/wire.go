package order

import (
	"database/sql"

	"go.uber.org/zap"

	categoryrepo "tienda/internal/category/repository"
	"tienda/internal/events"
	"tienda/internal/infrastructure/mysql"
	"tienda/internal/order/controller"
	orderrepo "tienda/internal/order/repository"
	"tienda/internal/order/service"
	"tienda/internal/order/usecase"
	productrepo "tienda/internal/product/repository"
	userrepo "tienda/internal/user/repository"
)

func NewModule(db *sql.DB, publisher events.Publisher, logger *zap.Logger) *controller.OrderController {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	itemRepo := orderrepo.NewMySQLOrderItemRepository(db)
	productRepo := productrepo.NewMySQLProductRepository(db)
	categoryRepo := categoryrepo.NewMySQLCategoryRepository(db)
	userRepo := userrepo.NewMySQLUserRepository(db)

	lifecycle := service.NewOrderService(
		mysql.NewTxManager(db),
		orderRepo,
		itemRepo,
		productRepo,
		publisher,
		logger,
	)

	queries := usecase.NewOrderQueryUseCase(
		orderRepo,
		itemRepo,
		productRepo,
		categoryRepo,
		userRepo,
		logger,
	)

	return controller.NewOrderController(lifecycle, queries, logger)
}
