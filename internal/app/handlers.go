package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/crm-backend/internal/handlers"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/server"
)

type Handlers struct {
	Customer *handlers.CustomerHandler
	Product  *handlers.ProductHandler
	Order    *handlers.OrderHandler
	Report   *handlers.ReportHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Customer: handlers.NewCustomerHandler(serviceset.Customer),
		Product:  handlers.NewProductHandler(serviceset.Product),
		Order:    handlers.NewOrderHandler(serviceset.Order),
		Report:   handlers.NewReportHandler(serviceset.Report),
	}
}

func wireRouter(cfg Config, handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AllowOrigins:    cfg.AllowOrigins,
		CustomerHandler: handlerset.Customer,
		ProductHandler:  handlerset.Product,
		OrderHandler:    handlerset.Order,
		ReportHandler:   handlerset.Report,
	})
}
