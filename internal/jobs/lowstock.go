package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

// LowStockUpdate runs the batch stock replenishment and records each updated
// product's new stock level.
type LowStockUpdate struct {
	log            *logger.Logger
	sink           Sink
	productService services.ProductService
}

func NewLowStockUpdate(baseLog *logger.Logger, sink Sink, productService services.ProductService) *LowStockUpdate {
	return &LowStockUpdate{
		log:            baseLog.With("job", "LowStockUpdate"),
		sink:           sink,
		productService: productService,
	}
}

func (l *LowStockUpdate) Name() string {
	return "low_stock_update"
}

func (l *LowStockUpdate) Run(ctx context.Context) error {
	timestamp := time.Now().Format(heartbeatTimestampLayout)

	result, err := l.productService.UpdateLowStock(ctx)
	if err != nil {
		if appendErr := l.sink.Append(fmt.Sprintf("%s ERROR: %v", timestamp, err)); appendErr != nil {
			l.log.Warn("Failed to append error line", "error", appendErr)
		}
		return err
	}

	if err := l.sink.Append(fmt.Sprintf("%s %s", timestamp, result.Message)); err != nil {
		return fmt.Errorf("append low stock line: %w", err)
	}
	for _, product := range result.Products {
		if err := l.sink.Append(fmt.Sprintf("- %s new stock: %d", product.Name, product.Stock)); err != nil {
			return fmt.Errorf("append low stock product line: %w", err)
		}
	}
	return nil
}
