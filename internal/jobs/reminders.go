package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
	"github.com/yungbote/crm-backend/internal/types"
)

const reminderWindow = 7 * 24 * time.Hour

// OrderReminders lists orders placed inside the reminder window and appends
// one line per order with the customer's email.
type OrderReminders struct {
	log          *logger.Logger
	sink         Sink
	orderService services.OrderService
}

func NewOrderReminders(baseLog *logger.Logger, sink Sink, orderService services.OrderService) *OrderReminders {
	return &OrderReminders{
		log:          baseLog.With("job", "OrderReminders"),
		sink:         sink,
		orderService: orderService,
	}
}

func (o *OrderReminders) Name() string {
	return "order_reminders"
}

func (o *OrderReminders) Run(ctx context.Context) error {
	since := time.Now().Add(-reminderWindow)
	orders, err := o.orderService.List(ctx, types.OrderFilter{OrderDateGte: &since})
	if err != nil {
		if appendErr := o.sink.Append(fmt.Sprintf("Error on %s: %v", time.Now().Format(reportTimestampLayout), err)); appendErr != nil {
			o.log.Warn("Failed to append error line", "error", appendErr)
		}
		return err
	}

	if err := o.sink.Append(fmt.Sprintf("--- %s Order Reminder Run ---", time.Now().Format(reportTimestampLayout))); err != nil {
		return fmt.Errorf("append reminder header: %w", err)
	}
	for _, order := range orders {
		email := ""
		if order.Customer != nil {
			email = order.Customer.Email
		}
		line := fmt.Sprintf("Order #%s | Email: %s | Date: %s", order.ID, email, order.OrderDate.Format(time.RFC3339))
		if err := o.sink.Append(line); err != nil {
			return fmt.Errorf("append reminder line: %w", err)
		}
	}
	return nil
}
