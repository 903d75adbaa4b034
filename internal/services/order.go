package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/types"
	"github.com/yungbote/crm-backend/internal/validation"
)

type OrderInput struct {
	CustomerID uuid.UUID
	ProductIDs []uuid.UUID
	OrderDate  *time.Time
}

type OrderResult struct {
	Order   *types.Order
	Message string
}

type OrderService interface {
	Create(ctx context.Context, input OrderInput) (*OrderResult, error)
	List(ctx context.Context, filter types.OrderFilter) ([]*types.Order, error)
}

type orderService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	productRepo  repos.ProductRepo
	orderRepo    repos.OrderRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo, productRepo repos.ProductRepo, orderRepo repos.OrderRepo) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{
		db:           db,
		log:          serviceLog,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
	}
}

// Create resolves the customer and every product, snapshots the total from
// current product prices and persists the order. There is no partial order: a
// single unresolved product rejects the whole request.
func (os *orderService) Create(ctx context.Context, input OrderInput) (*OrderResult, error) {
	var order *types.Order
	var softMessage string

	err := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer, err := os.customerRepo.GetByID(ctx, tx, input.CustomerID)
		if err != nil {
			return fmt.Errorf("resolve customer: %w", err)
		}
		if customer == nil {
			softMessage = validation.ErrInvalidCustomer.Error()
			return nil
		}

		if len(input.ProductIDs) == 0 {
			softMessage = validation.ErrEmptyProductList.Error()
			return nil
		}

		products, err := os.productRepo.GetByIDs(ctx, tx, input.ProductIDs)
		if err != nil {
			return fmt.Errorf("resolve products: %w", err)
		}
		if len(products) != len(input.ProductIDs) {
			softMessage = validation.ErrInvalidProduct.Error()
			return nil
		}

		total := 0.0
		for _, product := range products {
			total += product.Price
		}

		orderDate := time.Now()
		if input.OrderDate != nil {
			orderDate = *input.OrderDate
		}

		created, err := os.orderRepo.Create(ctx, tx, &types.Order{
			CustomerID:  customer.ID,
			Customer:    customer,
			Products:    products,
			TotalAmount: total,
			OrderDate:   orderDate,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		order = created
		return nil
	})
	if err != nil {
		os.log.Warn("Create order failed", "customer_id", input.CustomerID, "error", err)
		return nil, err
	}
	if softMessage != "" {
		return &OrderResult{Message: softMessage}, nil
	}
	return &OrderResult{Order: order, Message: "Order created successfully!"}, nil
}

func (os *orderService) List(ctx context.Context, filter types.OrderFilter) ([]*types.Order, error) {
	orders, err := os.orderRepo.Filter(ctx, nil, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
