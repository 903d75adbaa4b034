package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/repos"
)

// Summary aggregates the whole store. TotalRevenue is 0 when no orders exist.
type Summary struct {
	CustomersCount int64   `json:"customers_count"`
	OrdersCount    int64   `json:"orders_count"`
	TotalRevenue   float64 `json:"total_revenue"`
}

type ReportService interface {
	CustomersCount(ctx context.Context) (int64, error)
	OrdersCount(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	Summary(ctx context.Context) (*Summary, error)
}

type reportService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	orderRepo    repos.OrderRepo
}

func NewReportService(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo, orderRepo repos.OrderRepo) ReportService {
	serviceLog := log.With("service", "ReportService")
	return &reportService{
		db:           db,
		log:          serviceLog,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func (rs *reportService) CustomersCount(ctx context.Context) (int64, error) {
	count, err := rs.customerRepo.Count(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

func (rs *reportService) OrdersCount(ctx context.Context) (int64, error) {
	count, err := rs.orderRepo.Count(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}

func (rs *reportService) TotalRevenue(ctx context.Context) (float64, error) {
	sum, err := rs.orderRepo.SumTotalAmount(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sum order totals: %w", err)
	}
	return sum, nil
}

func (rs *reportService) Summary(ctx context.Context) (*Summary, error) {
	customers, err := rs.CustomersCount(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := rs.OrdersCount(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := rs.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return &Summary{
		CustomersCount: customers,
		OrdersCount:    orders,
		TotalRevenue:   revenue,
	}, nil
}
