package repos

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/types"
)

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, order *types.Order) (*types.Order, error)
	Filter(ctx context.Context, tx *gorm.DB, filter types.OrderFilter) ([]*types.Order, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	SumTotalAmount(ctx context.Context, tx *gorm.DB) (float64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

var orderSortColumns = map[string]string{
	"total_amount": "orders.total_amount",
	"order_date":   "orders.order_date",
}

// Create persists the order and its product associations. The referenced
// products must already exist; only join rows are written for them.
func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, order *types.Order) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	// Omit("Products.*") writes join rows without touching product records;
	// Omit("Customer") leaves the customer row alone and relies on CustomerID.
	if err := transaction.WithContext(ctx).
		Omit("Customer", "Products.*").
		Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (or *orderRepo) Filter(ctx context.Context, tx *gorm.DB, filter types.OrderFilter) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	// Joins below would make a bare SELECT * ambiguous (both orders and
	// customers carry an id column), so scan order columns only.
	q := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Select("orders.*").
		Preload("Customer").
		Preload("Products")
	if filter.TotalAmountGte != nil {
		q = q.Where("orders.total_amount >= ?", *filter.TotalAmountGte)
	}
	if filter.TotalAmountLte != nil {
		q = q.Where("orders.total_amount <= ?", *filter.TotalAmountLte)
	}
	if filter.OrderDateGte != nil {
		q = q.Where("orders.order_date >= ?", *filter.OrderDateGte)
	}
	if filter.OrderDateLte != nil {
		q = q.Where("orders.order_date <= ?", *filter.OrderDateLte)
	}
	if filter.CustomerNameContains != "" {
		q = q.Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("LOWER(customers.name) LIKE ?", containsPattern(filter.CustomerNameContains))
	}
	if filter.ProductNameContains != "" {
		// An order matches when any of its products does; DISTINCT keeps
		// multi-product matches from duplicating rows.
		q = q.Joins("JOIN order_products ON order_products.order_id = orders.id").
			Joins("JOIN products ON products.id = order_products.product_id").
			Where("LOWER(products.name) LIKE ?", containsPattern(filter.ProductNameContains)).
			Distinct("orders.*")
	}
	if filter.OrderBy != "" {
		column, ok := orderSortColumns[filter.OrderBy]
		if !ok {
			return nil, fmt.Errorf("unsupported order sort key %q", filter.OrderBy)
		}
		q = q.Order(column + " ASC")
	}

	var results []*types.Order
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *orderRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumTotalAmount returns 0 when there are no orders.
func (or *orderRepo) SumTotalAmount(ctx context.Context, tx *gorm.DB) (float64, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var sum float64
	if err := transaction.WithContext(ctx).
		Model(&types.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

func (or *orderRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	if err := transaction.WithContext(ctx).
		Exec("DELETE FROM order_products").Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).
		Where("1 = 1").
		Delete(&types.Order{}).Error
}
