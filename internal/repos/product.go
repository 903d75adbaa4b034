package repos

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/types"
)

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Product, error)
	Filter(ctx context.Context, tx *gorm.DB, filter types.ProductFilter) ([]*types.Product, error)
	FilterBelowStock(ctx context.Context, tx *gorm.DB, threshold int) ([]*types.Product, error)
	Save(ctx context.Context, tx *gorm.DB, product *types.Product) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

var productSortColumns = map[string]string{
	"name":  "name",
	"price": "price",
	"stock": "stock",
}

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(products) == 0 {
		return []*types.Product{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (pr *productRepo) GetByIDs(ctx context.Context, tx *gorm.DB, productIDs []uuid.UUID) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Product
	if len(productIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", productIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) Filter(ctx context.Context, tx *gorm.DB, filter types.ProductFilter) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	q := transaction.WithContext(ctx).Model(&types.Product{})
	if filter.NameContains != "" {
		q = q.Where("LOWER(name) LIKE ?", containsPattern(filter.NameContains))
	}
	if filter.PriceGte != nil {
		q = q.Where("price >= ?", *filter.PriceGte)
	}
	if filter.PriceLte != nil {
		q = q.Where("price <= ?", *filter.PriceLte)
	}
	if filter.StockGte != nil {
		q = q.Where("stock >= ?", *filter.StockGte)
	}
	if filter.StockLte != nil {
		q = q.Where("stock <= ?", *filter.StockLte)
	}
	if filter.OrderBy != "" {
		column, ok := productSortColumns[filter.OrderBy]
		if !ok {
			return nil, fmt.Errorf("unsupported product sort key %q", filter.OrderBy)
		}
		q = q.Order(column + " ASC")
	}

	var results []*types.Product
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) FilterBelowStock(ctx context.Context, tx *gorm.DB, threshold int) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Product
	if err := transaction.WithContext(ctx).
		Where("stock < ?", threshold).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *productRepo) Save(ctx context.Context, tx *gorm.DB, product *types.Product) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Save(product).Error
}

func (pr *productRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Product{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (pr *productRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).
		Where("1 = 1").
		Delete(&types.Product{}).Error
}
