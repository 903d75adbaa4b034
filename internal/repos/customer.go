package repos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/types"
)

type CustomerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, customers []*types.Customer) ([]*types.Customer, error)
	GetByID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) (*types.Customer, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	Filter(ctx context.Context, tx *gorm.DB, filter types.CustomerFilter) ([]*types.Customer, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{db: db, log: repoLog}
}

var customerSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

func (cr *customerRepo) Create(ctx context.Context, tx *gorm.DB, customers []*types.Customer) ([]*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(customers) == 0 {
		return []*types.Customer{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&customers).Error; err != nil {
		return nil, err
	}

	return customers, nil
}

// GetByID returns (nil, nil) when no customer has the given id.
func (cr *customerRepo) GetByID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) (*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var result types.Customer
	if err := transaction.WithContext(ctx).
		Where("id = ?", customerID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (cr *customerRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Customer{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (cr *customerRepo) Filter(ctx context.Context, tx *gorm.DB, filter types.CustomerFilter) ([]*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	q := transaction.WithContext(ctx).Model(&types.Customer{})
	if filter.NameContains != "" {
		q = q.Where("LOWER(name) LIKE ?", containsPattern(filter.NameContains))
	}
	if filter.EmailContains != "" {
		q = q.Where("LOWER(email) LIKE ?", containsPattern(filter.EmailContains))
	}
	if filter.CreatedAtGte != nil {
		q = q.Where("created_at >= ?", *filter.CreatedAtGte)
	}
	if filter.CreatedAtLte != nil {
		q = q.Where("created_at <= ?", *filter.CreatedAtLte)
	}
	if filter.OrderBy != "" {
		column, ok := customerSortColumns[filter.OrderBy]
		if !ok {
			return nil, fmt.Errorf("unsupported customer sort key %q", filter.OrderBy)
		}
		q = q.Order(column + " ASC")
	}

	var results []*types.Customer
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *customerRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Customer{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (cr *customerRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).
		Where("1 = 1").
		Delete(&types.Customer{}).Error
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
