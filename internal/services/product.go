package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/types"
	"github.com/yungbote/crm-backend/internal/validation"
)

// Products with stock below this are picked up by UpdateLowStock.
const lowStockThreshold = 10

// Each remediation pass adds this much to every low product. It is a
// replenishment, not a clamp: repeated runs keep raising stock.
const restockIncrement = 10

type ProductInput struct {
	Name  string
	Price float64
	Stock int
}

type ProductResult struct {
	Product *types.Product
	Message string
}

type LowStockResult struct {
	Products []*types.Product
	Message  string
}

type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*ProductResult, error)
	List(ctx context.Context, filter types.ProductFilter) ([]*types.Product, error)
	UpdateLowStock(ctx context.Context) (*LowStockResult, error)
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	productRepo repos.ProductRepo
}

func NewProductService(db *gorm.DB, log *logger.Logger, productRepo repos.ProductRepo) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, productRepo: productRepo}
}

func (ps *productService) Create(ctx context.Context, input ProductInput) (*ProductResult, error) {
	if err := validation.Price(input.Price); err != nil {
		return &ProductResult{Message: err.Error()}, nil
	}
	if err := validation.Stock(input.Stock); err != nil {
		return &ProductResult{Message: err.Error()}, nil
	}

	product := &types.Product{
		Name:  input.Name,
		Price: input.Price,
		Stock: input.Stock,
	}
	created, err := ps.productRepo.Create(ctx, nil, []*types.Product{product})
	if err != nil {
		ps.log.Warn("Create product failed", "name", input.Name, "error", err)
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &ProductResult{Product: created[0], Message: "Product created successfully!"}, nil
}

func (ps *productService) List(ctx context.Context, filter types.ProductFilter) ([]*types.Product, error) {
	products, err := ps.productRepo.Filter(ctx, nil, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (ps *productService) UpdateLowStock(ctx context.Context) (*LowStockResult, error) {
	var updated []*types.Product
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		low, err := ps.productRepo.FilterBelowStock(ctx, tx, lowStockThreshold)
		if err != nil {
			return err
		}
		for _, product := range low {
			product.Stock += restockIncrement
			if err := ps.productRepo.Save(ctx, tx, product); err != nil {
				return err
			}
		}
		updated = low
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update low stock products: %w", err)
	}
	if updated == nil {
		updated = []*types.Product{}
	}
	return &LowStockResult{
		Products: updated,
		Message:  fmt.Sprintf("%d product(s) updated", len(updated)),
	}, nil
}
