package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/types"
	"github.com/yungbote/crm-backend/internal/validation"
)

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// CustomerResult reports a soft outcome: Customer is nil and Message carries
// the reason when validation rejects the input. Infrastructure failures come
// back as errors instead.
type CustomerResult struct {
	Customer *types.Customer
	Message  string
}

type BulkCreateResult struct {
	Customers []*types.Customer
	Errors    []string
}

type CustomerService interface {
	Create(ctx context.Context, input CustomerInput) (*CustomerResult, error)
	BulkCreate(ctx context.Context, inputs []CustomerInput) (*BulkCreateResult, error)
	List(ctx context.Context, filter types.CustomerFilter) ([]*types.Customer, error)
}

type customerService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, customerRepo repos.CustomerRepo) CustomerService {
	serviceLog := log.With("service", "CustomerService")
	return &customerService{db: db, log: serviceLog, customerRepo: customerRepo}
}

func (cs *customerService) Create(ctx context.Context, input CustomerInput) (*CustomerResult, error) {
	if err := validation.EmailUnique(ctx, nil, cs.customerRepo, input.Email); err != nil {
		if errors.Is(err, validation.ErrDuplicateEmail) {
			return &CustomerResult{Message: err.Error()}, nil
		}
		return nil, err
	}
	if err := validation.PhoneFormat(input.Phone); err != nil {
		return &CustomerResult{Message: err.Error()}, nil
	}

	customer := &types.Customer{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
	}
	created, err := cs.customerRepo.Create(ctx, nil, []*types.Customer{customer})
	if err != nil {
		cs.log.Warn("Create customer failed", "email", input.Email, "error", err)
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &CustomerResult{Customer: created[0], Message: "Customer created successfully!"}, nil
}

// BulkCreate processes every input inside one transaction around the whole
// batch. Items fail independently: a rejected or errored item adds an entry
// to Errors (input order preserved) and the loop moves on. Only a failure to
// commit the surrounding transaction surfaces as an error and rolls back the
// batch.
func (cs *customerService) BulkCreate(ctx context.Context, inputs []CustomerInput) (*BulkCreateResult, error) {
	result := &BulkCreateResult{
		Customers: []*types.Customer{},
		Errors:    []string{},
	}

	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, input := range inputs {
			if err := validation.EmailUnique(ctx, tx, cs.customerRepo, input.Email); err != nil {
				if errors.Is(err, validation.ErrDuplicateEmail) {
					result.Errors = append(result.Errors, fmt.Sprintf("%s: Email already exists", input.Email))
					continue
				}
				result.Errors = append(result.Errors, fmt.Sprintf("%s: Unexpected error (%v)", input.Email, err))
				continue
			}
			if err := validation.PhoneFormat(input.Phone); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("%s: Invalid phone format", input.Email))
				continue
			}

			customer := &types.Customer{
				Name:  input.Name,
				Email: input.Email,
				Phone: input.Phone,
			}
			created, err := cs.customerRepo.Create(ctx, tx, []*types.Customer{customer})
			if err != nil {
				cs.log.Warn("Bulk create item failed", "email", input.Email, "error", err)
				result.Errors = append(result.Errors, fmt.Sprintf("%s: Unexpected error (%v)", input.Email, err))
				continue
			}
			result.Customers = append(result.Customers, created[0])
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bulk create customers: %w", err)
	}
	return result, nil
}

func (cs *customerService) List(ctx context.Context, filter types.CustomerFilter) ([]*types.Customer, error) {
	customers, err := cs.customerRepo.Filter(ctx, nil, filter)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}
