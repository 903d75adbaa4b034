package validation

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/repos"
)

var (
	ErrDuplicateEmail     = errors.New("Email already exists.")
	ErrInvalidPhoneFormat = errors.New("Invalid phone format.")
	ErrInvalidPrice       = errors.New("Price must be positive.")
	ErrInvalidStock       = errors.New("Stock cannot be negative.")
	ErrInvalidCustomer    = errors.New("Invalid customer ID")
	ErrInvalidProduct     = errors.New("Invalid product ID(s)")
	ErrEmptyProductList   = errors.New("At least one product must be selected.")
)

// Accepted phone shapes: international "+" followed by 7-15 digits, or the
// local 3-3-4 hyphenated form.
var (
	internationalPhone = regexp.MustCompile(`^\+\d{7,15}$`)
	localPhone         = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
)

// PhoneFormat accepts an empty phone; customers are not required to have one.
func PhoneFormat(phone string) error {
	if phone == "" {
		return nil
	}
	if internationalPhone.MatchString(phone) || localPhone.MatchString(phone) {
		return nil
	}
	return ErrInvalidPhoneFormat
}

func Price(price float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

func Stock(stock int) error {
	if stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

// EmailUnique checks the email against existing customers, exact
// (case-sensitive) match. Repository failures are returned as-is so callers
// can tell infrastructure faults apart from the validation outcome.
func EmailUnique(ctx context.Context, tx *gorm.DB, customerRepo repos.CustomerRepo, email string) error {
	exists, err := customerRepo.EmailExists(ctx, tx, email)
	if err != nil {
		return fmt.Errorf("check email uniqueness: %w", err)
	}
	if exists {
		return ErrDuplicateEmail
	}
	return nil
}
