package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/crm-backend/internal/types"
)

func TestPhoneFormat(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"", true},
		{"+1234567", true},
		{"+123456789012345", true},
		{"123-456-7890", true},
		{"+123456", false},
		{"+1234567890123456", false},
		{"1234567890", false},
		{"12-345-6789", false},
		{"123-456-789", false},
		{"abc-def-ghij", false},
		{"+12345abc", false},
	}
	for _, tc := range cases {
		err := PhoneFormat(tc.phone)
		if tc.ok && err != nil {
			t.Errorf("PhoneFormat(%q): unexpected error %v", tc.phone, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidPhoneFormat) {
			t.Errorf("PhoneFormat(%q): want=ErrInvalidPhoneFormat got=%v", tc.phone, err)
		}
	}
}

func TestPrice(t *testing.T) {
	if err := Price(0.01); err != nil {
		t.Fatalf("Price(0.01): unexpected error %v", err)
	}
	if err := Price(0); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("Price(0): want=ErrInvalidPrice got=%v", err)
	}
	if err := Price(-5); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("Price(-5): want=ErrInvalidPrice got=%v", err)
	}
}

func TestStock(t *testing.T) {
	if err := Stock(0); err != nil {
		t.Fatalf("Stock(0): unexpected error %v", err)
	}
	if err := Stock(25); err != nil {
		t.Fatalf("Stock(25): unexpected error %v", err)
	}
	if err := Stock(-1); !errors.Is(err, ErrInvalidStock) {
		t.Fatalf("Stock(-1): want=ErrInvalidStock got=%v", err)
	}
}

type fakeCustomerRepo struct {
	exists bool
	err    error
}

func (f *fakeCustomerRepo) Create(ctx context.Context, tx *gorm.DB, customers []*types.Customer) ([]*types.Customer, error) {
	return customers, nil
}
func (f *fakeCustomerRepo) GetByID(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) (*types.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	return f.exists, f.err
}
func (f *fakeCustomerRepo) Filter(ctx context.Context, tx *gorm.DB, filter types.CustomerFilter) ([]*types.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	return 0, nil
}
func (f *fakeCustomerRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	return nil
}

func TestEmailUnique(t *testing.T) {
	ctx := context.Background()

	if err := EmailUnique(ctx, nil, &fakeCustomerRepo{exists: false}, "new@example.com"); err != nil {
		t.Fatalf("EmailUnique fresh email: unexpected error %v", err)
	}
	if err := EmailUnique(ctx, nil, &fakeCustomerRepo{exists: true}, "taken@example.com"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("EmailUnique taken email: want=ErrDuplicateEmail got=%v", err)
	}

	repoErr := errors.New("connection refused")
	err := EmailUnique(ctx, nil, &fakeCustomerRepo{err: repoErr}, "any@example.com")
	if !errors.Is(err, repoErr) {
		t.Fatalf("EmailUnique repo failure: want wrapped %v got=%v", repoErr, err)
	}
	if errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("EmailUnique repo failure must not read as a duplicate")
	}
}
