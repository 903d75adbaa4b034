package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/types"
)

type fixture struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	productRepo  repos.ProductRepo
	orderRepo    repos.OrderRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.Customer{}, &types.Product{}, &types.Order{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return &fixture{
		db:           db,
		log:          log,
		customerRepo: repos.NewCustomerRepo(db, log),
		productRepo:  repos.NewProductRepo(db, log),
		orderRepo:    repos.NewOrderRepo(db, log),
	}
}

func (f *fixture) customers() CustomerService {
	return NewCustomerService(f.db, f.log, f.customerRepo)
}

func (f *fixture) products() ProductService {
	return NewProductService(f.db, f.log, f.productRepo)
}

func (f *fixture) orders() OrderService {
	return NewOrderService(f.db, f.log, f.customerRepo, f.productRepo, f.orderRepo)
}

func (f *fixture) reports() ReportService {
	return NewReportService(f.db, f.log, f.customerRepo, f.orderRepo)
}
