package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/crm-backend/internal/db"
	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/repos"
	"github.com/yungbote/crm-backend/internal/types"
)

// Seeds the database with a small sample set, wiping existing records first.
func main() {
	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	theDB := pg.DB()

	customerRepo := repos.NewCustomerRepo(theDB, log)
	productRepo := repos.NewProductRepo(theDB, log)
	orderRepo := repos.NewOrderRepo(theDB, log)

	ctx := context.Background()

	if err := orderRepo.DeleteAll(ctx, nil); err != nil {
		log.Fatal("Failed to delete orders", "error", err)
	}
	if err := customerRepo.DeleteAll(ctx, nil); err != nil {
		log.Fatal("Failed to delete customers", "error", err)
	}
	if err := productRepo.DeleteAll(ctx, nil); err != nil {
		log.Fatal("Failed to delete products", "error", err)
	}

	customers := []*types.Customer{
		{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
	}
	if _, err := customerRepo.Create(ctx, nil, customers); err != nil {
		log.Fatal("Failed to seed customers", "error", err)
	}

	products := []*types.Product{
		{Name: "Laptop", Price: 999.99, Stock: 5},
		{Name: "Phone", Price: 499.99, Stock: 10},
		{Name: "Headphones", Price: 99.99, Stock: 20},
	}
	if _, err := productRepo.Create(ctx, nil, products); err != nil {
		log.Fatal("Failed to seed products", "error", err)
	}

	log.Info("Database seeded successfully", "customers", len(customers), "products", len(products))
}
