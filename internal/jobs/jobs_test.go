package jobs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
	"github.com/yungbote/crm-backend/internal/types"
)

type memorySink struct {
	mu    sync.Mutex
	lines []string
}

func (m *memorySink) Append(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, line)
	return nil
}

func (m *memorySink) all() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lines...)
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestHeartbeatRecordsLivenessAndHealthcheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink := &memorySink{}
	job := NewHeartbeat(newTestLogger(t), sink, srv.URL)

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := sink.all()
	if len(lines) != 2 {
		t.Fatalf("line count: want=2 got=%d (%v)", len(lines), lines)
	}
	if !strings.HasSuffix(lines[0], "CRM is alive") {
		t.Fatalf("first line: got=%q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "healthcheck OK") {
		t.Fatalf("second line: got=%q", lines[1])
	}
}

func TestHeartbeatRecordsHealthcheckFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	sink := &memorySink{}
	job := NewHeartbeat(newTestLogger(t), sink, srv.URL)

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := sink.all()
	if len(lines) != 2 {
		t.Fatalf("line count: want=2 got=%d", len(lines))
	}
	if !strings.HasSuffix(lines[1], "healthcheck ERROR: 503") {
		t.Fatalf("second line: got=%q", lines[1])
	}
}

type fakeProductService struct {
	result *services.LowStockResult
	err    error
}

func (f *fakeProductService) Create(ctx context.Context, input services.ProductInput) (*services.ProductResult, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeProductService) List(ctx context.Context, filter types.ProductFilter) ([]*types.Product, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeProductService) UpdateLowStock(ctx context.Context) (*services.LowStockResult, error) {
	return f.result, f.err
}

func TestLowStockUpdateWritesMessageAndProducts(t *testing.T) {
	sink := &memorySink{}
	job := NewLowStockUpdate(newTestLogger(t), sink, &fakeProductService{
		result: &services.LowStockResult{
			Products: []*types.Product{
				{Name: "Laptop", Stock: 15},
				{Name: "Phone", Stock: 19},
			},
			Message: "2 product(s) updated",
		},
	})

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := sink.all()
	if len(lines) != 3 {
		t.Fatalf("line count: want=3 got=%d (%v)", len(lines), lines)
	}
	if !strings.HasSuffix(lines[0], "2 product(s) updated") {
		t.Fatalf("message line: got=%q", lines[0])
	}
	if lines[1] != "- Laptop new stock: 15" {
		t.Fatalf("first product line: got=%q", lines[1])
	}
	if lines[2] != "- Phone new stock: 19" {
		t.Fatalf("second product line: got=%q", lines[2])
	}
}

func TestLowStockUpdateRecordsFailure(t *testing.T) {
	sink := &memorySink{}
	wantErr := errors.New("db down")
	job := NewLowStockUpdate(newTestLogger(t), sink, &fakeProductService{err: wantErr})

	if err := job.Run(context.Background()); !errors.Is(err, wantErr) {
		t.Fatalf("Run: want=%v got=%v", wantErr, err)
	}

	lines := sink.all()
	if len(lines) != 1 || !strings.Contains(lines[0], "ERROR: db down") {
		t.Fatalf("error line: got=%v", lines)
	}
}

type fakeReportService struct {
	summary *services.Summary
	err     error
}

func (f *fakeReportService) CustomersCount(ctx context.Context) (int64, error) { return 0, f.err }
func (f *fakeReportService) OrdersCount(ctx context.Context) (int64, error)    { return 0, f.err }
func (f *fakeReportService) TotalRevenue(ctx context.Context) (float64, error) { return 0, f.err }
func (f *fakeReportService) Summary(ctx context.Context) (*services.Summary, error) {
	return f.summary, f.err
}

func TestReportWritesSummaryLine(t *testing.T) {
	sink := &memorySink{}
	job := NewReport(newTestLogger(t), sink, &fakeReportService{
		summary: &services.Summary{CustomersCount: 3, OrdersCount: 5, TotalRevenue: 1499.5},
	})

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	lines := sink.all()
	if len(lines) != 1 {
		t.Fatalf("line count: want=1 got=%d", len(lines))
	}
	if !strings.HasSuffix(lines[0], "- Report: 3 customers, 5 orders, 1499.5 revenue") {
		t.Fatalf("report line: got=%q", lines[0])
	}
}

type fakeOrderService struct {
	orders []*types.Order
	err    error
	gotGte *time.Time
}

func (f *fakeOrderService) Create(ctx context.Context, input services.OrderInput) (*services.OrderResult, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeOrderService) List(ctx context.Context, filter types.OrderFilter) ([]*types.Order, error) {
	f.gotGte = filter.OrderDateGte
	return f.orders, f.err
}

func TestOrderRemindersListsRecentOrders(t *testing.T) {
	sink := &memorySink{}
	orderID := uuid.New()
	fake := &fakeOrderService{
		orders: []*types.Order{{
			ID:        orderID,
			Customer:  &types.Customer{Email: "alice@example.com"},
			OrderDate: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		}},
	}
	job := NewOrderReminders(newTestLogger(t), sink, fake)

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if fake.gotGte == nil {
		t.Fatalf("reminder query missing order_date lower bound")
	}
	window := time.Since(*fake.gotGte)
	if window < 7*24*time.Hour-time.Minute || window > 7*24*time.Hour+time.Minute {
		t.Fatalf("reminder window: want about 7 days got=%v", window)
	}

	lines := sink.all()
	if len(lines) != 2 {
		t.Fatalf("line count: want=2 got=%d (%v)", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Order Reminder Run") {
		t.Fatalf("header line: got=%q", lines[0])
	}
	wantLine := "Order #" + orderID.String() + " | Email: alice@example.com | Date: 2025-03-10T12:00:00Z"
	if lines[1] != wantLine {
		t.Fatalf("order line: want=%q got=%q", wantLine, lines[1])
	}
}

func TestFileSinkAppends(t *testing.T) {
	path := t.TempDir() + "/log.txt"
	sink := NewFileSink(path)

	if err := sink.Append("first"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := sink.Append("second"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != "first\nsecond\n" {
		t.Fatalf("log content: got=%q", data)
	}
}
