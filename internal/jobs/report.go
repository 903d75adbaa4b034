package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/crm-backend/internal/platform/logger"
	"github.com/yungbote/crm-backend/internal/services"
)

const reportTimestampLayout = "2006-01-02 15:04:05"

// Report appends one summary line per run: customer count, order count and
// total revenue.
type Report struct {
	log           *logger.Logger
	sink          Sink
	reportService services.ReportService
}

func NewReport(baseLog *logger.Logger, sink Sink, reportService services.ReportService) *Report {
	return &Report{
		log:           baseLog.With("job", "Report"),
		sink:          sink,
		reportService: reportService,
	}
}

func (r *Report) Name() string {
	return "report"
}

func (r *Report) Run(ctx context.Context) error {
	timestamp := time.Now().Format(reportTimestampLayout)

	summary, err := r.reportService.Summary(ctx)
	if err != nil {
		if appendErr := r.sink.Append(fmt.Sprintf("%s ERROR: %v", timestamp, err)); appendErr != nil {
			r.log.Warn("Failed to append error line", "error", appendErr)
		}
		return err
	}

	line := fmt.Sprintf("%s - Report: %d customers, %d orders, %g revenue",
		timestamp, summary.CustomersCount, summary.OrdersCount, summary.TotalRevenue)
	if err := r.sink.Append(line); err != nil {
		return fmt.Errorf("append report line: %w", err)
	}
	return nil
}
