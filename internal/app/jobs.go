package app

import (
	"fmt"

	"github.com/yungbote/crm-backend/internal/jobs"
	"github.com/yungbote/crm-backend/internal/platform/logger"
)

func wireJobs(cfg Config, log *logger.Logger, serviceset Services) (*jobs.Scheduler, error) {
	log.Info("Wiring scheduled jobs...")
	scheduler := jobs.NewScheduler(log)

	heartbeat := jobs.NewHeartbeat(log, jobs.NewFileSink(cfg.HeartbeatLogPath), cfg.HealthURL)
	if err := scheduler.Add(cfg.HeartbeatSchedule, heartbeat); err != nil {
		return nil, fmt.Errorf("schedule heartbeat: %w", err)
	}

	lowStock := jobs.NewLowStockUpdate(log, jobs.NewFileSink(cfg.LowStockLogPath), serviceset.Product)
	if err := scheduler.Add(cfg.LowStockSchedule, lowStock); err != nil {
		return nil, fmt.Errorf("schedule low stock update: %w", err)
	}

	report := jobs.NewReport(log, jobs.NewFileSink(cfg.ReportLogPath), serviceset.Report)
	if err := scheduler.Add(cfg.ReportSchedule, report); err != nil {
		return nil, fmt.Errorf("schedule report: %w", err)
	}

	reminders := jobs.NewOrderReminders(log, jobs.NewFileSink(cfg.ReminderLogPath), serviceset.Order)
	if err := scheduler.Add(cfg.ReminderSchedule, reminders); err != nil {
		return nil, fmt.Errorf("schedule order reminders: %w", err)
	}

	return scheduler, nil
}
