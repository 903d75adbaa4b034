package app

import (
	"strings"

	"github.com/yungbote/crm-backend/internal/platform/envutil"
)

type Config struct {
	Port         string
	AllowOrigins []string

	HeartbeatSchedule string
	LowStockSchedule  string
	ReportSchedule    string
	ReminderSchedule  string

	HeartbeatLogPath string
	LowStockLogPath  string
	ReportLogPath    string
	ReminderLogPath  string

	HealthURL string
}

func LoadConfig() Config {
	port := envutil.Str("PORT", "8080")
	origins := strings.Split(envutil.Str("CORS_ALLOW_ORIGINS", "http://localhost:3000"), ",")
	return Config{
		Port:         port,
		AllowOrigins: origins,

		HeartbeatSchedule: envutil.Str("HEARTBEAT_SCHEDULE", "@every 5m"),
		LowStockSchedule:  envutil.Str("LOW_STOCK_SCHEDULE", "@every 12h"),
		ReportSchedule:    envutil.Str("REPORT_SCHEDULE", "@weekly"),
		ReminderSchedule:  envutil.Str("REMINDER_SCHEDULE", "@daily"),

		HeartbeatLogPath: envutil.Str("HEARTBEAT_LOG", "/tmp/crm_heartbeat_log.txt"),
		LowStockLogPath:  envutil.Str("LOW_STOCK_LOG", "/tmp/low_stock_updates_log.txt"),
		ReportLogPath:    envutil.Str("REPORT_LOG", "/tmp/crm_report_log.txt"),
		ReminderLogPath:  envutil.Str("REMINDER_LOG", "/tmp/order_reminders_log.txt"),

		HealthURL: envutil.Str("HEALTH_URL", "http://localhost:"+port+"/healthcheck"),
	}
}
