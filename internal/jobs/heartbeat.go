package jobs

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/yungbote/crm-backend/internal/platform/logger"
)

const heartbeatTimestampLayout = "02/01/2006-15:04:05"

// Heartbeat appends a liveness line and then probes the API's healthcheck
// endpoint, recording the outcome.
type Heartbeat struct {
	log       *logger.Logger
	sink      Sink
	healthURL string
	client    *http.Client
}

func NewHeartbeat(baseLog *logger.Logger, sink Sink, healthURL string) *Heartbeat {
	return &Heartbeat{
		log:       baseLog.With("job", "Heartbeat"),
		sink:      sink,
		healthURL: healthURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *Heartbeat) Name() string {
	return "heartbeat"
}

func (h *Heartbeat) Run(ctx context.Context) error {
	timestamp := time.Now().Format(heartbeatTimestampLayout)
	if err := h.sink.Append(fmt.Sprintf("%s CRM is alive", timestamp)); err != nil {
		return fmt.Errorf("append heartbeat line: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.healthURL, nil)
	if err != nil {
		return h.sink.Append(fmt.Sprintf("%s healthcheck EXCEPTION: %v", timestamp, err))
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return h.sink.Append(fmt.Sprintf("%s healthcheck EXCEPTION: %v", timestamp, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return h.sink.Append(fmt.Sprintf("%s healthcheck OK", timestamp))
	}
	return h.sink.Append(fmt.Sprintf("%s healthcheck ERROR: %d", timestamp, resp.StatusCode))
}
