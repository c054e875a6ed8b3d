package metrics

import (
	"sync/atomic"
	"time"
)

// Collector keeps process-lifetime request counters for the /metrics endpoint.
type Collector struct {
	totalRequests   atomic.Uint64
	clientErrors    atomic.Uint64
	serverErrors    atomic.Uint64
	totalDurationMs atomic.Uint64
	started         time.Time
}

func New() *Collector {
	return &Collector{started: time.Now()}
}

func (c *Collector) Record(status int, duration time.Duration) {
	c.totalRequests.Add(1)
	switch {
	case status >= 500:
		c.serverErrors.Add(1)
	case status >= 400:
		c.clientErrors.Add(1)
	}
	c.totalDurationMs.Add(uint64(duration.Milliseconds()))
}

type Snapshot struct {
	RequestsTotal     uint64  `json:"requestsTotal"`
	ClientErrorsTotal uint64  `json:"clientErrorsTotal"`
	ServerErrorsTotal uint64  `json:"serverErrorsTotal"`
	AvgDurationMs     float64 `json:"avgDurationMs"`
	TotalDurationMs   uint64  `json:"totalDurationMs"`
	UptimeSeconds     int64   `json:"uptimeSeconds"`
}

func (c *Collector) Snapshot() Snapshot {
	total := c.totalRequests.Load()
	totalMs := c.totalDurationMs.Load()
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return Snapshot{
		RequestsTotal:     total,
		ClientErrorsTotal: c.clientErrors.Load(),
		ServerErrorsTotal: c.serverErrors.Load(),
		AvgDurationMs:     avg,
		TotalDurationMs:   totalMs,
		UptimeSeconds:     int64(time.Since(c.started).Seconds()),
	}
}
