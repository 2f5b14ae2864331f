package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Registry aggregates the process-wide request counters surfaced on /health.
type Registry struct {
	requests     Counter
	clientErrors Counter
	serverErrors Counter
	started      time.Time
}

func NewRegistry() *Registry {
	return &Registry{started: time.Now()}
}

// Observe records one finished request by response status class.
func (r *Registry) Observe(status int) {
	r.requests.Inc()
	switch {
	case status >= 500:
		r.serverErrors.Inc()
	case status >= 400:
		r.clientErrors.Inc()
	}
}

type Snapshot struct {
	Requests      uint64  `json:"requests"`
	ClientErrors  uint64  `json:"client_errors"`
	ServerErrors  uint64  `json:"server_errors"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Requests:      r.requests.Load(),
		ClientErrors:  r.clientErrors.Load(),
		ServerErrors:  r.serverErrors.Load(),
		UptimeSeconds: time.Since(r.started).Seconds(),
	}
}
