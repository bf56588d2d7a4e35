// Package observability aggregates service counters and process metrics
// for the debug endpoint.
package observability

import (
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Snapshot is the point-in-time view served on the debug endpoint.
type Snapshot struct {
	MessagesPosted     uint64  `json:"messages_posted"`
	EventsPosted       uint64  `json:"events_posted"`
	EventsPatched      uint64  `json:"events_patched"`
	BackendFailures    uint64  `json:"backend_failures"`
	SideEffectFailures uint64  `json:"side_effect_failures"`
	RSSBytes           uint64  `json:"rss_bytes"`
	CPUPercent         float64 `json:"cpu_percent"`
	At                 string  `json:"at"`
}

// Stats holds atomic counters incremented on the hot path; process
// metrics are sampled lazily when a snapshot is requested.
type Stats struct {
	log *slog.Logger

	messagesPosted     uint64
	eventsPosted       uint64
	eventsPatched      uint64
	backendFailures    uint64
	sideEffectFailures uint64
}

func NewStats(log *slog.Logger) *Stats {
	return &Stats{log: log}
}

func (s *Stats) IncrMessagesPosted() { atomic.AddUint64(&s.messagesPosted, 1) }

func (s *Stats) IncrEventsPosted() { atomic.AddUint64(&s.eventsPosted, 1) }

func (s *Stats) IncrEventsPatched() { atomic.AddUint64(&s.eventsPatched, 1) }

func (s *Stats) IncrBackendFailures() { atomic.AddUint64(&s.backendFailures, 1) }

func (s *Stats) IncrSideEffectFailures() { atomic.AddUint64(&s.sideEffectFailures, 1) }

// Snapshot reads the counters and samples memory and CPU of the current
// process. Sampling failures degrade to zero values rather than failing
// the debug endpoint.
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		MessagesPosted:     atomic.LoadUint64(&s.messagesPosted),
		EventsPosted:       atomic.LoadUint64(&s.eventsPosted),
		EventsPatched:      atomic.LoadUint64(&s.eventsPatched),
		BackendFailures:    atomic.LoadUint64(&s.backendFailures),
		SideEffectFailures: atomic.LoadUint64(&s.sideEffectFailures),
		At:                 time.Now().UTC().Format(time.RFC3339),
	}

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		s.log.Debug("Self process lookup failed", "err", err)
		return snap
	}
	if memInfo, err := p.MemoryInfo(); err == nil {
		snap.RSSBytes = memInfo.RSS
	}
	if cpu, err := p.CPUPercent(); err == nil {
		snap.CPUPercent = cpu
	}
	return snap
}
