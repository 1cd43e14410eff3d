package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Snapshot aggregates service counters with process self-stats for /healthz.
type Snapshot struct {
	ChecksRun      uint64  `json:"checks_run"`
	RedFlagsRaised uint64  `json:"red_flags_raised"`
	EntriesCreated uint64  `json:"entries_created"`
	AllocMemMb     uint64  `json:"alloc_mem_mb"`
	RssMb          uint64  `json:"rss_mb"`
	CPUPercent     float64 `json:"cpu_percent"`
	UptimeSeconds  int64   `json:"uptime_seconds"`
}

// Manager tracks usage counters with atomics. There is no telemetry loop:
// a snapshot is computed on demand by the health handler.
type Manager struct {
	log       *slog.Logger
	startedAt time.Time
	proc      *process.Process

	checksRun      uint64
	redFlagsRaised uint64
	entriesCreated uint64
}

func NewManager(log *slog.Logger) *Manager {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process self-stats unavailable", "error", err)
		p = nil
	}
	return &Manager{log: log, startedAt: time.Now().UTC(), proc: p}
}

func (m *Manager) CheckRan(redFlags int) {
	atomic.AddUint64(&m.checksRun, 1)
	if redFlags > 0 {
		atomic.AddUint64(&m.redFlagsRaised, uint64(redFlags))
	}
}

func (m *Manager) EntryCreated() {
	atomic.AddUint64(&m.entriesCreated, 1)
}

func (m *Manager) Snapshot() Snapshot {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	snapshot := Snapshot{
		ChecksRun:      atomic.LoadUint64(&m.checksRun),
		RedFlagsRaised: atomic.LoadUint64(&m.redFlagsRaised),
		EntriesCreated: atomic.LoadUint64(&m.entriesCreated),
		AllocMemMb:     mem.Alloc / 1024 / 1024,
		UptimeSeconds:  int64(time.Since(m.startedAt).Seconds()),
	}

	if m.proc != nil {
		if info, err := m.proc.MemoryInfo(); err == nil {
			snapshot.RssMb = info.RSS / 1024 / 1024
		}
		if cpu, err := m.proc.CPUPercent(); err == nil {
			snapshot.CPUPercent = cpu
		}
	}
	return snapshot
}
