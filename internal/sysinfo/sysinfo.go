package sysinfo

import (
	"context"
	"math"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/OmiShrestha/rpi5-system-info/internal/logger"
)

const vcgencmdTimeout = 2 * time.Second

type sampler struct {
	root    string
	log     logger.Logger
	now     func() time.Time
	readers []temperatureReader

	// lookPath and execCommand allow injection of subprocess handling
	// for testing.
	lookPath    func(string) (string, error)
	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// Option configures a Sampler during construction.
type Option func(*sampler)

// WithRoot overrides the filesystem root the counter files are read
// from. Default is "/".
func WithRoot(root string) Option {
	return func(s *sampler) {
		if root != "" {
			s.root = root
		}
	}
}

// WithLogger sets the logger used for degraded-reading diagnostics.
func WithLogger(log logger.Logger) Option {
	return func(s *sampler) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Sampler reading from the live system.
func New(opts ...Option) Sampler {
	s := &sampler{
		root:        "/",
		log:         logger.New(),
		now:         time.Now,
		lookPath:    exec.LookPath,
		execCommand: exec.CommandContext,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.readers = []temperatureReader{
		&thermalZoneReader{path: s.thermalPath()},
		&vcgencmdReader{
			binary:      "vcgencmd",
			timeout:     vcgencmdTimeout,
			lookPath:    s.lookPath,
			execCommand: s.execCommand,
		},
	}

	return s
}

// Collect gathers temperature, memory and uptime readings plus the
// capture time in epoch seconds.
func (s *sampler) Collect(ctx context.Context) Snapshot {
	snap := Snapshot{
		RAM:       s.RAM(),
		Uptime:    s.Uptime(),
		Timestamp: s.now().Unix(),
	}

	if temp, ok := s.CPUTemperature(ctx); ok {
		rounded := round2(temp)
		snap.CPUTempC = &rounded
	}

	return snap
}

// CPUTemperature tries each temperature source in order and returns the
// first successful reading. All sources failing is not an error; the
// reading is simply unavailable.
func (s *sampler) CPUTemperature(ctx context.Context) (float64, bool) {
	for _, r := range s.readers {
		if !r.available() {
			continue
		}

		temp, err := r.read(ctx)
		if err != nil {
			s.log.Debug().Str("source", r.source()).Err(err).Msg("Temperature reader failed")
			continue
		}

		return temp, true
	}

	s.log.Debug().Msg("No temperature source available")

	return 0, false
}

func (s *sampler) thermalPath() string {
	return filepath.Join(s.root, "sys", "class", "thermal", "thermal_zone0", "temp")
}

func (s *sampler) meminfoPath() string {
	return filepath.Join(s.root, "proc", "meminfo")
}

func (s *sampler) uptimePath() string {
	return filepath.Join(s.root, "proc", "uptime")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
