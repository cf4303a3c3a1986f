package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/OmiShrestha/rpi5-system-info/internal/errors"
	"github.com/OmiShrestha/rpi5-system-info/internal/logger"
	"github.com/OmiShrestha/rpi5-system-info/internal/sysinfo"
)

const (
	partitionPrefix = "metrics_"
	partitionLayout = "20060102"

	secondsPerHour = 3600
)

type store struct {
	cfg Config
	log logger.Logger
	now func() time.Time
	mu  sync.Mutex
}

// NewStore creates a file-backed Store, creating the log directory up
// front so the first append cannot fail on a missing parent.
func NewStore(cfg Config, log logger.Logger) (Store, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, errFactory.Wrap(ErrInvalidConfig, err)
	}

	if log == nil {
		log = logger.New()
	}

	if err := os.MkdirAll(cfg.LogDir, dirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	log.Debug().
		Str("log_dir", cfg.LogDir).
		Int("max_entries", cfg.MaxEntries).
		Msg("History store initialized")

	return &store{
		cfg: cfg,
		log: log,
		now: time.Now,
	}, nil
}

// partitionPath names the file for the current calendar day. It is
// computed on every operation, so a process crossing midnight rolls to
// a fresh partition on its next write.
func (s *store) partitionPath() string {
	name := partitionPrefix + s.now().Format(partitionLayout) + ".json"
	return filepath.Join(s.cfg.LogDir, name)
}

func (s *store) Append(snap sysinfo.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{
		Timestamp:      snap.Timestamp,
		Datetime:       s.now().Format(time.RFC3339),
		CPUTempC:       snap.CPUTempC,
		RAMUsedPercent: snap.RAM.UsedPercent,
		RAMUsedMB:      snap.RAM.UsedMB,
	}

	path := s.partitionPath()
	entries := append(s.loadEntries(path), entry)

	// Keep only the newest entries once the cap is exceeded.
	if len(entries) > s.cfg.MaxEntries {
		entries = entries[len(entries)-s.cfg.MaxEntries:]
	}

	return s.writeEntries(path, entries)
}

func (s *store) Recent(hours int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Unix() - int64(hours)*secondsPerHour
	entries := s.loadEntries(s.partitionPath())

	recent := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp >= cutoff {
			recent = append(recent, e)
		}
	}

	return recent
}

// loadEntries is total: a missing partition is empty, an unreadable or
// corrupt one is logged and treated as empty.
func (s *store) loadEntries(path string) []Entry {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", path).Msg("History partition unreadable")
		}
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("History partition corrupt, starting over")
		return []Entry{}
	}

	return entries
}

// writeEntries replaces the partition atomically (temp file + rename)
// so concurrent readers never observe a partial write.
func (s *store) writeEntries(path string, entries []Entry) error {
	errFactory := errors.New()

	encoded, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errFactory.Wrap(ErrEncodeFailed, err)
	}

	tmp, err := os.CreateTemp(s.cfg.LogDir, ".tmp-metrics-*.json")
	if err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	if err := tmp.Close(); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errFactory.Wrap(ErrWriteFailed, err)
	}

	success = true

	return nil
}
