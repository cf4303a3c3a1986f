package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/OmiShrestha/rpi5-system-info/internal/errors"
)

const pidFile = "system-info.pid"

func path() string {
	return filepath.Join(os.TempDir(), pidFile)
}

// Write records the current process ID, refusing to start a second
// instance while the recorded process is still alive. A stale file left
// by a dead process is reclaimed.
func Write() error {
	errFactory := errors.New()

	if recorded, err := read(); err == nil {
		process, err := os.FindProcess(recorded)
		if err == nil && process.Signal(syscall.Signal(0)) == nil {
			return errFactory.WithData(errors.ErrAlreadyRunning, recorded)
		}
	}

	if err := os.WriteFile(path(), []byte(strconv.Itoa(os.Getpid())), 0o600); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

func read() (int, error) {
	raw, err := os.ReadFile(path())
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(string(raw))
}

// Remove deletes the PID file. A missing file is not an error.
func Remove() error {
	errFactory := errors.New()

	if err := os.Remove(path()); err != nil && !os.IsNotExist(err) {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}
