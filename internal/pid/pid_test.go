package pid_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/OmiShrestha/rpi5-system-info/internal/errors"
	"github.com/OmiShrestha/rpi5-system-info/internal/pid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pidPath(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)

	return filepath.Join(os.TempDir(), "system-info.pid")
}

func TestWriteAndRemove(t *testing.T) {
	path := pidPath(t)

	require.NoError(t, pid.Write())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(raw))

	require.NoError(t, pid.Remove())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing an absent file is fine.
	require.NoError(t, pid.Remove())
}

func TestWriteRefusesSecondInstance(t *testing.T) {
	path := pidPath(t)

	// The test process itself plays the running instance.
	require.NoError(t, os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o600))

	err := pid.Write()
	require.Error(t, err)

	var domainErr errors.Error
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, errors.ErrAlreadyRunning, domainErr.Code())
}

func TestWriteReclaimsStalePidFile(t *testing.T) {
	path := pidPath(t)

	// No process with this ID should exist.
	require.NoError(t, os.WriteFile(path, []byte("99999999"), 0o600))

	require.NoError(t, pid.Write())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(raw))
}
