package sysinfo

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSampler(t *testing.T, root string) *sampler {
	t.Helper()

	s, ok := New(WithRoot(root)).(*sampler)
	require.True(t, ok)

	return s
}

func writeProcFile(t *testing.T, root, name, content string) {
	t.Helper()

	procDir := filepath.Join(root, "proc")
	require.NoError(t, os.MkdirAll(procDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(procDir, name), []byte(content), 0o644))
}

func writeThermalFile(t *testing.T, root, content string) {
	t.Helper()

	thermalDir := filepath.Join(root, "sys", "class", "thermal", "thermal_zone0")
	require.NoError(t, os.MkdirAll(thermalDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(thermalDir, "temp"), []byte(content), 0o644))
}

func TestRAM(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "meminfo", `MemTotal:        16000000 kB
MemFree:          2000000 kB
MemAvailable:     8000000 kB
Buffers:           500000 kB
`)

	s := newTestSampler(t, root)
	ram := s.RAM()

	assert.InDelta(t, 15625.0, ram.TotalMB, 0.001)
	assert.InDelta(t, 7812.5, ram.AvailableMB, 0.001)
	assert.InDelta(t, 7812.5, ram.UsedMB, 0.001)
	assert.InDelta(t, 50.0, ram.UsedPercent, 0.001)
}

func TestRAMMemFreeFallback(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "meminfo", `MemTotal:        4000000 kB
MemFree:          1000000 kB
`)

	s := newTestSampler(t, root)
	ram := s.RAM()

	assert.InDelta(t, 3906.25, ram.TotalMB, 0.001)
	assert.InDelta(t, 976.56, ram.AvailableMB, 0.01)
	assert.InDelta(t, 2929.69, ram.UsedMB, 0.01)
	assert.InDelta(t, 75.0, ram.UsedPercent, 0.001)
}

func TestRAMZeroTotal(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "meminfo", `SwapTotal:       1000000 kB
`)

	s := newTestSampler(t, root)
	ram := s.RAM()

	assert.Zero(t, ram.TotalMB)
	assert.Zero(t, ram.UsedMB)
	assert.Equal(t, 0.0, ram.UsedPercent, "used_percent must be exactly zero when MemTotal is zero")
}

func TestRAMUsedClampedAtZero(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "meminfo", `MemTotal:        1000000 kB
MemAvailable:    1500000 kB
`)

	s := newTestSampler(t, root)
	ram := s.RAM()

	assert.Zero(t, ram.UsedMB, "used space must clamp at zero when available exceeds total")
	assert.Equal(t, 0.0, ram.UsedPercent)
}

func TestRAMAccountingSum(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "meminfo", `MemTotal:        8097280 kB
MemAvailable:    3456789 kB
`)

	s := newTestSampler(t, root)
	ram := s.RAM()

	// The rounded parts may drift from the rounded total by at most one
	// hundredth per operand.
	assert.InDelta(t, ram.TotalMB, ram.UsedMB+ram.AvailableMB, 0.02)
}

func TestRAMDegradesToZeroRecord(t *testing.T) {
	testCases := []struct {
		name    string
		meminfo string
		missing bool
	}{
		{name: "missing file", missing: true},
		{
			name: "unparseable value",
			meminfo: `MemTotal:        garbage kB
MemAvailable:     8000000 kB
`,
		},
		{
			name:    "empty value",
			meminfo: "MemTotal:\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			if !tc.missing {
				writeProcFile(t, root, "meminfo", tc.meminfo)
			}

			s := newTestSampler(t, root)
			assert.Equal(t, RAMUsage{}, s.RAM())
		})
	}
}

func TestUptime(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "uptime", "90061.56 358682.44\n")

	s := newTestSampler(t, root)
	up := s.Uptime()

	assert.Equal(t, "90061", up.Seconds)
	assert.Equal(t, "1d 01:01:01", up.Human)
}

func TestUptimeUnderOneDay(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "uptime", "3671.02 7000.00\n")

	s := newTestSampler(t, root)
	up := s.Uptime()

	assert.Equal(t, "3671", up.Seconds)
	assert.Equal(t, "0d 01:01:11", up.Human)
}

func TestUptimeDegradesToDefault(t *testing.T) {
	testCases := []struct {
		name    string
		uptime  string
		missing bool
	}{
		{name: "missing file", missing: true},
		{name: "empty file", uptime: ""},
		{name: "unparseable", uptime: "not-a-number 123\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			if !tc.missing {
				writeProcFile(t, root, "uptime", tc.uptime)
			}

			s := newTestSampler(t, root)
			up := s.Uptime()

			assert.Equal(t, "0", up.Seconds)
			assert.Equal(t, "0d 00:00:00", up.Human)
		})
	}
}

func TestCPUTemperatureFromThermalZone(t *testing.T) {
	root := t.TempDir()
	writeThermalFile(t, root, "48200\n")

	s := newTestSampler(t, root)
	temp, ok := s.CPUTemperature(context.Background())

	require.True(t, ok)
	assert.InDelta(t, 48.2, temp, 0.001)
}

func TestCPUTemperatureVcgencmdFallback(t *testing.T) {
	root := t.TempDir()

	s := newTestSampler(t, root)
	reader, ok := s.readers[1].(*vcgencmdReader)
	require.True(t, ok)

	reader.lookPath = func(string) (string, error) { return "/usr/bin/vcgencmd", nil }
	reader.execCommand = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "echo", "temp=48.2'C")
	}

	temp, ok := s.CPUTemperature(context.Background())

	require.True(t, ok)
	assert.InDelta(t, 48.2, temp, 0.001)
}

func TestCPUTemperatureUnavailable(t *testing.T) {
	root := t.TempDir()

	s := newTestSampler(t, root)
	reader, ok := s.readers[1].(*vcgencmdReader)
	require.True(t, ok)
	reader.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	temp, available := s.CPUTemperature(context.Background())

	assert.False(t, available)
	assert.Zero(t, temp)
}

func TestCPUTemperatureSkipsFailingReader(t *testing.T) {
	root := t.TempDir()
	writeThermalFile(t, root, "garbage\n")

	s := newTestSampler(t, root)
	reader, ok := s.readers[1].(*vcgencmdReader)
	require.True(t, ok)

	reader.lookPath = func(string) (string, error) { return "/usr/bin/vcgencmd", nil }
	reader.execCommand = func(ctx context.Context, _ string, _ ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "echo", "temp=51.0'C")
	}

	temp, available := s.CPUTemperature(context.Background())

	require.True(t, available, "fallback reader should cover a failing primary")
	assert.InDelta(t, 51.0, temp, 0.001)
}

func TestParseVcgencmd(t *testing.T) {
	testCases := []struct {
		name    string
		out     string
		want    float64
		wantErr bool
	}{
		{name: "typical", out: "temp=48.2'C", want: 48.2},
		{name: "integer value", out: "temp=50'C", want: 50},
		{name: "missing prefix", out: "48.2'C", wantErr: true},
		{name: "empty", out: "", wantErr: true},
		{name: "non-numeric", out: "temp=hot'C", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseVcgencmd(tc.out)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 0.001)
		})
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeThermalFile(t, root, "48234\n")
	writeProcFile(t, root, "meminfo", `MemTotal:        16000000 kB
MemAvailable:     8000000 kB
`)
	writeProcFile(t, root, "uptime", "90061.56 358682.44\n")

	s := newTestSampler(t, root)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }

	snap := s.Collect(context.Background())

	require.NotNil(t, snap.CPUTempC)
	assert.InDelta(t, 48.23, *snap.CPUTempC, 0.001)
	assert.InDelta(t, 50.0, snap.RAM.UsedPercent, 0.001)
	assert.Equal(t, "1d 01:01:01", snap.Uptime.Human)
	assert.Equal(t, int64(1700000000), snap.Timestamp)
}

func TestCollectWithoutTemperature(t *testing.T) {
	root := t.TempDir()

	s := newTestSampler(t, root)
	reader, ok := s.readers[1].(*vcgencmdReader)
	require.True(t, ok)
	reader.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	snap := s.Collect(context.Background())

	assert.Nil(t, snap.CPUTempC, "temperature must be null when no source is available")
	assert.Equal(t, "0", snap.Uptime.Seconds)
}
