package sysinfo

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/OmiShrestha/rpi5-system-info/internal/errors"
)

// temperatureReader is a single source of CPU temperature readings.
// Sources are probed for availability before being read so that a
// missing counter file or binary costs nothing.
type temperatureReader interface {
	source() string
	available() bool
	read(ctx context.Context) (float64, error)
}

// thermalZoneReader reads the sysfs thermal zone counter, which holds an
// integer in millidegrees Celsius.
type thermalZoneReader struct {
	path string
}

func (r *thermalZoneReader) source() string {
	return "thermal_zone"
}

func (r *thermalZoneReader) available() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

func (r *thermalZoneReader) read(_ context.Context) (float64, error) {
	errFactory := errors.New()

	raw, err := os.ReadFile(r.path)
	if err != nil {
		return 0, errFactory.Wrap(ErrTemperatureReadFailed, err)
	}

	milli, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, errFactory.Wrap(ErrTemperatureParseFailed, err)
	}

	return float64(milli) / 1000.0, nil
}

// vcgencmdReader shells out to the Raspberry Pi firmware tool, expecting
// output like "temp=48.2'C".
type vcgencmdReader struct {
	binary      string
	timeout     time.Duration
	lookPath    func(string) (string, error)
	execCommand func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func (r *vcgencmdReader) source() string {
	return "vcgencmd"
}

func (r *vcgencmdReader) available() bool {
	_, err := r.lookPath(r.binary)
	return err == nil
}

func (r *vcgencmdReader) read(ctx context.Context) (float64, error) {
	errFactory := errors.New()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.execCommand(ctx, r.binary, "measure_temp").Output()
	if err != nil {
		return 0, errFactory.Wrap(ErrCommandFailed, err)
	}

	return parseVcgencmd(strings.TrimSpace(string(out)))
}

func parseVcgencmd(out string) (float64, error) {
	errFactory := errors.New()

	rest, ok := strings.CutPrefix(out, "temp=")
	if !ok {
		return 0, errFactory.WithData(ErrTemperatureParseFailed, out)
	}

	val, _, _ := strings.Cut(rest, "'")

	temp, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, errFactory.Wrap(ErrTemperatureParseFailed, err)
	}

	return temp, nil
}
