package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/OmiShrestha/rpi5-system-info/internal/errors"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// Uptime reads /proc/uptime. Failure degrades to a zero reading.
func (s *sampler) Uptime() UptimeInfo {
	info, err := readUptime(s.uptimePath())
	if err != nil {
		s.log.Debug().Err(err).Msg("Uptime read failed")
		return UptimeInfo{Seconds: "0", Human: "0d 00:00:00"}
	}

	return info
}

func readUptime(path string) (UptimeInfo, error) {
	errFactory := errors.New()

	raw, err := os.ReadFile(path)
	if err != nil {
		return UptimeInfo{}, errFactory.Wrap(ErrUptimeReadFailed, err)
	}

	fields := strings.Fields(string(raw))
	if len(fields) == 0 {
		return UptimeInfo{}, errFactory.WithData(ErrUptimeParseFailed, string(raw))
	}

	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return UptimeInfo{}, errFactory.Wrap(ErrUptimeParseFailed, err)
	}

	return formatUptime(int64(secs)), nil
}

// formatUptime renders whole seconds since boot as "{days}d {HH}:{MM}:{SS}".
func formatUptime(total int64) UptimeInfo {
	days := total / secondsPerDay
	hours := (total % secondsPerDay) / secondsPerHour
	minutes := (total % secondsPerHour) / secondsPerMinute
	seconds := total % secondsPerMinute

	return UptimeInfo{
		Seconds: strconv.FormatInt(total, 10),
		Human:   fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, seconds),
	}
}
