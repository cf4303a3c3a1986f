package sysinfo

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/OmiShrestha/rpi5-system-info/internal/errors"
)

const kbPerMB = 1024.0

// RAM parses /proc/meminfo into a utilization record. Any read or parse
// failure degrades to an all-zero record.
func (s *sampler) RAM() RAMUsage {
	usage, err := readMemInfo(s.meminfoPath())
	if err != nil {
		s.log.Debug().Err(err).Msg("Memory read failed")
		return RAMUsage{}
	}

	return usage
}

// readMemInfo reads "Key:   <value> kB" lines into a name to kilobytes
// map and derives the utilization record. MemAvailable falls back to
// MemFree on older kernels; used space is clamped at zero. A value token
// that fails to parse on an otherwise well-formed line fails the whole
// read.
func readMemInfo(path string) (RAMUsage, error) {
	errFactory := errors.New()

	f, err := os.Open(path)
	if err != nil {
		return RAMUsage{}, errFactory.Wrap(ErrMemInfoReadFailed, err)
	}
	defer f.Close()

	meminfo := make(map[string]int64)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			continue
		}

		fields := strings.Fields(parts[1])
		if len(fields) == 0 {
			return RAMUsage{}, errFactory.WithData(ErrMemInfoParseFailed, line)
		}

		value, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return RAMUsage{}, errFactory.Wrap(ErrMemInfoParseFailed, err)
		}

		meminfo[strings.TrimSpace(parts[0])] = value
	}
	if err := sc.Err(); err != nil {
		return RAMUsage{}, errFactory.Wrap(ErrMemInfoReadFailed, err)
	}

	totalKB := meminfo["MemTotal"]
	availableKB, ok := meminfo["MemAvailable"]
	if !ok {
		availableKB = meminfo["MemFree"]
	}

	usedKB := totalKB - availableKB
	if usedKB < 0 {
		usedKB = 0
	}

	usage := RAMUsage{
		TotalMB:     round2(float64(totalKB) / kbPerMB),
		AvailableMB: round2(float64(availableKB) / kbPerMB),
		UsedMB:      round2(float64(usedKB) / kbPerMB),
	}
	if totalKB > 0 {
		usage.UsedPercent = round1(float64(usedKB) / float64(totalKB) * 100.0)
	}

	return usage, nil
}
