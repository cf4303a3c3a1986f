package sysinfo

import "context"

// Sampler produces point-in-time readings of host vitals. Sampling never
// fails: every reading degrades to a defined default when its source is
// missing or unreadable.
type Sampler interface {
	// Collect gathers all readings into a single snapshot.
	Collect(ctx context.Context) Snapshot

	// CPUTemperature returns the CPU temperature in Celsius. The second
	// return value is false when no temperature source is available.
	CPUTemperature(ctx context.Context) (float64, bool)

	// RAM returns current memory utilization.
	RAM() RAMUsage

	// Uptime returns time since boot.
	Uptime() UptimeInfo
}

// Snapshot is one complete reading, ready for JSON encoding. A nil
// CPUTempC marshals to null when no temperature source is available.
type Snapshot struct {
	CPUTempC  *float64   `json:"cpu_temp_c"`
	RAM       RAMUsage   `json:"ram"`
	Uptime    UptimeInfo `json:"uptime"`
	Timestamp int64      `json:"timestamp"`
}

// RAMUsage reports memory utilization in megabytes.
type RAMUsage struct {
	TotalMB     float64 `json:"total_mb"`
	AvailableMB float64 `json:"available_mb"`
	UsedMB      float64 `json:"used_mb"`
	UsedPercent float64 `json:"used_percent"`
}

// UptimeInfo reports time since boot. Seconds is a decimal string to keep
// the wire format stable for consumers that parse it.
type UptimeInfo struct {
	Seconds string `json:"seconds"`
	Human   string `json:"human"`
}
