package history

import "github.com/OmiShrestha/rpi5-system-info/internal/sysinfo"

// Store is a bounded, date-partitioned append log of readings. Append
// surfaces storage failures to the caller; Recent is total and returns
// an empty slice when the active partition is missing or unreadable.
type Store interface {
	Append(snap sysinfo.Snapshot) error
	Recent(hours int) []Entry
}

// Entry is the persisted projection of a snapshot. Datetime is the
// capture time in RFC3339; Timestamp repeats it in epoch seconds for
// range queries. A nil CPUTempC marshals to null.
type Entry struct {
	Timestamp      int64    `json:"timestamp"`
	Datetime       string   `json:"datetime"`
	CPUTempC       *float64 `json:"cpu_temp_c"`
	RAMUsedPercent float64  `json:"ram_used_percent"`
	RAMUsedMB      float64  `json:"ram_used_mb"`
}
