package collector

import (
	"context"

	"github.com/OmiShrestha/rpi5-system-info/internal/history"
	"github.com/OmiShrestha/rpi5-system-info/internal/sysinfo"
)

// Service orchestrates sampling and persistence for the HTTP surface.
type Service interface {
	// Status samples current vitals, records the reading in history and
	// returns the snapshot. A persistence failure never fails the
	// status itself.
	Status(ctx context.Context) sysinfo.Snapshot

	// History returns recorded entries from the last hours.
	History(hours int) []history.Entry
}
