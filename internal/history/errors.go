package history

import "github.com/OmiShrestha/rpi5-system-info/internal/errors"

const (
	// Configuration Errors
	ErrInvalidConfig     = errors.ErrInvalidConfig
	ErrInvalidLogDir     = errors.ErrorCode("history_invalid_log_dir")
	ErrInvalidMaxEntries = errors.ErrorCode("history_invalid_max_entries")

	// Storage Errors
	ErrStorageInit  = errors.ErrInitFailed
	ErrEncodeFailed = errors.ErrorCode("history_encode_failed")
	ErrWriteFailed  = errors.ErrorCode("history_write_failed")
)
