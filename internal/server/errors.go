package server

import "github.com/OmiShrestha/rpi5-system-info/internal/errors"

const (
	ErrServeFailed    = errors.ErrServeFailed
	ErrShutdownFailed = errors.ErrShutdownFailed
)
