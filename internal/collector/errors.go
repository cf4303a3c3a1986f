package collector

import "github.com/OmiShrestha/rpi5-system-info/internal/errors"

const (
	ErrNilSampler = errors.ErrorCode("collector_nil_sampler")
	ErrNilStore   = errors.ErrorCode("collector_nil_store")
)
