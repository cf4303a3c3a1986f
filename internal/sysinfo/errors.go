package sysinfo

import "github.com/OmiShrestha/rpi5-system-info/internal/errors"

const (
	// Temperature Errors
	ErrTemperatureReadFailed  = errors.ErrorCode("sysinfo_temperature_read_failed")
	ErrTemperatureParseFailed = errors.ErrorCode("sysinfo_temperature_parse_failed")
	ErrCommandFailed          = errors.ErrorCode("sysinfo_command_failed")

	// Memory Errors
	ErrMemInfoReadFailed  = errors.ErrorCode("sysinfo_meminfo_read_failed")
	ErrMemInfoParseFailed = errors.ErrorCode("sysinfo_meminfo_parse_failed")

	// Uptime Errors
	ErrUptimeReadFailed  = errors.ErrorCode("sysinfo_uptime_read_failed")
	ErrUptimeParseFailed = errors.ErrorCode("sysinfo_uptime_parse_failed")
)
