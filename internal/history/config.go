package history

import "github.com/OmiShrestha/rpi5-system-info/internal/errors"

const (
	// File system permissions
	dirPerm  = 0o755
	filePerm = 0o644

	DefaultLogDir     = "logs"
	DefaultMaxEntries = 1000
)

type Config struct {
	LogDir     string
	MaxEntries int
}

func DefaultConfig() Config {
	return Config{
		LogDir:     DefaultLogDir,
		MaxEntries: DefaultMaxEntries,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.LogDir == "" {
		return errFactory.New(ErrInvalidLogDir)
	}

	if c.MaxEntries < 1 {
		return errFactory.WithData(ErrInvalidMaxEntries, c.MaxEntries)
	}

	return nil
}
