package hostinfo

import (
	"os"
	"runtime"
	"sync"

	"github.com/OmiShrestha/rpi5-system-info/internal/logger"
	"github.com/shirou/gopsutil/v3/host"
)

type provider struct {
	log  logger.Logger
	once sync.Once
	info Info
}

func New(log logger.Logger) Provider {
	if log == nil {
		log = logger.New()
	}

	return &provider{log: log}
}

// Info resolves the host identity on first use and caches it.
func (p *provider) Info() Info {
	p.once.Do(func() {
		p.info = p.resolve()
	})

	return p.info
}

// resolve asks gopsutil first and degrades to the runtime's view of the
// platform when that fails.
func (p *provider) resolve() Info {
	info := Info{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
	if hostname, err := os.Hostname(); err == nil {
		info.Hostname = hostname
	}

	stat, err := host.Info()
	if err != nil {
		p.log.Warn().Err(err).Msg("Host identity lookup failed, using runtime defaults")
		return info
	}

	if stat.Hostname != "" {
		info.Hostname = stat.Hostname
	}
	info.Platform = stat.Platform
	info.PlatformVersion = stat.PlatformVersion
	info.KernelVersion = stat.KernelVersion
	if stat.KernelArch != "" {
		info.Architecture = stat.KernelArch
	}

	return info
}
