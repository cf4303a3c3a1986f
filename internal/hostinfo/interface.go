package hostinfo

// Provider resolves static host identity.
type Provider interface {
	Info() Info
}

// Info is the static identity of the host, resolved once per process.
type Info struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	Architecture    string `json:"architecture"`
}
