package cfg

type Cfg struct {
	// Server configuration
	Port         string
	MaxBodyBytes int64

	// Observability
	MetricsEnabled bool
	Debug          bool

	// Application metadata
	Version string
}
