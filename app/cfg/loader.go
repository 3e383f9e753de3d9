package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Server configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	MaxBodyBytes int64  `long:"max-body-bytes" env:"MAX_BODY_BYTES" default:"10485760" description:"Maximum accepted request body size in bytes"`

	// Observability
	MetricsEnabled bool `long:"metrics" env:"METRICS_ENABLED" description:"Expose Prometheus metrics on /metrics"`
	Debug          bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// Load parses command-line flags and environment variables. It returns a nil
// config and a nil error when help was requested.
func Load() (*Cfg, error) {
	return load(nil)
}

func load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("max body bytes must be positive, got %d", raw.MaxBodyBytes)
	}

	cfg := &Cfg{
		Port:           raw.Port,
		MaxBodyBytes:   raw.MaxBodyBytes,
		MetricsEnabled: raw.MetricsEnabled,
		Debug:          raw.Debug,
		Version:        GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
