package mdns

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables for a responder/querier pair, loaded from
// YAML the way cmd/dnsscience-grpc/config.go loads its ConfigFile.
type Config struct {
	Interfaces      []string      `yaml:"interfaces"`
	ProbeInterval   time.Duration `yaml:"probe_interval"`
	ProbeCount      int           `yaml:"probe_count"`
	AnnounceCount   int           `yaml:"announce_count"`
	CacheSweepEvery time.Duration `yaml:"cache_sweep_every"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	Services        []ServiceFile `yaml:"services"`
}

// RateLimitConfig configures the probe/announce/query send limiter
// (golang.org/x/time/rate).
type RateLimitConfig struct {
	EventsPerSecond float64 `yaml:"events_per_second"`
	Burst           int     `yaml:"burst"`
}

// ServiceFile is the on-disk description of one advertised service,
// parallel to beacon's responder.Service but round-trippable as YAML.
type ServiceFile struct {
	Instance string            `yaml:"instance"`
	Type     string            `yaml:"type"`
	Domain   string            `yaml:"domain"`
	Port     uint16            `yaml:"port"`
	TXT      map[string]string `yaml:"txt"`
	Hostname string            `yaml:"hostname"`
}

// DefaultConfig returns RFC 6762 §8.3's recommended probe/announce
// cadence.
func DefaultConfig() Config {
	return Config{
		ProbeInterval:   250 * time.Millisecond,
		ProbeCount:      3,
		AnnounceCount:   2,
		CacheSweepEvery: 10 * time.Second,
		RateLimit:       RateLimitConfig{EventsPerSecond: 10, Burst: 20},
	}
}

// LoadConfig reads and parses a YAML config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
