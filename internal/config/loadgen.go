package config

import (
	"fmt"
	"time"
)

const (
	ModeLocal = "local"
	ModeFleet = "fleet"
)

// LoadgenConfig настройки генератора нагрузки.
type LoadgenConfig struct {
	TotalRequests    int
	Mode             string
	Scheme           string
	LocalHost        string
	LocalPortMin     int
	LocalPortMax     int
	Hosts            []string
	HostsFile        string
	Port             int
	ResolveThreshold float64
	RequestTimeout   time.Duration
	CreateMethod     string
	ResolveMethod    string
	Workers          int
	Seed             int64
	DumpPath         string
	LogLevel         string
}

var loadgenFlags = []flagSpec{
	{"n", "TOTAL_REQUESTS", "number of trials"},
	{"m", "MODE", "host selection mode: local or fleet"},
	{"scheme", "SCHEME", "URL scheme"},
	{"local-host", "LOCAL_HOST", "address used in local mode"},
	{"port-min", "LOCAL_PORT_MIN", "lowest port in local mode"},
	{"port-max", "LOCAL_PORT_MAX", "highest port in local mode"},
	{"hosts", "HOSTS", "comma separated fleet hosts"},
	{"hosts-file", "HOSTS_FILE", "file with a hosts list"},
	{"p", "PORT", "service port in fleet mode"},
	{"threshold", "RESOLVE_THRESHOLD", "a draw above this value makes a resolve trial"},
	{"timeout", "REQUEST_TIMEOUT", "per request timeout"},
	{"create-method", "CREATE_METHOD", "HTTP method for /set"},
	{"resolve-method", "RESOLVE_METHOD", "HTTP method for /get"},
	{"w", "WORKERS", "number of workers, 1 keeps trials strictly sequential"},
	{"seed", "SEED", "random seed, 0 means time based"},
	{"dump", "DUMP_PATH", "write created mappings to this file after the run"},
	{"l", "LOG_LEVEL", "log level"},
}

// NewLoadgenConfig собирает конфигурацию генератора из args и окружения.
func NewLoadgenConfig(args []string) (*LoadgenConfig, error) {
	v := newViper(map[string]any{
		"TOTAL_REQUESTS":    1000,
		"MODE":              ModeLocal,
		"SCHEME":            "http",
		"LOCAL_HOST":        "localhost",
		"LOCAL_PORT_MIN":    5000,
		"LOCAL_PORT_MAX":    5000,
		"PORT":              5000,
		"RESOLVE_THRESHOLD": 0.8,
		"REQUEST_TIMEOUT":   5 * time.Second,
		"CREATE_METHOD":     "POST",
		"RESOLVE_METHOD":    "GET",
		"WORKERS":           1,
		"SEED":              0,
		"LOG_LEVEL":         "info",
	})

	if err := parseFlags("loadgen", args, loadgenFlags, v); err != nil {
		return nil, err
	}

	tv := &typed{v: v}
	cfg := &LoadgenConfig{
		TotalRequests:    tv.Int("TOTAL_REQUESTS"),
		Mode:             v.GetString("MODE"),
		Scheme:           v.GetString("SCHEME"),
		LocalHost:        v.GetString("LOCAL_HOST"),
		LocalPortMin:     tv.Int("LOCAL_PORT_MIN"),
		LocalPortMax:     tv.Int("LOCAL_PORT_MAX"),
		Hosts:            stringList(v, "HOSTS"),
		HostsFile:        v.GetString("HOSTS_FILE"),
		Port:             tv.Int("PORT"),
		ResolveThreshold: tv.Float64("RESOLVE_THRESHOLD"),
		RequestTimeout:   tv.Duration("REQUEST_TIMEOUT"),
		CreateMethod:     v.GetString("CREATE_METHOD"),
		ResolveMethod:    v.GetString("RESOLVE_METHOD"),
		Workers:          tv.Int("WORKERS"),
		Seed:             tv.Int64("SEED"),
		DumpPath:         v.GetString("DUMP_PATH"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}
	if tv.err != nil {
		return nil, tv.err
	}

	if cfg.HostsFile != "" {
		hosts, err := ReadHosts(cfg.HostsFile)
		if err != nil {
			return nil, err
		}
		cfg.Hosts = append(cfg.Hosts, hosts...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации.
func (cfg *LoadgenConfig) Validate() error {
	if cfg.TotalRequests < 0 {
		return fmt.Errorf("total requests must be >= 0, got %d", cfg.TotalRequests)
	}
	switch cfg.Mode {
	case ModeLocal:
		if cfg.LocalHost == "" {
			return fmt.Errorf("local host is empty")
		}
		if !validPort(cfg.LocalPortMin) || !validPort(cfg.LocalPortMax) || cfg.LocalPortMin > cfg.LocalPortMax {
			return fmt.Errorf("%w: %d-%d", ErrInvalidPortRange, cfg.LocalPortMin, cfg.LocalPortMax)
		}
	case ModeFleet:
		if len(cfg.Hosts) == 0 {
			return fmt.Errorf("fleet mode: %w", ErrNoHosts)
		}
		if !validPort(cfg.Port) {
			return fmt.Errorf("%w: port %d", ErrInvalidPortRange, cfg.Port)
		}
	default:
		return fmt.Errorf("%w %q, want %q or %q", ErrInvalidMode, cfg.Mode, ModeLocal, ModeFleet)
	}
	if cfg.ResolveThreshold < 0 || cfg.ResolveThreshold > 1 {
		return fmt.Errorf("resolve threshold must be in [0,1], got %v", cfg.ResolveThreshold)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	if cfg.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", cfg.Workers)
	}
	if cfg.Scheme == "" || cfg.CreateMethod == "" || cfg.ResolveMethod == "" {
		return fmt.Errorf("scheme and request methods must not be empty")
	}
	return nil
}

func validPort(p int) bool {
	return p > 0 && p <= 65535
}
