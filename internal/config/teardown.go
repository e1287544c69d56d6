package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultHostsFile  = "hosts.json"
	defaultKillScript = "killnode.sh"
)

// TeardownConfig настройки контроллера остановки.
type TeardownConfig struct {
	HostsFile      string
	KillScript     string
	CommandTimeout time.Duration
	LogLevel       string
}

var teardownFlags = []flagSpec{
	{"f", "HOSTS_FILE", "file with the hosts list"},
	{"k", "KILL_SCRIPT", "command invoked once per host with the host as its only argument"},
	{"t", "COMMAND_TIMEOUT", "timeout for a single kill command"},
	{"l", "LOG_LEVEL", "log level"},
}

// NewTeardownConfig собирает конфигурацию контроллера остановки.
// По умолчанию скрипт остановки ищется рядом с исполняемым файлом.
func NewTeardownConfig(args []string) (*TeardownConfig, error) {
	v := newViper(map[string]any{
		"HOSTS_FILE":      defaultHostsFile,
		"KILL_SCRIPT":     defaultKillScriptPath(),
		"COMMAND_TIMEOUT": 30 * time.Second,
		"LOG_LEVEL":       "info",
	})

	if err := parseFlags("teardown", args, teardownFlags, v); err != nil {
		return nil, err
	}

	tv := &typed{v: v}
	cfg := &TeardownConfig{
		HostsFile:      v.GetString("HOSTS_FILE"),
		KillScript:     v.GetString("KILL_SCRIPT"),
		CommandTimeout: tv.Duration("COMMAND_TIMEOUT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
	}
	if tv.err != nil {
		return nil, tv.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет корректность конфигурации.
func (cfg *TeardownConfig) Validate() error {
	if cfg.HostsFile == "" {
		return fmt.Errorf("hosts file path is empty")
	}
	if cfg.KillScript == "" {
		return fmt.Errorf("kill script path is empty")
	}
	if cfg.CommandTimeout <= 0 {
		return fmt.Errorf("command timeout must be positive, got %s", cfg.CommandTimeout)
	}
	return nil
}

func defaultKillScriptPath() string {
	exe, err := os.Executable()
	if err != nil {
		return defaultKillScript
	}
	return filepath.Join(filepath.Dir(exe), defaultKillScript)
}
