package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewLoadgenConfig_Defaults(t *testing.T) {
	cfg, err := NewLoadgenConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.TotalRequests)
	assert.Equal(t, ModeLocal, cfg.Mode)
	assert.Equal(t, "localhost", cfg.LocalHost)
	assert.Equal(t, 5000, cfg.LocalPortMin)
	assert.Equal(t, 5000, cfg.LocalPortMax)
	assert.Equal(t, 0.8, cfg.ResolveThreshold)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "POST", cfg.CreateMethod)
	assert.Equal(t, "GET", cfg.ResolveMethod)
	assert.Equal(t, 1, cfg.Workers)
}

func TestNewLoadgenConfig_Flags(t *testing.T) {
	cfg, err := NewLoadgenConfig([]string{
		"-n", "25", "-m", "fleet", "-hosts", "a.example, b.example", "-p", "6000",
		"-timeout", "250ms", "-w", "4", "-seed", "99", "-threshold", "0.5",
	})
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.TotalRequests)
	assert.Equal(t, ModeFleet, cfg.Mode)
	assert.Equal(t, []string{"a.example", "b.example"}, cfg.Hosts)
	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 0.5, cfg.ResolveThreshold)
}

func TestNewLoadgenConfig_Precedence(t *testing.T) {
	cfgFile := writeFile(t, "loadgen.json", `{"total_requests": 10, "mode": "fleet", "hosts": ["h1", "h2"]}`)

	cfg, err := NewLoadgenConfig([]string{"-c", cfgFile})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.TotalRequests)
	assert.Equal(t, []string{"h1", "h2"}, cfg.Hosts)

	// окружение перекрывает файл
	t.Setenv("TOTAL_REQUESTS", "20")
	cfg, err = NewLoadgenConfig([]string{"-c", cfgFile})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.TotalRequests)

	// флаг перекрывает окружение
	cfg, err = NewLoadgenConfig([]string{"-c", cfgFile, "-n", "30"})
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TotalRequests)
}

func TestNewLoadgenConfig_HostsFile(t *testing.T) {
	hostsFile := writeFile(t, "hosts.json", `{"hosts": ["dh1", "dh2", "dh3"]}`)

	cfg, err := NewLoadgenConfig([]string{"-m", "fleet", "-hosts-file", hostsFile})
	require.NoError(t, err)
	assert.Equal(t, []string{"dh1", "dh2", "dh3"}, cfg.Hosts)
}

func TestNewLoadgenConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "bad mode", args: []string{"-m", "cluster"}, want: ErrInvalidMode},
		{name: "fleet without hosts", args: []string{"-m", "fleet"}, want: ErrNoHosts},
		{name: "inverted port range", args: []string{"-port-min", "6000", "-port-max", "5000"}, want: ErrInvalidPortRange},
		{name: "port out of range", args: []string{"-port-max", "70000"}, want: ErrInvalidPortRange},
		{name: "negative total", args: []string{"-n", "-1"}},
		{name: "zero workers", args: []string{"-w", "0"}},
		{name: "threshold above one", args: []string{"-threshold", "1.5"}},
		{name: "zero timeout", args: []string{"-timeout", "0s"}},
		{name: "unknown flag", args: []string{"-nope"}},
		{name: "non-numeric total", args: []string{"-n", "abc"}, want: ErrInvalidValue},
		{name: "non-numeric threshold", args: []string{"-threshold", "high"}, want: ErrInvalidValue},
		{name: "timeout without unit", args: []string{"-timeout", "5"}, want: ErrInvalidValue},
		{name: "non-numeric workers", args: []string{"-w", "many"}, want: ErrInvalidValue},
		{name: "non-numeric seed", args: []string{"-seed", "x1"}, want: ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoadgenConfig(tt.args)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestReadHosts(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "hosts.json", `{"hosts": ["a", "b", "c"]}`)
		hosts, err := ReadHosts(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, hosts)
	})

	t.Run("capitalised key", func(t *testing.T) {
		path := writeFile(t, "hosts.json", `{"Hosts": ["x", "y"]}`)
		hosts, err := ReadHosts(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, hosts)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "hosts.yaml", "hosts:\n  - a\n  - b\n")
		hosts, err := ReadHosts(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, hosts)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadHosts(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeFile(t, "hosts.json", `{"hosts": [`)
		_, err := ReadHosts(path)
		assert.Error(t, err)
	})

	t.Run("empty list", func(t *testing.T) {
		path := writeFile(t, "hosts.json", `{"hosts": []}`)
		_, err := ReadHosts(path)
		assert.ErrorIs(t, err, ErrNoHosts)
	})
}

func TestNewTeardownConfig(t *testing.T) {
	cfg, err := NewTeardownConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "hosts.json", cfg.HostsFile)
	assert.Equal(t, "killnode.sh", filepath.Base(cfg.KillScript))
	assert.Equal(t, 30*time.Second, cfg.CommandTimeout)

	cfg, err = NewTeardownConfig([]string{"-f", "fleet.yaml", "-k", "/bin/true", "-t", "2s"})
	require.NoError(t, err)
	assert.Equal(t, "fleet.yaml", cfg.HostsFile)
	assert.Equal(t, "/bin/true", cfg.KillScript)
	assert.Equal(t, 2*time.Second, cfg.CommandTimeout)

	_, err = NewTeardownConfig([]string{"-t", "-1s"})
	assert.Error(t, err)

	_, err = NewTeardownConfig([]string{"-t", "30"})
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestNewLoadgenConfig_InvalidEnv(t *testing.T) {
	t.Setenv("TOTAL_REQUESTS", "ten")

	_, err := NewLoadgenConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestNewDevnodeConfig_Mode(t *testing.T) {
	cfg, err := NewDevnodeConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Mode)
	assert.Equal(t, "localhost:5000", cfg.ServerAddress)

	cfg, err = NewDevnodeConfig([]string{"-f", "data.json"})
	require.NoError(t, err)
	assert.Equal(t, StorageFile, cfg.Mode)

	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/db")
	cfg, err = NewDevnodeConfig([]string{"-f", "data.json", "-a", ":5001"})
	require.NoError(t, err)
	assert.Equal(t, StorageDatabase, cfg.Mode)
	assert.Equal(t, ":5001", cfg.ServerAddress)
}
