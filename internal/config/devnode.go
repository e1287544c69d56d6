package config

import "fmt"

const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageDatabase = "database"
)

// DevnodeConfig настройки локального узла-заглушки.
type DevnodeConfig struct {
	ServerAddress   string
	FileStoragePath string
	DatabaseDSN     string
	LogLevel        string
	Mode            string
}

var devnodeFlags = []flagSpec{
	{"a", "SERVER_ADDRESS", "server address"},
	{"f", "FILE_STORAGE_PATH", "file storage path (JSON lines)"},
	{"d", "DATABASE_DSN", "PostgreSQL DSN"},
	{"l", "LOG_LEVEL", "log level"},
}

// NewDevnodeConfig собирает конфигурацию узла.
// Режим хранения: database, если задан DSN, иначе file, иначе memory.
func NewDevnodeConfig(args []string) (*DevnodeConfig, error) {
	v := newViper(map[string]any{
		"SERVER_ADDRESS": "localhost:5000",
		"LOG_LEVEL":      "info",
	})

	if err := parseFlags("devnode", args, devnodeFlags, v); err != nil {
		return nil, err
	}

	cfg := &DevnodeConfig{
		ServerAddress:   v.GetString("SERVER_ADDRESS"),
		FileStoragePath: v.GetString("FILE_STORAGE_PATH"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		LogLevel:        v.GetString("LOG_LEVEL"),
	}

	switch {
	case cfg.DatabaseDSN != "":
		cfg.Mode = StorageDatabase
	case cfg.FileStoragePath != "":
		cfg.Mode = StorageFile
	default:
		cfg.Mode = StorageMemory
	}

	if cfg.ServerAddress == "" {
		return nil, fmt.Errorf("адрес сервера не может быть пустым")
	}
	return cfg, nil
}
