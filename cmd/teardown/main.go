// Command teardown вызывает скрипт остановки для каждого хоста из списка.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Totarae/shortener-ops/internal/config"
	"github.com/Totarae/shortener-ops/internal/logger"
	"github.com/Totarae/shortener-ops/internal/teardown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("teardown: %v", err)
	}
}

func run(args []string) error {
	cfg, err := config.NewTeardownConfig(args)
	if err != nil {
		return err
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	// без списка хостов продолжать нельзя: ни одна команда не запускается
	hosts, err := config.ReadHosts(cfg.HostsFile)
	if err != nil {
		return err
	}
	zlog.Info("teardown configured",
		zap.String("hosts_file", cfg.HostsFile),
		zap.Strings("hosts", hosts),
		zap.String("kill_script", cfg.KillScript),
		zap.Duration("command_timeout", cfg.CommandTimeout),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &teardown.ExecRunner{
		Script:  cfg.KillScript,
		Timeout: cfg.CommandTimeout,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
	teardown.NewController(runner, zlog, os.Stdout).Sweep(ctx, hosts)
	return nil
}
