// Command loadgen шлёт в сервис сокращения ссылок смесь запросов /set и /get
// и печатает число успешных операций каждого вида.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Totarae/shortener-ops/internal/client"
	"github.com/Totarae/shortener-ops/internal/config"
	"github.com/Totarae/shortener-ops/internal/loadgen"
	"github.com/Totarae/shortener-ops/internal/logger"
	"github.com/Totarae/shortener-ops/internal/target"
	"github.com/Totarae/shortener-ops/internal/tokens"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("loadgen: %v", err)
	}
}

func run(args []string) error {
	cfg, err := config.NewLoadgenConfig(args)
	if err != nil {
		return err
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer zlog.Sync()

	zlog.Info("load generator configured",
		zap.String("mode", cfg.Mode),
		zap.Int("total_requests", cfg.TotalRequests),
		zap.Strings("hosts", cfg.Hosts),
		zap.Int("workers", cfg.Workers),
		zap.Duration("request_timeout", cfg.RequestTimeout),
	)

	rnd := tokens.NewRand(cfg.Seed)
	selector, err := target.New(cfg, rnd)
	if err != nil {
		return err
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConnsPerHost: cfg.Workers,
		},
	}
	dispatcher := client.NewHTTPDispatcher(httpClient, client.Options{
		Scheme:        cfg.Scheme,
		CreateMethod:  cfg.CreateMethod,
		ResolveMethod: cfg.ResolveMethod,
		Timeout:       cfg.RequestTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := loadgen.New(dispatcher, selector, rnd, zlog, loadgen.Options{
		TotalRequests:    cfg.TotalRequests,
		ResolveThreshold: cfg.ResolveThreshold,
		Workers:          cfg.Workers,
	})
	report := gen.Run(ctx)
	fmt.Println(report.String())

	if cfg.DumpPath != "" {
		if err := gen.Registry().Dump(cfg.DumpPath); err != nil {
			return err
		}
		zlog.Info("registry dumped", zap.String("path", cfg.DumpPath), zap.Int("mappings", report.RegistrySize))
	}
	return nil
}
