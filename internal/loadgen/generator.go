// Package loadgen реализует синтетическую нагрузку на сервис сокращения ссылок:
// смесь запросов /set и /get с реестром ранее созданных пар.
package loadgen

import (
	"context"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Totarae/shortener-ops/internal/client"
	"github.com/Totarae/shortener-ops/internal/model"
	"github.com/Totarae/shortener-ops/internal/registry"
	"github.com/Totarae/shortener-ops/internal/target"
	"github.com/Totarae/shortener-ops/internal/tokens"
)

// DefaultResolveThreshold случайное число выше порога даёт попытку resolve (~20%).
const DefaultResolveThreshold = 0.8

// Options параметры прогона.
type Options struct {
	TotalRequests    int
	ResolveThreshold float64
	// Workers > 1 включает пул воркеров; порядок попыток тогда не гарантируется.
	Workers int
}

// Generator выполняет TotalRequests попыток и считает успешные операции.
type Generator struct {
	dispatcher client.Dispatcher
	selector   target.Selector
	tokens     *tokens.Generator
	registry   *registry.Registry
	rnd        *rand.Rand
	logger     *zap.Logger
	opts       Options

	creates   atomic.Int64
	resolves  atomic.Int64
	attempted atomic.Int64
}

// New создаёт генератор. rnd должен быть безопасен для конкурентного
// использования, если Workers > 1 (см. tokens.NewRand).
func New(d client.Dispatcher, s target.Selector, rnd *rand.Rand, logger *zap.Logger, opts Options) *Generator {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Generator{
		dispatcher: d,
		selector:   s,
		tokens:     tokens.New(rnd),
		registry:   registry.New(),
		rnd:        rnd,
		logger:     logger,
		opts:       opts,
	}
}

// Registry реестр пар, созданных за прогон.
func (g *Generator) Registry() *registry.Registry {
	return g.registry
}

// shouldResolve: реестр не пуст И случайное число в [0,1) больше порога.
// На пустом реестре число не тянется вовсе.
func (g *Generator) shouldResolve() bool {
	return !g.registry.Empty() && g.rnd.Float64() > g.opts.ResolveThreshold
}

// trial одна попытка: либо resolve существующей пары, либо create новой.
// Ошибка транспорта только не увеличивает счётчик.
func (g *Generator) trial(ctx context.Context) {
	defer g.attempted.Add(1)

	if g.shouldResolve() {
		m, ok := g.registry.Pick(g.rnd)
		if !ok {
			return
		}
		host := g.selector.Pick()
		if err := g.dispatcher.Resolve(ctx, host, m.Short); err != nil {
			g.logger.Debug("resolve failed", zap.String("host", host), zap.String("short", m.Short), zap.Error(err))
			return
		}
		g.resolves.Add(1)
		return
	}

	m := g.tokens.Mapping()
	host := g.selector.Pick()
	if err := g.dispatcher.Create(ctx, host, m); err != nil {
		g.logger.Debug("create failed", zap.String("host", host), zap.String("short", m.Short), zap.Error(err))
		return
	}
	g.registry.Append(m)
	g.creates.Add(1)
}

// Run выполняет прогон. Без отмены ctx выполняется ровно TotalRequests попыток.
// Отмена ctx прекращает запуск новых попыток.
func (g *Generator) Run(ctx context.Context) model.Report {
	runID := uuid.NewString()
	start := time.Now()
	g.logger.Info("load run started",
		zap.String("run_id", runID),
		zap.Int("total_requests", g.opts.TotalRequests),
		zap.Int("workers", g.opts.Workers),
	)

	if g.opts.Workers == 1 {
		for i := 0; i < g.opts.TotalRequests; i++ {
			if ctx.Err() != nil {
				break
			}
			g.trial(ctx)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(g.opts.Workers)
		for i := 0; i < g.opts.TotalRequests; i++ {
			if ctx.Err() != nil {
				break
			}
			eg.Go(func() error {
				g.trial(ctx)
				return nil
			})
		}
		_ = eg.Wait()
	}

	report := model.Report{
		RunID:              runID,
		Total:              g.opts.TotalRequests,
		Attempted:          int(g.attempted.Load()),
		SuccessfulCreates:  int(g.creates.Load()),
		SuccessfulResolves: int(g.resolves.Load()),
		RegistrySize:       g.registry.Len(),
		Duration:           time.Since(start),
	}

	g.logger.Info("load run finished",
		zap.String("run_id", runID),
		zap.Int("attempted", report.Attempted),
		zap.Int("successful_creates", report.SuccessfulCreates),
		zap.Int("successful_resolves", report.SuccessfulResolves),
		zap.Int("registry_size", report.RegistrySize),
		zap.Duration("duration", report.Duration),
	)
	return report
}
