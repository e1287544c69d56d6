package teardown

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Totarae/shortener-ops/internal/model"
)

// Controller выполняет проход остановки: по одной команде на хост, строго по порядку.
type Controller struct {
	runner Runner
	logger *zap.Logger
	out    io.Writer
}

// NewController создаёт контроллер. Строки отчёта пишутся в out.
func NewController(runner Runner, logger *zap.Logger, out io.Writer) *Controller {
	return &Controller{runner: runner, logger: logger, out: out}
}

// Sweep вызывает команду для каждого хоста. Сбой на одном хосте
// не прерывает проход: результаты возвращаются в порядке списка.
// После отмены ctx команды больше не запускаются, оставшиеся хосты
// помечаются как пропущенные.
func (c *Controller) Sweep(ctx context.Context, hosts []string) []model.HostResult {
	results := make([]model.HostResult, 0, len(hosts))

	for _, host := range hosts {
		if err := ctx.Err(); err != nil {
			res := model.HostResult{Host: host, ExitCode: -1, Err: err, Skipped: true}
			results = append(results, res)
			fmt.Fprintln(c.out, res.String())
			c.logger.Warn("kill command skipped", zap.String("host", host), zap.Error(err))
			continue
		}

		code, err := c.runner.Run(ctx, host)
		res := model.HostResult{Host: host, ExitCode: code, Err: err}
		results = append(results, res)

		fmt.Fprintln(c.out, res.String())

		fields := []zap.Field{zap.String("host", host), zap.Int("retcode", code)}
		switch {
		case err != nil:
			c.logger.Warn("kill command failed", append(fields, zap.Error(err))...)
		case code != 0:
			c.logger.Warn("kill command exited with non-zero status", fields...)
		default:
			c.logger.Info("kill command issued", fields...)
		}
	}

	ok := Succeeded(results)
	fmt.Fprintf(c.out, "%d/%d hosts shut down cleanly\n", ok, len(results))
	c.logger.Info("teardown sweep finished", zap.Int("hosts", len(results)), zap.Int("ok", ok))
	return results
}

// Succeeded число хостов с нулевым кодом выхода.
func Succeeded(results []model.HostResult) int {
	n := 0
	for _, r := range results {
		if r.OK() {
			n++
		}
	}
	return n
}
