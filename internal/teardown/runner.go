// Package teardown рассылает внешнюю команду остановки по списку хостов.
package teardown

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

//go:generate mockgen -source=runner.go -destination=mocks/runner_mock.go -package=mocks

// ErrCommandTimeout команда не завершилась за отведённое время.
var ErrCommandTimeout = errors.New("kill command timed out")

// Runner запускает команду остановки для одного хоста и возвращает её код выхода.
// Ненулевой код сам по себе ошибкой не является; err != nil означает,
// что код выхода получить не удалось (тогда код равен -1).
type Runner interface {
	Run(ctx context.Context, host string) (int, error)
}

// ExecRunner запускает исполняемый файл Script с единственным аргументом — хостом.
type ExecRunner struct {
	Script  string
	Timeout time.Duration
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run реализует Runner.
func (r *ExecRunner) Run(ctx context.Context, host string) (int, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Script, host)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return -1, fmt.Errorf("%w: %s %s after %s", ErrCommandTimeout, r.Script, host, r.Timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("run %s %s: %w", r.Script, host, err)
}
