package model

import (
	"fmt"
	"time"
)

// Report итог одного прогона генератора нагрузки.
type Report struct {
	RunID              string
	Total              int // запрошенное число попыток
	Attempted          int // фактически выполненные попытки (меньше Total только при отмене)
	SuccessfulCreates  int
	SuccessfulResolves int
	RegistrySize       int
	Duration           time.Duration
}

// String сводка в том виде, в каком её печатает loadgen.
func (r Report) String() string {
	return fmt.Sprintf("%d requests sent. Num successful requests: GET -> %d | POST -> %d",
		r.Attempted, r.SuccessfulResolves, r.SuccessfulCreates)
}

// HostResult результат команды остановки для одного хоста.
type HostResult struct {
	Host     string
	ExitCode int
	Err      error
	// Skipped команда не запускалась: проход отменён до этого хоста.
	Skipped bool
}

// OK сообщает, завершилась ли команда с нулевым статусом.
func (h HostResult) OK() bool {
	return !h.Skipped && h.Err == nil && h.ExitCode == 0
}

// String строка отчёта по хосту.
func (h HostResult) String() string {
	if h.Skipped {
		return fmt.Sprintf("Skipped %s: sweep cancelled", h.Host)
	}
	return fmt.Sprintf("Issued kill command to %s with retcode %d", h.Host, h.ExitCode)
}
