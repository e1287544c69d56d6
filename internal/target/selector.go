// Package target выбирает экземпляр сервиса для очередного запроса.
package target

import (
	"math/rand"
	"net"
	"strconv"

	"github.com/Totarae/shortener-ops/internal/config"
)

// Selector возвращает адрес host:port для одного запроса.
type Selector interface {
	Pick() string
}

// LocalSelector один адрес, случайный порт из [MinPort, MaxPort].
type LocalSelector struct {
	Host    string
	MinPort int
	MaxPort int
	rnd     *rand.Rand
}

// NewLocalSelector создаёт селектор локального режима.
func NewLocalSelector(host string, minPort, maxPort int, rnd *rand.Rand) *LocalSelector {
	return &LocalSelector{Host: host, MinPort: minPort, MaxPort: maxPort, rnd: rnd}
}

// Pick реализует Selector.
func (s *LocalSelector) Pick() string {
	port := s.MinPort + s.rnd.Intn(s.MaxPort-s.MinPort+1)
	return net.JoinHostPort(s.Host, strconv.Itoa(port))
}

// FleetSelector равновероятный выбор среди удалённых хостов.
// Хост, у которого порт уже указан, используется как есть.
type FleetSelector struct {
	Hosts []string
	Port  int
	rnd   *rand.Rand
}

// NewFleetSelector создаёт селектор режима fleet.
func NewFleetSelector(hosts []string, port int, rnd *rand.Rand) *FleetSelector {
	return &FleetSelector{Hosts: hosts, Port: port, rnd: rnd}
}

// Pick реализует Selector.
func (s *FleetSelector) Pick() string {
	host := s.Hosts[s.rnd.Intn(len(s.Hosts))]
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, strconv.Itoa(s.Port))
}

// New выбирает реализацию по cfg.Mode. Диапазон портов и список хостов
// проверяет cfg.Validate.
func New(cfg *config.LoadgenConfig, rnd *rand.Rand) (Selector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mode == config.ModeFleet {
		return NewFleetSelector(cfg.Hosts, cfg.Port, rnd), nil
	}
	return NewLocalSelector(cfg.LocalHost, cfg.LocalPortMin, cfg.LocalPortMax, rnd), nil
}
