// Package tokens генерирует синтетические короткие токены и заглушки длинных URL.
package tokens

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Totarae/shortener-ops/internal/model"
)

const (
	// Alphabet допустимые символы токенов: A-Z и 0-9.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	ShortLen   = 6
	LongLen    = 10
	LongScheme = "http://"
)

// Generator выдаёт случайные пары short/long.
// Уникальность не проверяется: коллизии допустимы.
type Generator struct {
	rnd *rand.Rand
}

// New создаёт генератор поверх переданного источника случайности.
func New(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// String возвращает строку длины n из Alphabet.
func (g *Generator) String(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(Alphabet[g.rnd.Intn(len(Alphabet))])
	}
	return b.String()
}

// Short короткий токен из ShortLen символов.
func (g *Generator) Short() string {
	return g.String(ShortLen)
}

// Long заглушка длинного URL: LongScheme + LongLen символов.
func (g *Generator) Long() string {
	return LongScheme + g.String(LongLen)
}

// Mapping новая пара. Длинная часть генерируется первой.
func (g *Generator) Mapping() model.Mapping {
	long := g.Long()
	return model.Mapping{Short: g.Short(), Long: long}
}

// NewRand возвращает *rand.Rand, безопасный для конкурентного использования.
// seed == 0 означает сид от текущего времени.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}

type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}
