// Package registry хранит пары, успешно созданные за прогон генератора.
package registry

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sync"

	"github.com/Totarae/shortener-ops/internal/model"
)

// Registry append-only последовательность пар. Никогда не уменьшается.
type Registry struct {
	mu    sync.RWMutex
	items []model.Mapping
}

// New возвращает пустой реестр.
func New() *Registry {
	return &Registry{}
}

// Append добавляет пару в конец.
func (r *Registry) Append(m model.Mapping) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, m)
}

// Len текущий размер.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Empty true, пока ни одна пара не создана.
func (r *Registry) Empty() bool {
	return r.Len() == 0
}

// Pick равновероятно выбирает пару (с возвращением).
// ok == false только для пустого реестра.
func (r *Registry) Pick(rnd *rand.Rand) (model.Mapping, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.items) == 0 {
		return model.Mapping{}, false
	}
	return r.items[rnd.Intn(len(r.items))], true
}

// Snapshot копия содержимого в порядке добавления.
func (r *Registry) Snapshot() []model.Mapping {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Mapping, len(r.items))
	copy(out, r.items)
	return out
}

// Dump записывает реестр в файл построчно в JSON, перезаписывая файл.
func (r *Registry) Dump(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	for _, m := range r.Snapshot() {
		if err := enc.Encode(m.Entry()); err != nil {
			return fmt.Errorf("write dump entry: %w", err)
		}
	}
	return file.Sync()
}
