package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/Totarae/shortener-ops/internal/model"
)

// URLStore provides a thread-safe URL storage.
// С непустым file каждая запись дописывается в файл (JSON lines)
// и загружается обратно при старте.
type URLStore struct {
	data  map[string]string
	mutex sync.RWMutex
	file  string
}

// NewURLStore initializes a new URLStore. file == "" — только память.
func NewURLStore(file string) (*URLStore, error) {
	store := &URLStore{
		data: make(map[string]string),
		file: file,
	}

	if err := store.loadFromFile(); err != nil {
		return nil, fmt.Errorf("load %s: %w", file, err)
	}
	return store, nil
}

// Save stores a mapping. Запись попадает в память только после
// успешной записи в файл.
func (s *URLStore) Save(short, long string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.appendToFile(model.Entry{ShortURL: short, OriginalURL: long}); err != nil {
		return fmt.Errorf("persist %s: %w", short, err)
	}
	s.data[short] = long
	return nil
}

// Get retrieves the long URL by its short token.
func (s *URLStore) Get(short string) (string, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	long, ok := s.data[short]
	return long, ok
}

// Len реализует Storage.
func (s *URLStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

// loadFromFile загружает данные из файла при старте узла.
// Более поздняя запись для того же токена перекрывает раннюю.
func (s *URLStore) loadFromFile() error {
	if s.file == "" {
		return nil
	}

	file, err := os.Open(s.file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil // файл ещё не создан
		}
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	for decoder.More() {
		var entry model.Entry
		if err := decoder.Decode(&entry); err != nil {
			return err
		}
		s.data[entry.ShortURL] = entry.OriginalURL
	}
	return nil
}

func (s *URLStore) appendToFile(entry model.Entry) error {
	if s.file == "" {
		return nil
	}

	file, err := os.OpenFile(s.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewEncoder(file).Encode(entry)
}
