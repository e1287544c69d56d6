package storage

import "errors"

// ErrNotFound короткий токен не найден.
var ErrNotFound = errors.New("short token not found")

// Storage определяет интерфейс локального хранилища пар short -> long.
type Storage interface {
	// Save сохраняет (или перезаписывает) сопоставление.
	Save(short, long string) error
	// Get возвращает длинный URL по короткому токену.
	Get(short string) (string, bool)
	// Len число сохранённых пар.
	Len() int
}
