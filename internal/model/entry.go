package model

// Entry представляет структуру записи в файле (JSON lines).
// Используется и файловым хранилищем devnode, и дампом реестра генератора нагрузки.
type Entry struct {
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}
