package model

// Mapping пара (короткий токен, длинный URL), созданная успешным запросом /set.
type Mapping struct {
	Short string
	Long  string
}

// Entry переводит пару в формат файловой записи.
func (m Mapping) Entry() Entry {
	return Entry{ShortURL: m.Short, OriginalURL: m.Long}
}
