package model

import "time"

// URLObject строка таблицы mappings в режиме database.
type URLObject struct {
	ID      uint
	Short   string
	Long    string
	Created time.Time
}
