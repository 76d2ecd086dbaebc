package api

import "time"

// EntryRequest представляет тело запроса create/update для записи журнала
type EntryRequest struct {
	Title    string `json:"title"`    // заголовок записи
	Notes    string `json:"notes"`    // текст записи
	PhotoURL string `json:"photoUrl"` // ссылка на фотографию
}

// Entry представляет запись журнала в wire-формате
type Entry struct {
	EntryID   int64     `json:"entryId"`   // идентификатор, назначенный сервером
	UserID    int64     `json:"userId"`    // владелец записи
	Title     string    `json:"title"`     // заголовок записи
	Notes     string    `json:"notes"`     // текст записи
	PhotoURL  string    `json:"photoUrl"`  // ссылка на фотографию
	CreatedAt time.Time `json:"createdAt"` // время создания
	UpdatedAt time.Time `json:"updatedAt"` // время последнего обновления
}
