package models

import "time"

// Entry представляет одну запись журнала.
// Каждая запись принадлежит ровно одному пользователю и видна
// только через запросы, аутентифицированные как этот владелец.
type Entry struct {
	EntryID   int64     `json:"entryId"`   // идентификатор, назначенный сервером
	UserID    int64     `json:"userId"`    // владелец записи
	Title     string    `json:"title"`     // заголовок записи
	Notes     string    `json:"notes"`     // текст записи
	PhotoURL  string    `json:"photoUrl"`  // ссылка на фотографию
	CreatedAt time.Time `json:"createdAt"` // время создания
	UpdatedAt time.Time `json:"updatedAt"` // время последнего обновления
}
