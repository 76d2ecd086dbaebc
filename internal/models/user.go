package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID             int64     `json:"userId"`    // идентификатор, назначенный сервером
	Username       string    `json:"username"`  // уникальный username
	HashedPassword string    `json:"-"`         // argon2id хеш пароля, наружу не отдается
	CreatedAt      time.Time `json:"createdAt"` // время создания
}
