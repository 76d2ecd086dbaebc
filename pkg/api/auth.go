package api

import "time"

// SignUpRequest представляет запрос на регистрацию нового пользователя
type SignUpRequest struct {
	Username string `json:"username"` // username пользователя
	Password string `json:"password"` // пароль в открытом виде (хешируется на сервере)
}

// SignUpResponse представляет ответ на успешную регистрацию
// Хеш пароля наружу не отдается
type SignUpResponse struct {
	UserID    int64     `json:"userId"`    // идентификатор, назначенный сервером
	Username  string    `json:"username"`  // username пользователя
	CreatedAt time.Time `json:"createdAt"` // время создания
}

// SignInRequest представляет запрос на аутентификацию
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo представляет публичный профиль пользователя
type UserInfo struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// SignInResponse представляет ответ с токеном доступа
type SignInResponse struct {
	User  UserInfo `json:"user"`  // публичный профиль
	Token string   `json:"token"` // JWT bearer token
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
