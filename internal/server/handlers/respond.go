package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/photojournal/internal/server/storage"
	"github.com/iudanet/photojournal/internal/validation"
	"github.com/iudanet/photojournal/pkg/api"
)

// errInvalidLogin возвращается при любой неудаче sign-in:
// пустые поля, неизвестный username или неверный пароль.
// Единый текст не позволяет отличить "нет такого пользователя"
// от "неверный пароль".
var errInvalidLogin = errors.New("invalid login")

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError транслирует ошибку из таксономии в HTTP статус и JSON тело.
// Все ошибки handler-ов проходят через эту точку:
//   - ошибки валидации       -> 400
//   - неверные учетные данные -> 401
//   - отсутствующая/чужая запись -> 404
//   - занятый username        -> 409
//   - все остальное           -> 500 с generic сообщением
func sendError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, validation.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errInvalidLogin):
		statusCode = http.StatusUnauthorized
		message = errInvalidLogin.Error()
	case errors.Is(err, storage.ErrEntryNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, storage.ErrUserAlreadyExists):
		statusCode = http.StatusConflict
		message = "username already taken"
	}

	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}

	sendJSON(logger, w, resp, statusCode)
}
