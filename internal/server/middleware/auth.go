package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/photojournal/internal/server/handlers"
	"github.com/iudanet/photojournal/pkg/api"
)

// AuthMiddleware создает middleware для проверки bearer токена.
// Проверка чисто криптографическая: подпись токена и его claims,
// без обращений к БД. Identity кладется в контекст запроса для
// entry handler-ов.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header",
					"method", r.Method,
					"path", r.URL.Path,
				)
				unauthorized(logger, w, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("invalid Authorization header format")
				unauthorized(logger, w, "invalid token format")
				return
			}

			tokenString := parts[1]

			// Валидируем подпись и разбираем claims
			claims, err := handlers.ValidateAccessToken(jwtConfig, tokenString)
			if err != nil {
				logger.Warn("invalid access token", "error", err)
				unauthorized(logger, w, "invalid token")
				return
			}

			// Добавляем данные из токена в контекст
			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, handlers.UsernameKey, claims.Username)

			logger.Debug("user authenticated",
				"user_id", claims.UserID,
				"username", claims.Username,
			)

			// Передаем запрос дальше с обновленным контекстом
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized отправляет 401 в том же JSON формате, что и handler-ы
func unauthorized(logger *slog.Logger, w http.ResponseWriter, message string) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(http.StatusUnauthorized),
		Message: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode error response", slog.Any("error", err))
	}
}
