package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/photojournal/internal/crypto"
	"github.com/iudanet/photojournal/internal/server/storage"
	"github.com/iudanet/photojournal/internal/validation"
	"github.com/iudanet/photojournal/pkg/api"
)

// AuthHandler обрабатывает запросы регистрации и аутентификации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	jwtConfig   JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		jwtConfig:   jwtConfig,
	}
}

// SignUp обрабатывает POST /api/auth/sign-up
// Регистрация нового пользователя
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode sign-up request", slog.Any("error", err))
		sendError(h.logger, w, fmt.Errorf("%w: invalid request body", validation.ErrValidation))
		return
	}

	// Проверка обязательных полей
	if err := validation.ValidateCredentials(req.Username, req.Password); err != nil {
		h.logger.WarnContext(ctx, "invalid sign-up request", slog.Any("error", err))
		sendError(h.logger, w, err)
		return
	}

	// Хешируем пароль до записи в БД
	// Открытый пароль дальше этой точки не живет
	hashedPassword, err := crypto.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(h.logger, w, err)
		return
	}

	// Сохраняем в БД
	user, err := h.userStorage.CreateUser(ctx, req.Username, hashedPassword)
	if err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "username already taken", slog.String("username", req.Username))
		} else {
			h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		}
		sendError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "user signed up",
		slog.String("username", user.Username),
		slog.Int64("user_id", user.ID))

	resp := api.SignUpResponse{
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// SignIn обрабатывает POST /api/auth/sign-in
// Аутентификация пользователя и выдача bearer токена
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode sign-in request", slog.Any("error", err))
		sendError(h.logger, w, errInvalidLogin)
		return
	}

	// Пустые поля дают ту же ошибку, что и неверные учетные данные
	if req.Username == "" || req.Password == "" {
		sendError(h.logger, w, errInvalidLogin)
		return
	}

	// Ищем пользователя
	user, err := h.userStorage.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "sign-in failed: user not found", slog.String("username", req.Username))
			sendError(h.logger, w, errInvalidLogin)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, err)
		return
	}

	// Проверяем пароль
	if err := crypto.VerifyPassword(req.Password, user.HashedPassword); err != nil {
		h.logger.WarnContext(ctx, "sign-in failed: invalid password", slog.String("username", req.Username))
		sendError(h.logger, w, errInvalidLogin)
		return
	}

	// Генерируем JWT, связывающий {userId, username}
	token, err := GenerateAccessToken(h.jwtConfig, user.ID, user.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "user signed in",
		slog.String("username", user.Username),
		slog.Int64("user_id", user.ID))

	resp := api.SignInResponse{
		User: api.UserInfo{
			UserID:   user.ID,
			Username: user.Username,
		},
		Token: token,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
