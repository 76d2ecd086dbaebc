package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/iudanet/photojournal/internal/models"
	"github.com/iudanet/photojournal/internal/server/storage"
	"github.com/iudanet/photojournal/internal/validation"
	"github.com/iudanet/photojournal/pkg/api"
)

// EntryHandler обрабатывает CRUD запросы записей журнала.
// Все операции привязаны к пользователю из контекста запроса,
// который кладет туда auth middleware.
type EntryHandler struct {
	logger       *slog.Logger
	entryStorage storage.EntryStorage
}

// NewEntryHandler создает новый handler для записей журнала
func NewEntryHandler(logger *slog.Logger, entryStorage storage.EntryStorage) *EntryHandler {
	return &EntryHandler{
		logger:       logger,
		entryStorage: entryStorage,
	}
}

// Create обрабатывает POST /api/entries
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.unauthenticated(w)
		return
	}

	var req api.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode create request", slog.Any("error", err))
		sendError(h.logger, w, fmt.Errorf("%w: invalid request body", validation.ErrValidation))
		return
	}

	if err := validation.ValidateEntryInput(req.Title, req.Notes, req.PhotoURL); err != nil {
		sendError(h.logger, w, err)
		return
	}

	entry, err := h.entryStorage.CreateEntry(ctx, userID, req.Title, req.Notes, req.PhotoURL)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create entry", slog.Any("error", err))
		sendError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "entry created",
		slog.Int64("user_id", userID),
		slog.Int64("entry_id", entry.EntryID))

	sendJSON(h.logger, w, entryToAPI(entry), http.StatusCreated)
}

// List обрабатывает GET /api/entries
// Возвращает все записи аутентифицированного пользователя
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.unauthenticated(w)
		return
	}

	entries, err := h.entryStorage.ListEntries(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list entries", slog.Any("error", err))
		sendError(h.logger, w, err)
		return
	}

	resp := make([]api.Entry, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, entryToAPI(entry))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Get обрабатывает GET /api/entries/{entryId}
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.unauthenticated(w)
		return
	}

	entryID, err := validation.ParseEntryID(r.PathValue("entryId"))
	if err != nil {
		sendError(h.logger, w, err)
		return
	}

	entry, err := h.entryStorage.GetEntry(ctx, userID, entryID)
	if err != nil {
		if !errors.Is(err, storage.ErrEntryNotFound) {
			h.logger.ErrorContext(ctx, "failed to get entry", slog.Any("error", err))
		}
		sendError(h.logger, w, err)
		return
	}

	sendJSON(h.logger, w, entryToAPI(entry), http.StatusOK)
}

// Update обрабатывает PUT /api/entries/{entryId}
// Заменяет все изменяемые поля записи
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.unauthenticated(w)
		return
	}

	entryID, err := validation.ParseEntryID(r.PathValue("entryId"))
	if err != nil {
		sendError(h.logger, w, err)
		return
	}

	var req api.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode update request", slog.Any("error", err))
		sendError(h.logger, w, fmt.Errorf("%w: invalid request body", validation.ErrValidation))
		return
	}

	if err := validation.ValidateEntryInput(req.Title, req.Notes, req.PhotoURL); err != nil {
		sendError(h.logger, w, err)
		return
	}

	entry, err := h.entryStorage.UpdateEntry(ctx, userID, entryID, req.Title, req.Notes, req.PhotoURL)
	if err != nil {
		if !errors.Is(err, storage.ErrEntryNotFound) {
			h.logger.ErrorContext(ctx, "failed to update entry", slog.Any("error", err))
		}
		sendError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "entry updated",
		slog.Int64("user_id", userID),
		slog.Int64("entry_id", entryID))

	sendJSON(h.logger, w, entryToAPI(entry), http.StatusOK)
}

// Delete обрабатывает DELETE /api/entries/{entryId}
// Успешное удаление отвечает 204 без тела
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.unauthenticated(w)
		return
	}

	entryID, err := validation.ParseEntryID(r.PathValue("entryId"))
	if err != nil {
		sendError(h.logger, w, err)
		return
	}

	if err := h.entryStorage.DeleteEntry(ctx, userID, entryID); err != nil {
		if !errors.Is(err, storage.ErrEntryNotFound) {
			h.logger.ErrorContext(ctx, "failed to delete entry", slog.Any("error", err))
		}
		sendError(h.logger, w, err)
		return
	}

	h.logger.InfoContext(ctx, "entry deleted",
		slog.Int64("user_id", userID),
		slog.Int64("entry_id", entryID))

	w.WriteHeader(http.StatusNoContent)
}

// unauthenticated отвечает 401, когда в контексте нет identity.
// Сюда можно попасть только если route не обернут auth middleware.
func (h *EntryHandler) unauthenticated(w http.ResponseWriter) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(http.StatusUnauthorized),
		Message: "authentication required",
	}
	sendJSON(h.logger, w, resp, http.StatusUnauthorized)
}

// entryToAPI переводит модель хранения в wire-формат
func entryToAPI(entry *models.Entry) api.Entry {
	return api.Entry{
		EntryID:   entry.EntryID,
		UserID:    entry.UserID,
		Title:     entry.Title,
		Notes:     entry.Notes,
		PhotoURL:  entry.PhotoURL,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
