// Package validation содержит проверки формы запросов.
// Здесь проверяется только наличие и форма полей; принадлежность
// и существование записей проверяет слой хранения.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrValidation - базовая ошибка валидации.
// Все ошибки пакета оборачивают её, чтобы handler мог
// транслировать их в HTTP 400 через errors.Is.
var ErrValidation = errors.New("validation error")

// ValidateCredentials проверяет, что username и password непустые
func ValidateCredentials(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required fields", ErrValidation)
	}
	return nil
}

// ValidateEntryInput проверяет обязательные поля записи журнала
// Возвращает список отсутствующих полей в тексте ошибки
func ValidateEntryInput(title, notes, photoURL string) error {
	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if notes == "" {
		missing = append(missing, "notes")
	}
	if photoURL == "" {
		missing = append(missing, "photoUrl")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s is required", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// ParseEntryID разбирает path-параметр entryId
// Параметр должен быть целым положительным числом
func ParseEntryID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: entryId is required", ErrValidation)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-integer entryId: %q", ErrValidation, raw)
	}

	if id <= 0 {
		return 0, fmt.Errorf("%w: invalid entryId: %d", ErrValidation, id)
	}

	return id, nil
}
