// Package crypto реализует хеширование паролей для сервера.
// Используется Argon2id: соленый, односторонний и намеренно дорогой,
// чтобы замедлить перебор паролей.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Параметры Argon2id
const (
	// Argon2Time - количество итераций (time cost)
	Argon2Time = 1
	// Argon2Memory - объем памяти в KB (64MB = 64*1024 KB)
	Argon2Memory = 64 * 1024
	// Argon2Threads - количество параллельных потоков
	Argon2Threads = 4
	// Argon2KeyLen - длина выходного хеша в байтах
	Argon2KeyLen = 32
	// SaltSize - размер соли в байтах
	SaltSize = 16
)

// ErrPasswordMismatch возвращается, когда пароль не соответствует хешу
var ErrPasswordMismatch = fmt.Errorf("password does not match")

// HashPassword хеширует пароль с криптографически случайной солью.
// Результат в PHC-формате: $argon2id$v=19$m=...,t=...,p=...$salt$hash
// Одинаковые пароли дают разные хеши благодаря случайной соли.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	// Генерируем случайную соль
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, Argon2Time, Argon2Memory, Argon2Threads, Argon2KeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		Argon2Memory,
		Argon2Time,
		Argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// VerifyPassword проверяет, соответствует ли пароль сохраненному хешу.
// Возвращает ErrPasswordMismatch при несовпадении.
func VerifyPassword(password, encodedHash string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	salt, expected, memory, time, threads, err := decodeHash(encodedHash)
	if err != nil {
		return fmt.Errorf("failed to decode stored hash: %w", err)
	}

	// Пересчитываем хеш с сохраненными параметрами
	computed := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(expected)))

	// Сравнение за постоянное время
	if subtle.ConstantTimeCompare(computed, expected) != 1 {
		return ErrPasswordMismatch
	}

	return nil
}

// decodeHash разбирает PHC-формат хеша на составляющие
func decodeHash(encodedHash string) (salt, hash []byte, memory, time uint32, threads uint8, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, fmt.Errorf("invalid hash format")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("invalid version segment: %w", err)
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, fmt.Errorf("incompatible argon2 version: %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("invalid params segment: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("invalid salt encoding: %w", err)
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("invalid hash encoding: %w", err)
	}

	return salt, hash, memory, time, threads, nil
}
