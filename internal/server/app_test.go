package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/photojournal/pkg/api"
)

// setupTestServer поднимает приложение на временной БД
// и отдает httptest сервер с полной цепочкой middleware
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := Config{
		Addr:         ":0",
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
		JWTSecret:    "test-secret",
		Version:      "test",
	}

	app, err := NewApp(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(app.closeStorage)

	server := httptest.NewServer(app.routes())
	t.Cleanup(server.Close)

	return server
}

func TestNewApp_RequiresJWTSecret(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewApp(context.Background(), Config{
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
	}, logger)

	assert.Error(t, err)
}

func doJSON(t *testing.T, server *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()

	var bodyReader io.Reader
	if body != "" {
		bodyReader = bytes.NewBufferString(body)
	}

	req, err := http.NewRequest(method, server.URL+path, bodyReader)
	require.NoError(t, err)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})

	return resp
}

// signUpAndSignIn регистрирует пользователя и возвращает его токен
func signUpAndSignIn(t *testing.T, server *httptest.Server, username, password string) string {
	t.Helper()

	creds := `{"username": "` + username + `", "password": "` + password + `"}`

	resp := doJSON(t, server, http.MethodPost, "/api/auth/sign-up", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, server, http.MethodPost, "/api/auth/sign-in", "", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var signIn api.SignInResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&signIn))
	require.NotEmpty(t, signIn.Token)

	return signIn.Token
}

func TestApp_EntryLifecycle(t *testing.T) {
	server := setupTestServer(t)

	token := signUpAndSignIn(t, server, "alice", "pw1")

	// Создаем запись
	resp := doJSON(t, server, http.MethodPost, "/api/entries", token,
		`{"title": "Day 1", "notes": "went hiking", "photoUrl": "http://photos/1.png"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created api.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Day 1", created.Title)
	assert.Positive(t, created.EntryID)

	// Запись видна в списке
	resp = doJSON(t, server, http.MethodGet, "/api/entries", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []api.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, created.EntryID, list[0].EntryID)

	// Обновляем
	resp = doJSON(t, server, http.MethodPut, "/api/entries/1", token,
		`{"title": "Day 1 updated", "notes": "new notes", "photoUrl": "http://photos/2.png"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated api.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "Day 1 updated", updated.Title)

	// Удаляем: 204 без тела
	resp = doJSON(t, server, http.MethodDelete, "/api/entries/1", token, "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// После удаления записи нет
	resp = doJSON(t, server, http.MethodGet, "/api/entries/1", token, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApp_OwnershipIsolation(t *testing.T) {
	server := setupTestServer(t)

	aliceToken := signUpAndSignIn(t, server, "alice", "pw1")
	bobToken := signUpAndSignIn(t, server, "bob", "pw2")

	// Запись Алисы
	resp := doJSON(t, server, http.MethodPost, "/api/entries", aliceToken,
		`{"title": "Private", "notes": "secret", "photoUrl": "http://photos/1.png"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Боб ее не видит: ни в списке, ни напрямую
	resp = doJSON(t, server, http.MethodGet, "/api/entries", bobToken, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []api.Entry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list)

	// Чужая запись неотличима от несуществующей
	resp = doJSON(t, server, http.MethodGet, "/api/entries/1", bobToken, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, server, http.MethodDelete, "/api/entries/1", bobToken, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Запись Алисы на месте
	resp = doJSON(t, server, http.MethodGet, "/api/entries/1", aliceToken, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApp_EntriesRequireAuth(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{name: "list without token", method: http.MethodGet, path: "/api/entries"},
		{name: "create without token", method: http.MethodPost, path: "/api/entries"},
		{name: "get with tampered token", method: http.MethodGet, path: "/api/entries/1", token: "tampered.token.value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, server, tt.method, tt.path, tt.token, "")
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestApp_SignInFailureIsOpaque(t *testing.T) {
	server := setupTestServer(t)

	resp := doJSON(t, server, http.MethodPost, "/api/auth/sign-up", "",
		`{"username": "alice", "password": "pw1"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	readMessage := func(resp *http.Response) string {
		var errResp api.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
		return errResp.Message
	}

	// Неизвестный username и неверный пароль дают одинаковый ответ
	respUnknown := doJSON(t, server, http.MethodPost, "/api/auth/sign-in", "",
		`{"username": "nobody", "password": "pw1"}`)
	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)

	respWrongPw := doJSON(t, server, http.MethodPost, "/api/auth/sign-in", "",
		`{"username": "alice", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, respWrongPw.StatusCode)

	assert.Equal(t, readMessage(respUnknown), readMessage(respWrongPw))
}

func TestApp_Health(t *testing.T) {
	server := setupTestServer(t)

	resp := doJSON(t, server, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "test", health["version"])
}
