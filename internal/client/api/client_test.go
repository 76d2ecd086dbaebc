package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/photojournal/pkg/api"
)

func TestClient_SignUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/sign-up", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.SignUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "pw1", req.Password)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.SignUpResponse{
			UserID:    1,
			Username:  "alice",
			CreatedAt: time.Now().UTC(),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.SignUp(context.Background(), api.SignUpRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "alice", resp.Username)
}

func TestClient_SignIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/sign-in", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.SignInResponse{
			User:  api.UserInfo{UserID: 1, Username: "alice"},
			Token: "issued-token",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	resp, err := client.SignIn(context.Background(), api.SignInRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestClient_SignIn_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "Unauthorized",
			Message: "invalid login",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.SignIn(context.Background(), api.SignInRequest{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	// Сообщение сервера доходит до пользователя
	assert.Contains(t, err.Error(), "invalid login")
	assert.Contains(t, err.Error(), "401")
}

func TestClient_CreateEntry_SendsToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/entries", r.URL.Path)
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))

		var req api.EntryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.Entry{
			EntryID:  1,
			UserID:   1,
			Title:    req.Title,
			Notes:    req.Notes,
			PhotoURL: req.PhotoURL,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("my-token")

	entry, err := client.CreateEntry(context.Background(), api.EntryRequest{
		Title:    "Day 1",
		Notes:    "went hiking",
		PhotoURL: "http://photos/1.png",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.EntryID)
	assert.Equal(t, "Day 1", entry.Title)
}

func TestClient_ListEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/entries", r.URL.Path)
		// GET без тела не несет Content-Type
		assert.Empty(t, r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]api.Entry{
			{EntryID: 1, Title: "First"},
			{EntryID: 2, Title: "Second"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("my-token")

	entries, err := client.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "First", entries[0].Title)
}

func TestClient_GetEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/entries/42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.Entry{EntryID: 42, Title: "Found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("my-token")

	entry, err := client.GetEntry(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), entry.EntryID)
}

func TestClient_GetEntry_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "Not Found",
			Message: "entry not found",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("my-token")

	_, err := client.GetEntry(context.Background(), 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry not found")
}

func TestClient_UpdateEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/entries/7", r.URL.Path)

		var req api.EntryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.Entry{EntryID: 7, Title: req.Title})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("my-token")

	entry, err := client.UpdateEntry(context.Background(), 7, api.EntryRequest{
		Title:    "Updated",
		Notes:    "n",
		PhotoURL: "u",
	})
	require.NoError(t, err)
	assert.Equal(t, "Updated", entry.Title)
}

func TestClient_DeleteEntry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/entries/7", r.URL.Path)

		// 204 без тела
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("my-token")

	err := client.DeleteEntry(context.Background(), 7)
	assert.NoError(t, err)
}

func TestClient_NoTokenHeaderWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.SignUpResponse{UserID: 1, Username: "alice"})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.SignUp(context.Background(), api.SignUpRequest{Username: "alice", Password: "pw1"})
	assert.NoError(t, err)
}
