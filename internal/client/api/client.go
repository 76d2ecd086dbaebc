// Package api реализует HTTP клиент для PhotoJournal API.
// Тонкий слой marshaling запросов и ответов; вся логика живет
// на сервере.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/photojournal/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetToken устанавливает bearer токен для защищенных запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// SignUp регистрирует нового пользователя
func (c *Client) SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error) {
	var resp api.SignUpResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/sign-up", req, &resp); err != nil {
		return nil, fmt.Errorf("sign-up request failed: %w", err)
	}
	return &resp, nil
}

// SignIn выполняет аутентификацию пользователя
func (c *Client) SignIn(ctx context.Context, req api.SignInRequest) (*api.SignInResponse, error) {
	var resp api.SignInResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/sign-in", req, &resp); err != nil {
		return nil, fmt.Errorf("sign-in request failed: %w", err)
	}
	return &resp, nil
}

// CreateEntry создает новую запись журнала
func (c *Client) CreateEntry(ctx context.Context, req api.EntryRequest) (*api.Entry, error) {
	var resp api.Entry
	if err := c.doRequest(ctx, http.MethodPost, "/api/entries", req, &resp); err != nil {
		return nil, fmt.Errorf("create entry request failed: %w", err)
	}
	return &resp, nil
}

// ListEntries возвращает все записи текущего пользователя
func (c *Client) ListEntries(ctx context.Context) ([]api.Entry, error) {
	var resp []api.Entry
	if err := c.doRequest(ctx, http.MethodGet, "/api/entries", nil, &resp); err != nil {
		return nil, fmt.Errorf("list entries request failed: %w", err)
	}
	return resp, nil
}

// GetEntry возвращает одну запись по идентификатору
func (c *Client) GetEntry(ctx context.Context, entryID int64) (*api.Entry, error) {
	var resp api.Entry
	path := fmt.Sprintf("/api/entries/%d", entryID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get entry request failed: %w", err)
	}
	return &resp, nil
}

// UpdateEntry заменяет все изменяемые поля записи
func (c *Client) UpdateEntry(ctx context.Context, entryID int64, req api.EntryRequest) (*api.Entry, error) {
	var resp api.Entry
	path := fmt.Sprintf("/api/entries/%d", entryID)
	if err := c.doRequest(ctx, http.MethodPut, path, req, &resp); err != nil {
		return nil, fmt.Errorf("update entry request failed: %w", err)
	}
	return &resp, nil
}

// DeleteEntry удаляет запись журнала
func (c *Client) DeleteEntry(ctx context.Context, entryID int64) error {
	path := fmt.Sprintf("/api/entries/%d", entryID)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete entry request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ (204 тела не имеет)
	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
