// Package cli реализует команды терминального клиента PhotoJournal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/iudanet/photojournal/internal/client/api"
	"github.com/iudanet/photojournal/internal/client/storage"
)

// Cli связывает API клиент и локальное хранилище сессии
type Cli struct {
	apiClient *api.Client
	sessions  storage.SessionStorage
}

// New создает CLI поверх API клиента и хранилища сессии
func New(apiClient *api.Client, sessions storage.SessionStorage) *Cli {
	return &Cli{
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// requireSession загружает сохраненную сессию и устанавливает
// bearer токен на API клиенте
func (c *Cli) requireSession(ctx context.Context) (*storage.SessionData, error) {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not signed in, run 'photojournal login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	c.apiClient.SetToken(session.Token)
	return session, nil
}

// PrintUsage печатает справку по командам
func PrintUsage() {
	fmt.Println("PhotoJournal Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  photojournal [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version       Show version information")
	fmt.Println("  --server URL    Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH       Path to local session database (default: photojournal-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register            Sign up a new user")
	fmt.Println("  login               Sign in and store the session")
	fmt.Println("  logout              Sign out (clear the stored session)")
	fmt.Println("  status              Show authentication status")
	fmt.Println("  add                 Add a new journal entry")
	fmt.Println("  list                List your journal entries")
	fmt.Println("  get <entryId>       Show one journal entry")
	fmt.Println("  edit <entryId>      Edit a journal entry")
	fmt.Println("  delete <entryId>    Delete a journal entry")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  photojournal register")
	fmt.Println("  photojournal login")
	fmt.Println("  photojournal add")
	fmt.Println("  photojournal list")
	fmt.Println("  photojournal get 1")
	fmt.Println("  photojournal --server https://journal.example.com login")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	passwordBytes, err := term.ReadPassword(fd)
	fmt.Println() // Переход на новую строку после ввода пароля
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}

// parseEntryIDArg разбирает аргумент команды с идентификатором записи
func parseEntryIDArg(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("entryId argument is required")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid entryId: %q", args[0])
	}

	return id, nil
}
