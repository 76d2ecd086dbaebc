package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/photojournal/internal/client/storage"
	"github.com/iudanet/photojournal/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	fmt.Println("=== Sign in ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Authenticating...")

	resp, err := c.apiClient.SignIn(ctx, api.SignInRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Сохраняем токен вместе с публичным профилем
	session := &storage.SessionData{
		UserID:   resp.User.UserID,
		Username: resp.User.Username,
		Token:    resp.Token,
	}

	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Signed in!")
	fmt.Printf("Username: %s\n", resp.User.Username)

	return nil
}
