package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/photojournal/internal/client/storage"
)

func (c *Cli) runLogout(ctx context.Context) error {
	// Сервер токены не хранит, так что sign-out - это
	// просто удаление локальной сессии
	if err := c.sessions.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			fmt.Println("Not signed in.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	fmt.Println("✓ Signed out.")
	return nil
}
