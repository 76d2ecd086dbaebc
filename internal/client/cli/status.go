package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/photojournal/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			fmt.Println("Not signed in.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	fmt.Printf("Signed in as %s (user id %d)\n", session.Username, session.UserID)
	return nil
}
