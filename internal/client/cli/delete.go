package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	entryID, err := parseEntryIDArg(args)
	if err != nil {
		return err
	}

	if err := c.apiClient.DeleteEntry(ctx, entryID); err != nil {
		return err
	}

	fmt.Printf("✓ Entry %d deleted.\n", entryID)
	return nil
}
