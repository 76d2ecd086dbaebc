package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/photojournal/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	fmt.Println("=== New entry ===")
	fmt.Println()

	title, err := readInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	notes, err := readInput("Notes: ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	photoURL, err := readInput("Photo URL: ")
	if err != nil {
		return fmt.Errorf("failed to read photo URL: %w", err)
	}

	entry, err := c.apiClient.CreateEntry(ctx, api.EntryRequest{
		Title:    title,
		Notes:    notes,
		PhotoURL: photoURL,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ Entry %d created.\n", entry.EntryID)

	return nil
}
