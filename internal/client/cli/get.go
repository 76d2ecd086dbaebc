package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	entryID, err := parseEntryIDArg(args)
	if err != nil {
		return err
	}

	entry, err := c.apiClient.GetEntry(ctx, entryID)
	if err != nil {
		return err
	}

	fmt.Printf("Entry %d\n", entry.EntryID)
	fmt.Printf("Title:     %s\n", entry.Title)
	fmt.Printf("Notes:     %s\n", entry.Notes)
	fmt.Printf("Photo URL: %s\n", entry.PhotoURL)
	fmt.Printf("Created:   %s\n", entry.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Updated:   %s\n", entry.UpdatedAt.Local().Format("2006-01-02 15:04:05"))

	return nil
}
