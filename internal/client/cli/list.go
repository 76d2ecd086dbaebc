package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	entries, err := c.apiClient.ListEntries(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No entries yet. Run 'photojournal add' to create one.")
		return nil
	}

	fmt.Printf("%-6s  %-25s  %s\n", "ID", "CREATED", "TITLE")
	for _, entry := range entries {
		fmt.Printf("%-6d  %-25s  %s\n",
			entry.EntryID,
			entry.CreatedAt.Local().Format("2006-01-02 15:04"),
			entry.Title,
		)
	}

	return nil
}
