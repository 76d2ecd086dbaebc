package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/photojournal/pkg/api"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	entryID, err := parseEntryIDArg(args)
	if err != nil {
		return err
	}

	// Показываем текущие значения, пустой ввод оставляет их как есть
	current, err := c.apiClient.GetEntry(ctx, entryID)
	if err != nil {
		return err
	}

	fmt.Printf("=== Edit entry %d ===\n", entryID)
	fmt.Println("Press Enter to keep the current value.")
	fmt.Println()

	title, err := readInput(fmt.Sprintf("Title [%s]: ", current.Title))
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		title = current.Title
	}

	notes, err := readInput(fmt.Sprintf("Notes [%s]: ", current.Notes))
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}
	if notes == "" {
		notes = current.Notes
	}

	photoURL, err := readInput(fmt.Sprintf("Photo URL [%s]: ", current.PhotoURL))
	if err != nil {
		return fmt.Errorf("failed to read photo URL: %w", err)
	}
	if photoURL == "" {
		photoURL = current.PhotoURL
	}

	entry, err := c.apiClient.UpdateEntry(ctx, entryID, api.EntryRequest{
		Title:    title,
		Notes:    notes,
		PhotoURL: photoURL,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("✓ Entry %d updated.\n", entry.EntryID)

	return nil
}
