package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/photojournal/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	fmt.Println("=== Sign up ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	resp, err := c.apiClient.SignUp(ctx, api.SignUpRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Sign up successful!")
	fmt.Printf("Username: %s (user id %d)\n", resp.Username, resp.UserID)
	fmt.Println("Now run 'photojournal login' to sign in.")

	return nil
}
