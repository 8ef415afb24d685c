package utils

import (
	"context"
	"fmt"
	"os/exec"
)

// OpenBrowser starts the platform browser on url without waiting for it to exit
func OpenBrowser(ctx context.Context, url string) error {
	name, args := browserCommand(url)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
