package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive browser and blocks until the user quits
// or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Gateway == nil {
		return errors.New("tui: a gateway is required")
	}

	p := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to run user browser: %w", err)
	}
	return nil
}
