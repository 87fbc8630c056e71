package main

import (
	"fmt"
	"io"

	"github.com/cli/go-gh/pkg/term"
)

const defaultTableWidth = 120

// Output is where formatted results go.
type Output struct {
	Out   io.Writer
	Err   io.Writer
	IsTTY bool
	Width int
}

// OutputFromEnv describes the process terminal.
func OutputFromEnv() Output {
	t := term.FromEnv()
	out := Output{
		Out:   t.Out(),
		Err:   t.ErrOut(),
		IsTTY: t.IsTerminalOutput(),
		Width: defaultTableWidth,
	}
	if out.IsTTY {
		if w, _, err := t.Size(); err == nil && w > 0 {
			out.Width = w
		}
	}
	return out
}

// FormatResult determines the appropriate formatter based on the
// result type and config.
func FormatResult(out Output, result Result, config *Config) error {
	switch r := result.(type) {
	case UserResult:
		if len(r.Users) == 0 && !config.JSON {
			fmt.Fprintln(out.Err, "No users found.")
			return nil
		}
	case RepoResult:
		if len(r.Repos) == 0 && !config.JSON {
			fmt.Fprintln(out.Err, "No repositories found.")
			return nil
		}
	default:
		return fmt.Errorf("unknown result type: %T", r)
	}

	var formatter Formatter
	switch {
	case config.JSON:
		formatter = &JSONFormatter{}
	case config.Quiet:
		formatter = &QuietFormatter{}
	default:
		formatter = &TabularFormatter{}
	}
	return formatter.Format(out, result)
}
