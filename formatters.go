package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cli/go-gh/pkg/tableprinter"

	"github.com/frobware/ghusers/github"
)

// Formatter defines the interface for different output formats.
type Formatter interface {
	Format(out Output, result Result) error
}

// TabularFormatter prints a table, with a header row on a terminal.
type TabularFormatter struct{}

// QuietFormatter prints one login or repository name per line.
type QuietFormatter struct{}

// JSONFormatter prints the result as indented JSON.
type JSONFormatter struct{}

// Format outputs the result in tabular format.
func (f *TabularFormatter) Format(out Output, result Result) error {
	tp := tableprinter.New(out.Out, out.IsTTY, out.Width)

	switch r := result.(type) {
	case UserResult:
		if out.IsTTY {
			addRow(tp, "LOGIN", "ID", "PROFILE")
		}
		for _, u := range r.Users {
			addRow(tp, u.Login, u.IDString(), u.HTMLURL)
		}
	case RepoResult:
		if out.IsTTY {
			addRow(tp, "NAME", "STARS", "FORKS", "CREATED", "DESCRIPTION")
		}
		for _, repo := range r.Repos {
			addRow(tp,
				repo.Name,
				strconv.Itoa(repo.StargazersCount),
				strconv.Itoa(repo.ForksCount),
				repo.CreatedDate(),
				repo.DescriptionOrDefault(),
			)
		}
	default:
		return fmt.Errorf("TabularFormatter expects UserResult or RepoResult, got %T", result)
	}

	return tp.Render()
}

func addRow(tp tableprinter.TablePrinter, fields ...string) {
	for _, field := range fields {
		tp.AddField(field)
	}
	tp.EndRow()
}

// Format outputs logins or repository names only.
func (f *QuietFormatter) Format(out Output, result Result) error {
	switch r := result.(type) {
	case UserResult:
		for _, u := range r.Users {
			fmt.Fprintln(out.Out, u.Login)
		}
	case RepoResult:
		for _, repo := range r.Repos {
			fmt.Fprintln(out.Out, repo.Name)
		}
	default:
		return fmt.Errorf("QuietFormatter expects UserResult or RepoResult, got %T", result)
	}
	return nil
}

// Format outputs the result as JSON. Empty lists encode as [].
func (f *JSONFormatter) Format(out Output, result Result) error {
	switch r := result.(type) {
	case UserResult:
		if r.Users == nil {
			r.Users = []github.User{}
		}
		result = r
	case RepoResult:
		if r.Repos == nil {
			r.Repos = []github.Repository{}
		}
		result = r
	default:
		return fmt.Errorf("JSONFormatter expects UserResult or RepoResult, got %T", result)
	}

	enc := json.NewEncoder(out.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
