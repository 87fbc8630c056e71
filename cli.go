package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
)

// OutputFlags select the non-interactive output format.
type OutputFlags struct {
	Quiet bool `short:"q" help:"Print logins or repository names only." xor:"format"`
	JSON  bool `name:"json" help:"Print JSON." xor:"format"`
}

// BrowseCmd runs the interactive browser.
type BrowseCmd struct {
	Sort string `short:"s" help:"Initial repository order: name, stars or date." placeholder:"ORDER"`
}

// UsersCmd lists users.
type UsersCmd struct {
	Search string `short:"S" help:"Only show users whose login or id contains TERM." placeholder:"TERM"`
	OutputFlags `embed:""`
}

// ReposCmd lists the repositories of one user.
type ReposCmd struct {
	User string `arg:"" help:"GitHub login or profile URL (e.g. https://github.com/octocat)."`
	Sort string `short:"s" help:"Order: name, stars or date." placeholder:"ORDER"`
	OutputFlags `embed:""`
}

// CLI is the kong grammar for ghusers.
type CLI struct {
	Config  string           `help:"Path to the config file (default ~/.config/ghusers/config.yaml)." type:"path" placeholder:"PATH"`
	Debug   bool             `help:"Enable debug logging."`
	LogFile string           `help:"Append logs to PATH." type:"path" placeholder:"PATH"`
	Version kong.VersionFlag `short:"v" help:"Show version information."`

	Browse BrowseCmd `cmd:"" default:"withargs" help:"Browse users interactively (default)."`
	Users  UsersCmd  `cmd:"" help:"List GitHub users."`
	Repos  ReposCmd  `cmd:"" help:"List a user's public repositories."`
}

const description = `Browse GitHub users and their repositories.

Without a command an interactive browser starts: search users by login
or id, press enter to see a user's repositories and s to change their
order. The users and repos commands print the same views for scripts.`

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("ghusers"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{"version": Get().String()},
	}, options...)
	return kong.New(cli, options...)
}

// Parse parses command-line arguments and returns a populated Config.
func Parse(args []string, options ...kong.Option) (*Config, error) {
	var cli CLI
	parser, err := newParser(&cli, options...)
	if err != nil {
		return nil, err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return nil, err
	}

	return buildConfig(kctx.Command(), &cli)
}

// buildConfig merges the parsed flags over the config file.
func buildConfig(command string, cli *CLI) (*Config, error) {
	path := cli.Config
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		path = defaultPath
	}

	var fc FileConfig
	if path != "" {
		loaded, err := LoadFileConfig(path)
		if err != nil {
			if cli.Config != "" {
				return nil, err
			}
			// The default file is optional, so only warn.
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fc = loaded
		}
	}

	config := &Config{
		Browser: fc.Browser,
		Debug:   cli.Debug || fc.Debug,
		LogFile: cli.LogFile,
	}

	var sortFlag string
	switch name, _, _ := strings.Cut(command, " "); name {
	case "browse":
		config.Command = CommandBrowse
		sortFlag = cli.Browse.Sort
	case "users":
		config.Command = CommandUsers
		config.Search = cli.Users.Search
		config.Quiet = cli.Users.Quiet
		config.JSON = cli.Users.JSON
	case "repos":
		login, err := ParseLoginArgument(cli.Repos.User)
		if err != nil {
			return nil, err
		}
		config.Command = CommandRepos
		config.Login = login
		config.Quiet = cli.Repos.Quiet
		config.JSON = cli.Repos.JSON
		sortFlag = cli.Repos.Sort
	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}

	sort, err := resolveSort(sortFlag, fc)
	if err != nil {
		return nil, err
	}
	config.Sort = sort

	return config, nil
}
