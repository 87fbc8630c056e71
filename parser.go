package main

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// loginRegex matches GitHub account names.
var loginRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]{0,38}$`)

// profilePathRegex matches profile URL paths like "/octocat" or "/octocat/".
var profilePathRegex = regexp.MustCompile(`^/([^/]+)/?$`)

// ParseLoginArgument extracts a login from either a bare login or a
// GitHub profile URL.
func ParseLoginArgument(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if loginRegex.MatchString(arg) {
		return arg, nil
	}

	parsedURL, err := url.Parse(arg)
	if err != nil || parsedURL.Scheme == "" {
		return "", fmt.Errorf("invalid login or profile URL %q", arg)
	}

	host := strings.TrimPrefix(strings.ToLower(parsedURL.Host), "www.")
	if host != "github.com" {
		return "", fmt.Errorf("not a GitHub profile URL %q", arg)
	}

	matches := profilePathRegex.FindStringSubmatch(parsedURL.Path)
	if len(matches) != 2 || !loginRegex.MatchString(matches[1]) {
		return "", fmt.Errorf("invalid GitHub profile URL %q", arg)
	}

	return matches[1], nil
}
