package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v33/github"
)

// DefaultBaseURL is the public REST endpoint every request goes to.
const DefaultBaseURL = "https://api.github.com/"

const userAgent = "ghusers"

// Client issues the two unauthenticated reads the listing needs. It
// does not retry, cache or time out requests; a failed call is
// re-issued by the caller.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

// WithBaseURL points the client at another API root. Only tests need this.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient replaces the transport used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// NewClient returns a Client for the public GitHub API.
func NewClient(opts ...Option) (*Client, error) {
	o := clientOptions{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	base := o.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", o.baseURL, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", o.baseURL)
	}

	return &Client{baseURL: baseURL, httpClient: o.httpClient, logger: o.logger}, nil
}

// api returns a go-github client for a single call. go-github remembers
// rate limits between requests and refuses to send once one is hit, so
// no client outlives the call it was made for.
func (c *Client) api() *gogithub.Client {
	api := gogithub.NewClient(c.httpClient)
	base := *c.baseURL
	api.BaseURL = &base
	api.UserAgent = userAgent
	return api
}

// FetchUsers returns the first page of GitHub accounts in API order.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	c.logger.Debug("Fetching users", "url", c.baseURL.String()+"users")

	apiUsers, resp, err := c.api().Users.ListAll(ctx, nil)
	if err != nil {
		c.logger.Debug("Users request failed", "error", err)
		return nil, &FetchError{Op: OpUsers, Err: err}
	}
	c.logResponse("users", resp, len(apiUsers))

	users := make([]User, 0, len(apiUsers))
	for _, u := range apiUsers {
		if u == nil {
			continue
		}
		users = append(users, userFromAPI(u))
	}
	return users, nil
}

// FetchUserRepos returns the public repositories of login in API order.
func (c *Client) FetchUserRepos(ctx context.Context, login string) ([]Repository, error) {
	if strings.TrimSpace(login) == "" {
		return nil, &FetchError{Op: OpRepos, Err: errors.New("login is required")}
	}

	segment := url.PathEscape(login)
	c.logger.Debug("Fetching repositories", "login", login, "url", c.baseURL.String()+"users/"+segment+"/repos")

	apiRepos, resp, err := c.api().Repositories.List(ctx, segment, nil)
	if err != nil {
		c.logger.Debug("Repositories request failed", "login", login, "error", err)
		return nil, &FetchError{Op: OpRepos, Login: login, Err: err}
	}
	c.logResponse("repos", resp, len(apiRepos))

	repos := make([]Repository, 0, len(apiRepos))
	for _, r := range apiRepos {
		if r == nil {
			continue
		}
		repos = append(repos, repositoryFromAPI(r))
	}
	return repos, nil
}

func (c *Client) logResponse(what string, resp *gogithub.Response, count int) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.logger.Debug("Fetched "+what, "status", resp.StatusCode, "count", count)
}

func userFromAPI(u *gogithub.User) User {
	return User{
		ID:        u.GetID(),
		Login:     u.GetLogin(),
		AvatarURL: u.GetAvatarURL(),
		HTMLURL:   u.GetHTMLURL(),
	}
}

func repositoryFromAPI(r *gogithub.Repository) Repository {
	return Repository{
		ID:              r.GetID(),
		Name:            r.GetName(),
		Description:     r.GetDescription(),
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		CreatedAt:       r.GetCreatedAt().Time,
		HTMLURL:         r.GetHTMLURL(),
	}
}
