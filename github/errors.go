package github

import (
	"errors"
	"fmt"

	gogithub "github.com/google/go-github/v33/github"
)

// ErrFetch matches every error returned by the gateway.
var ErrFetch = errors.New("fetch failed")

// Op names the request that failed.
type Op string

const (
	OpUsers Op = "users"
	OpRepos Op = "repos"
)

// FetchError reports a failed users or repos request. A non-success
// HTTP status and a transport failure are reported the same way.
type FetchError struct {
	Op    Op
	Login string
	Err   error
}

func (e *FetchError) Error() string {
	switch e.Op {
	case OpUsers:
		return fmt.Sprintf("failed to fetch users: %v", e.Err)
	case OpRepos:
		if e.Login != "" {
			return fmt.Sprintf("failed to fetch repositories for %s: %v", e.Login, e.Err)
		}
		return fmt.Sprintf("failed to fetch repositories: %v", e.Err)
	default:
		return fmt.Sprintf("failed to fetch %s: %v", e.Op, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is reports ErrFetch as a match so callers need not know the concrete type.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// StatusCode returns the HTTP status of the failed response, or 0 when
// the request never produced one.
func (e *FetchError) StatusCode() int {
	var errResp *gogithub.ErrorResponse
	if errors.As(e.Err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	var rateErr *gogithub.RateLimitError
	if errors.As(e.Err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode
	}
	return 0
}
