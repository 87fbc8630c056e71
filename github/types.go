package github

import (
	"strconv"
	"time"
)

// User is the subset of a GitHub account the listing works with.
// Values are never mutated after they are fetched.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// IDString renders the numeric id the way searches compare against it.
func (u User) IDString() string {
	return strconv.FormatInt(u.ID, 10)
}

// Repository is a minimal view of a repository owned by a User.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
	HTMLURL         string    `json:"html_url"`
}

// DescriptionOrDefault returns the description, or a placeholder when
// the repository has none.
func (r Repository) DescriptionOrDefault() string {
	if r.Description == "" {
		return "No description"
	}
	return r.Description
}

// CreatedDate formats the creation time as a short local date.
func (r Repository) CreatedDate() string {
	if r.CreatedAt.IsZero() {
		return "unknown"
	}
	return r.CreatedAt.Local().Format("1/2/2006")
}
