package view

import (
	"slices"
	"strings"

	"github.com/frobware/ghusers/github"
)

// Matches reports whether u satisfies a non-empty search term: the
// login contains the term ignoring case, or the decimal id contains
// it literally.
func Matches(u github.User, term string) bool {
	if strings.Contains(strings.ToLower(u.Login), strings.ToLower(term)) {
		return true
	}
	return strings.Contains(u.IDString(), term)
}

// FilterUsers returns the users matching term, in their original
// order. A term that is blank after trimming matches everything.
func FilterUsers(users []github.User, term string) []github.User {
	if strings.TrimSpace(term) == "" {
		return slices.Clone(users)
	}

	filtered := make([]github.User, 0, len(users))
	for _, u := range users {
		if Matches(u, term) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// UserList holds the canonical user list and the view filtered by the
// current search term. The filtered view is recomputed whenever either
// input changes.
type UserList struct {
	users    []github.User
	term     string
	filtered []github.User
}

// NewUserList returns an empty list with an empty search term.
func NewUserList() *UserList {
	return &UserList{}
}

// SetUsers replaces the canonical list.
func (l *UserList) SetUsers(users []github.User) {
	l.users = slices.Clone(users)
	l.recompute()
}

// SetSearchTerm changes the search term.
func (l *UserList) SetSearchTerm(term string) {
	l.term = term
	l.recompute()
}

// SearchTerm returns the current search term, untrimmed.
func (l *UserList) SearchTerm() string {
	return l.term
}

// Users returns a copy of the canonical list.
func (l *UserList) Users() []github.User {
	return slices.Clone(l.users)
}

// Filtered returns a copy of the filtered view.
func (l *UserList) Filtered() []github.User {
	return slices.Clone(l.filtered)
}

// Len returns the number of users in the filtered view.
func (l *UserList) Len() int {
	return len(l.filtered)
}

// At returns the i'th user of the filtered view.
func (l *UserList) At(i int) (github.User, bool) {
	if i < 0 || i >= len(l.filtered) {
		return github.User{}, false
	}
	return l.filtered[i], true
}

func (l *UserList) recompute() {
	l.filtered = FilterUsers(l.users, l.term)
}
