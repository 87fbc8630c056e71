package view

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/frobware/ghusers/github"
)

// SortCriterion selects the order of the repository view.
type SortCriterion int

const (
	SortByName SortCriterion = iota
	SortByStars
	SortByDate
)

var sortCriterionNames = map[SortCriterion]string{
	SortByName:  "name",
	SortByStars: "stars",
	SortByDate:  "date",
}

// SortCriteria lists every criterion in cycling order.
var SortCriteria = []SortCriterion{SortByName, SortByStars, SortByDate}

func (c SortCriterion) String() string {
	if name, ok := sortCriterionNames[c]; ok {
		return name
	}
	return fmt.Sprintf("SortCriterion(%d)", int(c))
}

// Label is the human-readable name shown next to "Sort by:".
func (c SortCriterion) Label() string {
	switch c {
	case SortByStars:
		return "Stars"
	case SortByDate:
		return "Creation Date"
	default:
		return "Name"
	}
}

// Next returns the criterion after c, wrapping around.
func (c SortCriterion) Next() SortCriterion {
	i := slices.Index(SortCriteria, c)
	return SortCriteria[(i+1)%len(SortCriteria)]
}

// MarshalText implements encoding.TextMarshaler.
func (c SortCriterion) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseSortCriterion parses "name", "stars" or "date".
func ParseSortCriterion(s string) (SortCriterion, error) {
	for c, name := range sortCriterionNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return c, nil
		}
	}
	return SortByName, fmt.Errorf("invalid sort criterion %q, must be one of: name, stars, date", s)
}

// SortRepos returns a sorted copy of repos. The input is not modified
// and elements that compare equal keep their input order.
func SortRepos(repos []github.Repository, c SortCriterion) []github.Repository {
	sorted := slices.Clone(repos)

	switch c {
	case SortByStars:
		slices.SortStableFunc(sorted, func(a, b github.Repository) int {
			return cmp.Compare(b.StargazersCount, a.StargazersCount)
		})
	case SortByDate:
		slices.SortStableFunc(sorted, func(a, b github.Repository) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	default:
		// Collators keep scratch buffers, so each sort gets its own.
		col := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b github.Repository) int {
			return col.CompareString(a.Name, b.Name)
		})
	}

	return sorted
}

// RepoSort holds the repositories of the selected user and the view
// ordered by the current criterion.
type RepoSort struct {
	repos     []github.Repository
	criterion SortCriterion
	sorted    []github.Repository
}

// NewRepoSort returns an empty view ordered by name.
func NewRepoSort() *RepoSort {
	return &RepoSort{criterion: SortByName}
}

// SetRepos replaces the repositories wholesale.
func (s *RepoSort) SetRepos(repos []github.Repository) {
	s.repos = slices.Clone(repos)
	s.recompute()
}

// Clear drops the repositories. The criterion is kept.
func (s *RepoSort) Clear() {
	s.repos = nil
	s.sorted = nil
}

// SetCriterion changes the order of the view.
func (s *RepoSort) SetCriterion(c SortCriterion) {
	s.criterion = c
	s.recompute()
}

// Criterion returns the current criterion.
func (s *RepoSort) Criterion() SortCriterion {
	return s.criterion
}

// Repos returns a copy of the repositories in the order they were set.
func (s *RepoSort) Repos() []github.Repository {
	return slices.Clone(s.repos)
}

// Sorted returns a copy of the ordered view.
func (s *RepoSort) Sorted() []github.Repository {
	return slices.Clone(s.sorted)
}

// Len returns the number of repositories.
func (s *RepoSort) Len() int {
	return len(s.sorted)
}

// At returns the i'th repository of the ordered view.
func (s *RepoSort) At(i int) (github.Repository, bool) {
	if i < 0 || i >= len(s.sorted) {
		return github.Repository{}, false
	}
	return s.sorted[i], true
}

func (s *RepoSort) recompute() {
	if s.repos == nil {
		s.sorted = nil
		return
	}
	s.sorted = SortRepos(s.repos, s.criterion)
}
