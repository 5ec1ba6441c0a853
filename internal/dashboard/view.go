package dashboard

import (
	"strings"

	"github.com/regdesk/regdesk/internal/users"
)

// PageSize is the fixed number of rows per dashboard page.
const PageSize = 10

// Row is a user as shown in the dashboard table.
type Row struct {
	users.User
	Summary string `json:"summary"`
}

// NewRow decorates u with its copyable summary line.
func NewRow(u users.User) Row {
	return Row{User: u, Summary: u.Summary()}
}

// Page is one page of the filtered user list.
type Page struct {
	Users         []Row `json:"users"`
	Page          int   `json:"page"`
	TotalPages    int   `json:"totalPages"`
	TotalFiltered int   `json:"totalFiltered"`
	Showing       int   `json:"showing"`
}

// Filter returns the users whose first name, last name, email or phone
// contains term, ignoring case. Each field is matched on its own. An empty
// term returns list unchanged.
func Filter(list []users.User, term string) []users.User {
	if term == "" {
		return list
	}
	needle := strings.ToLower(term)
	out := make([]users.User, 0, len(list))
	for _, u := range list {
		if contains(u.FirstName, needle) ||
			contains(u.LastName, needle) ||
			contains(u.Email, needle) ||
			contains(u.Phone, needle) {
			out = append(out, u)
		}
	}
	return out
}

func contains(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}

// TotalPages is ceil(n / PageSize).
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// Paginate slices list to the requested 1-based page. Pages below 1 are
// treated as 1; pages past the end yield an empty page.
func Paginate(list []users.User, page int) Page {
	if page < 1 {
		page = 1
	}
	p := Page{
		Users:         []Row{},
		Page:          page,
		TotalPages:    TotalPages(len(list)),
		TotalFiltered: len(list),
	}
	if page > p.TotalPages {
		return p
	}
	start := (page - 1) * PageSize
	end := min(start+PageSize, len(list))
	for _, u := range list[start:end] {
		p.Users = append(p.Users, NewRow(u))
	}
	p.Showing = len(p.Users)
	return p
}

// Cursor tracks the current page across prev/next navigation.
type Cursor struct {
	Page int
}

// Prev moves back one page, stopping at 1.
func (c Cursor) Prev() Cursor {
	if c.Page <= 1 {
		return Cursor{Page: 1}
	}
	return Cursor{Page: c.Page - 1}
}

// Next moves forward one page, stopping at the last page. With no results the
// last page is 1.
func (c Cursor) Next(totalPages int) Cursor {
	last := max(totalPages, 1)
	if c.Page >= last {
		return c
	}
	return Cursor{Page: c.Page + 1}
}
