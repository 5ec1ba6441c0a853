package dashboard

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regdesk/regdesk/internal/users"
)

func makeUsers(n int) []users.User {
	out := make([]users.User, n)
	for i := range out {
		out[i] = users.User{
			ID:        fmt.Sprintf("id-%d", i),
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
			Email:     fmt.Sprintf("user%d@example.com", i),
			Phone:     fmt.Sprintf("555000%04d", i),
		}
	}
	return out
}

func matches(u users.User, term string) bool {
	t := strings.ToLower(term)
	for _, f := range []string{u.FirstName, u.LastName, u.Email, u.Phone} {
		if strings.Contains(strings.ToLower(f), t) {
			return true
		}
	}
	return false
}

func TestFilterEmptyTermReturnsAll(t *testing.T) {
	list := makeUsers(7)
	require.Equal(t, list, Filter(list, ""))
}

func TestFilterIsSubsetAndMatches(t *testing.T) {
	list := append(makeUsers(25), users.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", Phone: "1234567890"})

	for _, term := range []string{"ada", "ADA", "love", "x.com", "12345", "first1", "LAST2", "@example", "nomatch", "0"} {
		got := Filter(list, term)
		require.LessOrEqual(t, len(got), len(list), term)
		for _, u := range got {
			require.True(t, matches(u, term), "term %q matched %+v", term, u)
		}
		want := 0
		for _, u := range list {
			if matches(u, term) {
				want++
			}
		}
		require.Len(t, got, want, term)
	}
}

func TestFilterChecksFieldsIndependently(t *testing.T) {
	list := []users.User{{FirstName: "Ada", LastName: "Lovelace"}}
	require.Empty(t, Filter(list, "ada love"))
	require.Len(t, Filter(list, "ada"), 1)
}

func TestTotalPagesAndLastPageSize(t *testing.T) {
	for n := 0; n <= 35; n++ {
		list := makeUsers(n)
		total := TotalPages(n)
		require.Equal(t, (n+PageSize-1)/PageSize, total, "n=%d", n)

		if n == 0 {
			p := Paginate(list, 1)
			require.Empty(t, p.Users)
			require.Equal(t, 0, p.TotalPages)
			continue
		}
		last := Paginate(list, total)
		want := n % PageSize
		if want == 0 {
			want = PageSize
		}
		require.Equal(t, want, last.Showing, "n=%d", n)
		require.Len(t, last.Users, want)
		require.Equal(t, n, last.TotalFiltered)
	}
}

func TestPaginateBounds(t *testing.T) {
	list := makeUsers(23)

	first := Paginate(list, 0)
	require.Equal(t, 1, first.Page)
	require.Equal(t, "id-0", first.Users[0].ID)
	require.Equal(t, first.Users[0].Summary, "First0 Last0, user0@example.com, 5550000000")

	second := Paginate(list, 2)
	require.Equal(t, "id-10", second.Users[0].ID)

	stale := Paginate(list, 9)
	require.Equal(t, 9, stale.Page)
	require.Equal(t, 3, stale.TotalPages)
	require.NotNil(t, stale.Users)
	require.Empty(t, stale.Users)
	require.Zero(t, stale.Showing)

	huge := Paginate(list, math.MaxInt)
	require.Equal(t, math.MaxInt, huge.Page)
	require.Equal(t, 3, huge.TotalPages)
	require.Equal(t, 23, huge.TotalFiltered)
	require.Empty(t, huge.Users)

	require.Empty(t, Paginate(nil, math.MaxInt).Users)
}

func TestCursorClamps(t *testing.T) {
	c := Cursor{Page: 1}
	require.Equal(t, c, c.Prev())

	require.Equal(t, Cursor{Page: 2}, c.Next(3))
	require.Equal(t, Cursor{Page: 3}, Cursor{Page: 3}.Next(3))
	require.Equal(t, Cursor{Page: 2}, Cursor{Page: 3}.Prev())

	require.Equal(t, Cursor{Page: 1}, Cursor{Page: 1}.Next(0))
	require.Equal(t, Cursor{Page: 5}, Cursor{Page: 5}.Next(2))
}
