package elimination_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/elimination/flow"
	"github.com/katalvlaran/elimination/standings"
)

const teams4 = `4
Atlanta       83 71  8  0 1 6 1
Philadelphia  80 79  3  1 0 0 2
New_York      78 78  6  6 0 0 0
Montreal      77 82  3  1 2 0 0
`

const teams5 = `5
New_York    75 59 28   0 3 8 7 3
Baltimore   71 63 28   3 0 2 7 7
Boston      69 66 27   8 2 0 0 3
Toronto     63 72 27   7 7 0 0 3
Detroit     49 86 27   3 7 3 3 0
`

// eastern: Toronto is alive against every single team but New_York and
// Baltimore still have 6 games between them; together they must reach
// 75+74+6 = 155 > 2·77 wins.
const eastern = `4
New_York    75 59  6   0 6 0 0
Baltimore   74 60  6   6 0 0 0
Boston      70 64  8   0 0 0 8
Toronto     69 65  8   0 0 8 0
`

func mustRead(t *testing.T, text string) *standings.Division {
	t.Helper()
	d, err := standings.Read(strings.NewReader(text))
	require.NoError(t, err)

	return d
}

// countingSolver wraps solve and counts its invocations.
type countingSolver struct {
	solve flow.Solver
	calls int
}

func (c *countingSolver) Solve(g *flow.Network, source, sink int, opts ...flow.Option) (*flow.Result, error) {
	c.calls++
	return c.solve(g, source, sink, opts...)
}

// randomRows builds a consistent random division with n teams.
func randomRows(r *rand.Rand, n int) []standings.Row {
	rows := make([]standings.Row, n)
	for i := range rows {
		rows[i] = standings.Row{
			Name:    string(rune('A' + i)),
			Wins:    r.Intn(25),
			Losses:  r.Intn(25),
			Against: make([]int, n),
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g := r.Intn(5)
			rows[i].Against[j], rows[j].Against[i] = g, g
		}
	}
	for i := range rows {
		sum := 0
		for _, g := range rows[i].Against {
			sum += g
		}
		rows[i].Remaining = sum + r.Intn(3)
	}

	return rows
}

// permuteRows reorders rows by perm (new position k holds old row perm[k]).
func permuteRows(rows []standings.Row, perm []int) []standings.Row {
	out := make([]standings.Row, len(rows))
	for k, old := range perm {
		row := rows[old]
		against := make([]int, len(rows))
		for k2, old2 := range perm {
			against[k2] = row.Against[old2]
		}
		row.Against = against
		out[k] = row
	}

	return out
}

// bruteForceEliminated applies the subset criterion directly: x is eliminated
// iff some non-empty set R of other teams has wins(R) + games(R) > |R|·best.
func bruteForceEliminated(d *standings.Division, x int) bool {
	n := d.NumberOfTeams()
	for mask := 1; mask < 1<<n; mask++ {
		if mask&(1<<x) != 0 {
			continue
		}
		if certificateHolds(d, x, membersOf(mask, n)) {
			return true
		}
	}

	return false
}

func membersOf(mask, n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if mask&(1<<i) != 0 {
			out = append(out, i)
		}
	}

	return out
}

// certificateHolds checks the elimination inequality for the team indices in r.
func certificateHolds(d *standings.Division, x int, r []int) bool {
	if len(r) == 0 {
		return false
	}
	total := 0
	for a, i := range r {
		if i == x {
			return false
		}
		total += d.WinsAt(i)
		for _, j := range r[a+1:] {
			total += d.AgainstAt(i, j)
		}
	}

	return total > len(r)*d.MaxWins(x)
}

func indicesOf(t *testing.T, d *standings.Division, names []string) []int {
	t.Helper()
	out := make([]int, len(names))
	for k, name := range names {
		i, err := d.Index(name)
		require.NoError(t, err)
		out[k] = i
	}

	return out
}
