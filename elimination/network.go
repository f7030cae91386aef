package elimination

import (
	"fmt"

	"github.com/katalvlaran/elimination/flow"
	"github.com/katalvlaran/elimination/standings"
)

// SourceVertex is the source of every elimination network.
const SourceVertex = 0

// GameVertexCount returns C(n-1, 2): one game vertex per unordered pair of
// teams other than the excluded one.
func GameVertexCount(n int) int {
	if n < 3 {
		return 0
	}
	return (n - 1) * (n - 2) / 2
}

// VertexCount returns the size of a network for an n-team division:
// source + games + (n-1) teams + sink.
func VertexCount(n int) int {
	return 1 + GameVertexCount(n) + n
}

// SinkVertex returns the sink of a network for an n-team division.
func SinkVertex(n int) int {
	return VertexCount(n) - 1
}

// compact shifts indices above the excluded team down by one.
func compact(i, excluded int) int {
	if i > excluded {
		return i - 1
	}
	return i
}

// TeamVertex maps team i to its vertex in the network that excludes team
// excluded. It returns -1 for i == excluded or i outside [0, n).
func TeamVertex(i, excluded, n int) int {
	if i < 0 || i >= n || i == excluded {
		return -1
	}
	return 1 + GameVertexCount(n) + compact(i, excluded)
}

// VertexTeam is the inverse of TeamVertex. It returns -1 when v is not a team
// vertex.
func VertexTeam(v, excluded, n int) int {
	k := v - 1 - GameVertexCount(n)
	if k < 0 || k >= n-1 {
		return -1
	}
	if k >= excluded {
		return k + 1
	}
	return k
}

// GameVertex maps the unordered pair {i, j} to its game vertex in the network
// that excludes team excluded. Pairs are numbered in ascending (i, j) order.
// It returns -1 if i == j, either equals excluded, or either is out of range.
func GameVertex(i, j, excluded, n int) int {
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= n || i == j || i == excluded || j == excluded {
		return -1
	}
	m := n - 1
	a, b := compact(i, excluded), compact(j, excluded)

	return 1 + a*m - a*(a+1)/2 + (b - a - 1)
}

// Network is the flow network encoding the elimination question for Team.
type Network struct {
	Graph  *flow.Network
	Team   int
	Source int
	Sink   int
	// SourceCapacity is the number of games left among the other teams.
	SourceCapacity int64

	n int
}

// BuildNetwork constructs the elimination network for the team at index team.
//
// The team→sink capacity of every other team i is MaxWins(team) − wins[i]; if
// any is negative the team is dominated and the flow package's EdgeError is
// returned, so callers must rule out trivial elimination first.
//
// Complexity: O(n²) vertices and edges.
func BuildNetwork(d *standings.Division, team int) (*Network, error) {
	if d == nil {
		return nil, ErrNilDivision
	}
	n := d.NumberOfTeams()
	if team < 0 || team >= n {
		return nil, fmt.Errorf("%w: team index %d out of range [0,%d)", standings.ErrInvalidArgument, team, n)
	}

	g, err := flow.NewNetwork(VertexCount(n))
	if err != nil {
		return nil, err
	}
	nw := &Network{Graph: g, Team: team, Source: SourceVertex, Sink: SinkVertex(n), n: n}

	for i := 0; i < n; i++ {
		if i == team {
			continue
		}
		for j := i + 1; j < n; j++ {
			if j == team {
				continue
			}
			game := GameVertex(i, j, team, n)
			games := int64(d.AgainstAt(i, j))
			if _, err := g.AddEdge(nw.Source, game, games); err != nil {
				return nil, err
			}
			if _, err := g.AddEdge(game, TeamVertex(i, team, n), flow.Unbounded); err != nil {
				return nil, err
			}
			if _, err := g.AddEdge(game, TeamVertex(j, team, n), flow.Unbounded); err != nil {
				return nil, err
			}
			nw.SourceCapacity += games
		}
	}

	best := d.MaxWins(team)
	for i := 0; i < n; i++ {
		if i == team {
			continue
		}
		if _, err := g.AddEdge(TeamVertex(i, team, n), nw.Sink, int64(best-d.WinsAt(i))); err != nil {
			return nil, fmt.Errorf("elimination: team %q dominates %q: %w", d.Name(i), d.Name(team), err)
		}
	}

	return nw, nil
}

// CutTeams returns, in index order, the teams whose vertex lies on the source
// side of the minimum cut in res.
func (nw *Network) CutTeams(res *flow.Result) []int {
	var out []int
	for i := 0; i < nw.n; i++ {
		if i == nw.Team {
			continue
		}
		if res.InCut(TeamVertex(i, nw.Team, nw.n)) {
			out = append(out, i)
		}
	}

	return out
}
