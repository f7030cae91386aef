package elimination_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/elimination/elimination"
	"github.com/katalvlaran/elimination/flow"
	"github.com/katalvlaran/elimination/standings"
)

// OracleSuite runs the division scenarios against one solver.
type OracleSuite struct {
	suite.Suite
	solve flow.Solver
	ctx   context.Context
}

func (s *OracleSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *OracleSuite) oracle(d *standings.Division, opts ...elimination.Option) *elimination.Oracle {
	o, err := elimination.New(d, append([]elimination.Option{elimination.WithSolver(s.solve)}, opts...)...)
	require.NoError(s.T(), err)

	return o
}

func (s *OracleSuite) TestFourTeams() {
	o := s.oracle(mustRead(s.T(), teams4))

	want := map[string][]string{
		"Atlanta":      nil,
		"Philadelphia": {"Atlanta", "New_York"},
		"New_York":     nil,
		"Montreal":     {"Atlanta"},
	}
	for team, cert := range want {
		eliminated, err := o.IsEliminated(s.ctx, team)
		require.NoError(s.T(), err)
		require.Equal(s.T(), cert != nil, eliminated, team)

		got, err := o.Certificate(s.ctx, team)
		require.NoError(s.T(), err)
		require.Equal(s.T(), cert, got, team)
	}
}

func (s *OracleSuite) TestFiveTeams() {
	o := s.oracle(mustRead(s.T(), teams5))

	verdicts, err := o.EvaluateAll(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), verdicts, 5)
	for _, v := range verdicts[:4] {
		require.False(s.T(), v.Eliminated, v.Team)
		require.Nil(s.T(), v.Certificate, v.Team)
	}

	detroit := verdicts[4]
	require.Equal(s.T(), "Detroit", detroit.Team)
	require.True(s.T(), detroit.Eliminated)
	require.False(s.T(), detroit.Trivial)
	require.Equal(s.T(), []string{"New_York", "Baltimore", "Boston", "Toronto"}, detroit.Certificate)
	require.Equal(s.T(), int64(26), detroit.MaxFlow)
	require.Equal(s.T(), int64(27), detroit.SourceCapacity)
}

// TestFlowOnlyElimination: Toronto is eliminated by the pair New_York and
// Baltimore although neither alone can pass it.
func (s *OracleSuite) TestFlowOnlyElimination() {
	o := s.oracle(mustRead(s.T(), eastern))

	v, err := o.Evaluate(s.ctx, "Toronto")
	require.NoError(s.T(), err)
	require.True(s.T(), v.Eliminated)
	require.False(s.T(), v.Trivial)
	require.Equal(s.T(), []string{"New_York", "Baltimore"}, v.Certificate)
	require.Equal(s.T(), int64(5), v.MaxFlow)
	require.Equal(s.T(), int64(6), v.SourceCapacity)

	for _, team := range []string{"New_York", "Baltimore", "Boston"} {
		eliminated, err := o.IsEliminated(s.ctx, team)
		require.NoError(s.T(), err)
		require.False(s.T(), eliminated, team)
		cert, err := o.Certificate(s.ctx, team)
		require.NoError(s.T(), err)
		require.Nil(s.T(), cert, team)
	}
}

// TestTrivialEliminationSkipsSolver: a dominated team is answered with the
// dominating team alone and no solver run.
func (s *OracleSuite) TestTrivialEliminationSkipsSolver() {
	counter := &countingSolver{solve: s.solve}
	m, err := elimination.NewMetrics(nil)
	require.NoError(s.T(), err)
	o, err := elimination.New(mustRead(s.T(), teams4), elimination.WithSolver(counter.Solve), elimination.WithMetrics(m))
	require.NoError(s.T(), err)

	v, err := o.Evaluate(s.ctx, "Montreal")
	require.NoError(s.T(), err)
	require.True(s.T(), v.Eliminated)
	require.True(s.T(), v.Trivial)
	require.Equal(s.T(), []string{"Atlanta"}, v.Certificate)
	require.Zero(s.T(), counter.calls)
	require.Zero(s.T(), testutil.ToFloat64(m.SolverRuns))
	require.Equal(s.T(), 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(elimination.OutcomeDominated)))
}

// TestIdleLeader: no remaining games and more wins than anyone can reach.
func (s *OracleSuite) TestIdleLeader() {
	d, err := standings.New([]standings.Row{
		{Name: "Leader", Wins: 90, Losses: 60, Remaining: 0, Against: []int{0, 0, 0}},
		{Name: "Chaser", Wins: 50, Losses: 90, Remaining: 10, Against: []int{0, 0, 10}},
		{Name: "Trailer", Wins: 60, Losses: 80, Remaining: 10, Against: []int{0, 10, 0}},
	})
	require.NoError(s.T(), err)
	counter := &countingSolver{solve: s.solve}
	o, err := elimination.New(d, elimination.WithSolver(counter.Solve))
	require.NoError(s.T(), err)

	v, err := o.Evaluate(s.ctx, "Leader")
	require.NoError(s.T(), err)
	require.False(s.T(), v.Eliminated)
	require.True(s.T(), v.Trivial)
	require.Nil(s.T(), v.Certificate)
	require.Zero(s.T(), counter.calls)
}

func (s *OracleSuite) TestSingleTeam() {
	d, err := standings.New([]standings.Row{{Name: "Solo", Wins: 0, Losses: 10, Remaining: 5, Against: []int{0}}})
	require.NoError(s.T(), err)
	o := s.oracle(d)

	eliminated, err := o.IsEliminated(s.ctx, "Solo")
	require.NoError(s.T(), err)
	require.False(s.T(), eliminated)
	cert, err := o.Certificate(s.ctx, "Solo")
	require.NoError(s.T(), err)
	require.Empty(s.T(), cert)
}

// TestZeroSourceCapacity: B can still pass A, but only through games outside
// the division, so the flow check runs on an empty source layer.
func (s *OracleSuite) TestZeroSourceCapacity() {
	d, err := standings.New([]standings.Row{
		{Name: "A", Wins: 10, Remaining: 2, Against: []int{0, 0, 0}},
		{Name: "B", Wins: 11, Remaining: 3, Against: []int{0, 0, 0}},
		{Name: "C", Wins: 12, Remaining: 0, Against: []int{0, 0, 0}},
	})
	require.NoError(s.T(), err)
	o := s.oracle(d)

	v, err := o.Evaluate(s.ctx, "A")
	require.NoError(s.T(), err)
	require.False(s.T(), v.Eliminated)
	require.False(s.T(), v.Trivial)
	require.Zero(s.T(), v.SourceCapacity)
	require.Zero(s.T(), v.MaxFlow)
}

func (s *OracleSuite) TestInvalidArgument() {
	o := s.oracle(mustRead(s.T(), teams4))

	_, err := o.IsEliminated(s.ctx, "")
	require.ErrorIs(s.T(), err, standings.ErrInvalidArgument)
	_, err = o.Certificate(s.ctx, "Boston")
	require.ErrorIs(s.T(), err, standings.ErrInvalidArgument)
	_, err = o.Evaluate(s.ctx, "atlanta")
	require.ErrorIs(s.T(), err, standings.ErrInvalidArgument)
}

// TestIdempotent: repeated queries give identical answers and leave the
// shared division untouched.
func (s *OracleSuite) TestIdempotent() {
	d := mustRead(s.T(), teams5)
	snapshot := mustRead(s.T(), teams5)
	o := s.oracle(d)
	require.Same(s.T(), d, o.Division())

	first, err := o.EvaluateAll(s.ctx)
	require.NoError(s.T(), err)
	for k := 0; k < 3; k++ {
		again, err := o.EvaluateAll(s.ctx)
		require.NoError(s.T(), err)
		require.Equal(s.T(), first, again)
	}
	require.Equal(s.T(), snapshot, o.Division())
}

// TestAgreesWithBruteForce compares every verdict with the subset criterion
// on seeded random divisions and checks certificate soundness.
func (s *OracleSuite) TestAgreesWithBruteForce() {
	r := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 150; trial++ {
		d, err := standings.New(randomRows(r, 1+r.Intn(6)))
		require.NoError(s.T(), err)
		o := s.oracle(d)

		verdicts, err := o.EvaluateAll(s.ctx)
		require.NoError(s.T(), err, "trial %d", trial)
		for x, v := range verdicts {
			require.Equal(s.T(), bruteForceEliminated(d, x), v.Eliminated, "trial %d team %s", trial, v.Team)
			if !v.Eliminated {
				require.Nil(s.T(), v.Certificate)
				continue
			}
			require.NotEmpty(s.T(), v.Certificate, "trial %d team %s", trial, v.Team)
			require.True(s.T(), certificateHolds(d, x, indicesOf(s.T(), d, v.Certificate)),
				"trial %d team %s certificate %v", trial, v.Team, v.Certificate)
		}
	}
}

// TestMatchesFlowCriterion: for every non-dominated team the verdict equals
// maxFlow < sourceCapacity on its own network.
func (s *OracleSuite) TestMatchesFlowCriterion() {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 100; trial++ {
		d, err := standings.New(randomRows(r, 2+r.Intn(5)))
		require.NoError(s.T(), err)
		o := s.oracle(d)

		for x := 0; x < d.NumberOfTeams(); x++ {
			v, err := o.Evaluate(s.ctx, d.Name(x))
			require.NoError(s.T(), err)
			if v.Trivial && v.Eliminated {
				continue
			}
			nw, err := elimination.BuildNetwork(d, x)
			require.NoError(s.T(), err)
			res, err := s.solve(nw.Graph, nw.Source, nw.Sink)
			require.NoError(s.T(), err)
			require.Equal(s.T(), res.Value() < nw.SourceCapacity, v.Eliminated, "trial %d team %s", trial, v.Team)
			if !v.Trivial {
				require.Equal(s.T(), res.Value(), v.MaxFlow)
			}
		}
	}
}

// TestPermutationInvariant: reordering the input rows never changes a
// verdict, and flow certificates stay the same set of names.
func (s *OracleSuite) TestPermutationInvariant() {
	r := rand.New(rand.NewSource(5))
	for trial := 0; trial < 60; trial++ {
		n := 1 + r.Intn(6)
		rows := randomRows(r, n)
		base, err := standings.New(rows)
		require.NoError(s.T(), err)
		shuffled, err := standings.New(permuteRows(rows, r.Perm(n)))
		require.NoError(s.T(), err)

		want, err := s.oracle(base).EvaluateAll(s.ctx)
		require.NoError(s.T(), err)
		got, err := s.oracle(shuffled).EvaluateAll(s.ctx)
		require.NoError(s.T(), err)

		byName := make(map[string]elimination.Verdict, n)
		for _, v := range got {
			byName[v.Team] = v
		}
		for _, w := range want {
			g := byName[w.Team]
			require.Equal(s.T(), w.Eliminated, g.Eliminated, "trial %d team %s", trial, w.Team)
			require.Equal(s.T(), w.Trivial, g.Trivial, "trial %d team %s", trial, w.Team)
			if w.Trivial {
				// the first dominating team depends on row order
				require.Len(s.T(), g.Certificate, len(w.Certificate))
				continue
			}
			wantCert := append([]string(nil), w.Certificate...)
			gotCert := append([]string(nil), g.Certificate...)
			sort.Strings(wantCert)
			sort.Strings(gotCert)
			require.Equal(s.T(), wantCert, gotCert, "trial %d team %s", trial, w.Team)
		}
	}
}

func (s *OracleSuite) TestEvaluateAllCanceled() {
	o := s.oracle(mustRead(s.T(), teams5))
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := o.EvaluateAll(ctx)
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestEdmondsKarpOracleSuite(t *testing.T) {
	suite.Run(t, &OracleSuite{solve: flow.EdmondsKarp})
}

func TestFordFulkersonOracleSuite(t *testing.T) {
	suite.Run(t, &OracleSuite{solve: flow.FordFulkerson})
}

func TestDinicOracleSuite(t *testing.T) {
	suite.Run(t, &OracleSuite{solve: flow.Dinic})
}

func TestNewNilDivision(t *testing.T) {
	_, err := elimination.New(nil)
	require.ErrorIs(t, err, elimination.ErrNilDivision)
}

// TestMetricsRegistered counts outcomes and solver work on a real registry.
func TestMetricsRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := elimination.NewMetrics(reg)
	require.NoError(t, err)
	o, err := elimination.New(mustRead(t, teams4), elimination.WithMetrics(m))
	require.NoError(t, err)

	_, err = o.EvaluateAll(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(elimination.OutcomeLeader)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(elimination.OutcomeEliminated)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(elimination.OutcomeContender)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues(elimination.OutcomeDominated)))
	require.Equal(t, 2.0, testutil.ToFloat64(m.SolverRuns))
	require.Positive(t, testutil.ToFloat64(m.Augmentations))
	require.Equal(t, 4, testutil.CollectAndCount(m.Queries))

	// a second registration of the same collectors is refused
	_, err = elimination.NewMetrics(reg)
	require.Error(t, err)
}

func TestVerdictLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	o, err := elimination.New(mustRead(t, teams5), elimination.WithLogger(logger))
	require.NoError(t, err)

	_, err = o.Evaluate(context.Background(), "Detroit")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "elimination verdict")
	require.Contains(t, buf.String(), "team=Detroit")
	require.Contains(t, buf.String(), "eliminated=true")
	require.Contains(t, buf.String(), "outcome=eliminated")
}

func TestSolverByName(t *testing.T) {
	for _, name := range []string{"edmonds-karp", "Ford-Fulkerson", " dinic "} {
		solve, err := elimination.SolverByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, solve, name)
	}
	_, err := elimination.SolverByName("push-relabel")
	require.ErrorIs(t, err, elimination.ErrUnknownAlgorithm)
}

// TestVerboseFlowOptions: flow options reach the solver.
func TestVerboseFlowOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	o, err := elimination.New(mustRead(t, teams4),
		elimination.WithFlowOptions(flow.WithLogger(logger), flow.WithVerbose(true)))
	require.NoError(t, err)

	_, err = o.Evaluate(context.Background(), "Philadelphia")
	require.NoError(t, err)
	require.Contains(t, buf.String(), "augmenting path")
}
