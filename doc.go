// Package elimination is the root of a module that decides, for every team in
// a division, whether it can still finish in first place.
//
// A team is eliminated when some set R of other teams has already won, or
// must win among themselves, more games than |R| teams can share while each
// stays at or below the team's best possible total. The question reduces to a
// maximum flow: games between the other teams flow from a source through game
// vertices to team vertices and into a sink, and each team vertex may pass on
// only the wins it can still afford. The team survives exactly when the flow
// saturates every source edge. Otherwise the source side of a minimum cut
// names R.
//
// Layout:
//
//	standings/         division table: wins, losses, remaining games, schedule
//	flow/              integer max-flow solvers (Ford–Fulkerson, Edmonds–Karp, Dinic) with min-cut queries
//	elimination/       network construction, verdicts, certificates, metrics
//	internal/config    environment-driven defaults for the command
//	internal/logging   slog construction and field names
//	cmd/elimination    command-line report over a standings file
//
// Quick start:
//
//	d, _ := standings.Read(f)
//	o, _ := elimination.New(d)
//	out, _ := o.Certificate(ctx, "Philadelphia") // [Atlanta New_York]
package elimination
