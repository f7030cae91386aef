// Package elimination decides whether a team of a division is mathematically
// eliminated from finishing first, and produces a witness set of teams that
// proves it.
//
// For a target team x with best possible total W = wins[x] + remaining[x]:
//
//  1. If some other team already has more than W wins, x is eliminated and
//     that team alone is the certificate (no flow computation).
//  2. If no other team can reach more than W wins, x is not eliminated
//     (no flow computation).
//  3. Otherwise a flow network is built with one vertex per remaining game
//     among the other teams and one vertex per other team:
//
//	source ──against[i][j]──▶ game(i,j) ──∞──▶ team(i) ──W−wins[i]──▶ sink
//	                                   └──∞──▶ team(j)
//
//     x is eliminated iff the maximum flow is smaller than the total source
//     capacity, and the certificate is the set of teams on the source side of
//     the minimum cut.
//
// Vertex numbering is fixed: source 0, game vertices 1..C(n-1,2) in ascending
// (i, j) order, team vertices next in ascending index order skipping x, sink
// last. GameVertex, TeamVertex and VertexTeam are the only places that encode
// this layout.
//
// The Oracle is read-only over its Division; a single Oracle may serve
// concurrent queries.
package elimination
