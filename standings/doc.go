// Package standings holds an immutable snapshot of a division: the team
// roster, wins, losses, remaining games and the pairwise remaining-matchup
// matrix.
//
// Teams are identified by unique non-empty names and by a stable index
// 0..n-1 fixed at construction. Name-based accessors validate their argument
// and fail with ErrInvalidArgument; index-based accessors (WinsAt, AgainstAt,
// ...) are meant for downstream packages that already resolved an index and
// panic on out-of-range input like slice indexing does.
//
// Consistency policy: against must be symmetric with a zero diagonal, and each
// team's remaining count must be at least the sum of its against row. The
// difference is games left against teams outside the division.
//
// A Division never changes after New or Read returns, so it is safe to share
// across goroutines.
package standings
