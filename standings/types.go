package standings

import "errors"

// Sentinel errors for standings construction and lookup.
var (
	// ErrInvalidInput indicates a malformed or inconsistent division at construction.
	ErrInvalidInput = errors.New("standings: invalid input")

	// ErrInvalidArgument indicates an empty or unknown team name passed to a query.
	ErrInvalidArgument = errors.New("standings: invalid argument")
)

// MaxCount bounds every count in a Row. Best-case win totals and the
// per-team schedule sums then stay well inside int on every platform.
const MaxCount = 1<<30 - 1

// Row is one already-parsed team line of a division.
type Row struct {
	Name      string
	Wins      int
	Losses    int
	Remaining int
	// Against[j] is the number of games left against the j-th team.
	Against []int
}
