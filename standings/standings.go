package standings

import "fmt"

// Division is an immutable standings snapshot.
type Division struct {
	names     []string
	index     map[string]int
	wins      []int
	losses    []int
	remaining []int
	against   [][]int
}

// New validates rows and builds a Division. Team indices follow row order.
//
// Errors (all wrap ErrInvalidInput):
//   - no rows;
//   - empty or duplicate name;
//   - negative wins, losses, remaining or against entry;
//   - wins, losses, remaining or an against entry above MaxCount;
//   - Against length different from the number of rows;
//   - non-zero diagonal or asymmetric matrix;
//   - a row sum greater than Remaining.
func New(rows []Row) (*Division, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("%w: division has no teams", ErrInvalidInput)
	}

	d := &Division{
		names:     make([]string, n),
		index:     make(map[string]int, n),
		wins:      make([]int, n),
		losses:    make([]int, n),
		remaining: make([]int, n),
		against:   make([][]int, n),
	}
	for i, row := range rows {
		if row.Name == "" {
			return nil, fmt.Errorf("%w: team %d has an empty name", ErrInvalidInput, i)
		}
		if _, dup := d.index[row.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate team %q", ErrInvalidInput, row.Name)
		}
		if row.Wins < 0 || row.Losses < 0 || row.Remaining < 0 {
			return nil, fmt.Errorf("%w: team %q has a negative count", ErrInvalidInput, row.Name)
		}
		if row.Wins > MaxCount || row.Losses > MaxCount || row.Remaining > MaxCount {
			return nil, fmt.Errorf("%w: team %q has a count above %d", ErrInvalidInput, row.Name, MaxCount)
		}
		if len(row.Against) != n {
			return nil, fmt.Errorf("%w: team %q has %d against entries, want %d",
				ErrInvalidInput, row.Name, len(row.Against), n)
		}
		d.names[i] = row.Name
		d.index[row.Name] = i
		d.wins[i] = row.Wins
		d.losses[i] = row.Losses
		d.remaining[i] = row.Remaining
		d.against[i] = append([]int(nil), row.Against...)
	}

	if err := d.validateMatchups(); err != nil {
		return nil, err
	}

	return d, nil
}

// validateMatchups enforces the against-matrix invariants.
func (d *Division) validateMatchups() error {
	for i, row := range d.against {
		sum := 0
		for j, g := range row {
			switch {
			case g < 0:
				return fmt.Errorf("%w: negative games between %q and %q", ErrInvalidInput, d.names[i], d.names[j])
			case g > MaxCount:
				return fmt.Errorf("%w: %d games between %q and %q exceeds %d", ErrInvalidInput, g, d.names[i], d.names[j], MaxCount)
			case i == j && g != 0:
				return fmt.Errorf("%w: team %q scheduled against itself", ErrInvalidInput, d.names[i])
			case g != d.against[j][i]:
				return fmt.Errorf("%w: asymmetric games between %q and %q", ErrInvalidInput, d.names[i], d.names[j])
			}
			// stop once past remaining so the sum cannot overflow
			if sum += g; sum > d.remaining[i] {
				break
			}
		}
		if sum > d.remaining[i] {
			return fmt.Errorf("%w: team %q has %d division games left but only %d remaining",
				ErrInvalidInput, d.names[i], sum, d.remaining[i])
		}
	}

	return nil
}

// NumberOfTeams returns the team count n ≥ 1.
func (d *Division) NumberOfTeams() int { return len(d.names) }

// Teams returns the team names in index order.
func (d *Division) Teams() []string {
	return append([]string(nil), d.names...)
}

// Index resolves a team name to its index.
func (d *Division) Index(team string) (int, error) {
	if team == "" {
		return -1, fmt.Errorf("%w: empty team name", ErrInvalidArgument)
	}
	i, ok := d.index[team]
	if !ok {
		return -1, fmt.Errorf("%w: unknown team %q", ErrInvalidArgument, team)
	}

	return i, nil
}

// Name returns the name of the team at index i.
func (d *Division) Name(i int) string { return d.names[i] }

// Wins returns the games already won by team.
func (d *Division) Wins(team string) (int, error) {
	i, err := d.Index(team)
	if err != nil {
		return 0, err
	}

	return d.wins[i], nil
}

// Losses returns the games already lost by team.
func (d *Division) Losses(team string) (int, error) {
	i, err := d.Index(team)
	if err != nil {
		return 0, err
	}

	return d.losses[i], nil
}

// Remaining returns the games team has left to play.
func (d *Division) Remaining(team string) (int, error) {
	i, err := d.Index(team)
	if err != nil {
		return 0, err
	}

	return d.remaining[i], nil
}

// Against returns the games left between team1 and team2.
func (d *Division) Against(team1, team2 string) (int, error) {
	i, err := d.Index(team1)
	if err != nil {
		return 0, err
	}
	j, err := d.Index(team2)
	if err != nil {
		return 0, err
	}

	return d.against[i][j], nil
}

// WinsAt returns the wins of the team at index i.
func (d *Division) WinsAt(i int) int { return d.wins[i] }

// LossesAt returns the losses of the team at index i.
func (d *Division) LossesAt(i int) int { return d.losses[i] }

// RemainingAt returns the remaining games of the team at index i.
func (d *Division) RemainingAt(i int) int { return d.remaining[i] }

// AgainstAt returns the games left between the teams at indices i and j.
func (d *Division) AgainstAt(i, j int) int { return d.against[i][j] }

// MaxWins is the best final win total the team at index i can still reach.
func (d *Division) MaxWins(i int) int { return d.wins[i] + d.remaining[i] }
