package mus

// BetState is the lifecycle of one category within a hand.
type BetState uint8

const (
	// Open accepts stake increments; no winner yet.
	Open BetState = iota
	// Pledged has a winner chosen without a bet being seen ("envite no
	// visto"). The stake can still be entered before it is resolved.
	Pledged
	// Resolved has been paid out. Nothing changes it until a new hand.
	Resolved
)

func (s BetState) String() string {
	switch s {
	case Open:
		return "open"
	case Pledged:
		return "pledged"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

const (
	// MaxStake is the largest envite the board can show.
	MaxStake = 99
	// PasoStake is paid to the winner of a category every player passed.
	PasoStake = 1
)

type Bet struct {
	Stake  int
	Winner Team
	State  BetState
}

func (b Bet) increment(delta int) Bet {
	if b.State == Resolved {
		return b
	}
	b.Stake = clampStake(b.Stake + delta)
	return b
}

func (b Bet) pledge(t Team) Bet {
	if b.State != Open || b.Stake != 0 || !t.Valid() {
		return b
	}
	b.Winner = t
	b.State = Pledged
	return b
}

// resolve pays the stake to t. A pledged bet with no team given pays its
// pledged winner. It returns the paid amount and who received it.
func (b Bet) resolve(t Team) (Bet, int, Team) {
	if b.State == Resolved {
		return b, 0, Undetermined
	}
	if !t.Valid() {
		if b.State != Pledged {
			return b, 0, Undetermined
		}
		t = b.Winner
	}
	paid := b.Stake
	return Bet{Winner: t, State: Resolved}, paid, t
}

func clampStake(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxStake {
		return MaxStake
	}
	return v
}
