package mus

// Round is one hand: the four categories in play order. Round is a value;
// every method returns an updated copy and leaves the receiver untouched.
type Round struct {
	bets    [NumCategories]Bet
	quality [NumCategories][2]Quality
}

func (r Round) Bet(c Category) Bet {
	if !c.Valid() {
		return Bet{}
	}
	return r.bets[c]
}

func (r Round) Bets() [NumCategories]Bet {
	return r.bets
}

func (r Round) Quality(c Category, t Team) Quality {
	if !c.Valid() || !t.Valid() {
		return QualityNone
	}
	return r.quality[c][t.index()]
}

// Active is the first category that is not resolved yet. ok is false when
// the hand is over.
func (r Round) Active() (c Category, ok bool) {
	for i := range r.bets {
		if r.bets[i].State != Resolved {
			return Category(i), true
		}
	}
	return 0, false
}

// Done reports whether all four categories are resolved. A done round is
// terminal and is replaced, never reopened.
func (r Round) Done() bool {
	_, ok := r.Active()
	return !ok
}

// Stakes is the total envite still on the table.
func (r Round) Stakes() int {
	sum := 0
	for _, b := range r.bets {
		sum += b.Stake
	}
	return sum
}

func (r Round) IncrementStake(c Category, delta int) Round {
	if !c.Valid() {
		return r
	}
	r.bets[c] = r.bets[c].increment(delta)
	return r
}

func (r Round) AssignWinnerNoBet(c Category, t Team) Round {
	if !c.Valid() {
		return r
	}
	r.bets[c] = r.bets[c].pledge(t)
	return r
}

// ResolveStake pays the category to t and returns the amount paid and the
// team that received it.
func (r Round) ResolveStake(c Category, t Team) (Round, int, Team) {
	if !c.Valid() {
		return r, 0, Undetermined
	}
	var paid int
	r.bets[c], paid, t = r.bets[c].resolve(t)
	return r, paid, t
}

// Pass resolves a category nobody bet on ("al paso"): t receives PasoStake.
// A category that already carries a stake is resolved normally.
func (r Round) Pass(c Category, t Team) (Round, int, Team) {
	if !c.Valid() || !t.Valid() || r.bets[c].State == Resolved {
		return r, 0, Undetermined
	}
	if r.bets[c].Stake == 0 {
		r.bets[c].Stake = PasoStake
	}
	return r.ResolveStake(c, t)
}

func (r Round) SetQuality(c Category, t Team, q Quality) Round {
	if !c.HasQuality() || !t.Valid() || !q.Allowed(c) {
		return r
	}
	r.quality[c][t.index()] = q
	return r
}
