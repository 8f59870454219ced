package tally

import (
	"slices"

	"github.com/psucodervn/anotador/internal/model"
)

type Mode uint8

const (
	Generic Mode = iota
	Pocha
)

func (m Mode) String() string {
	if m == Pocha {
		return "pocha"
	}
	return "generic"
}

// Key is the storage key of the mode's saved match.
func (m Mode) Key() string {
	if m == Pocha {
		return model.KeyPocha
	}
	return model.KeyGeneric
}

// Phase only matters in Pocha: bids are entered first, then tricks won.
type Phase uint8

const (
	PhaseBid Phase = iota
	PhaseOutcome
)

func (p Phase) String() string {
	if p == PhaseOutcome {
		return "outcome"
	}
	return "bid"
}

func parsePhase(s string) Phase {
	if s == PhaseOutcome.String() {
		return PhaseOutcome
	}
	return PhaseBid
}

// Tally is the score sheet of a Pocha or generic match. It is a value:
// methods copy the player slice before changing it, so a Tally handed out
// earlier never changes underneath its holder.
type Tally struct {
	ID      string
	mode    Mode
	phase   Phase
	duplica bool
	rounds  int
	started bool
	players []Player
}

func New(id string, mode Mode) Tally {
	return Tally{ID: id, mode: mode}
}

func (t Tally) Mode() Mode { return t.mode }

func (t Tally) Phase() Phase { return t.phase }

func (t Tally) Duplica() bool { return t.duplica }

func (t Tally) Rounds() int { return t.rounds }

func (t Tally) Started() bool { return t.started }

func (t Tally) Len() int { return len(t.players) }

func (t Tally) Players() []Player { return slices.Clone(t.players) }

func (t Tally) Player(id int) (Player, bool) {
	if i := t.index(id); i >= 0 {
		return t.players[i], true
	}
	return Player{}, false
}

func (t Tally) Equal(o Tally) bool {
	return t.ID == o.ID && t.mode == o.mode && t.phase == o.phase &&
		t.duplica == o.duplica && t.rounds == o.rounds && t.started == o.started &&
		slices.Equal(t.players, o.players)
}

func (t Tally) index(id int) int {
	return slices.IndexFunc(t.players, func(p Player) bool { return p.ID == id })
}

// update applies f to a copy of player id. An edit that changes the player
// locks the roster; one that changes nothing returns t as is.
func (t Tally) update(id int, f func(p *Player)) Tally {
	i := t.index(id)
	if i < 0 {
		return t
	}
	p := t.players[i]
	f(&p)
	if p == t.players[i] {
		return t
	}
	t.players = slices.Clone(t.players)
	t.players[i] = p
	t.started = true
	return t
}

func (t Tally) AddPlayer(id int, name string) (Tally, error) {
	switch {
	case t.started:
		return t, ErrRosterLocked
	case len(t.players) >= MaxPlayers:
		return t, ErrTooManyPlayers
	case len(name) == 0:
		return t, ErrEmptyName
	}
	t.players = append(slices.Clone(t.players), Player{ID: id, Name: name})
	return t, nil
}

func (t Tally) RemovePlayer(id int) (Tally, error) {
	i := t.index(id)
	switch {
	case t.started:
		return t, ErrRosterLocked
	case i < 0:
		return t, ErrPlayerNotFound
	case len(t.players) <= MinPlayers:
		return t, ErrTooFewPlayers
	}
	t.players = slices.Delete(slices.Clone(t.players), i, i+1)
	return t, nil
}

// Rename is allowed at any time.
func (t Tally) Rename(id int, name string) Tally {
	i := t.index(id)
	if i < 0 || len(name) == 0 {
		return t
	}
	t.players = slices.Clone(t.players)
	t.players[i].Name = name
	return t
}

// SetBid records a Pocha bid. It is ignored outside the bid phase.
func (t Tally) SetBid(id int, bid int) Tally {
	if t.mode != Pocha || t.phase != PhaseBid {
		return t
	}
	return t.update(id, func(p *Player) { p.Bid = max(bid, 0) })
}

func (t Tally) AdjustBid(id int, delta int) Tally {
	p, ok := t.Player(id)
	if !ok {
		return t
	}
	return t.SetBid(id, p.Bid+delta)
}

// SetOutcome records the tricks a player actually won. It is ignored
// outside the outcome phase.
func (t Tally) SetOutcome(id int, outcome int) Tally {
	if t.mode != Pocha || t.phase != PhaseOutcome {
		return t
	}
	return t.update(id, func(p *Player) { p.Outcome = max(outcome, 0) })
}

func (t Tally) AdjustOutcome(id int, delta int) Tally {
	p, ok := t.Player(id)
	if !ok {
		return t
	}
	return t.SetOutcome(id, p.Outcome+delta)
}

// Increment adds delta to the pending amount of a generic-game player.
func (t Tally) Increment(id int, delta int) Tally {
	if t.mode != Generic || delta == 0 {
		return t
	}
	return t.update(id, func(p *Player) { p.Pending += delta })
}

func (t Tally) SetDuplica(on bool) Tally {
	if t.mode != Pocha {
		return t
	}
	t.duplica = on
	return t
}

// ApuestasEqualVictorias reports whether total bids equal total tricks won.
// Some house rules forbid it; callers only warn.
func (t Tally) ApuestasEqualVictorias() bool {
	sum := 0
	for _, p := range t.players {
		sum += p.Bid - p.Outcome
	}
	return sum == 0
}

// PendingDeltas previews what CommitRound would add to each player.
func (t Tally) PendingDeltas() map[int]int {
	out := make(map[int]int, len(t.players))
	for _, p := range t.players {
		if t.mode == Pocha {
			out[p.ID] = PochaDelta(p.Bid, p.Outcome, t.duplica)
		} else {
			out[p.ID] = p.Pending
		}
	}
	return out
}

// AdvancePhase toggles the Pocha phase. Closing the outcome phase settles the
// round and clears duplica; opening it changes nothing else. settled reports
// whether scores changed hands.
func (t Tally) AdvancePhase() (next Tally, settled bool) {
	if t.mode != Pocha {
		return t, false
	}
	if t.phase == PhaseBid {
		t.phase = PhaseOutcome
		t.started = true
		return t, false
	}
	t = t.settle()
	t.phase = PhaseBid
	t.duplica = false
	return t, true
}

// CommitRound closes the round: in the generic game every pending amount is
// added to its player's total; in Pocha it settles only from the outcome
// phase and is a no-op while bids are being taken.
func (t Tally) CommitRound() (next Tally, settled bool) {
	if t.mode == Pocha {
		if t.phase != PhaseOutcome {
			return t, false
		}
		return t.AdvancePhase()
	}
	return t.settle(), true
}

func (t Tally) settle() Tally {
	deltas := t.PendingDeltas()
	t.players = slices.Clone(t.players)
	for i := range t.players {
		p := &t.players[i]
		p.Score += deltas[p.ID]
		p.Bid, p.Outcome, p.Pending = 0, 0, 0
	}
	t.rounds++
	t.started = true
	return t
}

// Scores maps player id to total score.
func (t Tally) Scores() map[int]int {
	out := make(map[int]int, len(t.players))
	for _, p := range t.players {
		out[p.ID] = p.Score
	}
	return out
}

func (t Tally) MaxID() int {
	id := 0
	for _, p := range t.players {
		id = max(id, p.ID)
	}
	return id
}

func (t Tally) Record() model.TallyRecord {
	r := model.TallyRecord{
		Version: model.TallyVersion,
		MatchID: t.ID,
		Pocha:   t.mode == Pocha,
		Players: make([]model.PlayerRecord, len(t.players)),
	}
	if t.mode == Pocha {
		r.Phase = t.phase.String()
		r.Duplica = t.duplica
	}
	for i, p := range t.players {
		r.Players[i] = p.record(t.mode)
	}
	return r
}

// FromRecord rebuilds a tally. A resumed match has its roster locked if any
// score was already recorded.
func FromRecord(r model.TallyRecord) Tally {
	mode := Generic
	if r.Pocha {
		mode = Pocha
	}
	t := New(r.MatchID, mode)
	if mode == Pocha {
		t.phase = parsePhase(r.Phase)
		t.duplica = r.Duplica
	}
	for _, pr := range r.Players {
		if len(t.players) >= MaxPlayers {
			break
		}
		p := playerFromRecord(pr)
		t.players = append(t.players, p)
		if p != (Player{ID: p.ID, Name: p.Name}) {
			t.started = true
		}
	}
	if t.phase == PhaseOutcome {
		t.started = true
	}
	return t
}
