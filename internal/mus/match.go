package mus

import (
	"github.com/psucodervn/anotador/internal/model"
)

const (
	Target30 = 30
	Target40 = 40
)

type TeamScore struct {
	Name     string
	Score    int
	GamesWon int
}

// Match is two teams playing to a fixed target across any number of games.
// Like Round it is a value; mutations return a new Match.
type Match struct {
	ID     string
	teams  [2]TeamScore
	target int
	round  Round
	hands  int
}

func NewMatch(id string, nameA, nameB string, target int) Match {
	return Match{
		ID:     id,
		teams:  [2]TeamScore{{Name: nameA}, {Name: nameB}},
		target: normalizeTarget(target),
	}
}

func normalizeTarget(target int) int {
	if target == Target30 {
		return Target30
	}
	return Target40
}

func (m Match) Team(t Team) TeamScore {
	if !t.Valid() {
		return TeamScore{}
	}
	return m.teams[t.index()]
}

func (m Match) Target() int {
	return m.target
}

func (m Match) Round() Round {
	return m.round
}

// Hands is the number of hands finished in the current game.
func (m Match) Hands() int {
	return m.hands
}

func (m Match) Rename(t Team, name string) Match {
	if t.Valid() {
		m.teams[t.index()].Name = name
	}
	return m
}

func (m Match) IncrementStake(c Category, delta int) Match {
	m.round = m.round.IncrementStake(c, delta)
	return m
}

func (m Match) AssignWinnerNoBet(c Category, t Team) Match {
	m.round = m.round.AssignWinnerNoBet(c, t)
	return m
}

func (m Match) SetQuality(c Category, t Team, q Quality) Match {
	m.round = m.round.SetQuality(c, t, q)
	return m
}

// ResolveStake pays the category to t. If that brings a team to the target
// the game win is applied and the winner is returned; otherwise winner is
// Undetermined.
func (m Match) ResolveStake(c Category, t Team) (next Match, winner Team) {
	return m.payStake(c, t).finish()
}

// Pass resolves a category nobody bet on for t ("al paso").
func (m Match) Pass(c Category, t Team) (next Match, winner Team) {
	return m.payPass(c, t).finish()
}

// payment is a resolved category credited to its payee, before any game win
// is applied.
type payment struct {
	scored Match
	payee  Team
}

func (m Match) payStake(c Category, t Team) payment {
	var (
		paid  int
		payee Team
	)
	m.round, paid, payee = m.round.ResolveStake(c, t)
	return m.credit(paid, payee)
}

func (m Match) payPass(c Category, t Team) payment {
	var (
		paid  int
		payee Team
	)
	m.round, paid, payee = m.round.Pass(c, t)
	return m.credit(paid, payee)
}

func (m Match) credit(paid int, payee Team) payment {
	if payee.Valid() {
		m.teams[payee.index()].Score += paid
	}
	return payment{scored: m, payee: payee}
}

// finish applies the game win if the payee reached the target. Only the
// payee's score moved, so no other team needs checking.
func (p payment) finish() (Match, Team) {
	if p.payee.Valid() && p.scored.reached(p.payee) {
		return p.scored.ApplyGameWin(p.payee), p.payee
	}
	return p.scored, Undetermined
}

func (m Match) reached(t Team) bool {
	return m.teams[t.index()].Score >= m.target
}

// CheckWinCondition returns the team at or over the target, TeamA first.
func (m Match) CheckWinCondition() Team {
	for _, t := range []Team{TeamA, TeamB} {
		if m.reached(t) {
			return t
		}
	}
	return Undetermined
}

// ApplyGameWin credits t with a game, zeroes both scores and starts a fresh
// hand.
func (m Match) ApplyGameWin(t Team) Match {
	if !t.Valid() {
		return m
	}
	m.teams[t.index()].GamesWon++
	for i := range m.teams {
		m.teams[i].Score = 0
	}
	m.round = Round{}
	m.hands = 0
	return m
}

// AllIn settles an accepted and won órdago: t wins the game outright and any
// stake still on the table is discarded unpaid.
func (m Match) AllIn(t Team) Match {
	return m.ApplyGameWin(t)
}

// NextRound replaces the current hand with a fresh one. Stakes that were
// never resolved are dropped.
func (m Match) NextRound() Match {
	m.round = Round{}
	m.hands++
	return m
}

func (m Match) Record() model.MusRecord {
	team := func(ts TeamScore) model.TeamRecord {
		return model.TeamRecord{Name: ts.Name, Score: ts.Score, GamesWon: ts.GamesWon}
	}
	return model.MusRecord{
		Version: model.MusVersion,
		MatchID: m.ID,
		TeamA:   team(m.teams[0]),
		TeamB:   team(m.teams[1]),
		Stakes: model.StakesRecord{
			Grande: m.round.bets[Grande].Stake,
			Chica:  m.round.bets[Chica].Stake,
			Pares:  m.round.bets[Pares].Stake,
			Juego:  m.round.bets[Juego].Stake,
		},
		Target: m.target,
	}
}

// MatchFromRecord rebuilds a match from its persisted form. Stakes come back
// as open bets; out-of-range values are clamped. Empty team names take the
// default names, and a score already at the target counts as a won game.
func MatchFromRecord(r model.MusRecord) Match {
	def := model.DefaultPreferences()
	m := NewMatch(r.MatchID, orDefault(r.TeamA.Name, def.DefaultTeamAName), orDefault(r.TeamB.Name, def.DefaultTeamBName), r.Target)
	for i, tr := range []model.TeamRecord{r.TeamA, r.TeamB} {
		m.teams[i].Score = max(tr.Score, 0)
		m.teams[i].GamesWon = max(tr.GamesWon, 0)
	}
	for c, stake := range [NumCategories]int{r.Stakes.Grande, r.Stakes.Chica, r.Stakes.Pares, r.Stakes.Juego} {
		m.round.bets[c].Stake = clampStake(stake)
	}
	if w := m.CheckWinCondition(); w != Undetermined {
		m = m.ApplyGameWin(w)
	}
	return m
}

func orDefault(name, def string) string {
	if len(name) == 0 {
		return def
	}
	return name
}
