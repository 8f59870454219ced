package mus

import (
	"context"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/psucodervn/anotador/internal/history"
	"github.com/psucodervn/anotador/internal/model"
	"github.com/psucodervn/anotador/internal/persist"
	"github.com/psucodervn/anotador/internal/stringer"
	"github.com/psucodervn/anotador/internal/undo"
)

// Series ids for the two teams.
const (
	SeriesTeamA = int(TeamA)
	SeriesTeamB = int(TeamB)
)

type (
	OnChangeFunc  func(m Match)
	OnGameWinFunc func(m Match, winner Team)
)

type snapshot struct {
	match  Match
	series history.Series
}

// Engine owns the Mus match of one scoring session. It is driven from a
// single goroutine: the UI calls a mutation, the engine records an undo
// snapshot, applies it and notifies OnChange.
type Engine struct {
	store         persist.Storage
	maxNameLength int

	match  Match
	series history.Series
	undo   *undo.Stack[snapshot]

	onChangeFunc  OnChangeFunc
	onGameWinFunc OnGameWinFunc
}

func NewEngine(store persist.Storage, undoCapacity int, maxNameLength int) *Engine {
	def := model.DefaultPreferences()
	return &Engine{
		store:         store,
		maxNameLength: maxNameLength,
		match:         NewMatch(xid.New().String(), def.DefaultTeamAName, def.DefaultTeamBName, Target40),
		undo:          undo.NewStack[snapshot](undoCapacity),
	}
}

func (e *Engine) State() Match {
	return e.match
}

func (e *Engine) Series() history.Series {
	return e.series
}

func (e *Engine) CanUndo() bool {
	return e.undo.Size() > 0
}

func (e *Engine) UndoSize() int {
	return e.undo.Size()
}

func (e *Engine) OnChange(f OnChangeFunc) {
	e.onChangeFunc = f
}

func (e *Engine) OnGameWin(f OnGameWinFunc) {
	e.onGameWinFunc = f
}

// apply records the current state for undo and installs next. No-op
// mutations leave the undo history alone.
func (e *Engine) apply(next Match, series history.Series) bool {
	if next == e.match {
		return false
	}
	e.undo.Push(snapshot{match: e.match, series: e.series})
	e.match = next
	e.series = series
	e.notify()
	return true
}

func (e *Engine) notify() {
	if f := e.onChangeFunc; f != nil {
		f(e.match)
	}
}

func points(base history.Series, m Match) history.Series {
	return base.Append(map[int]int{
		SeriesTeamA: m.Team(TeamA).Score,
		SeriesTeamB: m.Team(TeamB).Score,
	})
}

func (e *Engine) IncrementStake(c Category, delta int) {
	e.apply(e.match.IncrementStake(c, delta), e.series)
}

func (e *Engine) AssignWinnerNoBet(c Category, t Team) {
	e.apply(e.match.AssignWinnerNoBet(c, t), e.series)
}

func (e *Engine) SetQuality(c Category, t Team, q Quality) {
	e.apply(e.match.SetQuality(c, t, q), e.series)
}

// ResolveStake pays category c to t. Passing Undetermined pays a pledged
// category to its pledged winner. The game winner, if any, is returned.
func (e *Engine) ResolveStake(c Category, t Team) Team {
	return e.resolved(e.match.payStake(c, t))
}

// Pass resolves a category "al paso" for t.
func (e *Engine) Pass(c Category, t Team) Team {
	return e.resolved(e.match.payPass(c, t))
}

// resolved installs a payment. A game win records the winning score before
// the reset point so the chart shows where the game ended.
func (e *Engine) resolved(p payment) Team {
	next, winner := p.finish()
	series := points(e.series, p.scored)
	if winner.Valid() {
		series = points(series, next)
	}
	if !e.apply(next, series) {
		return Undetermined
	}
	if winner.Valid() {
		e.gameWon(winner, "game won")
	}
	return winner
}

// AllIn ends the game for t without paying any open category.
func (e *Engine) AllIn(t Team) {
	if !t.Valid() {
		return
	}
	next := e.match.AllIn(t)
	e.apply(next, points(points(e.series, e.match), next))
	e.gameWon(t, "órdago won")
}

func (e *Engine) gameWon(t Team, msg string) {
	log.Debug().Str("match_id", e.match.ID).Stringer("winner", t).
		Int("games_a", e.match.Team(TeamA).GamesWon).
		Int("games_b", e.match.Team(TeamB).GamesWon).
		Msg(msg)
	if f := e.onGameWinFunc; f != nil {
		f(e.match, t)
	}
}

func (e *Engine) NextRound() {
	e.apply(e.match.NextRound(), e.series)
}

func (e *Engine) Rename(t Team, name string) {
	name = stringer.CleanName(name, e.maxNameLength)
	if len(name) == 0 {
		return
	}
	e.apply(e.match.Rename(t, name), e.series)
}

// Undo restores the state before the last mutation. It reports false when
// there was nothing to undo.
func (e *Engine) Undo() bool {
	s, ok := e.undo.Pop()
	if !ok {
		return false
	}
	e.match = s.match
	e.series = s.series
	e.notify()
	return true
}

// NewMatch starts over with fresh teams. A name that cleans to nothing takes
// the default team name. Undo history does not survive.
func (e *Engine) NewMatch(nameA, nameB string, target int) {
	def := model.DefaultPreferences()
	e.match = NewMatch(
		xid.New().String(),
		orDefault(stringer.CleanName(nameA, e.maxNameLength), def.DefaultTeamAName),
		orDefault(stringer.CleanName(nameB, e.maxNameLength), def.DefaultTeamBName),
		target,
	)
	e.series = history.Series{}
	e.undo.Clear()
	e.notify()
}

// NewMatchFromPreferences starts a match with the stored defaults.
func (e *Engine) NewMatchFromPreferences(p model.Preferences) {
	target := Target40
	if p.DefaultTarget30 {
		target = Target30
	}
	e.NewMatch(p.DefaultTeamAName, p.DefaultTeamBName, target)
}

func (e *Engine) Save(ctx context.Context) error {
	if err := persist.Save(ctx, e.store, model.KeyMus, e.match.Record()); err != nil {
		log.Err(err).Str("match_id", e.match.ID).Msg("save mus match failed")
		return err
	}
	return nil
}

// Load resumes the saved match. It reports false and keeps the current
// match when nothing usable was stored.
func (e *Engine) Load(ctx context.Context) bool {
	rec, ok := persist.Load(ctx, e.store, model.KeyMus, model.MusRecord{})
	if !ok {
		return false
	}
	m := MatchFromRecord(rec)
	if len(m.ID) == 0 {
		m.ID = xid.New().String()
	}
	e.match = m
	e.series = points(history.Series{}, m)
	e.undo.Clear()
	e.notify()
	return true
}

// CommitRound persists the match. A finished hand is replaced by a new one
// first.
func (e *Engine) CommitRound(ctx context.Context) error {
	if e.match.Round().Done() {
		e.NextRound()
	}
	log.Debug().Str("match_id", e.match.ID).Int("hands", e.match.Hands()).Msg("mus round committed")
	return e.Save(ctx)
}

// Discard deletes the saved match and starts a new one with the same teams
// and target.
func (e *Engine) Discard(ctx context.Context) error {
	if err := persist.Discard(ctx, e.store, model.KeyMus); err != nil {
		log.Err(err).Msg("discard mus match failed")
		return err
	}
	e.NewMatch(e.match.Team(TeamA).Name, e.match.Team(TeamB).Name, e.match.Target())
	return nil
}
