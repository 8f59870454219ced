package tally

import (
	"context"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"

	"github.com/psucodervn/anotador/internal/history"
	"github.com/psucodervn/anotador/internal/model"
	"github.com/psucodervn/anotador/internal/persist"
	"github.com/psucodervn/anotador/internal/stringer"
	"github.com/psucodervn/anotador/internal/undo"
)

type OnChangeFunc func(t Tally)

type snapshot struct {
	tally  Tally
	series history.Series
}

// Engine owns the Pocha or generic match of one scoring session.
type Engine struct {
	store         persist.Storage
	mode          Mode
	maxNameLength int

	tally  Tally
	series history.Series
	undo   *undo.Stack[snapshot]
	lastID atomic.Int64

	onChangeFunc OnChangeFunc
}

func NewEngine(store persist.Storage, mode Mode, undoCapacity int, maxNameLength int) *Engine {
	return &Engine{
		store:         store,
		mode:          mode,
		maxNameLength: maxNameLength,
		tally:         New(xid.New().String(), mode),
		undo:          undo.NewStack[snapshot](undoCapacity),
	}
}

func (e *Engine) State() Tally {
	return e.tally
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

func (e *Engine) apply(next Tally, series history.Series) bool {
	if next.Equal(e.tally) {
		return false
	}
	e.undo.Push(snapshot{tally: e.tally, series: e.series})
	e.tally = next
	e.series = series
	e.notify()
	return true
}

func (e *Engine) notify() {
	if f := e.onChangeFunc; f != nil {
		f(e.tally)
	}
}

// NewMatch replaces the roster with one player per name. Fewer than
// MinPlayers names are padded with numbered players.
func (e *Engine) NewMatch(names []string) error {
	if len(names) > MaxPlayers {
		return ErrTooManyPlayers
	}
	t := New(xid.New().String(), e.mode)
	e.lastID.Store(0)
	for i := 0; i < max(len(names), MinPlayers); i++ {
		name := ""
		if i < len(names) {
			name = stringer.CleanName(names[i], e.maxNameLength)
		}
		if len(name) == 0 {
			name = defaultName(i + 1)
		}
		next, err := t.AddPlayer(int(e.lastID.Inc()), name)
		if err != nil {
			return err
		}
		t = next
	}
	e.tally = t
	e.series = history.Series{}
	e.undo.Clear()
	e.notify()
	return nil
}

func (e *Engine) NewMatchFromPreferences(p model.Preferences) error {
	return e.NewMatch(p.DefaultPlayerNames)
}

func defaultName(n int) string {
	return "Jugador " + stringer.FormatScore(n)
}

func (e *Engine) AddPlayer(name string) (int, error) {
	name = stringer.CleanName(name, e.maxNameLength)
	if len(name) == 0 {
		return 0, ErrEmptyName
	}
	id := int(e.lastID.Load()) + 1
	next, err := e.tally.AddPlayer(id, name)
	if err != nil {
		return 0, err
	}
	e.lastID.Store(int64(id))
	e.apply(next, e.series)
	return id, nil
}

func (e *Engine) RemovePlayer(id int) error {
	next, err := e.tally.RemovePlayer(id)
	if err != nil {
		return err
	}
	e.apply(next, e.series)
	return nil
}

func (e *Engine) Rename(id int, name string) {
	e.apply(e.tally.Rename(id, stringer.CleanName(name, e.maxNameLength)), e.series)
}

func (e *Engine) SetBid(id int, bid int) {
	e.apply(e.tally.SetBid(id, bid), e.series)
}

func (e *Engine) AdjustBid(id int, delta int) {
	e.apply(e.tally.AdjustBid(id, delta), e.series)
}

func (e *Engine) SetOutcome(id int, outcome int) {
	e.apply(e.tally.SetOutcome(id, outcome), e.series)
}

func (e *Engine) AdjustOutcome(id int, delta int) {
	e.apply(e.tally.AdjustOutcome(id, delta), e.series)
}

func (e *Engine) Increment(id int, delta int) {
	e.apply(e.tally.Increment(id, delta), e.series)
}

func (e *Engine) SetDuplica(on bool) {
	e.apply(e.tally.SetDuplica(on), e.series)
}

// AdvancePhase toggles between bids and outcomes. When a round settles it is
// written to storage straight away.
func (e *Engine) AdvancePhase(ctx context.Context) error {
	next, settled := e.tally.AdvancePhase()
	return e.commit(ctx, next, settled)
}

// CommitRound settles the round and persists the match.
func (e *Engine) CommitRound(ctx context.Context) error {
	next, settled := e.tally.CommitRound()
	return e.commit(ctx, next, settled)
}

func (e *Engine) commit(ctx context.Context, next Tally, settled bool) error {
	series := e.series
	if settled {
		series = series.Append(next.Scores())
	}
	if !e.apply(next, series) || !settled {
		return nil
	}
	log.Debug().Str("match_id", next.ID).Stringer("mode", e.mode).Int("round", next.Rounds()).Msg("round committed")
	return e.Save(ctx)
}

func (e *Engine) Undo() bool {
	s, ok := e.undo.Pop()
	if !ok {
		return false
	}
	e.tally = s.tally
	e.series = s.series
	e.notify()
	return true
}

func (e *Engine) Save(ctx context.Context) error {
	if err := persist.Save(ctx, e.store, e.mode.Key(), e.tally.Record()); err != nil {
		log.Err(err).Str("match_id", e.tally.ID).Stringer("mode", e.mode).Msg("save tally failed")
		return err
	}
	return nil
}

// Load resumes the saved match of this engine's mode. Records with too few
// players or of the other mode are ignored.
func (e *Engine) Load(ctx context.Context) bool {
	rec, ok := persist.Load(ctx, e.store, e.mode.Key(), model.TallyRecord{})
	if !ok {
		return false
	}
	t := FromRecord(rec)
	if t.Mode() != e.mode || t.Len() < MinPlayers {
		log.Warn().Str("key", e.mode.Key()).Int("players", t.Len()).Msg("ignoring unusable saved tally")
		return false
	}
	if len(t.ID) == 0 {
		t.ID = xid.New().String()
	}
	e.tally = t
	e.lastID.Store(int64(t.MaxID()))
	e.series = history.Series{}.Append(t.Scores())
	e.undo.Clear()
	e.notify()
	return true
}

// Discard deletes the saved match and starts over with the same names.
func (e *Engine) Discard(ctx context.Context) error {
	if err := persist.Discard(ctx, e.store, e.mode.Key()); err != nil {
		log.Err(err).Stringer("mode", e.mode).Msg("discard tally failed")
		return err
	}
	names := make([]string, 0, e.tally.Len())
	for _, p := range e.tally.players {
		names = append(names, p.Name)
	}
	return e.NewMatch(names)
}
