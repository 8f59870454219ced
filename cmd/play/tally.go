package play

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/psucodervn/anotador/internal/tally"
)

func newTallyRepl(ctx context.Context, s *session, mode tally.Mode, in io.Reader, out io.Writer) (*repl, error) {
	e := tally.NewEngine(s.store, mode, s.cfg.UndoCapacity, s.cfg.MaxNameLength)
	if fresh || !e.Load(ctx) {
		if err := e.NewMatchFromPreferences(s.prefs); err != nil {
			return nil, err
		}
	}
	log.Ctx(ctx).Debug().Stringer("mode", mode).Int("players", e.State().Len()).Msg("tally session started")

	r := newRepl(in, out, mode.String()+"> ", func() string { return e.State().Board() })
	e.OnChange(func(t tally.Tally) { r.println(t.Board()) })

	r.handle("jugador", "jugador <nombre> (solo antes de empezar)", func(args []string) error {
		name, err := restArg(args, 0)
		if err != nil {
			return err
		}
		_, err = e.AddPlayer(name)
		return err
	})
	r.handle("quitar", "quitar <id> (solo antes de empezar)", func(args []string) error {
		id, err := intArg(args, 0)
		if err != nil {
			return err
		}
		return e.RemovePlayer(id)
	})
	r.handle("nombre", "nombre <id> <nombre>", func(args []string) error {
		id, err := intArg(args, 0)
		if err != nil {
			return err
		}
		name, err := restArg(args, 1)
		if err != nil {
			return err
		}
		e.Rename(id, name)
		return nil
	})
	if mode == tally.Pocha {
		r.handle("apuesta", "apuesta <id> <n>", func(args []string) error {
			id, err := intArg(args, 0)
			if err != nil {
				return err
			}
			n, err := intArg(args, 1)
			if err != nil {
				return err
			}
			e.SetBid(id, n)
			return nil
		})
		r.handle("victoria", "victoria <id> <n>", func(args []string) error {
			id, err := intArg(args, 0)
			if err != nil {
				return err
			}
			n, err := intArg(args, 1)
			if err != nil {
				return err
			}
			e.SetOutcome(id, n)
			return nil
		})
		r.handle("duplica", "duplica <si|no>", func(args []string) error {
			on, err := boolArg(args, 0)
			if err != nil {
				return err
			}
			e.SetDuplica(on)
			return nil
		})
		r.handle("fase", "fase (apuestas <-> victorias; al cerrar victorias se puntúa)", func([]string) error {
			if e.State().Phase() == tally.PhaseOutcome && e.State().ApuestasEqualVictorias() {
				r.println("aviso: las apuestas suman lo mismo que las victorias")
			}
			return e.AdvancePhase(ctx)
		})
	} else {
		r.handle("suma", "suma <id> <n> (n puede ser negativo)", func(args []string) error {
			id, err := intArg(args, 0)
			if err != nil {
				return err
			}
			n, err := intArg(args, 1)
			if err != nil {
				return err
			}
			e.Increment(id, n)
			return nil
		})
	}
	r.handle("ronda", "ronda (cierra la ronda y guarda)", func([]string) error {
		return e.CommitRound(ctx)
	})
	r.handle("deshacer", "deshacer", func([]string) error {
		if !e.Undo() {
			r.println("nada que deshacer")
		}
		return nil
	})
	r.handle("nuevo", "nuevo (mismos jugadores, puntos a cero)", func([]string) error {
		ps := e.State().Players()
		names := make([]string, len(ps))
		for i := range ps {
			names[i] = ps[i].Name
		}
		return e.NewMatch(names)
	})
	r.handle("descartar", "descartar (borra la partida guardada)", func([]string) error {
		return e.Discard(ctx)
	})
	r.handle("historial", "historial", func([]string) error {
		names := make(map[int]string)
		for _, p := range e.State().Players() {
			names[p.ID] = p.Name
		}
		r.println(seriesText(e.Series(), names))
		return nil
	})
	return r, nil
}
