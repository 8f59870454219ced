package play

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/psucodervn/anotador/internal/mus"
)

func parseTeam(args []string, i int) (mus.Team, error) {
	if i >= len(args) {
		return mus.Undetermined, errUsage
	}
	switch strings.ToLower(args[i]) {
	case "a":
		return mus.TeamA, nil
	case "b":
		return mus.TeamB, nil
	}
	return mus.Undetermined, errUsage
}

func parseCategory(args []string, i int) (mus.Category, error) {
	if i >= len(args) {
		return 0, errUsage
	}
	c, ok := mus.ParseCategory(strings.ToLower(args[i]))
	if !ok {
		return 0, errUsage
	}
	return c, nil
}

var qualityArgs = map[string]mus.Quality{
	"nada":   mus.QualityNone,
	"pareja": mus.Pareja,
	"medias": mus.Medias,
	"duples": mus.Duples,
	"punto":  mus.Punto,
	"31":     mus.Juego31,
	"juego":  mus.JuegoOther,
}

func newMusRepl(ctx context.Context, s *session, in io.Reader, out io.Writer) *repl {
	e := mus.NewEngine(s.store, s.cfg.UndoCapacity, s.cfg.MaxNameLength)
	if fresh || !e.Load(ctx) {
		e.NewMatchFromPreferences(s.prefs)
	}

	r := newRepl(in, out, "mus> ", func() string { return e.State().Board() })
	e.OnChange(func(m mus.Match) { r.println(m.Board()) })
	e.OnGameWin(func(m mus.Match, w mus.Team) {
		r.println(fmt.Sprintf("\n¡Juego para %s! (%d - %d)\n", m.Team(w).Name, m.Team(mus.TeamA).GamesWon, m.Team(mus.TeamB).GamesWon))
	})

	r.handle("envite", "envite <grande|chica|pares|juego> <n>", func(args []string) error {
		c, err := parseCategory(args, 0)
		if err != nil {
			return err
		}
		n, err := intArg(args, 1)
		if err != nil {
			return err
		}
		e.IncrementStake(c, n)
		return nil
	})
	r.handle("gana", "gana <categoria> <a|b> (cobra el envite)", func(args []string) error {
		c, err := parseCategory(args, 0)
		if err != nil {
			return err
		}
		t, err := parseTeam(args, 1)
		if err != nil {
			return err
		}
		e.ResolveStake(c, t)
		return nil
	})
	r.handle("novisto", "novisto <categoria> <a|b> (envite no visto)", func(args []string) error {
		c, err := parseCategory(args, 0)
		if err != nil {
			return err
		}
		t, err := parseTeam(args, 1)
		if err != nil {
			return err
		}
		e.AssignWinnerNoBet(c, t)
		return nil
	})
	r.handle("cobra", "cobra <categoria> (paga un no visto a su ganador)", func(args []string) error {
		c, err := parseCategory(args, 0)
		if err != nil {
			return err
		}
		e.ResolveStake(c, mus.Undetermined)
		return nil
	})
	r.handle("paso", "paso <categoria> <a|b> (al paso)", func(args []string) error {
		c, err := parseCategory(args, 0)
		if err != nil {
			return err
		}
		t, err := parseTeam(args, 1)
		if err != nil {
			return err
		}
		e.Pass(c, t)
		return nil
	})
	r.handle("ordago", "ordago <a|b> (gana el juego)", func(args []string) error {
		t, err := parseTeam(args, 0)
		if err != nil {
			return err
		}
		e.AllIn(t)
		return nil
	})
	r.handle("jugada", "jugada <pares|juego> <a|b> <nada|pareja|medias|duples|punto|31|juego>", func(args []string) error {
		c, err := parseCategory(args, 0)
		if err != nil {
			return err
		}
		t, err := parseTeam(args, 1)
		if err != nil {
			return err
		}
		if len(args) < 3 {
			return errUsage
		}
		q, ok := qualityArgs[strings.ToLower(args[2])]
		if !ok {
			return errUsage
		}
		e.SetQuality(c, t, q)
		return nil
	})
	r.handle("mano", "mano (guarda y, si está terminada, empieza otra)", func([]string) error {
		return e.CommitRound(ctx)
	})
	r.handle("otra", "otra (nueva mano, descarta envites sin cobrar)", func([]string) error {
		e.NextRound()
		return nil
	})
	r.handle("nombre", "nombre <a|b> <nombre>", func(args []string) error {
		t, err := parseTeam(args, 0)
		if err != nil {
			return err
		}
		name, err := restArg(args, 1)
		if err != nil {
			return err
		}
		e.Rename(t, name)
		return nil
	})
	r.handle("deshacer", "deshacer", func([]string) error {
		if !e.Undo() {
			r.println("nada que deshacer")
		}
		return nil
	})
	r.handle("nuevo", "nuevo [30|40]", func(args []string) error {
		m := e.State()
		target := m.Target()
		if len(args) > 0 {
			v, err := intArg(args, 0)
			if err != nil {
				return err
			}
			target = v
		}
		e.NewMatch(m.Team(mus.TeamA).Name, m.Team(mus.TeamB).Name, target)
		return nil
	})
	r.handle("descartar", "descartar (borra la partida guardada)", func([]string) error {
		return e.Discard(ctx)
	})
	r.handle("historial", "historial", func([]string) error {
		r.println(seriesText(e.Series(), map[int]string{
			mus.SeriesTeamA: e.State().Team(mus.TeamA).Name,
			mus.SeriesTeamB: e.State().Team(mus.TeamB).Name,
		}))
		return nil
	})
	return r
}
