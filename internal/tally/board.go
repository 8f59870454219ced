package tally

import (
	"bytes"
	"fmt"

	"github.com/psucodervn/anotador/internal/stringer"
)

func (t Tally) Board() string {
	w := len("Jugador")
	for _, p := range t.players {
		w = max(w, len([]rune(p.Name)))
	}

	bf := bytes.NewBuffer(nil)
	if t.mode == Pocha {
		bf.WriteString(fmt.Sprintf("Ronda %d, fase: %s", t.rounds+1, t.phase))
		if t.duplica {
			bf.WriteString(" (duplica)")
		}
		bf.WriteString(fmt.Sprintf("\n%3s  %s  %6s  %7s  %8s\n", "id", stringer.Pad("Jugador", w), "total", "apuesta", "victoria"))
		for _, p := range t.players {
			bf.WriteString(fmt.Sprintf("%3d  %s  %6s  %7d  %8d\n", p.ID, stringer.Pad(p.Name, w), stringer.FormatScore(p.Score), p.Bid, p.Outcome))
		}
		if t.phase == PhaseOutcome && t.ApuestasEqualVictorias() {
			bf.WriteString("aviso: las apuestas suman lo mismo que las victorias\n")
		}
		return bf.String()
	}

	bf.WriteString(fmt.Sprintf("Ronda %d", t.rounds+1))
	bf.WriteString(fmt.Sprintf("\n%3s  %s  %6s  %7s\n", "id", stringer.Pad("Jugador", w), "total", "ronda"))
	for _, p := range t.players {
		bf.WriteString(fmt.Sprintf("%3d  %s  %6s  %7s\n", p.ID, stringer.Pad(p.Name, w), stringer.FormatScore(p.Score), stringer.FormatDelta(p.Pending)))
	}
	return bf.String()
}
