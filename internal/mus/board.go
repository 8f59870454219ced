package mus

import (
	"bytes"
	"fmt"

	"github.com/psucodervn/anotador/internal/stringer"
)

func (m Match) Board() string {
	a, b := m.Team(TeamA), m.Team(TeamB)
	w := max(len([]rune(a.Name)), len([]rune(b.Name)), len("Equipo"))

	bf := bytes.NewBuffer(nil)
	bf.WriteString(fmt.Sprintf("%s  puntos  juegos   (a %d)\n", stringer.Pad("Equipo", w), m.target))
	for _, ts := range []TeamScore{a, b} {
		bf.WriteString(fmt.Sprintf("%s  %6s  %6d\n", stringer.Pad(ts.Name, w), stringer.FormatScore(ts.Score), ts.GamesWon))
	}
	bf.WriteString("\nMano:")
	active, ok := m.round.Active()
	for i, bet := range m.round.bets {
		c := Category(i)
		marker := " "
		if ok && c == active {
			marker = ">"
		}
		bf.WriteString(fmt.Sprintf("\n %s %-6s envite %2d  %s", marker, c, bet.Stake, bet.State))
		if bet.Winner.Valid() {
			bf.WriteString(" para " + m.Team(bet.Winner).Name)
		}
		if c.HasQuality() {
			qa, qb := m.round.Quality(c, TeamA), m.round.Quality(c, TeamB)
			if qa != QualityNone || qb != QualityNone {
				bf.WriteString(fmt.Sprintf("  [%s / %s]", qa, qb))
			}
		}
	}
	if !ok {
		bf.WriteString("\n (mano terminada)")
	}
	return bf.String()
}
