package play

import (
	"bytes"
	"fmt"

	"github.com/psucodervn/anotador/internal/history"
	"github.com/psucodervn/anotador/internal/stringer"
)

func seriesText(s history.Series, names map[int]string) string {
	if s.Rounds() == 0 {
		return "(sin puntos todavía)"
	}
	bf := bytes.NewBuffer(nil)
	for _, id := range s.IDs() {
		bf.WriteString(fmt.Sprintf("%s:", stringer.Pad(names[id], 12)))
		for _, p := range s.Line(id) {
			bf.WriteString(" " + stringer.FormatScore(p.Score))
		}
		bf.WriteString("\n")
	}
	if id, ok := s.Leader(); ok {
		bf.WriteString("va ganando " + names[id])
	}
	return bf.String()
}
