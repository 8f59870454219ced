// Package history records each participant's score after every scoring event,
// in order, for the results chart.
package history

import "sort"

type Point struct {
	Round int
	Score int
}

// Series is an append-only set of per-participant score lines. The zero
// value is empty and ready to use. Append returns a new Series and never
// modifies the receiver, so earlier values stay valid as undo snapshots.
type Series struct {
	lines map[int][]Point
	round int
}

// Append records one scoring event: every participant in scores gets a point
// at the next round number.
func (s Series) Append(scores map[int]int) Series {
	next := Series{
		lines: make(map[int][]Point, len(s.lines)+len(scores)),
		round: s.round + 1,
	}
	for id, pts := range s.lines {
		next.lines[id] = pts[:len(pts):len(pts)]
	}
	for id, score := range scores {
		next.lines[id] = append(next.lines[id], Point{Round: next.round, Score: score})
	}
	return next
}

func (s Series) Rounds() int {
	return s.round
}

// Line returns a copy of the points recorded for id.
func (s Series) Line(id int) []Point {
	return append([]Point(nil), s.lines[id]...)
}

func (s Series) IDs() []int {
	ids := make([]int, 0, len(s.lines))
	for id := range s.lines {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s Series) Last(id int) (Point, bool) {
	pts := s.lines[id]
	if len(pts) == 0 {
		return Point{}, false
	}
	return pts[len(pts)-1], true
}

// Leader returns the id with the highest latest score. Ties go to the lowest id.
func (s Series) Leader() (int, bool) {
	best, found := 0, false
	var bestScore int
	for _, id := range s.IDs() {
		p, ok := s.Last(id)
		if !ok {
			continue
		}
		if !found || p.Score > bestScore {
			best, bestScore, found = id, p.Score, true
		}
	}
	return best, found
}
