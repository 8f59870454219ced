package tally

import (
	"github.com/psucodervn/anotador/internal/model"
)

// Player is one row of the score sheet. Bid and Outcome are used in Pocha,
// Pending in the generic game; all three are zeroed when a round settles.
type Player struct {
	ID      int
	Name    string
	Score   int
	Bid     int
	Outcome int
	Pending int
}

// PochaDelta is the score change for one player at the end of a Pocha round:
// 10 plus 5 per trick for meeting the bid exactly, minus 5 per trick of
// difference otherwise. Duplica doubles either result.
func PochaDelta(bid, outcome int, duplica bool) int {
	var delta int
	if bid == outcome {
		delta = 10 + 5*bid
	} else {
		delta = -5 * abs(bid-outcome)
	}
	if duplica {
		delta *= 2
	}
	return delta
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (p Player) record(mode Mode) model.PlayerRecord {
	r := model.PlayerRecord{ID: p.ID, Name: p.Name, Score: p.Score}
	if mode == Pocha {
		r.PendingBid = model.IntPtr(p.Bid)
		r.PendingOutcome = model.IntPtr(p.Outcome)
	} else {
		r.Pending = model.IntPtr(p.Pending)
	}
	return r
}

func playerFromRecord(r model.PlayerRecord) Player {
	p := Player{ID: r.ID, Name: r.Name, Score: r.Score}
	if r.PendingBid != nil {
		p.Bid = max(*r.PendingBid, 0)
	}
	if r.PendingOutcome != nil {
		p.Outcome = max(*r.PendingOutcome, 0)
	}
	if r.Pending != nil {
		p.Pending = *r.Pending
	}
	return p
}
