package mus

import (
	"testing"
)

func TestRound_IncrementStake(t *testing.T) {
	tests := []struct {
		name   string
		deltas []int
		want   int
	}{
		{name: "accumulates", deltas: []int{2, 2, 5}, want: 9},
		{name: "negative correction", deltas: []int{5, -2}, want: 3},
		{name: "never negative", deltas: []int{2, -10}, want: 0},
		{name: "capped", deltas: []int{60, 60}, want: MaxStake},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Round
			for _, d := range tt.deltas {
				r = r.IncrementStake(Chica, d)
			}
			if got := r.Bet(Chica); got.Stake != tt.want || got.Winner != Undetermined || got.State != Open {
				t.Errorf("Bet(Chica) = %+v, want stake %v still open", got, tt.want)
			}
		})
	}
}

func TestRound_ResolveStake(t *testing.T) {
	r := Round{}.IncrementStake(Grande, 3).IncrementStake(Grande, 4)
	r, paid, payee := r.ResolveStake(Grande, TeamB)
	if paid != 7 || payee != TeamB {
		t.Errorf("ResolveStake() paid = %v to %v, want 7 to B", paid, payee)
	}
	if got := r.Bet(Grande); got != (Bet{Winner: TeamB, State: Resolved}) {
		t.Errorf("Bet(Grande) = %+v", got)
	}

	again, paid, payee := r.ResolveStake(Grande, TeamA)
	if paid != 0 || payee != Undetermined || again != r {
		t.Errorf("second ResolveStake() = %v, %v, want no-op", paid, payee)
	}
	if got := again.IncrementStake(Grande, 5).Bet(Grande).Stake; got != 0 {
		t.Errorf("IncrementStake() on resolved = %v, want 0", got)
	}
}

func TestRound_ResolveUndeterminedOpenIsNoop(t *testing.T) {
	r := Round{}.IncrementStake(Pares, 2)
	next, paid, payee := r.ResolveStake(Pares, Undetermined)
	if next != r || paid != 0 || payee != Undetermined {
		t.Errorf("ResolveStake(Undetermined) changed an open bet")
	}
}

func TestRound_AssignWinnerNoBet(t *testing.T) {
	r := Round{}.AssignWinnerNoBet(Juego, TeamA)
	if got := r.Bet(Juego); got.State != Pledged || got.Winner != TeamA || got.Stake != 0 {
		t.Fatalf("Bet(Juego) = %+v, want pledged to A", got)
	}

	// stake is entered after the winner was pledged
	r = r.IncrementStake(Juego, 2)
	r, paid, payee := r.ResolveStake(Juego, Undetermined)
	if paid != 2 || payee != TeamA {
		t.Errorf("ResolveStake() = %v to %v, want 2 to A", paid, payee)
	}

	staked := Round{}.IncrementStake(Chica, 1)
	if got := staked.AssignWinnerNoBet(Chica, TeamB).Bet(Chica); got.State != Open {
		t.Errorf("AssignWinnerNoBet() with stake = %+v, want unchanged", got)
	}
	if got := (Round{}).AssignWinnerNoBet(Chica, Undetermined).Bet(Chica); got.State != Open {
		t.Errorf("AssignWinnerNoBet(Undetermined) = %+v, want unchanged", got)
	}
}

func TestRound_Pass(t *testing.T) {
	tests := []struct {
		name     string
		stake    int
		wantPaid int
	}{
		{name: "nobody bet", stake: 0, wantPaid: PasoStake},
		{name: "stake on table", stake: 5, wantPaid: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Round{}.IncrementStake(Grande, tt.stake)
			_, paid, payee := r.Pass(Grande, TeamA)
			if paid != tt.wantPaid || payee != TeamA {
				t.Errorf("Pass() = %v to %v, want %v to A", paid, payee, tt.wantPaid)
			}
		})
	}
}

func TestRound_ActiveAndDone(t *testing.T) {
	var r Round
	for i := 0; i < NumCategories; i++ {
		c, ok := r.Active()
		if !ok || c != Category(i) {
			t.Fatalf("Active() = %v, %v, want %v", c, ok, Category(i))
		}
		if r.Done() {
			t.Fatalf("Done() = true after %d categories", i)
		}
		r, _, _ = r.Pass(c, TeamB)
	}
	if !r.Done() {
		t.Error("Done() = false after all categories resolved")
	}
	if _, ok := r.Active(); ok {
		t.Error("Active() ok on a done round")
	}
}

func TestRound_SetQuality(t *testing.T) {
	tests := []struct {
		name string
		c    Category
		q    Quality
		want Quality
	}{
		{name: "pares medias", c: Pares, q: Medias, want: Medias},
		{name: "juego la 31", c: Juego, q: Juego31, want: Juego31},
		{name: "pares rejects juego quality", c: Pares, q: Juego31, want: QualityNone},
		{name: "grande has no quality", c: Grande, q: Pareja, want: QualityNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Round{}.SetQuality(tt.c, TeamB, tt.q)
			if got := r.Quality(tt.c, TeamB); got != tt.want {
				t.Errorf("Quality() = %v, want %v", got, tt.want)
			}
			if got := r.Quality(tt.c, TeamA); got != QualityNone {
				t.Errorf("Quality() for other team = %v, want none", got)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	for i, name := range CategoryNames {
		if c, ok := ParseCategory(name); !ok || c != Category(i) {
			t.Errorf("ParseCategory(%q) = %v, %v", name, c, ok)
		}
	}
	if _, ok := ParseCategory("ordago"); ok {
		t.Error("ParseCategory(ordago) ok")
	}
}
