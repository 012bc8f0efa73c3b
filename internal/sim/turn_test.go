package sim

import (
	"testing"

	"github.com/vovakirdan/tui-bandit/internal/core"
)

func TestRosterSinglePlayer(t *testing.T) {
	r := NewRoster(1, 3, 0)
	if r.Player(core.Player2).Lives != 0 {
		t.Error("unseated player should have no lives")
	}

	for i := 2; i >= 1; i-- {
		res := r.EndTurn()
		if res.SessionOver || res.Next != core.Player1 || res.LivesLeft != i {
			t.Fatalf("EndTurn() = %+v, expected P1 to continue with %d lives", res, i)
		}
	}

	res := r.EndTurn()
	if !res.SessionOver || !r.Over() {
		t.Errorf("EndTurn() = %+v, expected session over", res)
	}
}

func TestRosterAlternates(t *testing.T) {
	r := NewRoster(2, 2, 0)

	want := []struct {
		ended, next core.PlayerID
		over        bool
	}{
		{core.Player1, core.Player2, false},
		{core.Player2, core.Player1, false},
		{core.Player1, core.Player2, false},
		{core.Player2, core.Player2, true},
	}

	for i, w := range want {
		res := r.EndTurn()
		if res.Ended != w.ended || res.SessionOver != w.over {
			t.Fatalf("turn %d: EndTurn() = %+v, expected ended=%v over=%v", i, res, w.ended, w.over)
		}
		if !w.over && res.Next != w.next {
			t.Errorf("turn %d: Next = %v, expected %v", i, res.Next, w.next)
		}
	}
}

func TestRosterSkipsExhaustedSeat(t *testing.T) {
	r := NewRoster(2, 1, 0)
	r.players[core.Player2].Lives = 3

	res := r.EndTurn()
	if res.Next != core.Player2 {
		t.Fatalf("Next = %v, expected P2", res.Next)
	}

	res = r.EndTurn()
	if res.SessionOver || res.Next != core.Player2 {
		t.Errorf("EndTurn() = %+v, expected P2 to drive again", res)
	}
	if r.Current() != core.Player2 {
		t.Errorf("Current() = %v, expected P2", r.Current())
	}
}

func TestRosterScoreAndStage(t *testing.T) {
	r := NewRoster(2, 3, 4)
	r.AddScore(12)
	r.SetStage(5)
	r.EndTurn()
	r.AddScore(7)

	p1 := r.Player(core.Player1)
	p2 := r.Player(core.Player2)
	if p1.Score != 12 || p1.Stage != 5 {
		t.Errorf("P1 = %+v, expected score 12 stage 5", p1)
	}
	if p2.Score != 7 || p2.Stage != 4 {
		t.Errorf("P2 = %+v, expected score 7 stage 4", p2)
	}
	if r.Seats() != 2 {
		t.Errorf("Seats() = %d, expected 2", r.Seats())
	}
}
