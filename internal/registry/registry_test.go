package registry

import (
	"testing"

	"github.com/vovakirdan/tui-bandit/internal/core"
)

type stubGame struct {
	id    string
	seats int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

type stubMultiSeat struct {
	stubGame
}

func (g *stubMultiSeat) Seats() int { return g.seats }
func (g *stubMultiSeat) Results() []Result {
	return []Result{{Player: core.Player1}, {Player: core.Player2}}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_single", func() Game { return &stubGame{id: "stub_single"} })
	Register("stub_pair", func() Game { return &stubMultiSeat{stubGame{id: "stub_pair", seats: 2}} })

	if !Exists("stub_single") {
		t.Fatal("stub_single should be registered")
	}
	if Exists("stub_missing") {
		t.Error("stub_missing should not be registered")
	}

	g, err := Create("stub_pair")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_pair" {
		t.Errorf("ID() = %q", g.ID())
	}
	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}

	seats := map[string]int{}
	for _, info := range List() {
		seats[info.ID] = info.Seats
	}
	if seats["stub_single"] != 1 || seats["stub_pair"] != 2 {
		t.Errorf("seats = %v", seats)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
