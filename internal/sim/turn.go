package sim

import "github.com/vovakirdan/tui-bandit/internal/core"

// PlayerState is a seat's progress through the session.
type PlayerState struct {
	Score int
	Lives int
	Stage int
}

// TurnResult describes an EndTurn call.
type TurnResult struct {
	Ended       core.PlayerID // seat whose turn ended
	Next        core.PlayerID // seat that drives next; meaningless once SessionOver
	LivesLeft   int           // lives the ended seat has left
	SessionOver bool
}

// Roster tracks whose turn it is and how many lives each seat has.
type Roster struct {
	players [core.MaxPlayers]PlayerState
	seats   int
	current core.PlayerID
	over    bool
}

// NewRoster seats players (1 or 2) with the given lives each, starting at
// stage. Unused seats have no lives.
func NewRoster(seats, lives, stage int) *Roster {
	seats = core.Clamp(seats, 1, core.MaxPlayers)
	r := &Roster{seats: seats}
	for i := 0; i < seats; i++ {
		r.players[i] = PlayerState{Lives: core.Max(lives, 1), Stage: core.Max(stage, 0)}
	}
	return r
}

// EndTurn takes a life from the current seat and hands the car to the next
// seat with lives, round-robin. The same seat keeps driving when it is the
// only one left. When no seat has lives the session is over.
func (r *Roster) EndTurn() TurnResult {
	ended := r.current
	p := &r.players[ended]
	if p.Lives > 0 {
		p.Lives--
	}

	res := TurnResult{Ended: ended, Next: ended, LivesLeft: p.Lives}
	for i := 1; i <= core.MaxPlayers; i++ {
		next := core.PlayerID((int(ended) + i) % core.MaxPlayers)
		if r.players[next].Lives > 0 {
			r.current = next
			res.Next = next
			return res
		}
	}

	r.over = true
	res.SessionOver = true
	return res
}

// AddScore credits points to the current seat.
func (r *Roster) AddScore(points int) {
	r.players[r.current].Score += points
}

// SetStage records the stage the current seat has reached.
func (r *Roster) SetStage(stage int) {
	r.players[r.current].Stage = stage
}

// Current returns the seat whose turn it is.
func (r *Roster) Current() core.PlayerID { return r.current }

// Active returns the current seat's state.
func (r *Roster) Active() PlayerState { return r.players[r.current] }

// Player returns a seat's state.
func (r *Roster) Player(id core.PlayerID) PlayerState {
	if id < 0 || int(id) >= core.MaxPlayers {
		return PlayerState{}
	}
	return r.players[id]
}

// Seats returns the number of seated players.
func (r *Roster) Seats() int { return r.seats }

// Over reports whether every seat has run out of lives.
func (r *Roster) Over() bool { return r.over }
