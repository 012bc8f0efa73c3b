package core

import "fmt"

// PlayerID identifies a seat in a hot-seat session.
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
)

// MaxPlayers is the number of seats a session supports.
const MaxPlayers = 2

// String returns the display name used on the HUD.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return fmt.Sprintf("P%d", int(p)+1)
	}
}

// Word returns the spelled-out seat number ("ONE", "TWO").
func (p PlayerID) Word() string {
	switch p {
	case Player1:
		return "ONE"
	case Player2:
		return "TWO"
	default:
		return p.String()
	}
}
