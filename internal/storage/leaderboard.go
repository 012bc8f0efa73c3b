package storage

import "fmt"

// DefaultTableSize is the number of entries on the cabinet's high-score table.
const DefaultTableSize = 4

// Leaderboard is one game's high-score table.
type Leaderboard struct {
	store  *Store
	gameID string
	size   int
}

// NewLeaderboard binds a store to a game. A size of zero or less uses
// DefaultTableSize.
func NewLeaderboard(store *Store, gameID string, size int) *Leaderboard {
	if size <= 0 {
		size = DefaultTableSize
	}
	return &Leaderboard{store: store, gameID: gameID, size: size}
}

// Size returns the number of entries on the table.
func (l *Leaderboard) Size() int {
	return l.size
}

// QueryRank returns the rank score would take, 1-based. Size()+1 means it
// does not qualify.
func (l *Leaderboard) QueryRank(score int) (int, error) {
	return l.store.Rank(l.gameID, score, l.size)
}

// Qualifies reports whether score makes the table.
func (l *Leaderboard) Qualifies(score int) (bool, error) {
	return l.store.IsHighScore(l.gameID, score, l.size)
}

// RecordScore stores a qualifying score under initials and returns the rank
// it took. Scores that do not qualify are not stored and return Size()+1.
func (l *Leaderboard) RecordScore(initials string, score int) (int, error) {
	rank, err := l.QueryRank(score)
	if err != nil {
		return 0, err
	}
	if rank > l.size {
		return rank, nil
	}
	if _, err := l.store.SaveScore(l.gameID, initials, score); err != nil {
		return 0, fmt.Errorf("storage: cannot record %s score: %w", l.gameID, err)
	}
	return rank, nil
}

// Entries returns the table, best first.
func (l *Leaderboard) Entries() ([]ScoreEntry, error) {
	return l.store.TopScores(l.gameID, l.size)
}
