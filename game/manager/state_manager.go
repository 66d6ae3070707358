package manager

import (
	"time"
)

// SessionRecord summarises one finished session.
type SessionRecord struct {
	ID        string
	Score     int
	Length    int
	Ticks     int64
	StartTime time.Time
	EndTime   time.Time
}

// Duration returns how long the session ran.
func (r SessionRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the results of every session played by this process.
// Nothing is written to disk.
type StateManager struct {
	highScore int
	history   []SessionRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]SessionRecord, 0),
	}
}

// Record adds a finished session and updates the high score.
func (sm *StateManager) Record(rec SessionRecord) {
	if rec.Score > sm.highScore {
		sm.highScore = rec.Score
	}
	sm.history = append(sm.history, rec)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetScoreHistory returns the finished sessions, oldest first.
func (sm *StateManager) GetScoreHistory() []SessionRecord {
	history := make([]SessionRecord, len(sm.history))
	copy(history, sm.history)
	return history
}

func (sm *StateManager) GetGamesPlayed() int {
	return len(sm.history)
}

// GetAverageScore returns the mean score over all finished sessions.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}

	total := 0
	for _, rec := range sm.history {
		total += rec.Score
	}
	return float64(total) / float64(len(sm.history))
}
