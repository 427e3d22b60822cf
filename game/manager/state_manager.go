package manager

import (
	"fmt"
	"time"
)

// SessionStats is the in-memory tally of one run. Nothing here is persisted.
type SessionStats struct {
	Ticks         int           `json:"ticks"`
	Resets        int           `json:"resets"`
	FoodEaten     int           `json:"foodEaten"`
	BestLength    int           `json:"bestLength"`
	LastCollision CollisionType `json:"lastCollision"`
}

type StateManager struct {
	sessionID string
	startTime time.Time
	now       func() time.Time
	stats     SessionStats
}

func NewStateManager(sessionID string) *StateManager {
	return &StateManager{
		sessionID: sessionID,
		startTime: time.Now(),
		now:       time.Now,
		stats:     SessionStats{BestLength: 1},
	}
}

func (sm *StateManager) RecordTick() {
	sm.stats.Ticks++
}

func (sm *StateManager) RecordFood(length int) {
	sm.stats.FoodEaten++
	sm.stats.LastCollision = FoodCollision
	if length > sm.stats.BestLength {
		sm.stats.BestLength = length
	}
}

func (sm *StateManager) RecordReset(length int) {
	sm.stats.Resets++
	sm.stats.LastCollision = SelfCollision
	if length > sm.stats.BestLength {
		sm.stats.BestLength = length
	}
}

func (sm *StateManager) Stats() SessionStats {
	return sm.stats
}

func (sm *StateManager) Elapsed() time.Duration {
	return sm.now().Sub(sm.startTime)
}

// Summary is the one-line report logged at shutdown.
func (sm *StateManager) Summary() string {
	return fmt.Sprintf("session %s: %d ticks in %s, %d food eaten, %d resets, best length %d",
		sm.sessionID, sm.stats.Ticks, sm.Elapsed().Round(time.Second),
		sm.stats.FoodEaten, sm.stats.Resets, sm.stats.BestLength)
}
