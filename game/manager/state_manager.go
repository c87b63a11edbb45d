package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// GameRecord is the summary of one finished game
type GameRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Steps     int       `json:"steps"`
	Replans   int       `json:"replans"`
	Stalls    int       `json:"stalls"`
	Length    int       `json:"length"`
	Outcome   string    `json:"outcome"`
}

// Duration returns the wall time the game took
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

type GameStats struct {
	HighScore int          `json:"highScore"`
	Games     []GameRecord `json:"games"`
}

type StateManager struct {
	highScore int
	games     []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		games: make([]GameRecord, 0),
	}
}

// AddGame records a finished game and updates the high score
func (sm *StateManager) AddGame(record GameRecord) {
	sm.games = append(sm.games, record)
	if record.Score > sm.highScore {
		sm.highScore = record.Score
	}
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetRecords returns a copy of every recorded game
func (sm *StateManager) GetRecords() []GameRecord {
	out := make([]GameRecord, len(sm.games))
	copy(out, sm.games)
	return out
}

func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.games) == 0 {
		return 0
	}
	total := 0
	for _, g := range sm.games {
		total += g.Score
	}
	return float64(total) / float64(len(sm.games))
}

func (sm *StateManager) GetMedianScore() float64 {
	if len(sm.games) == 0 {
		return 0
	}
	scores := make([]int, len(sm.games))
	for i, g := range sm.games {
		scores[i] = g.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (sm *StateManager) SaveStats(filename string) error {
	stats := GameStats{
		HighScore: sm.highScore,
		Games:     sm.games,
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create stats directory: %w", err)
		}
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadStats replaces the in-memory history with the file contents
func (sm *StateManager) LoadStats(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("failed to parse stats: %w", err)
	}

	sm.highScore = stats.HighScore
	sm.games = stats.Games
	if sm.games == nil {
		sm.games = make([]GameRecord, 0)
	}
	return nil
}
