package game

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"kingdom-quest/internal/adventure"
)

// RunLog records one finished adventure.
type RunLog struct {
	Timestamp time.Time   `json:"timestamp"`
	Player    string      `json:"player"`
	Attack    int         `json:"attack"`
	Defense   int         `json:"defense"`
	Health    int         `json:"health"`
	Items     []string    `json:"items"`
	Battles   []BattleLog `json:"battles"`
	Victory   bool        `json:"victory"`
	Score     int         `json:"score"`
	Currency  int         `json:"currency"`
	Rank      string      `json:"rank"`
	Position  int         `json:"position"`
}

// BattleLog is one battle inside a RunLog.
type BattleLog struct {
	Opponent string `json:"opponent"`
	Won      bool   `json:"won"`
	Turns    int    `json:"turns"`
	Score    int    `json:"score"`
	Reward   int    `json:"reward"`
	Capped   bool   `json:"capped,omitempty"`
}

func newRunLog(adv *adventure.Adventure, out adventure.Outcome) RunLog {
	c := adv.Character
	rl := RunLog{
		Timestamp: time.Now().UTC(),
		Player:    c.Name,
		Attack:    c.EffectiveAttack(),
		Defense:   c.EffectiveDefense(),
		Health:    c.EffectiveMaxHealth(),
		Victory:   adv.Victorious(),
		Score:     c.Score,
		Currency:  c.Currency,
		Rank:      string(out.Rank),
		Position:  out.Position,
	}
	for _, it := range c.Items() {
		rl.Items = append(rl.Items, string(it.Rarity)+" "+it.Name)
	}
	for _, s := range adv.Summaries() {
		rl.Battles = append(rl.Battles, BattleLog{
			Opponent: s.Opponent.Name,
			Won:      s.Result.CharacterWon(),
			Turns:    s.Result.Turns,
			Score:    s.Result.ScoreAwarded,
			Reward:   s.Reward,
			Capped:   s.Result.Capped,
		})
	}
	return rl
}

// saveRunLog appends the completed run as a single JSON line to path.
// Errors are logged but never end the game.
func saveRunLog(path string, rl RunLog, logger *slog.Logger) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("run log: cannot create data dir", "error", err)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("run log: cannot open file", "error", err)
		return
	}
	defer f.Close()
	data, err := json.Marshal(rl)
	if err != nil {
		logger.Warn("run log: cannot marshal JSON", "error", err)
		return
	}
	f.Write(append(data, '\n')) //nolint:errcheck
}
