// Package adventure runs one player's session: shop, fight the roster in
// order, then classify and record the final score.
package adventure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kingdom-quest/assets"
	"kingdom-quest/internal/character"
	"kingdom-quest/internal/combat"
	"kingdom-quest/internal/economy"
	"kingdom-quest/internal/item"
	"kingdom-quest/internal/opponent"
	"kingdom-quest/internal/ranking"
)

// Phase is the stage an adventure is in.
type Phase uint8

const (
	Shopping Phase = iota
	Battling
	Finished
)

func (p Phase) String() string {
	switch p {
	case Shopping:
		return "shopping"
	case Battling:
		return "battling"
	case Finished:
		return "finished"
	}
	return "unknown"
}

var (
	ErrWrongPhase      = errors.New("action not allowed in this phase")
	ErrNoMoreBattles   = errors.New("no more battles")
	ErrAlreadyRecorded = errors.New("adventure already recorded")
	ErrNotOwned        = errors.New("item not owned")
)

// BattleSummary is one fight as the player saw it.
type BattleSummary struct {
	Opponent opponent.Opponent
	Result   combat.Result
	Reward   int
}

// Outcome is the end-of-adventure result.
type Outcome struct {
	Record   ranking.Record
	Rank     ranking.Rank
	Board    []ranking.Record
	Position int
}

// Adventure is not safe for concurrent use; each player owns one.
type Adventure struct {
	Character   *character.Character
	Market      *economy.Market
	Roster      []opponent.Opponent
	Rewards     map[string]int
	Resolver    *combat.Resolver
	Leaderboard *ranking.Leaderboard
	Tiers       ranking.Tiers
	Logger      *slog.Logger

	phase     Phase
	next      int
	summaries []BattleSummary
	outcome   *Outcome
}

// New starts an adventure for c using the given game data.
func New(c *character.Character, data assets.GameData, resolver *combat.Resolver, board *ranking.Leaderboard, tiers ranking.Tiers, logger *slog.Logger) *Adventure {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adventure{
		Character:   c,
		Market:      economy.NewMarket(data.Catalog),
		Roster:      data.Roster,
		Rewards:     data.Rewards,
		Resolver:    resolver,
		Leaderboard: board,
		Tiers:       tiers,
		Logger:      logger.With("player", c.Name),
	}
}

// Phase returns the current phase.
func (a *Adventure) Phase() Phase { return a.phase }

// Buy purchases an item from the market.
func (a *Adventure) Buy(name string, rarity item.Rarity) (item.Item, error) {
	if a.phase != Shopping {
		return item.Item{}, fmt.Errorf("buy: %w", ErrWrongPhase)
	}
	it, err := a.Market.Buy(a.Character, name, rarity)
	if err != nil {
		return item.Item{}, err
	}
	a.Logger.Debug("item bought", "item", name, "rarity", rarity, "currency", a.Character.Currency)
	return it, nil
}

// Sell sells one owned item back to the market.
func (a *Adventure) Sell(name string, rarity item.Rarity) (int, error) {
	if a.phase != Shopping {
		return 0, fmt.Errorf("sell: %w", ErrWrongPhase)
	}
	if !economy.Owns(a.Character, name, rarity) {
		return 0, fmt.Errorf("sell %s (%s): %w", name, rarity, ErrNotOwned)
	}
	refund, err := a.Market.Sell(a.Character, name, rarity)
	if err != nil {
		return 0, err
	}
	a.Logger.Debug("item sold", "item", name, "rarity", rarity, "refund", refund)
	return refund, nil
}

// StartBattles closes the market.
func (a *Adventure) StartBattles() error {
	if a.phase != Shopping {
		return fmt.Errorf("start battles: %w", ErrWrongPhase)
	}
	a.phase = Battling
	a.Logger.Info("battles started", "attack", a.Character.EffectiveAttack(),
		"defense", a.Character.EffectiveDefense(), "health", a.Character.EffectiveMaxHealth())
	return nil
}

// Upcoming returns the next opponent, if any remain.
func (a *Adventure) Upcoming() (opponent.Opponent, bool) {
	if a.phase != Battling || a.next >= len(a.Roster) {
		return opponent.Opponent{}, false
	}
	return a.Roster[a.next], true
}

// NextBattle fights the next opponent in the roster. A loss, or beating the
// last opponent, moves the adventure to Finished.
func (a *Adventure) NextBattle() (BattleSummary, error) {
	if a.phase == Shopping {
		return BattleSummary{}, fmt.Errorf("next battle: %w", ErrWrongPhase)
	}
	if a.phase == Finished || a.next >= len(a.Roster) {
		return BattleSummary{}, ErrNoMoreBattles
	}
	o := a.Roster[a.next]
	a.next++

	res := a.Resolver.Resolve(a.Character, o)
	s := BattleSummary{Opponent: o, Result: res}
	if res.CharacterWon() {
		s.Reward = a.Rewards[o.Name]
		a.Character.Credit(s.Reward)
	}
	a.summaries = append(a.summaries, s)
	a.Logger.Info("battle resolved", "opponent", o.Name, "winner", res.Winner,
		"turns", res.Turns, "score", res.ScoreAwarded, "reward", s.Reward, "capped", res.Capped)

	if !res.CharacterWon() || a.next >= len(a.Roster) {
		a.phase = Finished
	}
	return s, nil
}

// Summaries returns the battles fought so far.
func (a *Adventure) Summaries() []BattleSummary {
	out := make([]BattleSummary, len(a.summaries))
	copy(out, a.summaries)
	return out
}

// Victorious reports whether every opponent in the roster was beaten.
func (a *Adventure) Victorious() bool {
	if len(a.summaries) != len(a.Roster) {
		return false
	}
	for _, s := range a.summaries {
		if !s.Result.CharacterWon() {
			return false
		}
	}
	return true
}

// Finish classifies the final score and records it on the leaderboard. It
// may be called once, after the battles are over.
func (a *Adventure) Finish(ctx context.Context) (Outcome, error) {
	if a.phase != Finished {
		return Outcome{}, fmt.Errorf("finish: %w", ErrWrongPhase)
	}
	if a.outcome != nil {
		return *a.outcome, ErrAlreadyRecorded
	}
	c := a.Character
	rec := a.Leaderboard.NewRecord(c.Name, c.Score, c.Currency)
	board, err := a.Leaderboard.Record(ctx, rec)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{
		Record:   rec,
		Rank:     a.Tiers.Classify(c.Score),
		Board:    board,
		Position: ranking.Position(board, rec),
	}
	a.outcome = &out
	a.Logger.Info("adventure finished", "score", c.Score, "rank", out.Rank, "position", out.Position)
	return out, nil
}
