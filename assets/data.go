package assets

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"kingdom-quest/internal/item"
	"kingdom-quest/internal/opponent"
)

// GameData is everything an adventure is built from.
type GameData struct {
	Catalog *item.Catalog
	Roster  []opponent.Opponent
	Rewards map[string]int
}

// RewardFor returns the currency credited for beating the named opponent.
func (d GameData) RewardFor(name string) int { return d.Rewards[name] }

type opponentDef struct {
	Name       string   `yaml:"name"`
	Avatar     string   `yaml:"avatar"`
	Attack     int      `yaml:"attack"`
	Health     int      `yaml:"health"`
	Boss       bool     `yaml:"boss"`
	Multiplier *float64 `yaml:"multiplier"`
}

type dataFile struct {
	Items     []item.Item    `yaml:"items"`
	Opponents []opponentDef  `yaml:"opponents"`
	Rewards   map[string]int `yaml:"rewards"`
}

// Default returns the built-in game data.
func Default() (GameData, error) {
	return build(DefaultItems, DefaultRoster, DefaultRewards)
}

// LoadFile reads game data from a YAML file. Sections missing from the file
// keep their built-in defaults. An empty path returns Default.
func LoadFile(path string) (GameData, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return GameData{}, fmt.Errorf("read game data: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML game data.
func Parse(raw []byte) (GameData, error) {
	var f dataFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return GameData{}, fmt.Errorf("parse game data: %w", err)
	}

	items := DefaultItems
	if len(f.Items) > 0 {
		items = f.Items
	}
	roster := DefaultRoster
	if len(f.Opponents) > 0 {
		roster = make([]opponent.Opponent, 0, len(f.Opponents))
		for _, d := range f.Opponents {
			roster = append(roster, d.opponent())
		}
	}
	rewards := DefaultRewards
	if len(f.Rewards) > 0 {
		rewards = f.Rewards
	}
	return build(items, roster, rewards)
}

func (d opponentDef) opponent() opponent.Opponent {
	if d.Multiplier != nil {
		return opponent.NewBoss(d.Name, d.Avatar, d.Attack, d.Health, *d.Multiplier)
	}
	if d.Boss {
		return opponent.NewBoss(d.Name, d.Avatar, d.Attack, d.Health, opponent.DefaultBossMultiplier)
	}
	return opponent.New(d.Name, d.Avatar, d.Attack, d.Health)
}

func build(items []item.Item, roster []opponent.Opponent, rewards map[string]int) (GameData, error) {
	catalog, err := item.NewCatalog(items)
	if err != nil {
		return GameData{}, err
	}
	if len(roster) == 0 {
		return GameData{}, errors.New("game data: roster is empty")
	}
	seen := make(map[string]bool, len(roster))
	for _, o := range roster {
		if err := o.Validate(); err != nil {
			return GameData{}, err
		}
		if seen[o.Name] {
			return GameData{}, fmt.Errorf("%w: duplicate roster entry %s", opponent.ErrInvalidOpponent, o.Name)
		}
		seen[o.Name] = true
	}
	copied := make(map[string]int, len(rewards))
	for name, amount := range rewards {
		if amount < 0 {
			return GameData{}, fmt.Errorf("game data: negative reward %d for %s", amount, name)
		}
		copied[name] = amount
	}
	r := make([]opponent.Opponent, len(roster))
	copy(r, roster)
	return GameData{Catalog: catalog, Roster: r, Rewards: copied}, nil
}
