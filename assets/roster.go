package assets

import "kingdom-quest/internal/opponent"

// DefaultRoster is fought in order: a normal opponent, a stronger one, then the boss.
var DefaultRoster = []opponent.Opponent{
	opponent.New("Goblin", "assets/images/goblin.png", 15, 80),
	opponent.New("Orc", "assets/images/orc.png", 25, 120),
	opponent.NewBoss("Dragon", "assets/images/dragon.png", 40, 200, 1.5),
}

// DefaultRewards is the currency credited for defeating each roster opponent.
var DefaultRewards = map[string]int{
	"Goblin": 10,
	"Orc":    20,
	"Dragon": 50,
}
