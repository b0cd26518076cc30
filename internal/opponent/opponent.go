// Package opponent defines the computer-controlled combatants. A boss is an
// ordinary opponent that also carries a reward multiplier.
package opponent

import (
	"errors"
	"fmt"
	"math"
)

// DefaultBossMultiplier is used by boss entries that do not set one.
const DefaultBossMultiplier = 1.2

// ErrInvalidOpponent is wrapped by every Validate failure.
var ErrInvalidOpponent = errors.New("invalid opponent")

// Opponent is a plain value; copies share nothing. Multiplier only applies
// when Boss is set.
type Opponent struct {
	Name       string
	Avatar     string
	Attack     int
	Health     int
	Boss       bool
	Multiplier float64
}

// New returns a plain opponent.
func New(name, avatar string, attack, health int) Opponent {
	return Opponent{Name: name, Avatar: avatar, Attack: attack, Health: health}
}

// NewBoss returns an opponent whose defeat score is scaled by multiplier.
func NewBoss(name, avatar string, attack, health int, multiplier float64) Opponent {
	o := New(name, avatar, attack, health)
	o.Boss = true
	o.Multiplier = multiplier
	return o
}

// IsBoss reports whether the opponent carries a reward multiplier.
func (o Opponent) IsBoss() bool { return o.Boss }

// RewardMultiplier is the boss multiplier, or 1 for plain opponents.
func (o Opponent) RewardMultiplier() float64 {
	if !o.Boss {
		return 1
	}
	return o.Multiplier
}

// Validate checks stats and, for bosses, that the multiplier is a finite
// number of at least 1.
func (o Opponent) Validate() error {
	switch {
	case o.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidOpponent)
	case o.Attack < 0:
		return fmt.Errorf("%w: %s has negative attack %d", ErrInvalidOpponent, o.Name, o.Attack)
	case o.Health < 0:
		return fmt.Errorf("%w: %s has negative health %d", ErrInvalidOpponent, o.Name, o.Health)
	case o.Boss && (!(o.Multiplier >= 1) || math.IsInf(o.Multiplier, 0)):
		return fmt.Errorf("%w: %s has multiplier %v, want a finite value of at least 1", ErrInvalidOpponent, o.Name, o.Multiplier)
	}
	return nil
}
