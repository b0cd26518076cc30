package character

import (
	"errors"
	"fmt"
)

// Stat point costs for the character-build step.
const (
	HealthPerPoint = 5
	DefaultPoints  = 20
)

// ErrInvalidBuild is returned when a build spends points it does not have.
var ErrInvalidBuild = errors.New("invalid build")

// Build is a one-time allocation of stat points made before the adventure.
// Each attack or defense point adds 1; each health point adds HealthPerPoint.
type Build struct {
	Name    string
	Avatar  string
	Attack  int
	Defense int
	Health  int
}

// Spent returns the number of points the build allocates.
func (b Build) Spent() int { return b.Attack + b.Defense + b.Health }

// Validate checks the allocation against a point budget.
func (b Build) Validate(points int) error {
	if b.Attack < 0 || b.Defense < 0 || b.Health < 0 {
		return fmt.Errorf("%w: allocations must not be negative", ErrInvalidBuild)
	}
	if b.Spent() > points {
		return fmt.Errorf("%w: %d points allocated, only %d available", ErrInvalidBuild, b.Spent(), points)
	}
	return nil
}

// FromBuild creates a character from a validated build.
func FromBuild(b Build, points int, opts ...Option) (*Character, error) {
	if err := b.Validate(points); err != nil {
		return nil, err
	}
	health := DefaultHealth + b.Health*HealthPerPoint
	all := append([]Option{WithStats(b.Attack, b.Defense, health)}, opts...)
	return New(b.Name, b.Avatar, all...), nil
}

// Archetype is a named, pre-made build offered on the build screen.
type Archetype struct {
	Key   string
	Title string
	Lore  string
	Build Build
}
