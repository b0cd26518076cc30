// Package item defines purchasable items and the catalog they are sold from.
package item

import (
	"errors"
	"fmt"
)

// Rarity is the economic tier of an item. It never affects combat math.
type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Rarities lists every rarity from cheapest to most precious.
var Rarities = []Rarity{Common, Rare, Epic, Legendary}

// Valid reports whether r is one of the known rarities.
func (r Rarity) Valid() bool {
	switch r {
	case Common, Rare, Epic, Legendary:
		return true
	}
	return false
}

// Category decides which character stat an item augments.
type Category string

const (
	Weapon     Category = "Weapon"     // adds to attack
	Armor      Category = "Armor"      // adds to defense
	Consumable Category = "Consumable" // adds to max health
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case Weapon, Armor, Consumable:
		return true
	}
	return false
}

// StatLabel names the stat the category boosts, for display next to a bonus.
func (c Category) StatLabel() string {
	switch c {
	case Weapon:
		return "ATTACK"
	case Armor:
		return "DEFENSE"
	case Consumable:
		return "HEALTH"
	}
	return "BONUS"
}

// Item is a plain value struct. Copies share no state, so an owned copy can
// be changed without touching the catalog entry it came from.
type Item struct {
	Name     string   `yaml:"name" json:"name"`
	Image    string   `yaml:"image" json:"image"`
	Rarity   Rarity   `yaml:"rarity" json:"rarity"`
	Category Category `yaml:"category" json:"category"`
	Bonus    int      `yaml:"bonus" json:"bonus"`
	Price    int      `yaml:"price" json:"price"`
}

// ErrInvalidItem is wrapped by every Validate failure.
var ErrInvalidItem = errors.New("invalid item")

// Validate checks the item's fields.
func (i Item) Validate() error {
	switch {
	case i.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	case !i.Rarity.Valid():
		return fmt.Errorf("%w: %s has unknown rarity %q", ErrInvalidItem, i.Name, i.Rarity)
	case !i.Category.Valid():
		return fmt.Errorf("%w: %s has unknown category %q", ErrInvalidItem, i.Name, i.Category)
	case i.Bonus < 0:
		return fmt.Errorf("%w: %s has negative bonus %d", ErrInvalidItem, i.Name, i.Bonus)
	case i.Price < 0:
		return fmt.Errorf("%w: %s has negative price %d", ErrInvalidItem, i.Name, i.Price)
	}
	return nil
}

// Matches reports whether the item has exactly this name and rarity.
func (i Item) Matches(name string, rarity Rarity) bool {
	return i.Name == name && i.Rarity == rarity
}
