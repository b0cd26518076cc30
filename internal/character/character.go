// Package character holds the player-controlled combatant: base stats,
// wallet, score and the items it owns.
package character

import "kingdom-quest/internal/item"

// Defaults applied by New when no option overrides them.
const (
	DefaultHealth = 100
	DefaultAvatar = "assets/images/player.png"
)

// Character is the player's combatant. Effective stats are derived from the
// base stats plus the bonuses of owned items.
type Character struct {
	Name        string
	Avatar      string
	Score       int
	Currency    int
	BaseHealth  int
	MaxHealth   int
	BaseAttack  int
	BaseDefense int

	items []item.Item
}

// Option customises a Character built by New.
type Option func(*Character)

// WithStats sets base attack, defense and health. MaxHealth follows health.
func WithStats(attack, defense, health int) Option {
	return func(c *Character) {
		c.BaseAttack = attack
		c.BaseDefense = defense
		c.BaseHealth = health
		c.MaxHealth = health
	}
}

// WithCurrency sets the starting wallet. Negative amounts are treated as zero.
func WithCurrency(amount int) Option {
	return func(c *Character) {
		c.Currency = max(0, amount)
	}
}

// New creates a character with DefaultHealth, no attack or defense and an
// empty wallet, then applies opts.
func New(name, avatar string, opts ...Option) *Character {
	if avatar == "" {
		avatar = DefaultAvatar
	}
	c := &Character{
		Name:       name,
		Avatar:     avatar,
		BaseHealth: DefaultHealth,
		MaxHealth:  DefaultHealth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// sumBonus adds the bonus of every owned item in the category.
func (c *Character) sumBonus(cat item.Category) int {
	total := 0
	for _, it := range c.items {
		if it.Category == cat {
			total += it.Bonus
		}
	}
	return total
}

// EffectiveAttack is BaseAttack plus every owned weapon's bonus.
func (c *Character) EffectiveAttack() int { return c.BaseAttack + c.sumBonus(item.Weapon) }

// EffectiveDefense is BaseDefense plus every owned armor's bonus.
func (c *Character) EffectiveDefense() int { return c.BaseDefense + c.sumBonus(item.Armor) }

// EffectiveMaxHealth is MaxHealth plus every owned consumable's bonus.
func (c *Character) EffectiveMaxHealth() int { return c.MaxHealth + c.HealthBonus() }

// HealthBonus is the extra health granted by owned consumables.
func (c *Character) HealthBonus() int { return c.sumBonus(item.Consumable) }

// AddScore adds amount to the score. Negative amounts are ignored.
func (c *Character) AddScore(amount int) {
	if amount > 0 {
		c.Score += amount
	}
}

// AddItem appends a copy of it to the owned items.
func (c *Character) AddItem(it item.Item) {
	c.items = append(c.items, it)
}

// RemoveItem drops the first owned item with this exact name and rarity.
// It reports whether anything was removed; a miss leaves the items untouched.
func (c *Character) RemoveItem(name string, rarity item.Rarity) bool {
	for i, it := range c.items {
		if it.Matches(name, rarity) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// HasItem reports whether an item with this name and rarity is owned.
func (c *Character) HasItem(name string, rarity item.Rarity) bool {
	for _, it := range c.items {
		if it.Matches(name, rarity) {
			return true
		}
	}
	return false
}

// Items returns a copy of the owned items in the order they were added.
func (c *Character) Items() []item.Item {
	out := make([]item.Item, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount returns how many items are owned.
func (c *Character) ItemCount() int { return len(c.items) }

// Credit adds amount to the wallet. Negative amounts are ignored.
func (c *Character) Credit(amount int) {
	if amount > 0 {
		c.Currency += amount
	}
}

// Debit takes amount from the wallet. It declines, changing nothing, when
// the wallet holds less than amount or amount is negative.
func (c *Character) Debit(amount int) bool {
	if amount < 0 || amount > c.Currency {
		return false
	}
	c.Currency -= amount
	return true
}
