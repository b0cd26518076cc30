// Package economy applies purchase and sale transactions between a
// character's wallet and a caller-owned item catalog.
package economy

import (
	"errors"
	"fmt"

	"kingdom-quest/internal/character"
	"kingdom-quest/internal/item"
)

var (
	// ErrInsufficientFunds means the character cannot afford the item.
	// Nothing was changed; the caller may show it and let the player retry.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnknownItem means the catalog has no entry with that name and rarity.
	ErrUnknownItem = errors.New("unknown item")
)

// Refund rate applied when selling, in tenths of the price.
const refundTenths = 8

// SellRefund is floor(price * 0.8).
func SellRefund(price int) int {
	if price <= 0 {
		return 0
	}
	return price * refundTenths / 10
}

// Market sells the entries of one catalog.
type Market struct {
	catalog *item.Catalog
}

// NewMarket returns a market over catalog.
func NewMarket(catalog *item.Catalog) *Market {
	return &Market{catalog: catalog}
}

// Catalog returns the catalog the market sells from.
func (m *Market) Catalog() *item.Catalog { return m.catalog }

// Buy debits the item's price and then hands the character its own copy.
// If the debit is declined, the purchase is rejected as a whole.
func (m *Market) Buy(c *character.Character, name string, rarity item.Rarity) (item.Item, error) {
	it, ok := m.catalog.Find(name, rarity)
	if !ok {
		return item.Item{}, fmt.Errorf("buy %s (%s): %w", name, rarity, ErrUnknownItem)
	}
	if !c.Debit(it.Price) {
		return item.Item{}, fmt.Errorf("buy %s (%s) for %d with %d: %w", name, rarity, it.Price, c.Currency, ErrInsufficientFunds)
	}
	c.AddItem(it)
	return it, nil
}

// Sell credits SellRefund of the catalog price and removes one matching
// owned item. Selling something the character does not own still credits;
// callers are expected to guard with Owns.
func (m *Market) Sell(c *character.Character, name string, rarity item.Rarity) (int, error) {
	it, ok := m.catalog.Find(name, rarity)
	if !ok {
		return 0, fmt.Errorf("sell %s (%s): %w", name, rarity, ErrUnknownItem)
	}
	refund := SellRefund(it.Price)
	c.Credit(refund)
	c.RemoveItem(name, rarity)
	return refund, nil
}

// Owns reports whether c holds an item with this name and rarity.
func Owns(c *character.Character, name string, rarity item.Rarity) bool {
	return c.HasItem(name, rarity)
}
