package item

import (
	"errors"
	"testing"
)

func testItems() []Item {
	return []Item{
		{Name: "Sword", Image: "sword.png", Rarity: Common, Category: Weapon, Bonus: 15, Price: 6},
		{Name: "Sword", Image: "sword.png", Rarity: Legendary, Category: Weapon, Bonus: 30, Price: 50},
		{Name: "Armor", Image: "armor.png", Rarity: Rare, Category: Armor, Bonus: 25, Price: 25},
		{Name: "Potion", Image: "potion.png", Rarity: Epic, Category: Consumable, Bonus: 45, Price: 20},
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	src := testItems()
	cat, err := NewCatalog(src)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	src[0].Bonus = 999

	got, ok := cat.Find("Sword", Common)
	if !ok {
		t.Fatal("expected common Sword in catalog")
	}
	if got.Bonus != 15 {
		t.Errorf("catalog entry changed with caller slice: bonus = %d; want 15", got.Bonus)
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	cat, _ := NewCatalog(testItems())
	items := cat.Items()
	items[0].Price = 0

	if got, _ := cat.Find("Sword", Common); got.Price != 6 {
		t.Errorf("mutating Items() result leaked into catalog: price = %d", got.Price)
	}
	if cat.Len() != 4 {
		t.Errorf("Len = %d; want 4", cat.Len())
	}
}

func TestNewCatalogRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		item Item
	}{
		{"empty name", Item{Rarity: Common, Category: Weapon}},
		{"bad rarity", Item{Name: "x", Rarity: "mythic", Category: Weapon}},
		{"bad category", Item{Name: "x", Rarity: Common, Category: "Ring"}},
		{"negative bonus", Item{Name: "x", Rarity: Common, Category: Armor, Bonus: -1}},
		{"negative price", Item{Name: "x", Rarity: Common, Category: Armor, Price: -3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog([]Item{tc.item})
			if !errors.Is(err, ErrInvalidItem) {
				t.Errorf("err = %v; want ErrInvalidItem", err)
			}
		})
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	items := append(testItems(), testItems()[0])
	if _, err := NewCatalog(items); !errors.Is(err, ErrInvalidItem) {
		t.Errorf("err = %v; want duplicate rejection", err)
	}
}

func TestFilterByRarity(t *testing.T) {
	cat, _ := NewCatalog(testItems())
	got := cat.FilterByRarity(Legendary)
	if len(got) != 1 || got[0].Name != "Sword" {
		t.Errorf("FilterByRarity(legendary) = %+v", got)
	}
	if got := cat.FilterByRarity(Common); len(got) != 1 {
		t.Errorf("FilterByRarity(common) returned %d items; want 1", len(got))
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	cat, _ := NewCatalog(testItems())
	if got := cat.Search("sWo"); len(got) != 2 {
		t.Errorf("Search(sWo) returned %d items; want 2", len(got))
	}
	if got := cat.Search("dragon"); len(got) != 0 {
		t.Errorf("Search(dragon) returned %d items; want 0", len(got))
	}
	if got := cat.Search(""); len(got) != 4 {
		t.Errorf("empty Search returned %d items; want all 4", len(got))
	}
}

func TestFindMissing(t *testing.T) {
	cat, _ := NewCatalog(testItems())
	if _, ok := cat.Find("Potion", Common); ok {
		t.Error("Find should miss when only the rarity differs")
	}
}

func TestCategoryStatLabel(t *testing.T) {
	cases := map[Category]string{
		Weapon:         "ATTACK",
		Armor:          "DEFENSE",
		Consumable:     "HEALTH",
		Category("??"): "BONUS",
	}
	for c, want := range cases {
		if got := c.StatLabel(); got != want {
			t.Errorf("%q.StatLabel() = %q; want %q", c, got, want)
		}
	}
}
