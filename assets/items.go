package assets

import "kingdom-quest/internal/item"

// DefaultItems is the market stock used when no game data file is given.
var DefaultItems = []item.Item{
	{Name: "Sword", Image: "assets/images/sword.png", Rarity: item.Common, Category: item.Weapon, Bonus: 15, Price: 6},
	{Name: "Sword", Image: "assets/images/sword.png", Rarity: item.Legendary, Category: item.Weapon, Bonus: 30, Price: 50},
	{Name: "Armor", Image: "assets/images/armor.png", Rarity: item.Common, Category: item.Armor, Bonus: 10, Price: 8},
	{Name: "Armor", Image: "assets/images/armor.png", Rarity: item.Rare, Category: item.Armor, Bonus: 25, Price: 25},
	{Name: "Potion", Image: "assets/images/potion.png", Rarity: item.Common, Category: item.Consumable, Bonus: 20, Price: 3},
	{Name: "Potion", Image: "assets/images/potion.png", Rarity: item.Epic, Category: item.Consumable, Bonus: 45, Price: 20},
}
