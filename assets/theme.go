package assets

import "kingdom-quest/internal/character"

// Emoji glyphs drawn by the terminal front-end.
const (
	GlyphPlayer   = "🏹"
	GlyphGoblin   = "👺"
	GlyphOrc      = "👹"
	GlyphDragon   = "🐉"
	GlyphSword    = "🗡️"
	GlyphArmor    = "🛡️"
	GlyphPotion   = "🧪"
	GlyphUnknown  = "❔"
	GlyphCurrency = "💰"
	GlyphTrophy   = "🏆"
)

var glyphs = map[string]string{
	"Hunter": GlyphPlayer,
	"Goblin": GlyphGoblin,
	"Orc":    GlyphOrc,
	"Dragon": GlyphDragon,
	"Sword":  GlyphSword,
	"Armor":  GlyphArmor,
	"Potion": GlyphPotion,
}

// Glyph returns the emoji drawn for a named item or combatant.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}
	return GlyphUnknown
}

// Archetypes are the pre-made builds offered before the adventure. Each one
// spends exactly character.DefaultPoints.
var Archetypes = []character.Archetype{
	{
		Key:   "warrior",
		Title: "Warrior",
		Lore:  "Hits first, hits hard, asks questions never",
		Build: character.Build{Attack: 12, Defense: 4, Health: 4},
	},
	{
		Key:   "guardian",
		Title: "Guardian",
		Lore:  "A wall of steel that the goblins learned to walk around",
		Build: character.Build{Attack: 5, Defense: 12, Health: 3},
	},
	{
		Key:   "survivor",
		Title: "Survivor",
		Lore:  "Has outlived three dragons and most of their hunters",
		Build: character.Build{Attack: 6, Defense: 4, Health: 10},
	},
}
