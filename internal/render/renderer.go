// Package render draws the kingdom-quest screens onto a tcell screen.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"kingdom-quest/assets"
	"kingdom-quest/internal/character"
	"kingdom-quest/internal/locale"
)

// Renderer draws whole frames. Every Draw* call clears and shows the screen.
type Renderer struct {
	screen tcell.Screen
	format *locale.Formatter
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, format *locale.Formatter) *Renderer {
	if format == nil {
		format = locale.New("")
	}
	return &Renderer{screen: screen, format: format}
}

func (r *Renderer) begin(title string) {
	r.screen.Clear()
	Center(r.screen, 0, "⚔️  KINGDOM QUEST  ⚔️", styleTitle)
	Center(r.screen, 1, title, styleDim)
	HLine(r.screen, 2, styleDim)
}

func (r *Renderer) end(hints, message string) {
	_, h := r.screen.Size()
	HLine(r.screen, h-3, styleDim)
	if message != "" {
		Text(r.screen, 1, h-2, message, styleMessage)
	}
	Text(r.screen, 1, h-1, hints, styleDim)
	r.screen.Show()
}

// statusLine summarises the character's effective stats and wallet.
func (r *Renderer) statusLine(y int, c *character.Character) {
	x := Text(r.screen, 1, y, fmt.Sprintf("%s %s", avatar(c), c.Name), styleNormal.Bold(true))
	stats := fmt.Sprintf("   ATK %d  DEF %d  HP %d", c.EffectiveAttack(), c.EffectiveDefense(), c.EffectiveMaxHealth())
	x = Text(r.screen, x, y, stats, styleStat)
	x = Text(r.screen, x, y, fmt.Sprintf("   %s %s", assets.GlyphCurrency, r.format.Price(c.Currency)), styleGold)
	Text(r.screen, x, y, fmt.Sprintf("   %s %s", assets.GlyphTrophy, r.format.Number(c.Score)), styleGood)
}

// avatar is the emoji drawn for c. Image paths fall back to the player glyph.
func avatar(c *character.Character) string {
	if c.Avatar == "" || strings.ContainsRune(c.Avatar, '/') {
		return assets.GlyphPlayer
	}
	return c.Avatar
}
