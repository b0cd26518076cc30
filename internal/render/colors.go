package render

import (
	"github.com/gdamore/tcell/v2"

	"kingdom-quest/internal/item"
	"kingdom-quest/internal/ranking"
)

var (
	styleTitle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(180, 100, 255)).Bold(true)
	styleNormal    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHighlight = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(180, 100, 255))
	styleStat      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255))
	styleGold      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleGood      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad       = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleMessage   = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
)

// rarityColors tint item names by rarity.
var rarityColors = map[item.Rarity]tcell.Color{
	item.Common:    tcell.ColorSilver,
	item.Rare:      tcell.NewRGBColor(80, 160, 255),
	item.Epic:      tcell.NewRGBColor(190, 90, 255),
	item.Legendary: tcell.NewRGBColor(255, 170, 0),
}

// RarityStyle returns the style an item of rarity r is listed with.
func RarityStyle(r item.Rarity) tcell.Style {
	if c, ok := rarityColors[r]; ok {
		return tcell.StyleDefault.Foreground(c)
	}
	return styleNormal
}

// RankStyle returns the style a rank label is drawn with.
func RankStyle(r ranking.Rank) tcell.Style {
	switch r {
	case ranking.Legend:
		return styleGold.Bold(true)
	case ranking.Veteran:
		return styleGood.Bold(true)
	}
	return styleStat
}

// healthStyle shades a health bar by the fraction remaining.
func healthStyle(cur, total int) tcell.Style {
	switch {
	case total <= 0 || cur*4 <= total:
		return styleBad
	case cur*2 <= total:
		return styleGold
	}
	return styleGood
}
