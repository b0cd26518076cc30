package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Text draws text starting at column x and returns the column after it.
// Zero-width runes such as emoji variation selectors ride along with the
// rune before them.
func Text(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	runes := []rune(text)
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runewidth.RuneWidth(runes[j]) == 0 {
			j++
		}
		var comb []rune
		if j > i+1 {
			comb = runes[i+1 : j]
		}
		s.SetContent(x, y, runes[i], comb, style)
		x += max(1, runewidth.StringWidth(string(runes[i:j])))
		i = j
	}
	return x
}

// Center draws text horizontally centred on row y.
func Center(s tcell.Screen, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	Text(s, max(0, (w-Width(text))/2), y, text, style)
}

// Width is the number of terminal columns text occupies.
func Width(text string) int { return runewidth.StringWidth(text) }

// Fit truncates text to at most w columns, marking the cut with an ellipsis.
func Fit(text string, w int) string { return runewidth.Truncate(text, w, "…") }

// Pad right-fills text with spaces to exactly w columns.
func Pad(text string, w int) string { return runewidth.FillRight(Fit(text, w), w) }

// HLine draws a full-width separator on row y.
func HLine(s tcell.Screen, y int, style tcell.Style) {
	w, _ := s.Size()
	for x := 0; x < w; x++ {
		s.SetContent(x, y, '─', nil, style)
	}
}

// Bar renders cur/total as a bar of width cells.
func Bar(cur, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if total > 0 && cur > 0 {
		filled = min(width, (cur*width+total-1)/total)
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
