package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"kingdom-quest/internal/character"
	"kingdom-quest/internal/render"
)

// handleBuild moves the cursor over the archetypes and the custom row, and
// starts the adventure once a build is confirmed.
func (g *Game) handleBuild(ctx context.Context, ev *tcell.EventKey, action Action) {
	rows := len(g.build.Archetypes) + 1
	custom := g.build.Selected == len(g.build.Archetypes)

	if idx := quickSelect(ev); idx >= 0 && idx < rows {
		g.build.Selected = idx
		if idx < len(g.build.Archetypes) {
			g.confirmBuild()
		}
		return
	}

	switch action {
	case ActionUp:
		if custom && g.build.CustomStat > 0 {
			g.build.CustomStat--
			return
		}
		g.build.Selected = (g.build.Selected - 1 + rows) % rows
	case ActionDown:
		if custom && g.build.CustomStat < len(render.CustomStats)-1 {
			g.build.CustomStat++
			return
		}
		g.build.Selected = (g.build.Selected + 1) % rows
		g.build.CustomStat = 0
	case ActionLeft:
		if custom {
			g.adjustCustom(-1)
		}
	case ActionRight:
		if custom {
			g.adjustCustom(1)
		}
	case ActionConfirm:
		g.confirmBuild()
	case ActionLeaderboard:
		g.showLeaderboard(ctx)
	case ActionBack:
		g.state = StateQuit
	}
}

// adjustCustom changes the highlighted custom stat by delta, keeping it
// non-negative and within the point budget.
func (g *Game) adjustCustom(delta int) {
	b := &g.build.Custom
	stat := [...]*int{&b.Attack, &b.Defense, &b.Health}[g.build.CustomStat]
	next := *stat + delta
	if next < 0 || b.Spent()+delta > g.build.Points {
		return
	}
	*stat = next
	g.message = ""
}

// chosenBuild is the highlighted archetype's build, or the custom one.
func (g *Game) chosenBuild() character.Build {
	var b character.Build
	if g.build.Selected < len(g.build.Archetypes) {
		b = g.build.Archetypes[g.build.Selected].Build
	} else {
		b = g.build.Custom
	}
	b.Name = g.name
	return b
}

func (g *Game) confirmBuild() {
	c, err := g.app.NewCharacter(g.chosenBuild())
	if err != nil {
		g.message = err.Error()
		return
	}
	adv, err := g.app.NewAdventure(c)
	if err != nil {
		g.logger.Error("new adventure", "error", err)
		g.message = err.Error()
		return
	}
	g.adv = adv
	g.message = "Welcome to the market. Spend wisely."
	g.state = StateMarket
}
