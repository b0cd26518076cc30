// Package game runs one player's kingdom-quest session on a tcell screen.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"kingdom-quest/assets"
	"kingdom-quest/internal/adventure"
	"kingdom-quest/internal/app"
	"kingdom-quest/internal/economy"
	"kingdom-quest/internal/item"
	"kingdom-quest/internal/ranking"
	"kingdom-quest/internal/render"
)

// State tracks the main state machine.
type State uint8

const (
	StateBuild State = iota
	StateMarket
	StateRoster
	StateBattle
	StateFinal
	StateLeaderboard
	StateQuit
)

// Game is the top-level orchestrator for one player.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	app      *app.App
	name     string
	logger   *slog.Logger

	state   State
	back    State // where the leaderboard screen returns to
	message string

	build    render.BuildView
	adv      *adventure.Adventure
	filter   int
	selected int
	last     adventure.BattleSummary
	outcome  adventure.Outcome
	board    []ranking.Record
}

// New creates a Game for the named player on an initialised screen.
func New(screen tcell.Screen, a *app.App, name string) *Game {
	if name == "" {
		name = "Hunter"
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, a.Format),
		app:      a,
		name:     name,
		logger:   a.Logger.With("player", name),
	}
	g.resetForRun()
	return g
}

// State returns the screen currently shown.
func (g *Game) State() State { return g.state }

// resetForRun clears all per-run state in preparation for a fresh start.
func (g *Game) resetForRun() {
	g.state = StateBuild
	g.message = ""
	g.adv = nil
	g.filter = 0
	g.selected = 0
	g.last = adventure.BattleSummary{}
	g.outcome = adventure.Outcome{}
	g.build = render.BuildView{
		Name:       g.name,
		Archetypes: assets.Archetypes,
		Points:     g.app.Config.BuildPoints,
	}
}

// Run is the main loop. It returns when the player quits or the screen
// stops delivering events.
func (g *Game) Run(ctx context.Context) {
	defer g.screen.Fini()

	// Wake PollEvent when the session goes away.
	stop := context.AfterFunc(ctx, func() { _ = g.screen.PostEvent(tcell.NewEventInterrupt(nil)) })
	defer stop()

	for g.state != StateQuit {
		if ctx.Err() != nil {
			return
		}
		g.draw()
		switch ev := g.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			g.handleKey(ctx, ev)
		}
	}
}

func (g *Game) draw() {
	switch g.state {
	case StateBuild:
		v := g.build
		v.Message = g.message
		g.renderer.DrawBuild(v)
	case StateMarket:
		g.renderer.DrawMarket(render.MarketView{
			Character: g.adv.Character,
			Items:     g.marketItems(),
			Selected:  g.selected,
			Filter:    render.MarketFilters[g.filter],
			Message:   g.message,
		})
	case StateRoster:
		g.renderer.DrawRoster(render.RosterView{
			Character: g.adv.Character,
			Roster:    g.adv.Roster,
			Rewards:   g.adv.Rewards,
		})
	case StateBattle:
		v := render.BattleView{
			Character: g.adv.Character,
			Summary:   g.last,
			Index:     len(g.adv.Summaries()),
			Total:     len(g.adv.Roster),
		}
		if next, ok := g.adv.Upcoming(); ok {
			v.Next = &next
		}
		g.renderer.DrawBattle(v)
	case StateFinal:
		g.renderer.DrawFinal(render.FinalView{
			Character:  g.adv.Character,
			Outcome:    g.outcome,
			Summaries:  g.adv.Summaries(),
			Victorious: g.adv.Victorious(),
			Message:    g.message,
		})
	case StateLeaderboard:
		g.renderer.DrawLeaderboard(render.LeaderboardView{Records: g.board, Message: g.message})
	}
}

// handleKey advances the state machine by one key press.
func (g *Game) handleKey(ctx context.Context, ev *tcell.EventKey) {
	action := keyToAction(ev)
	if action == ActionQuit {
		g.state = StateQuit
		return
	}
	switch g.state {
	case StateBuild:
		g.handleBuild(ctx, ev, action)
	case StateMarket:
		g.handleMarket(action)
	case StateRoster:
		g.handleRoster(action)
	case StateBattle:
		if action == ActionConfirm {
			g.advance(ctx)
		}
	case StateFinal:
		switch action {
		case ActionAgain:
			g.resetForRun()
		case ActionLeaderboard:
			g.showLeaderboard(ctx)
		case ActionBack:
			g.state = StateQuit
		}
	case StateLeaderboard:
		g.state = g.back
		g.message = ""
	}
}

func (g *Game) handleMarket(action Action) {
	items := g.marketItems()
	switch action {
	case ActionUp:
		if len(items) > 0 {
			g.selected = (g.selected - 1 + len(items)) % len(items)
		}
	case ActionDown:
		if len(items) > 0 {
			g.selected = (g.selected + 1) % len(items)
		}
	case ActionFilter:
		g.filter = (g.filter + 1) % len(render.MarketFilters)
		g.selected = 0
	case ActionBuy, ActionConfirm:
		if it, ok := g.selectedItem(items); ok {
			g.buy(it)
		}
	case ActionSell:
		if it, ok := g.selectedItem(items); ok {
			g.sell(it)
		}
	case ActionContinue:
		g.message = ""
		g.state = StateRoster
	}
}

func (g *Game) handleRoster(action Action) {
	switch action {
	case ActionConfirm:
		if err := g.adv.StartBattles(); err != nil {
			g.logger.Error("start battles", "error", err)
			return
		}
		g.fight()
	case ActionBack:
		g.state = StateMarket
	}
}

func (g *Game) marketItems() []item.Item {
	catalog := g.adv.Market.Catalog()
	if f := render.MarketFilters[g.filter]; f != "" {
		return catalog.FilterByRarity(f)
	}
	return catalog.Items()
}

func (g *Game) selectedItem(items []item.Item) (item.Item, bool) {
	if g.selected < 0 || g.selected >= len(items) {
		return item.Item{}, false
	}
	return items[g.selected], true
}

func (g *Game) buy(it item.Item) {
	_, err := g.adv.Buy(it.Name, it.Rarity)
	switch {
	case errors.Is(err, economy.ErrInsufficientFunds):
		g.message = fmt.Sprintf("Not enough gold for the %s %s (%s).", it.Rarity, it.Name, g.app.Format.Price(it.Price))
	case err != nil:
		g.message = err.Error()
	default:
		g.message = fmt.Sprintf("Bought the %s %s for %s.", it.Rarity, it.Name, g.app.Format.Price(it.Price))
	}
}

func (g *Game) sell(it item.Item) {
	refund, err := g.adv.Sell(it.Name, it.Rarity)
	switch {
	case errors.Is(err, adventure.ErrNotOwned):
		g.message = fmt.Sprintf("You have no %s %s to sell.", it.Rarity, it.Name)
	case err != nil:
		g.message = err.Error()
	default:
		g.message = fmt.Sprintf("Sold the %s %s for %s.", it.Rarity, it.Name, g.app.Format.Price(refund))
	}
}

func (g *Game) fight() {
	s, err := g.adv.NextBattle()
	if err != nil {
		g.logger.Error("next battle", "error", err)
		return
	}
	g.last = s
	g.state = StateBattle
}

// advance moves from a battle result to the next battle or the final screen.
func (g *Game) advance(ctx context.Context) {
	if g.adv.Phase() != adventure.Finished {
		g.fight()
		return
	}
	g.finish(ctx)
}

// finish records the adventure. A leaderboard failure is shown and logged
// but the final screen is still reached.
func (g *Game) finish(ctx context.Context) {
	c := g.adv.Character
	out, err := g.adv.Finish(ctx)
	if err != nil {
		g.logger.Warn("leaderboard not updated", "error", err)
		g.message = "The scribes lost your record: " + err.Error()
		out = adventure.Outcome{
			Record: g.app.Leaderboard.NewRecord(c.Name, c.Score, c.Currency),
			Rank:   g.adv.Tiers.Classify(c.Score),
		}
	}
	g.outcome = out
	saveRunLog(g.app.RunLogPath(), newRunLog(g.adv, out), g.logger)
	g.state = StateFinal
}

func (g *Game) showLeaderboard(ctx context.Context) {
	records, err := g.app.Leaderboard.Load(ctx)
	g.message = ""
	if err != nil {
		g.logger.Warn("load leaderboard", "error", err)
		g.message = "The hall of heroes is closed: " + err.Error()
	}
	g.board = records
	g.back = g.state
	g.state = StateLeaderboard
}
