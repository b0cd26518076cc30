package game

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"kingdom-quest/internal/app"
	"kingdom-quest/internal/config"
	"kingdom-quest/internal/item"
	"kingdom-quest/internal/ranking"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen() tcell.SimulationScreen {
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	_ = ss.Init()
	return ss
}

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	seed := int64(99)
	cfg := config.Config{
		DataDir:          t.TempDir(),
		Store:            config.StoreMemory,
		LeaderboardKey:   "leaderboard",
		Locale:           "es",
		RankThreshold:    ranking.DefaultThreshold,
		StartingCurrency: 60,
		BuildPoints:      20,
		TurnCap:          1000,
		Seed:             &seed,
	}
	a, err := app.New(cfg, app.NewLogger(io.Discard, slog.LevelError))
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	ss := newSimScreen()
	t.Cleanup(ss.Fini)
	return New(ss, newTestApp(t), "Aldric")
}

func press(g *Game, r rune) {
	g.handleKey(context.Background(), tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	g.draw()
}

func pressKey(g *Game, k tcell.Key) {
	g.handleKey(context.Background(), tcell.NewEventKey(k, 0, tcell.ModNone))
	g.draw()
}

func TestQuickSelectArchetypeOpensMarket(t *testing.T) {
	g := newTestGame(t)
	press(g, '1')
	if g.State() != StateMarket {
		t.Fatalf("state = %v; want market", g.State())
	}
	c := g.adv.Character
	if c.Name != "Aldric" || c.Currency != 60 || c.BaseAttack != g.build.Archetypes[0].Build.Attack {
		t.Errorf("unexpected character %+v", c)
	}
}

func TestCustomBuild(t *testing.T) {
	g := newTestGame(t)
	press(g, '4') // custom row, not confirmed yet
	if g.State() != StateBuild {
		t.Fatalf("state = %v; want build", g.State())
	}
	for range 5 {
		press(g, 'l')
	}
	press(g, 'j')
	press(g, 'l')
	press(g, 'h')
	press(g, 'h') // already at zero
	pressKey(g, tcell.KeyEnter)

	if g.State() != StateMarket {
		t.Fatalf("state = %v; want market (%s)", g.State(), g.message)
	}
	if c := g.adv.Character; c.BaseAttack != 5 || c.BaseDefense != 0 {
		t.Errorf("ATK/DEF = %d/%d; want 5/0", c.BaseAttack, c.BaseDefense)
	}
}

func TestCustomBuildRespectsBudget(t *testing.T) {
	g := newTestGame(t)
	press(g, '4')
	for range 30 {
		press(g, 'l')
	}
	if g.build.Custom.Spent() != 20 {
		t.Errorf("spent = %d; want the 20 point budget", g.build.Custom.Spent())
	}
}

func TestMarketBuySellAndFilter(t *testing.T) {
	g := newTestGame(t)
	press(g, '1')

	press(g, 'b') // first catalog entry: common sword at 6
	c := g.adv.Character
	if c.Currency != 54 || c.ItemCount() != 1 {
		t.Fatalf("after buy: currency %d, items %d", c.Currency, c.ItemCount())
	}
	press(g, 's')
	if c.Currency != 58 || c.ItemCount() != 0 {
		t.Fatalf("after sell: currency %d, items %d", c.Currency, c.ItemCount())
	}
	press(g, 's')
	if !strings.Contains(g.message, "no common Sword") {
		t.Errorf("message = %q", g.message)
	}

	press(g, 'j')               // legendary sword at 50
	pressKey(g, tcell.KeyEnter) // 58 -> 8
	press(g, 'b')
	if !strings.Contains(g.message, "Not enough gold") {
		t.Errorf("message = %q", g.message)
	}

	press(g, 'f')
	for _, it := range g.marketItems() {
		if it.Rarity != item.Common {
			t.Errorf("filter let through %v", it)
		}
	}
	if g.selected != 0 {
		t.Errorf("filter should reset the cursor")
	}
}

func TestFullRunReachesFinalAndLogs(t *testing.T) {
	g := newTestGame(t)
	press(g, '1')
	press(g, 'c')
	if g.State() != StateRoster {
		t.Fatalf("state = %v; want roster", g.State())
	}
	pressKey(g, tcell.KeyEscape)
	if g.State() != StateMarket {
		t.Fatalf("Esc on roster should go back to market")
	}
	press(g, 'c')
	pressKey(g, tcell.KeyEnter)

	for i := 0; g.State() == StateBattle && i < 10; i++ {
		pressKey(g, tcell.KeyEnter)
	}
	if g.State() != StateFinal {
		t.Fatalf("state = %v; want final", g.State())
	}
	if g.outcome.Position != 1 {
		t.Errorf("first run should top an empty board, got position %d", g.outcome.Position)
	}

	data, err := os.ReadFile(g.app.RunLogPath())
	if err != nil {
		t.Fatalf("run log not written: %v", err)
	}
	if !strings.Contains(string(data), `"player":"Aldric"`) || !strings.HasSuffix(string(data), "\n") {
		t.Errorf("run log = %q", data)
	}

	press(g, 't')
	if g.State() != StateLeaderboard || len(g.board) != 1 {
		t.Fatalf("leaderboard state %v with %d records", g.State(), len(g.board))
	}
	press(g, 'x')
	if g.State() != StateFinal {
		t.Errorf("leaderboard should return to final, got %v", g.State())
	}

	press(g, 'r')
	if g.State() != StateBuild || g.adv != nil {
		t.Errorf("play again should reset to build")
	}
}

func TestLeaderboardFromBuildShowsSeed(t *testing.T) {
	g := newTestGame(t)
	press(g, 't')
	if g.State() != StateLeaderboard || len(g.board) != ranking.MaxEntries {
		t.Fatalf("state %v, %d records", g.State(), len(g.board))
	}
	pressKey(g, tcell.KeyEnter)
	if g.State() != StateBuild {
		t.Errorf("state = %v; want build", g.State())
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	ss := newSimScreen()
	g := New(ss, newTestApp(t), "")
	if g.name != "Hunter" {
		t.Errorf("default name = %q", g.name)
	}
	ss.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	ss.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	g.Run(context.Background())
	if g.State() != StateQuit {
		t.Errorf("state = %v; want quit", g.State())
	}
}

func TestRunLogAppends(t *testing.T) {
	path := t.TempDir() + "/nested/runs.jsonl"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for i := range 3 {
		saveRunLog(path, RunLog{Player: "Aldric", Score: i}, logger)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	// Each call appends one JSON line; count the newlines.
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}

func TestKeyToAction(t *testing.T) {
	cases := map[rune]Action{'k': ActionUp, 'J': ActionDown, 'b': ActionBuy, 's': ActionSell, 'q': ActionQuit, 'z': ActionNone}
	for r, want := range cases {
		if got := keyToAction(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)); got != want {
			t.Errorf("keyToAction(%q) = %v; want %v", r, got, want)
		}
	}
	if got := keyToAction(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)); got != ActionConfirm {
		t.Errorf("Enter = %v; want confirm", got)
	}
}
