package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"kingdom-quest/assets"
	"kingdom-quest/internal/adventure"
	"kingdom-quest/internal/character"
	"kingdom-quest/internal/combat"
	"kingdom-quest/internal/item"
	"kingdom-quest/internal/locale"
	"kingdom-quest/internal/ranking"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return ss
}

// rowText reads back the primary runes of row y.
func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestBar(t *testing.T) {
	cases := []struct {
		cur, total, width int
		want              string
	}{
		{10, 10, 4, "████"},
		{0, 10, 4, "░░░░"},
		{5, 10, 4, "██░░"},
		{1, 100, 4, "█░░░"}, // any health left shows
		{3, 0, 2, "░░"},
		{5, 10, 0, ""},
	}
	for _, tc := range cases {
		if got := Bar(tc.cur, tc.total, tc.width); got != tc.want {
			t.Errorf("Bar(%d, %d, %d) = %q; want %q", tc.cur, tc.total, tc.width, got, tc.want)
		}
	}
}

func TestFitAndPad(t *testing.T) {
	if got := Fit("Brienne of Tarth", 8); Width(got) > 8 || !strings.HasSuffix(got, "…") {
		t.Errorf("Fit = %q", got)
	}
	if got := Pad("Orc", 6); got != "Orc   " {
		t.Errorf("Pad = %q", got)
	}
	if Width("🐉") != 2 {
		t.Errorf("dragon should be two columns wide")
	}
}

func TestTextAdvancesByWidth(t *testing.T) {
	ss := newSimScreen(t)
	if next := Text(ss, 0, 0, "abc", tcell.StyleDefault); next != 3 {
		t.Errorf("next = %d; want 3", next)
	}
	if next := Text(ss, 0, 1, "🐉x", tcell.StyleDefault); next != 3 {
		t.Errorf("next after wide rune = %d; want 3", next)
	}
	if !strings.HasPrefix(rowText(ss, 0), "abc") {
		t.Errorf("row 0 = %q", rowText(ss, 0))
	}
}

func TestRankStyleDistinguishesTiers(t *testing.T) {
	if RankStyle(ranking.Veteran) == RankStyle(ranking.Novice) {
		t.Error("veteran and novice should look different")
	}
	if RarityStyle(item.Legendary) == RarityStyle(item.Common) {
		t.Error("legendary and common should look different")
	}
}

func hunter() *character.Character {
	c := character.New("Aldric", "", character.WithCurrency(60))
	c.AddItem(assets.DefaultItems[0])
	return c
}

func TestScreensDrawWithoutPanicking(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss, locale.New("es"))
	c := hunter()
	data, err := assets.Default()
	if err != nil {
		t.Fatal(err)
	}
	summary := adventure.BattleSummary{
		Opponent: data.Roster[0],
		Result: combat.Result{
			Winner: combat.WinnerCharacter, ScoreAwarded: 115, Turns: 4,
			CharacterHealthInitial: 100, CharacterHealthFinal: 40,
			OpponentHealthInitial: 80,
		},
		Reward: 10,
	}
	rec := ranking.Record{Name: "Aldric", Score: 115, Currency: 70, Date: "01/03/2026"}

	r.DrawBuild(BuildView{Name: "Aldric", Archetypes: assets.Archetypes, Selected: 3, Points: 20})
	r.DrawMarket(MarketView{Character: c, Items: data.Catalog.Items(), Selected: 1})
	if !strings.Contains(rowText(ss, 5), "FOR SALE") {
		t.Errorf("market header missing: %q", rowText(ss, 5))
	}
	r.DrawMarket(MarketView{Character: c, Filter: item.Epic})
	r.DrawRoster(RosterView{Character: c, Roster: data.Roster, Rewards: data.Rewards})
	r.DrawBattle(BattleView{Character: c, Summary: summary, Index: 1, Total: 3, Next: &data.Roster[1]})
	if !strings.Contains(rowText(ss, 12), "VICTORY") {
		t.Errorf("battle verdict missing: %q", rowText(ss, 12))
	}
	r.DrawFinal(FinalView{
		Character: c,
		Outcome:   adventure.Outcome{Record: rec, Rank: ranking.Novice, Board: []ranking.Record{rec}, Position: 1},
		Summaries: []adventure.BattleSummary{summary},
	})
	if !strings.Contains(rowText(ss, 5), "Novice") {
		t.Errorf("rank missing: %q", rowText(ss, 5))
	}
	r.DrawLeaderboard(LeaderboardView{Records: ranking.Seed()})
	if !strings.Contains(rowText(ss, 5), "Aldric") {
		t.Errorf("leaderboard first row = %q", rowText(ss, 5))
	}
}
