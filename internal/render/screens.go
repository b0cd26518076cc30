package render

import (
	"fmt"

	"kingdom-quest/assets"
	"kingdom-quest/internal/adventure"
	"kingdom-quest/internal/character"
	"kingdom-quest/internal/item"
	"kingdom-quest/internal/opponent"
	"kingdom-quest/internal/ranking"
)

// BuildView is the state of the character-build screen. Selected equal to
// len(Archetypes) means the custom allocation row.
type BuildView struct {
	Name       string
	Archetypes []character.Archetype
	Selected   int
	Custom     character.Build
	CustomStat int
	Points     int
	Message    string
}

// CustomStats labels the rows of the custom allocation, in order.
var CustomStats = [3]string{"Attack", "Defense", "Health"}

// DrawBuild renders the character-build screen.
func (r *Renderer) DrawBuild(v BuildView) {
	r.begin("Choose how to spend your training, " + v.Name)
	y := 4
	for i, a := range v.Archetypes {
		style, prefix := styleNormal, "  "
		if i == v.Selected {
			style, prefix = styleHighlight, "► "
		}
		Text(r.screen, 2, y, fmt.Sprintf("%s[%d] %s", prefix, i+1, a.Title), style)
		Text(r.screen, 4, y+1, fmt.Sprintf("  \"%s\"", a.Lore), styleDim)
		Text(r.screen, 4, y+2, "  "+buildStats(a.Build), styleStat)
		y += 4
	}

	style, prefix := styleNormal, "  "
	if v.Selected == len(v.Archetypes) {
		style, prefix = styleHighlight, "► "
	}
	left := v.Points - v.Custom.Spent()
	Text(r.screen, 2, y, fmt.Sprintf("%s[%d] Custom  (%d of %d points left)", prefix, len(v.Archetypes)+1, left, v.Points), style)
	values := [3]int{v.Custom.Attack, v.Custom.Defense, v.Custom.Health}
	for i, label := range CustomStats {
		row := fmt.Sprintf("%-8s %3d", label, values[i])
		rowStyle := styleStat
		if v.Selected == len(v.Archetypes) && i == v.CustomStat {
			rowStyle = styleGold.Bold(true)
			row = "◄ " + row + " ►"
		} else {
			row = "  " + row
		}
		Text(r.screen, 6, y+1+i, row, rowStyle)
	}

	r.end("[j/k] Navigate  [h/l] Adjust custom  [Enter] Confirm  [t] Top scores  [q] Quit", v.Message)
}

func buildStats(b character.Build) string {
	return fmt.Sprintf("ATK +%-2d DEF +%-2d HP %d", b.Attack, b.Defense,
		character.DefaultHealth+b.Health*character.HealthPerPoint)
}

// MarketFilters are cycled through on the market screen. The empty rarity
// means no filter.
var MarketFilters = append([]item.Rarity{""}, item.Rarities...)

// MarketView is the state of the market screen.
type MarketView struct {
	Character *character.Character
	Items     []item.Item
	Selected  int
	Filter    item.Rarity
	Message   string
}

// DrawMarket renders the catalog on the left and the inventory on the right.
func (r *Renderer) DrawMarket(v MarketView) {
	filter := "all"
	if v.Filter != "" {
		filter = string(v.Filter)
	}
	r.begin("Market  (showing " + filter + ")")
	r.statusLine(3, v.Character)

	Text(r.screen, 2, 5, "FOR SALE", styleTitle)
	for i, it := range v.Items {
		prefix := "  "
		style := RarityStyle(it.Rarity)
		if i == v.Selected {
			prefix = "► "
			style = styleHighlight
		}
		line := fmt.Sprintf("%s%s %-7s %-9s +%-3d %-7s %s", prefix, assets.Glyph(it.Name), it.Name,
			it.Rarity, it.Bonus, it.Category.StatLabel(), r.format.Price(it.Price))
		Text(r.screen, 2, 6+i, Fit(line, 50), style)
	}
	if len(v.Items) == 0 {
		Text(r.screen, 4, 6, "Nothing of that rarity today.", styleDim)
	}

	Text(r.screen, 54, 5, "YOUR BAG", styleTitle)
	owned := v.Character.Items()
	for i, it := range owned {
		line := fmt.Sprintf("%s %s (%s)", assets.Glyph(it.Name), it.Name, it.Rarity)
		Text(r.screen, 54, 6+i, Fit(line, 25), RarityStyle(it.Rarity))
	}
	if len(owned) == 0 {
		Text(r.screen, 54, 6, "empty", styleDim)
	}

	r.end("[j/k] Select  [b/Enter] Buy  [s] Sell  [f] Filter  [c] Continue to battle", v.Message)
}

// RosterView is the state of the pre-battle roster screen.
type RosterView struct {
	Character *character.Character
	Roster    []opponent.Opponent
	Rewards   map[string]int
}

// DrawRoster lists the opponents in the order they will be fought.
func (r *Renderer) DrawRoster(v RosterView) {
	r.begin("The road ahead")
	r.statusLine(3, v.Character)
	for i, o := range v.Roster {
		y := 5 + i*3
		name := fmt.Sprintf("%d. %s %s", i+1, assets.Glyph(o.Name), o.Name)
		style := styleNormal.Bold(true)
		if o.IsBoss() {
			name += fmt.Sprintf("  BOSS x%.1f", o.RewardMultiplier())
			style = styleBad.Bold(true)
		}
		Text(r.screen, 2, y, name, style)
		detail := fmt.Sprintf("ATK %d  HP %d  reward %s", o.Attack, o.Health, r.format.Price(v.Rewards[o.Name]))
		Text(r.screen, 7, y+1, detail, styleStat)
	}
	r.end("[Enter] Fight  [Esc] Back to market", "Once you set out, the market closes.")
}

// BattleView is the state after one battle has been resolved.
type BattleView struct {
	Character *character.Character
	Summary   adventure.BattleSummary
	Index     int
	Total     int
	Next      *opponent.Opponent
}

// DrawBattle shows how a battle ended and what comes next.
func (r *Renderer) DrawBattle(v BattleView) {
	s := v.Summary
	res := s.Result
	r.begin(fmt.Sprintf("Battle %d of %d", v.Index, v.Total))
	r.statusLine(3, v.Character)

	Text(r.screen, 2, 5, fmt.Sprintf("%s %s  vs  %s %s", avatar(v.Character), v.Character.Name,
		assets.Glyph(s.Opponent.Name), s.Opponent.Name), styleNormal.Bold(true))

	r.healthRow(7, v.Character.Name, res.CharacterHealthFinal, res.CharacterHealthInitial)
	r.healthRow(8, s.Opponent.Name, res.OpponentHealthFinal, res.OpponentHealthInitial)

	Text(r.screen, 2, 10, fmt.Sprintf("Turns: %d", res.Turns), styleDim)
	if res.CharacterWon() {
		Text(r.screen, 2, 12, "VICTORY", styleGood.Bold(true))
		Text(r.screen, 2, 13, fmt.Sprintf("+%s score   +%s", r.format.Number(res.ScoreAwarded), r.format.Price(s.Reward)), styleGold)
	} else {
		Text(r.screen, 2, 12, "DEFEAT", styleBad.Bold(true))
		if res.Capped {
			Text(r.screen, 2, 13, "Neither side could finish the fight. The day goes to your foe.", styleDim)
		}
	}

	hint := "[Enter] See the outcome"
	if v.Next != nil {
		Text(r.screen, 2, 15, fmt.Sprintf("Next: %s %s", assets.Glyph(v.Next.Name), v.Next.Name), styleStat)
		hint = "[Enter] Next battle"
	}
	r.end(hint, "")
}

func (r *Renderer) healthRow(y int, name string, cur, total int) {
	x := Text(r.screen, 2, y, Pad(name, 14), styleNormal)
	x = Text(r.screen, x, y, Bar(cur, total, 30), healthStyle(cur, total))
	Text(r.screen, x+1, y, fmt.Sprintf("%d/%d", cur, total), styleDim)
}

// FinalView is the end-of-adventure state.
type FinalView struct {
	Character  *character.Character
	Outcome    adventure.Outcome
	Summaries  []adventure.BattleSummary
	Victorious bool
	Message    string
}

// DrawFinal shows the rank earned, the battle log and the leaderboard.
func (r *Renderer) DrawFinal(v FinalView) {
	title := "The kingdom remembers you"
	if !v.Victorious {
		title = "Your quest ends here"
	}
	r.begin(title)
	r.statusLine(3, v.Character)

	x := Text(r.screen, 2, 5, "Rank: ", styleNormal)
	Text(r.screen, x, 5, string(v.Outcome.Rank), RankStyle(v.Outcome.Rank))

	for i, s := range v.Summaries {
		verdict, style := "lost", styleBad
		if s.Result.CharacterWon() {
			verdict, style = "won", styleGood
		}
		line := fmt.Sprintf("%s %-8s %-4s in %d turns  +%d", assets.Glyph(s.Opponent.Name), s.Opponent.Name,
			verdict, s.Result.Turns, s.Result.ScoreAwarded)
		Text(r.screen, 2, 7+i, line, style)
	}

	r.leaderboardTable(42, 5, v.Outcome.Board, v.Outcome.Record)
	r.end("[r] Play again  [q] Quit", v.Message)
}

// LeaderboardView is the state of the stand-alone leaderboard screen.
type LeaderboardView struct {
	Records []ranking.Record
	Message string
}

// DrawLeaderboard shows the current leaderboard.
func (r *Renderer) DrawLeaderboard(v LeaderboardView) {
	r.begin("Hall of heroes")
	r.leaderboardTable(2, 4, v.Records, ranking.Record{})
	r.end("[any key] Back", v.Message)
}

func (r *Renderer) leaderboardTable(x, y int, records []ranking.Record, highlight ranking.Record) {
	Text(r.screen, x, y, fmt.Sprintf("%s  %-3s %-12s %7s %8s  %s", assets.GlyphTrophy, "#", "Name", "Score", "Gold", "Date"), styleTitle)
	for i, rec := range records {
		style := styleNormal
		if highlight != (ranking.Record{}) && rec == highlight {
			style = styleHighlight
		}
		line := fmt.Sprintf("    %-3d %-12s %7s %8s  %s", i+1, Fit(rec.Name, 12), r.format.Number(rec.Score),
			r.format.Price(rec.Currency), rec.Date)
		Text(r.screen, x, y+1+i, line, style)
	}
}
