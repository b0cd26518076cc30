// Package combat runs the turn loop between a character and an opponent.
package combat

import (
	"math"

	"kingdom-quest/internal/character"
	"kingdom-quest/internal/opponent"
)

// BaseScore is awarded for every victory before the opponent's attack and
// any boss multiplier are added in.
const BaseScore = 100

// DefaultTurnCap bounds the loop when neither side can hurt the other.
const DefaultTurnCap = 1000

// Per-turn random damage spreads: character rolls 0–4, opponent rolls 0–2.
const (
	characterRoll = 5
	opponentRoll  = 3
)

// Rand is the uniform integer source used for damage rolls. *rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Winner identifies the surviving side.
type Winner uint8

const (
	WinnerCharacter Winner = iota + 1
	WinnerOpponent
)

func (w Winner) String() string {
	switch w {
	case WinnerCharacter:
		return "character"
	case WinnerOpponent:
		return "opponent"
	}
	return "none"
}

// Result is produced once per Resolve call and never changed afterwards.
type Result struct {
	Winner                 Winner
	ScoreAwarded           int
	CharacterHealthFinal   int
	OpponentHealthFinal    int
	CharacterHealthInitial int
	OpponentHealthInitial  int
	Turns                  int
	Capped                 bool // the turn cap ended the fight; the opponent wins
}

// CharacterWon reports whether the character survived.
func (r Result) CharacterWon() bool { return r.Winner == WinnerCharacter }

// CharacterHealthPercent is the character's remaining health, 0–100.
func (r Result) CharacterHealthPercent() int {
	return percent(r.CharacterHealthFinal, r.CharacterHealthInitial)
}

// OpponentHealthPercent is the opponent's remaining health, 0–100.
func (r Result) OpponentHealthPercent() int {
	return percent(r.OpponentHealthFinal, r.OpponentHealthInitial)
}

func percent(cur, total int) int {
	if total <= 0 {
		return 0
	}
	return cur * 100 / total
}

// Resolver fights battles using one random source.
type Resolver struct {
	rng     Rand
	turnCap int
}

// NewResolver returns a resolver. A turnCap ≤ 0 selects DefaultTurnCap.
func NewResolver(rng Rand, turnCap int) *Resolver {
	if turnCap <= 0 {
		turnCap = DefaultTurnCap
	}
	return &Resolver{rng: rng, turnCap: turnCap}
}

// ScoreFor is the score a victory over o is worth:
// floor((BaseScore + attack) * multiplier).
func ScoreFor(o opponent.Opponent) int {
	base := BaseScore + o.Attack
	if !o.IsBoss() {
		return base
	}
	m := o.RewardMultiplier()
	if !(m >= 1) || math.IsInf(m, 0) {
		// Validate rejects these; an unvalidated boss scores as a plain opponent.
		return base
	}
	return int(math.Floor(float64(base) * m))
}

// Resolve fights c against o until one side drops to zero health or the turn
// cap is reached. The character always strikes first and a knocked-out
// opponent gets no retaliation. On a victory the awarded score is added to c;
// currency is never touched.
func (r *Resolver) Resolve(c *character.Character, o opponent.Opponent) Result {
	attack := c.EffectiveAttack()
	defense := c.EffectiveDefense()
	charHP := c.EffectiveMaxHealth()
	oppHP := max(0, o.Health)

	res := Result{
		CharacterHealthInitial: charHP,
		OpponentHealthInitial:  oppHP,
	}

	turns := 0
	for charHP > 0 && oppHP > 0 {
		if turns == r.turnCap {
			res.Capped = true
			break
		}
		turns++

		dmg := attack + r.rng.Intn(characterRoll)
		oppHP = max(0, oppHP-dmg)
		if oppHP == 0 {
			break
		}

		raw := o.Attack + r.rng.Intn(opponentRoll)
		charHP = max(0, charHP-max(0, raw-defense))
	}

	res.Turns = turns
	res.CharacterHealthFinal = charHP
	res.OpponentHealthFinal = oppHP

	if charHP > 0 && !res.Capped {
		res.Winner = WinnerCharacter
		res.ScoreAwarded = ScoreFor(o)
		c.AddScore(res.ScoreAwarded)
	} else {
		res.Winner = WinnerOpponent
	}
	return res
}
