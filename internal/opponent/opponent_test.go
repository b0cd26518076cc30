package opponent

import (
	"errors"
	"math"
	"testing"
)

func TestPlainOpponent(t *testing.T) {
	o := New("Goblin", "goblin.png", 15, 80)
	if o.IsBoss() {
		t.Error("plain opponent reported as boss")
	}
	if o.RewardMultiplier() != 1 {
		t.Errorf("RewardMultiplier = %v; want 1", o.RewardMultiplier())
	}
	if err := o.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestBossMultiplier(t *testing.T) {
	o := NewBoss("Dragon", "dragon.png", 40, 200, 1.5)
	if !o.IsBoss() {
		t.Fatal("boss not reported as boss")
	}
	if o.RewardMultiplier() != 1.5 {
		t.Errorf("RewardMultiplier = %v; want 1.5", o.RewardMultiplier())
	}
}

func TestBossCopiesDoNotShareMultiplier(t *testing.T) {
	roster := []Opponent{NewBoss("Dragon", "", 40, 200, 1.5)}
	copied := make([]Opponent, len(roster))
	copy(copied, roster)

	copied[0].Multiplier = 9
	if roster[0].RewardMultiplier() != 1.5 {
		t.Errorf("original multiplier = %v after changing a copy; want 1.5", roster[0].RewardMultiplier())
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		opp  Opponent
	}{
		{"empty name", New("", "", 1, 1)},
		{"negative attack", New("x", "", -1, 1)},
		{"negative health", New("x", "", 1, -1)},
		{"multiplier below one", NewBoss("x", "", 1, 1, 0.5)},
		{"zero multiplier", NewBoss("x", "", 1, 1, 0)},
		{"nan multiplier", NewBoss("x", "", 1, 1, math.NaN())},
		{"infinite multiplier", NewBoss("x", "", 1, 1, math.Inf(1))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.opp.Validate(); !errors.Is(err, ErrInvalidOpponent) {
				t.Errorf("err = %v; want ErrInvalidOpponent", err)
			}
		})
	}
}
