package game

import (
	"errors"
	"testing"

	"github.com/gonewx/phoenix/pkg/config"
)

const testMovesYAML = `
moves:
  - {id: hold_1, name: "Inferno", slot: hold, damage: 50, cooldown: 8000, cost: 0, color: "#ff4444", starter: true}
  - {id: double_1, name: "Dart", slot: double, damage: 15, cooldown: 1500, cost: 0, color: "#ff6644", starter: true}
  - {id: triple_1, name: "Strike", slot: triple, damage: 35, cooldown: 4000, cost: 0, color: "#ff8844", starter: true}
  - {id: hold_2, name: "Breath", slot: hold, damage: 75, cooldown: 10000, cost: 100, color: "#ff2222"}
  - {id: double_2, name: "Burst", slot: double, damage: 20, cooldown: 1200, cost: 50, color: "#ff6644"}
  - {id: triple_2, name: "Storm", slot: triple, damage: 45, cooldown: 3500, cost: 75, color: "#ff8844"}
`

func newTestCatalog(t *testing.T) *config.MoveCatalog {
	t.Helper()
	catalog, err := config.ParseMoveCatalog([]byte(testMovesYAML))
	if err != nil {
		t.Fatalf("ParseMoveCatalog() error: %v", err)
	}
	return catalog
}

func newTestState(t *testing.T) *PlayerState {
	t.Helper()
	return NewPlayerState(newTestCatalog(t), config.WorldCount)
}

func TestNewPlayerStateDefaults(t *testing.T) {
	s := newTestState(t)

	want := PlayerStats{Level: 1, XP: 0, XPToNext: 100, Health: 100, MaxHealth: 100, Coins: 50}
	if s.PlayerStats != want {
		t.Errorf("PlayerStats = %+v, want %+v", s.PlayerStats, want)
	}
	if s.CurrentWorld != 1 || s.DeathCount != 0 {
		t.Errorf("CurrentWorld=%d DeathCount=%d, want 1 and 0", s.CurrentWorld, s.DeathCount)
	}
	if !s.Settings.SoundEnabled || !s.Settings.MusicEnabled {
		t.Error("sound and music should be enabled by default")
	}

	if len(s.WorldProgress) != config.WorldCount {
		t.Fatalf("len(WorldProgress) = %d, want %d", len(s.WorldProgress), config.WorldCount)
	}
	for _, w := range s.WorldProgress {
		if w.Unlocked != (w.WorldID == 1) {
			t.Errorf("world %d unlocked = %v", w.WorldID, w.Unlocked)
		}
	}

	for _, slot := range config.AllSlots {
		m, ok := s.EquippedMove(slot)
		if !ok {
			t.Fatalf("slot %s has no equipped move", slot)
		}
		if !m.IsOwned || m.Cost != 0 {
			t.Errorf("slot %s equipped %s, want owned starter", slot, m.ID)
		}
	}
	if s.EquippedMoves.Hold == nil || s.EquippedMoves.Hold.ID != "hold_1" {
		t.Errorf("EquippedMoves.Hold = %+v, want hold_1", s.EquippedMoves.Hold)
	}
}

func TestGainXP(t *testing.T) {
	tests := []struct {
		name          string
		amount        int
		wantLevels    int
		wantLevel     int
		wantXP        int
		wantXPToNext  int
		wantMaxHealth int
	}{
		{"未达到阈值", 50, 0, 1, 50, 100, 100},
		{"刚好升级", 100, 1, 2, 0, 120, 110},
		{"连续升级", 100 + 120 + 5, 2, 3, 5, 144, 120},
		{"非正数忽略", -10, 0, 1, 0, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t)
			s.Damage(30)

			levels := s.GainXP(tt.amount)
			st := s.PlayerStats
			if levels != tt.wantLevels {
				t.Errorf("levels = %d, want %d", levels, tt.wantLevels)
			}
			if st.Level != tt.wantLevel || st.XP != tt.wantXP || st.XPToNext != tt.wantXPToNext {
				t.Errorf("level/xp/xpToNext = %d/%d/%d, want %d/%d/%d",
					st.Level, st.XP, st.XPToNext, tt.wantLevel, tt.wantXP, tt.wantXPToNext)
			}
			if st.MaxHealth != tt.wantMaxHealth {
				t.Errorf("MaxHealth = %d, want %d", st.MaxHealth, tt.wantMaxHealth)
			}

			wantHealth := 70
			if tt.wantLevels > 0 {
				wantHealth = tt.wantMaxHealth
			}
			if st.Health != wantHealth {
				t.Errorf("Health = %d, want %d", st.Health, wantHealth)
			}
		})
	}
}

func TestXPForLevel(t *testing.T) {
	cases := map[int]int{1: 100, 2: 120, 3: 144, 4: 172, 5: 207}
	for level, want := range cases {
		if got := XPForLevel(level); got != want {
			t.Errorf("XPForLevel(%d) = %d, want %d", level, got, want)
		}
	}
}

func TestHealthClamping(t *testing.T) {
	s := newTestState(t)

	if got := s.Damage(250); got != 0 {
		t.Errorf("Damage(250) = %d, want 0", got)
	}
	if !s.IsDead() {
		t.Error("IsDead() = false after lethal damage")
	}

	s.Heal(500)
	if s.PlayerStats.Health != s.PlayerStats.MaxHealth {
		t.Errorf("Health = %d, want %d", s.PlayerStats.Health, s.PlayerStats.MaxHealth)
	}

	s.UpdatePlayerStats(func(st *PlayerStats) {
		st.MaxHealth = 80
		st.Coins = -5
	})
	if s.PlayerStats.Health != 80 {
		t.Errorf("Health after MaxHealth shrink = %d, want 80", s.PlayerStats.Health)
	}
	if s.PlayerStats.Coins != 0 {
		t.Errorf("Coins = %d, want 0", s.PlayerStats.Coins)
	}
}

func TestPurchaseMove(t *testing.T) {
	tests := []struct {
		name      string
		coins     int
		id        string
		wantErr   error
		wantCoins int
	}{
		{"金币足够", 50, "double_2", nil, 0},
		{"金币不足", 50, "hold_2", ErrInsufficientCoins, 50},
		{"已拥有", 50, "hold_1", ErrMoveAlreadyOwned, 50},
		{"未知招式", 50, "nope", ErrUnknownMove, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t)
			s.PlayerStats.Coins = tt.coins

			err := s.PurchaseMove(tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("PurchaseMove(%s) error = %v, want %v", tt.id, err, tt.wantErr)
			}
			if s.PlayerStats.Coins != tt.wantCoins {
				t.Errorf("Coins = %d, want %d", s.PlayerStats.Coins, tt.wantCoins)
			}
			if tt.wantErr == nil {
				m, _ := s.Move(tt.id)
				if !m.IsOwned {
					t.Error("purchased move not owned")
				}
				if m.IsEquipped {
					t.Error("purchase should not equip")
				}
			}
		})
	}
}

func TestEquipMoveKeepsOnePerSlot(t *testing.T) {
	s := newTestState(t)

	if err := s.EquipMove("triple_2"); !errors.Is(err, ErrMoveNotOwned) {
		t.Fatalf("EquipMove(unowned) error = %v, want ErrMoveNotOwned", err)
	}

	s.PlayerStats.Coins = 1000
	if err := s.PurchaseMove("triple_2"); err != nil {
		t.Fatalf("PurchaseMove() error: %v", err)
	}
	if err := s.EquipMove("triple_2"); err != nil {
		t.Fatalf("EquipMove() error: %v", err)
	}

	for _, slot := range config.AllSlots {
		count := 0
		for _, m := range s.MovesForSlot(slot) {
			if m.IsEquipped {
				count++
			}
		}
		if count != 1 {
			t.Errorf("slot %s has %d equipped moves, want 1", slot, count)
		}
	}

	m, _ := s.EquippedMove(config.SlotTriple)
	if m.ID != "triple_2" {
		t.Errorf("triple slot = %s, want triple_2", m.ID)
	}
	if s.EquippedMoves.Triple == nil || s.EquippedMoves.Triple.ID != "triple_2" {
		t.Errorf("EquippedMoves.Triple = %+v", s.EquippedMoves.Triple)
	}
	if h, _ := s.EquippedMove(config.SlotHold); h.ID != "hold_1" {
		t.Errorf("hold slot changed to %s", h.ID)
	}
}

func TestCompleteWorld(t *testing.T) {
	s := newTestState(t)

	if err := s.CompleteWorld(1, 120, 500); err != nil {
		t.Fatalf("CompleteWorld() error: %v", err)
	}
	w1, _ := s.World(1)
	if !w1.Completed || w1.BestTime != 120 || w1.HighScore != 500 {
		t.Errorf("world 1 = %+v", *w1)
	}
	if w2, _ := s.World(2); !w2.Unlocked {
		t.Error("world 2 should be unlocked after completing world 1")
	}

	// 用时更长、分数更高：最佳用时不变，最高分更新
	_ = s.CompleteWorld(1, 150, 800)
	if w1.BestTime != 120 || w1.HighScore != 800 {
		t.Errorf("after slower run: bestTime=%v highScore=%d", w1.BestTime, w1.HighScore)
	}
	_ = s.CompleteWorld(1, 90, 100)
	if w1.BestTime != 90 || w1.HighScore != 800 {
		t.Errorf("after faster run: bestTime=%v highScore=%d", w1.BestTime, w1.HighScore)
	}

	if err := s.CompleteWorld(config.WorldCount, 200, 10); err != nil {
		t.Fatalf("CompleteWorld(last) error: %v", err)
	}
	if err := s.CompleteWorld(config.WorldCount+1, 1, 1); !errors.Is(err, ErrUnknownWorld) {
		t.Errorf("CompleteWorld(out of range) error = %v, want ErrUnknownWorld", err)
	}
}

func TestSetCurrentWorld(t *testing.T) {
	s := newTestState(t)

	if err := s.SetCurrentWorld(3); !errors.Is(err, ErrWorldLocked) {
		t.Errorf("SetCurrentWorld(locked) error = %v, want ErrWorldLocked", err)
	}
	if err := s.SetCurrentWorld(0); !errors.Is(err, ErrUnknownWorld) {
		t.Errorf("SetCurrentWorld(0) error = %v, want ErrUnknownWorld", err)
	}

	if err := s.UnlockWorld(3); err != nil {
		t.Fatalf("UnlockWorld() error: %v", err)
	}
	if err := s.SetCurrentWorld(3); err != nil {
		t.Fatalf("SetCurrentWorld() error: %v", err)
	}
	if s.CurrentWorld != 3 {
		t.Errorf("CurrentWorld = %d, want 3", s.CurrentWorld)
	}
}

func TestResetProgress(t *testing.T) {
	s := newTestState(t)
	s.GainXP(500)
	s.GainCoins(1000)
	s.OnPlayerDeath()
	_ = s.CompleteWorld(1, 60, 100)
	s.UpdateSettings(func(st *Settings) { st.MusicEnabled = false })

	s.ResetProgress()

	if s.PlayerStats.Level != 1 || s.PlayerStats.Coins != DefaultCoins || s.DeathCount != 0 {
		t.Errorf("after reset: %+v deaths=%d", s.PlayerStats, s.DeathCount)
	}
	if w2, _ := s.World(2); w2.Unlocked {
		t.Error("world 2 still unlocked after reset")
	}
	if !s.Settings.MusicEnabled {
		t.Error("settings not reset")
	}
}
