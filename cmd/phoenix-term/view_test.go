package main

import (
	"strings"
	"testing"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/game"
)

func TestProjectionCell(t *testing.T) {
	p := projection{worldW: 400, worldH: 800, cols: 40, rows: 42}

	tests := []struct {
		name    string
		x, y    float64
		wantCol int
		wantRow int
		wantOK  bool
	}{
		{"左上角", 0, 0, 0, statusRows, true},
		{"中心", 200, 400, 20, 20 + statusRows, true},
		{"右下边缘内", 399, 799, 39, 39 + statusRows, true},
		{"超出右侧", 400, 10, 0, 0, false},
		{"负坐标", -1, 10, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := p.cell(tt.x, tt.y)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, 期望 %v", ok, tt.wantOK)
			}
			if ok && (col != tt.wantCol || row != tt.wantRow) {
				t.Errorf("cell(%v,%v) = (%d,%d), 期望 (%d,%d)", tt.x, tt.y, col, row, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestProjectionTooSmall(t *testing.T) {
	p := projection{worldW: 400, worldH: 800, cols: 10, rows: statusRows}
	if _, _, ok := p.cell(10, 10); ok {
		t.Error("没有战场行时不应映射任何坐标")
	}
	if dx, dy := p.step(); dx != 0 || dy != 0 {
		t.Errorf("step() = (%v,%v), 期望 (0,0)", dx, dy)
	}
}

func TestProjectionStep(t *testing.T) {
	p := projection{worldW: 400, worldH: 800, cols: 40, rows: 42}
	dx, dy := p.step()
	if dx != 10 || dy != 20 {
		t.Errorf("step() = (%v,%v), 期望 (10,20)", dx, dy)
	}
}

func TestStatusLines(t *testing.T) {
	snap := &game.Snapshot{
		HUD: game.HUDView{
			WorldID: 2, WorldName: "Desert", Health: 80, MaxHealth: 100,
			Level: 3, Coins: 120, Score: 450, Kills: 7,
			Elapsed: 65, BossTime: 120,
			Cooldowns: []game.CooldownView{
				{Slot: config.SlotHold, Equipped: true},
				{Slot: config.SlotDouble, Equipped: true, Remaining: 1.5},
				{Slot: config.SlotTriple},
			},
		},
	}
	first, second := statusLines(snap)
	for _, want := range []string{"W2 Desert", "HP 80/100", "Lv 3", "$120", "1:05/2:00"} {
		if !strings.Contains(first, want) {
			t.Errorf("第一行 %q 缺少 %q", first, want)
		}
	}
	for _, want := range []string{"Score 450", "Kills 7", string(config.SlotHold) + ":OK", "1.5s", ":--"} {
		if !strings.Contains(second, want) {
			t.Errorf("第二行 %q 缺少 %q", second, want)
		}
	}

	snap.HUD.BossSpawned = true
	snap.Boss = &game.BossView{Name: "Sand Wyrm", Phase: 2, Health: 300, MaxHealth: 1000}
	first, second = statusLines(snap)
	if !strings.Contains(first, "BOSS") {
		t.Errorf("首领出现后计时应显示 BOSS: %q", first)
	}
	if !strings.Contains(second, "Sand Wyrm P2 300/1000") {
		t.Errorf("第二行缺少首领信息: %q", second)
	}
}

func TestEnemyRune(t *testing.T) {
	if got := enemyRune("Goblin"); got != 'G' {
		t.Errorf("enemyRune(Goblin) = %q", got)
	}
	if got := enemyRune(""); got != 'e' {
		t.Errorf("enemyRune(\"\") = %q", got)
	}
}
