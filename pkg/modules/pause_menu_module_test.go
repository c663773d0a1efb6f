package modules

import (
	"testing"

	"github.com/gonewx/phoenix/pkg/config"
	"github.com/gonewx/phoenix/pkg/render"
)

const (
	testScreenW = 480.0
	testScreenH = 854.0
)

// tapCenter 在按钮中心完成一次点击
func tapCenter(r config.Rect) (float64, float64, float64, float64) {
	x, y := r.Center()
	return x, y, x, y
}

func TestButtonSetTap(t *testing.T) {
	var set ButtonSet
	clicked := ""
	a := set.Add(NewButton(config.Rect{X: 0, Y: 0, W: 100, H: 50}, "A", render.ColorAccent, func() { clicked = "A" }))
	b := set.Add(NewButton(config.Rect{X: 0, Y: 60, W: 100, H: 50}, "B", render.ColorAccent, func() { clicked = "B" }))

	tests := []struct {
		name                       string
		startX, startY, endX, endY float64
		setup                      func()
		wantHit                    bool
		wantClicked                string
	}{
		{"点击 A", 10, 10, 20, 20, nil, true, "A"},
		{"点击 B", 10, 70, 10, 80, nil, true, "B"},
		{"按下 A 抬起 B", 10, 10, 10, 70, nil, false, ""},
		{"空白处", 200, 200, 200, 200, nil, false, ""},
		{"禁用按钮", 10, 70, 10, 70, func() { b.Enabled = false }, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clicked = ""
			a.Enabled, b.Enabled = true, true
			if tt.setup != nil {
				tt.setup()
			}
			hit := set.Tap(tt.startX, tt.startY, tt.endX, tt.endY)
			if hit != tt.wantHit || clicked != tt.wantClicked {
				t.Errorf("Tap() = %v clicked %q, want %v %q", hit, clicked, tt.wantHit, tt.wantClicked)
			}
		})
	}
}

func TestPauseMenuModule(t *testing.T) {
	var continued, restarted, menu, paused, resumed int
	m := NewPauseMenuModule(testScreenW, testScreenH, PauseMenuCallbacks{
		OnContinue:    func() { continued++ },
		OnRestart:     func() { restarted++ },
		OnMainMenu:    func() { menu++ },
		OnPauseMusic:  func() { paused++ },
		OnResumeMusic: func() { resumed++ },
	})

	if m.HandleTap(0, 0, 0, 0) {
		t.Error("hidden menu should not consume taps")
	}

	m.Toggle()
	if !m.IsActive() || paused != 1 {
		t.Fatalf("Toggle() active=%v paused=%d", m.IsActive(), paused)
	}
	m.Show()
	if paused != 1 {
		t.Error("Show() on an active menu paused music again")
	}

	// 空白处点击被菜单吞掉
	if !m.HandleTap(1, 1, 1, 1) || continued+restarted+menu != 0 {
		t.Error("tap outside buttons should be consumed without action")
	}

	buttons := m.buttons.Buttons()
	m.HandleTap(tapCenter(buttons[0].Rect))
	if continued != 1 || m.IsActive() || resumed != 1 {
		t.Errorf("continue: continued=%d active=%v resumed=%d", continued, m.IsActive(), resumed)
	}

	m.Show()
	m.HandleTap(tapCenter(buttons[1].Rect))
	if restarted != 1 || m.IsActive() {
		t.Errorf("restart: restarted=%d active=%v", restarted, m.IsActive())
	}

	m.Show()
	m.HandleTap(tapCenter(buttons[2].Rect))
	if menu != 1 || m.IsActive() {
		t.Errorf("main menu: menu=%d active=%v", menu, m.IsActive())
	}
}

func TestResultPanelModule(t *testing.T) {
	m := NewResultPanelModule(testScreenW, testScreenH)
	if m.HandleTap(0, 0, 0, 0) {
		t.Error("hidden panel should not consume taps")
	}

	chosen := 0
	m.Show("VICTORY", render.ColorGold, []string{"Score 100"}, []ResultAction{
		{Label: "NEXT", Color: render.ColorAccent, OnClick: func() { chosen = 1 }},
		{Label: "MENU", Color: render.ColorPanel, OnClick: func() { chosen = 2 }},
	})
	buttons := m.buttons.Buttons()
	if len(buttons) != 2 {
		t.Fatalf("len(buttons) = %d, want 2", len(buttons))
	}

	// 滑入动画期间不响应
	m.HandleTap(tapCenter(buttons[1].Rect))
	if chosen != 0 {
		t.Error("panel accepted a tap while sliding in")
	}

	m.Update(resultSlideDuration)
	if m.offset() != 0 {
		t.Errorf("offset() = %v after slide, want 0", m.offset())
	}
	m.HandleTap(tapCenter(buttons[1].Rect))
	if chosen != 2 {
		t.Errorf("chosen = %d, want 2", chosen)
	}

	// 再次显示会替换按钮
	m.Show("DEFEAT", render.ColorDanger, nil, []ResultAction{{Label: "CONTINUE"}})
	if len(m.buttons.Buttons()) != 1 || m.elapsed != 0 {
		t.Error("Show() should reset buttons and animation")
	}
}
