package game

import (
	"testing"

	"github.com/gonewx/phoenix/internal/audio"
	"github.com/gonewx/phoenix/pkg/systems"
)

func TestCueForEvent(t *testing.T) {
	tests := []struct {
		name   string
		event  systems.Event
		want   audio.Cue
		wantOK bool
	}{
		{"攻击", systems.PhoenixAttackEvent{}, audio.CueAttack, true},
		{"命中", systems.EnemyHitEvent{}, audio.CueHit, true},
		{"受伤", systems.PhoenixHitEvent{Damage: 10}, audio.CueDamage, true},
		{"击杀", systems.EnemyKilledEvent{}, audio.CueDeath, true},
		{"首领登场", systems.BossSpawnedEvent{}, audio.CueBossSpawn, true},
		{"首领击败", systems.BossDefeatedEvent{}, audio.CueBossDefeat, true},
		{"金币", systems.CoinsGainedEvent{Amount: 3}, audio.CueCoin, true},
		{"升级", systems.LevelUpEvent{Level: 2}, audio.CueLevelUp, true},
		{"通关", systems.WorldCompletedEvent{}, audio.CueWorldComplete, true},
		{"首领阶段无音效", systems.BossPhaseEvent{Phase: 2}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueForEvent(tt.event)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("CueForEvent(%s) = %v, %v; want %v, %v", systems.EventName(tt.event), got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAudioManagerWithoutContext(t *testing.T) {
	enabled := Settings{SoundEnabled: true, MusicEnabled: true}
	am := NewAudioManager(nil, func() Settings { return enabled })

	if am.PlayCue(audio.CueCoin) {
		t.Error("PlayCue() without context should not play")
	}
	if am.PlayMusic(audio.CueBackground) {
		t.Error("PlayMusic() without context should not play")
	}
	// 无上下文时的其余调用都不应 panic
	am.OnBattleEvent(systems.CoinsGainedEvent{Amount: 1})
	am.PauseMusic()
	am.ResumeMusic()
	am.ApplySettings()
	am.StopMusic()
}

func TestAudioManagerDefaultSettings(t *testing.T) {
	am := NewAudioManager(nil, nil)
	s := am.currentSettings()
	if !s.SoundEnabled || !s.MusicEnabled {
		t.Errorf("currentSettings() = %+v, want all enabled", s)
	}
}
