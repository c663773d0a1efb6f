package game

import (
	"bytes"
	"log"

	"github.com/gonewx/phoenix/internal/audio"
	"github.com/gonewx/phoenix/pkg/systems"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频上下文采样率
const AudioSampleRate = 44100

// SettingsSource 返回当前的音效/音乐开关
type SettingsSource func() Settings

// AudioManager 音频管理器
// 职责：
//   - 预渲染全部合成音效，缓存为播放器
//   - 按 Settings 的开关播放音效和循环背景音乐
//   - 作为战斗监听器把战斗事件映射为音效
//
// context 为 nil 时所有播放调用都是空操作（无声环境、测试）
type AudioManager struct {
	context      *ebaudio.Context
	settings     SettingsSource
	soundPlayers map[audio.Cue]*ebaudio.Player
	music        *ebaudio.Player
	musicCue     audio.Cue
	musicActive  bool
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文（可为 nil）
//   - settings: 设置来源（可为 nil，视为全部开启）
func NewAudioManager(ctx *ebaudio.Context, settings SettingsSource) *AudioManager {
	return &AudioManager{
		context:      ctx,
		settings:     settings,
		soundPlayers: make(map[audio.Cue]*ebaudio.Player),
	}
}

func (am *AudioManager) currentSettings() Settings {
	if am.settings == nil {
		return Settings{SoundEnabled: true, MusicEnabled: true}
	}
	return am.settings()
}

// Preload 预渲染全部音效，避免首次播放时卡顿
func (am *AudioManager) Preload() {
	if am.context == nil {
		return
	}
	count := 0
	for _, c := range audio.AllCues {
		if c.Spec().Loop {
			continue
		}
		if am.getSoundPlayer(c) != nil {
			count++
		}
	}
	log.Printf("[AudioManager] Preloaded %d sounds", count)
}

// PlayCue 播放一次性音效
// 返回是否实际播放
func (am *AudioManager) PlayCue(c audio.Cue) bool {
	if am.context == nil || !am.currentSettings().SoundEnabled {
		return false
	}
	player := am.getSoundPlayer(c)
	if player == nil {
		return false
	}
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", c, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐
// 同一时间只播放一首
func (am *AudioManager) PlayMusic(c audio.Cue) bool {
	if am.context == nil || !am.currentSettings().MusicEnabled {
		return false
	}
	if am.musicActive && am.musicCue == c && am.music != nil && am.music.IsPlaying() {
		return true
	}
	am.StopMusic()

	pcm, err := audio.RenderCue(c, am.context.SampleRate())
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to render music %s: %v", c, err)
		return false
	}
	loop := ebaudio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := am.context.NewPlayer(loop)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create music player %s: %v", c, err)
		return false
	}
	player.Play()

	am.music = player
	am.musicCue = c
	am.musicActive = true
	log.Printf("[AudioManager] Playing music: %s", c)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.music != nil {
		am.music.Pause()
		if err := am.music.Close(); err != nil {
			log.Printf("[AudioManager] Warning: Failed to close music player: %v", err)
		}
		am.music = nil
	}
	am.musicActive = false
}

// PauseMusic 暂停当前背景音乐
func (am *AudioManager) PauseMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// ResumeMusic 恢复当前背景音乐
func (am *AudioManager) ResumeMusic() {
	if am.music != nil && am.musicActive && am.currentSettings().MusicEnabled {
		am.music.Play()
	}
}

// ApplySettings 设置变化后同步背景音乐状态
func (am *AudioManager) ApplySettings() {
	if !am.currentSettings().MusicEnabled {
		am.PauseMusic()
		return
	}
	if am.music == nil {
		am.PlayMusic(audio.CueBackground)
		return
	}
	am.ResumeMusic()
}

// OnBattleEvent 战斗监听器：把事件映射为音效
func (am *AudioManager) OnBattleEvent(e systems.Event) {
	if c, ok := CueForEvent(e); ok {
		am.PlayCue(c)
	}
}

func (am *AudioManager) getSoundPlayer(c audio.Cue) *ebaudio.Player {
	if player, exists := am.soundPlayers[c]; exists {
		return player
	}
	pcm, err := audio.RenderCue(c, am.context.SampleRate())
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to render sound %s: %v", c, err)
		return nil
	}
	player := am.context.NewPlayerFromBytes(pcm)
	am.soundPlayers[c] = player
	return player
}

// CueForEvent 返回战斗事件对应的音效
// 首领阶段切换等事件没有音效
func CueForEvent(e systems.Event) (audio.Cue, bool) {
	switch e.(type) {
	case systems.PhoenixAttackEvent:
		return audio.CueAttack, true
	case systems.EnemyHitEvent:
		return audio.CueHit, true
	case systems.PhoenixHitEvent:
		return audio.CueDamage, true
	case systems.EnemyKilledEvent, systems.PhoenixDiedEvent:
		return audio.CueDeath, true
	case systems.BossSpawnedEvent:
		return audio.CueBossSpawn, true
	case systems.BossDefeatedEvent:
		return audio.CueBossDefeat, true
	case systems.CoinsGainedEvent:
		return audio.CueCoin, true
	case systems.LevelUpEvent:
		return audio.CueLevelUp, true
	case systems.WorldCompletedEvent:
		return audio.CueWorldComplete, true
	}
	return 0, false
}
