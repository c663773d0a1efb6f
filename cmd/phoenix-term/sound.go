package main

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/phoenix/internal/audio"
	"github.com/gonewx/phoenix/pkg/game"
	"github.com/gonewx/phoenix/pkg/systems"
)

const termSampleRate = beep.SampleRate(44100)

// speakerSound 通过系统扬声器播放战斗音效
type speakerSound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     func() bool
}

func newSpeakerSound(enabled func() bool) *speakerSound {
	return &speakerSound{mixer: &beep.Mixer{}, enabled: enabled}
}

// Init 打开扬声器；失败时游戏照常运行，只是没有声音
func (s *speakerSound) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(termSampleRate, termSampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Close 关闭扬声器
func (s *speakerSound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// OnBattleEvent 作为 game.BattleListener 使用
func (s *speakerSound) OnBattleEvent(e systems.Event) {
	if c, ok := game.CueForEvent(e); ok {
		s.Play(c)
	}
}

// Play 播放一个音效
func (s *speakerSound) Play(c audio.Cue) {
	if s.enabled != nil && !s.enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	streamer, err := audio.NewCueStreamer(c, termSampleRate)
	if err != nil {
		log.Printf("[Sound] %v", err)
		return
	}
	// mixer 在扬声器线程中读取
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}
