// Package audio 合成游戏音效
//
// 所有音效都是正弦音调，由 beep 流生成后渲染为 16 位小端立体声 PCM，
// 可以直接交给 Ebitengine 的 audio.Context 播放。
package audio

import "time"

// Cue 音效编号
type Cue int

const (
	CueAttack Cue = iota
	CueHit
	CueDamage
	CueDeath
	CueBossSpawn
	CueBossDefeat
	CueCoin
	CueLevelUp
	CueWorldComplete
	CueBackground
)

// AllCues 全部音效（预渲染时使用）
var AllCues = []Cue{
	CueAttack, CueHit, CueDamage, CueDeath, CueBossSpawn,
	CueBossDefeat, CueCoin, CueLevelUp, CueWorldComplete, CueBackground,
}

// CueSpec 单个音效的合成参数
type CueSpec struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64 // 0..1
	Loop      bool
}

var cueSpecs = map[Cue]CueSpec{
	CueBackground:    {Frequency: 220, Duration: 2000 * time.Millisecond, Volume: 0.3, Loop: true},
	CueAttack:        {Frequency: 440, Duration: 200 * time.Millisecond, Volume: 0.5},
	CueHit:           {Frequency: 330, Duration: 150 * time.Millisecond, Volume: 0.4},
	CueDamage:        {Frequency: 220, Duration: 300 * time.Millisecond, Volume: 0.6},
	CueDeath:         {Frequency: 165, Duration: 500 * time.Millisecond, Volume: 0.5},
	CueBossSpawn:     {Frequency: 110, Duration: 1000 * time.Millisecond, Volume: 0.7},
	CueBossDefeat:    {Frequency: 880, Duration: 2000 * time.Millisecond, Volume: 0.8},
	CueCoin:          {Frequency: 660, Duration: 100 * time.Millisecond, Volume: 0.3},
	CueLevelUp:       {Frequency: 550, Duration: 800 * time.Millisecond, Volume: 0.6},
	CueWorldComplete: {Frequency: 880, Duration: 1500 * time.Millisecond, Volume: 0.7},
}

// Spec 返回音效参数
func (c Cue) Spec() CueSpec {
	if s, ok := cueSpecs[c]; ok {
		return s
	}
	return CueSpec{Frequency: 440, Duration: 200 * time.Millisecond, Volume: 0.5}
}

// String 返回音效名称
func (c Cue) String() string {
	switch c {
	case CueAttack:
		return "attack"
	case CueHit:
		return "hit"
	case CueDamage:
		return "damage"
	case CueDeath:
		return "death"
	case CueBossSpawn:
		return "boss_spawn"
	case CueBossDefeat:
		return "boss_defeat"
	case CueCoin:
		return "coin"
	case CueLevelUp:
		return "level_up"
	case CueWorldComplete:
		return "world_complete"
	case CueBackground:
		return "background"
	}
	return "unknown"
}
