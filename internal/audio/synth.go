package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// 淡入淡出时长，避免音调首尾的爆音
const (
	fadeIn  = 5 * time.Millisecond
	fadeOut = 20 * time.Millisecond
)

// envelope 对流做线性淡入淡出
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope 返回长度为 duration、带淡入淡出的流
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		att, rel = total/2, total/2
	}
	return &envelope{
		streamer:       beep.Take(total, s),
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 按线性音量缩放，0 为静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewCueStreamer 返回音效的 beep 流
func NewCueStreamer(c Cue, rate beep.SampleRate) (beep.Streamer, error) {
	spec := c.Spec()
	tone, err := generators.SineTone(rate, spec.Frequency)
	if err != nil {
		return nil, fmt.Errorf("cue %s: %w", c, err)
	}
	shaped := NewEnvelope(tone, spec.Duration, fadeIn, fadeOut, rate)
	return newVolume(shaped, spec.Volume), nil
}

// RenderPCM 把流渲染为 16 位小端立体声 PCM
func RenderPCM(s beep.Streamer) ([]byte, error) {
	buf := make([][2]float64, 512)
	out := make([]byte, 0, 4096)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := int16(clampSample(buf[i][ch]) * math.MaxInt16)
				out = append(out, byte(v), byte(uint16(v)>>8))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// RenderCue 合成一个音效的 PCM 数据
func RenderCue(c Cue, sampleRate int) ([]byte, error) {
	s, err := NewCueStreamer(c, beep.SampleRate(sampleRate))
	if err != nil {
		return nil, err
	}
	return RenderPCM(s)
}
