package audio

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = 44100

// constStreamer 输出恒定值的无限流
type constStreamer float64

func (c constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = float64(c)
		samples[i][1] = float64(c)
	}
	return len(samples), true
}

func (constStreamer) Err() error { return nil }

func sampleAt(pcm []byte, frame int) int16 {
	return int16(binary.LittleEndian.Uint16(pcm[frame*4:]))
}

func TestRenderCueLength(t *testing.T) {
	for _, c := range AllCues {
		t.Run(c.String(), func(t *testing.T) {
			pcm, err := RenderCue(c, testRate)
			if err != nil {
				t.Fatalf("RenderCue() error: %v", err)
			}
			want := beep.SampleRate(testRate).N(c.Spec().Duration) * 4
			if len(pcm) != want {
				t.Errorf("len(pcm) = %d, want %d", len(pcm), want)
			}
		})
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(testRate)
	s := NewEnvelope(constStreamer(1), 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)
	pcm, err := RenderPCM(s)
	if err != nil {
		t.Fatalf("RenderPCM() error: %v", err)
	}

	frames := len(pcm) / 4
	if frames != rate.N(100*time.Millisecond) {
		t.Fatalf("frames = %d, want %d", frames, rate.N(100*time.Millisecond))
	}
	if v := sampleAt(pcm, 0); v != 0 {
		t.Errorf("first sample = %d, want 0", v)
	}
	if v := sampleAt(pcm, frames/2); v != math.MaxInt16 {
		t.Errorf("middle sample = %d, want %d", v, math.MaxInt16)
	}
	if v := sampleAt(pcm, frames-1); v > math.MaxInt16/100 {
		t.Errorf("last sample = %d, want near 0", v)
	}
}

func TestVolumeScaling(t *testing.T) {
	rate := beep.SampleRate(testRate)
	tests := []struct {
		name string
		vol  float64
		want int16
	}{
		{"半音量", 0.5, math.MaxInt16 / 2},
		{"静音", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newVolume(beep.Take(rate.N(10*time.Millisecond), constStreamer(1)), tt.vol)
			pcm, err := RenderPCM(s)
			if err != nil {
				t.Fatalf("RenderPCM() error: %v", err)
			}
			got := sampleAt(pcm, 10)
			if diff := int(got) - int(tt.want); diff < -1 || diff > 1 {
				t.Errorf("sample = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCueSpecs(t *testing.T) {
	if !CueBackground.Spec().Loop {
		t.Error("background cue should loop")
	}
	if CueAttack.Spec().Frequency != 440 || CueBossSpawn.Spec().Frequency != 110 {
		t.Error("unexpected cue frequencies")
	}
	for _, c := range AllCues {
		if c.Spec().Volume <= 0 || c.Spec().Volume > 1 {
			t.Errorf("%s volume %v out of range", c, c.Spec().Volume)
		}
	}
}
