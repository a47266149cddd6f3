package media

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	l := NewLibrary()
	err := l.AddRecipe("beep", []Note{{Freq: 440, Duration: 20 * time.Millisecond}})
	if err != nil {
		t.Fatalf("AddRecipe: %v", err)
	}
	return l
}

func drain(l *Library, n int) [][2]float64 {
	samples := make([][2]float64, n)
	l.Output().Stream(samples)
	return samples
}

func TestUnknownIDsAreHarmless(t *testing.T) {
	l := NewLibrary()
	if _, ok := l.Texture("nope"); ok {
		t.Error("unknown texture reported present")
	}
	if _, ok := l.Font("nope"); ok {
		t.Error("unknown font reported present")
	}
	l.PlaySound("nope", 1)
	l.PlayMusic("nope", 1, -1)
	l.StopMusic()
	if l.Playing() != 0 {
		t.Errorf("playing = %d; want 0", l.Playing())
	}
}

func TestPlaySoundMixesAudio(t *testing.T) {
	l := newTestLibrary(t)
	l.PlaySound("beep", 1)
	if l.Playing() != 1 {
		t.Fatalf("playing = %d; want 1", l.Playing())
	}
	samples := drain(l, 256)
	var energy float64
	for _, s := range samples {
		energy += s[0] * s[0]
	}
	if energy == 0 {
		t.Error("expected non-silent output")
	}
}

func TestSilentVolume(t *testing.T) {
	l := newTestLibrary(t)
	l.PlaySound("beep", 0)
	for i, s := range drain(l, 128) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v; want silence", i, s)
		}
	}
}

func TestSoundDrainsFromMixer(t *testing.T) {
	l := newTestLibrary(t)
	l.PlaySound("beep", 1)
	// 20ms at 44.1kHz is 882 samples.
	drain(l, 2048)
	drain(l, 16)
	if l.Playing() != 0 {
		t.Errorf("finished sound still in mixer: %d", l.Playing())
	}
}

func TestMusicReplacesTrack(t *testing.T) {
	l := newTestLibrary(t)
	l.PlayMusic("beep", 0.5, -1)
	l.PlayMusic("beep", 0.5, -1)
	drain(l, 64)
	if l.Playing() != 1 {
		t.Fatalf("playing = %d; want a single music track", l.Playing())
	}
	l.StopMusic()
	drain(l, 64)
	if l.Playing() != 0 {
		t.Errorf("stopped music still playing")
	}
}

func TestTextureFrames(t *testing.T) {
	l := NewLibrary()
	l.AddTexture("hero", Texture{
		Frames:  []string{"a", "b"},
		Flipped: []string{"A", "B"},
		Style:   tcell.StyleDefault,
	})
	tex, ok := l.Texture("hero")
	if !ok {
		t.Fatal("texture missing")
	}
	if got := tex.Frame(3, false); got != "b" {
		t.Errorf("Frame(3) = %q; want b", got)
	}
	if got := tex.Frame(0, true); got != "A" {
		t.Errorf("flipped Frame(0) = %q; want A", got)
	}
	if got := (Texture{}).Frame(0, false); got != "" {
		t.Errorf("empty texture frame = %q", got)
	}
}
