package media

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the output rate of every sound the library renders.
const SampleRate = beep.SampleRate(44100)

// Note is one step of a sound recipe. A zero frequency is a rest.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Library is an in-memory Provider. Sounds are rendered once into buffers
// and mixed into a single output stream that the caller hands to an audio
// device.
type Library struct {
	format   beep.Format
	textures map[string]Texture
	fonts    map[string]Font
	sounds   map[string]*beep.Buffer

	// lock guards the mixer against the audio device goroutine.
	lock  sync.Locker
	mixer *beep.Mixer
	music *beep.Ctrl
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		format:   beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2},
		textures: make(map[string]Texture),
		fonts:    make(map[string]Font),
		sounds:   make(map[string]*beep.Buffer),
		lock:     &sync.Mutex{},
		mixer:    &beep.Mixer{},
	}
}

// SetLocker replaces the mixer lock, typically with the audio device's own
// lock so additions are serialized with playback.
func (l *Library) SetLocker(lk sync.Locker) { l.lock = lk }

// Output is the mixed stream of everything playing.
func (l *Library) Output() beep.Streamer { return l.mixer }

func (l *Library) AddTexture(id string, t Texture) { l.textures[id] = t }

func (l *Library) AddFont(id string, f Font) { l.fonts[id] = f }

// AddSound renders s into a buffer stored under id.
func (l *Library) AddSound(id string, s beep.Streamer) {
	buf := beep.NewBuffer(l.format)
	buf.Append(s)
	l.sounds[id] = buf
}

// AddRecipe synthesizes a sine-tone sequence and stores it under id.
func (l *Library) AddRecipe(id string, notes []Note) error {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := SampleRate.N(n.Duration)
		if n.Freq <= 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(SampleRate, n.Freq)
		if err != nil {
			return fmt.Errorf("sound %q: %w", id, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	l.AddSound(id, beep.Seq(parts...))
	return nil
}

func (l *Library) Texture(id string) (Texture, bool) {
	t, ok := l.textures[id]
	return t, ok
}

func (l *Library) Font(id string) (Font, bool) {
	f, ok := l.fonts[id]
	return f, ok
}

// PlaySound starts sound id once at volume (1 is unchanged, 0 is silent).
func (l *Library) PlaySound(id string, volume float64) {
	buf, ok := l.sounds[id]
	if !ok {
		return
	}
	l.lock.Lock()
	l.mixer.Add(withVolume(buf.Streamer(0, buf.Len()), volume))
	l.lock.Unlock()
}

// PlayMusic replaces the current track with id, repeated loops times
// (negative loops forever).
func (l *Library) PlayMusic(id string, volume float64, loops int) {
	buf, ok := l.sounds[id]
	if !ok {
		return
	}
	ctrl := &beep.Ctrl{Streamer: withVolume(beep.Loop(loops, buf.Streamer(0, buf.Len())), volume)}
	l.lock.Lock()
	l.stopMusicLocked()
	l.music = ctrl
	l.mixer.Add(ctrl)
	l.lock.Unlock()
}

func (l *Library) StopMusic() {
	l.lock.Lock()
	l.stopMusicLocked()
	l.lock.Unlock()
}

func (l *Library) stopMusicLocked() {
	if l.music == nil {
		return
	}
	// A Ctrl without a streamer reports drained and the mixer drops it.
	l.music.Streamer = nil
	l.music = nil
}

// Playing returns the number of streams in the mixer.
func (l *Library) Playing() int {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.mixer.Len()
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
