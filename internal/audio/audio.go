// Package audio plays short synthesized cues for game events.
// Playback goes through the beep speaker; when no audio device is
// available the player degrades to silence.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

// SampleRate is the output rate used for all cues.
const SampleRate beep.SampleRate = 44100

// bufferDuration is the speaker buffer; shorter means lower latency.
const bufferDuration = 50 * time.Millisecond

// Player reacts to the events of one simulation tick.
type Player interface {
	Play(events []core.Event)
	Close() error
}

// Nop is a Player that does nothing. Used for SSH sessions, tests and
// muted runs.
type Nop struct{}

func (Nop) Play([]core.Event) {}
func (Nop) Close() error      { return nil }

// cues maps event kinds to their note sequences. Events without an entry
// are silent.
var cues = map[core.EventKind][]note{
	core.EventFoodEaten: {
		{freq: 660, dur: 40 * time.Millisecond, wave: WaveSquare},
		{freq: 990, dur: 50 * time.Millisecond, wave: WaveSquare},
	},
	core.EventPowerUpCollected: {
		{freq: 523, dur: 50 * time.Millisecond, wave: WaveTriangle},
		{freq: 659, dur: 50 * time.Millisecond, wave: WaveTriangle},
		{freq: 784, dur: 50 * time.Millisecond, wave: WaveTriangle},
		{freq: 1047, dur: 90 * time.Millisecond, wave: WaveTriangle},
	},
	core.EventBuffExpired: {
		{freq: 784, dur: 50 * time.Millisecond, wave: WaveTriangle},
		{freq: 523, dur: 70 * time.Millisecond, wave: WaveTriangle},
	},
	core.EventDeath: {
		{freq: 330, dur: 90 * time.Millisecond, wave: WaveSquare},
		{freq: 247, dur: 90 * time.Millisecond, wave: WaveSquare},
		{freq: 165, dur: 220 * time.Millisecond, wave: WaveSquare},
	},
	core.EventNewHighScore: {
		{freq: 0, dur: 120 * time.Millisecond},
		{freq: 784, dur: 80 * time.Millisecond, wave: WaveSine},
		{freq: 988, dur: 80 * time.Millisecond, wave: WaveSine},
		{freq: 1175, dur: 80 * time.Millisecond, wave: WaveSine},
		{freq: 1568, dur: 200 * time.Millisecond, wave: WaveSine},
	},
	core.EventMenuMove: {
		{freq: 440, dur: 25 * time.Millisecond, wave: WaveSine},
	},
	core.EventMenuSelect: {
		{freq: 587, dur: 30 * time.Millisecond, wave: WaveSine},
		{freq: 880, dur: 45 * time.Millisecond, wave: WaveSine},
	},
}

// Cue returns a fresh streamer for the event kind, or nil if the kind
// has no sound.
func Cue(kind core.EventKind) beep.Streamer {
	notes, ok := cues[kind]
	if !ok {
		return nil
	}
	return render(notes, SampleRate)
}

// CueDuration reports how long the cue for kind plays.
func CueDuration(kind core.EventKind) time.Duration {
	return length(cues[kind])
}

// SoundPlayer plays cues on the system speaker.
type SoundPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundPlayer creates a player with the given linear volume (0..1).
// Call Init before Play; until then Play is a no-op.
func NewSoundPlayer(volume float64) *SoundPlayer {
	return &SoundPlayer{volume: core.ClampF(volume, 0, 1)}
}

// Init opens the audio device. On failure the player stays silent and
// the error is returned for logging.
func (p *SoundPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(bufferDuration)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	p.mixer = &beep.Mixer{}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the cue of every event that has one. Several events in one
// tick are mixed together.
func (p *SoundPlayer) Play(events []core.Event) {
	if len(events) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	var streams []beep.Streamer
	seen := make(map[core.EventKind]bool, len(events))
	for _, e := range events {
		if seen[e.Kind] {
			continue
		}
		seen[e.Kind] = true
		if s := Cue(e.Kind); s != nil {
			streams = append(streams, s)
		}
	}
	if len(streams) == 0 {
		return
	}

	speaker.Lock()
	p.mixer.Add(withVolume(beep.Mix(streams...), p.volume))
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *SoundPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil
	}
	speaker.Close()
	p.initialized = false
	p.mixer = nil
	return nil
}

// Initialized reports whether the speaker was opened.
func (p *SoundPlayer) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}
