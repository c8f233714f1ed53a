package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"go-dragon-shooter/internal/event"
)

// TestSoundManagerGracefulDegradation verifies playback is a no-op without an audio device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Shot()
	sm.Hit()
	sm.Explosion()
	sm.OnEvent(event.Event{Type: event.GameOver})
	sm.Cleanup()

	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before initialization", sm.mixer.Len())
	}
}

// TestSoundManagerInitialization may fail on machines without audio devices
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got: %v", err)
	}
	sm.Cleanup()
}

// fakeInitialized пропускает speaker.Init, чтобы проверить работу с микшером.
func fakeInitialized() *SoundManager {
	sm := NewSoundManager()
	sm.initialized = true
	return sm
}

func TestPlayRestartsCue(t *testing.T) {
	sm := fakeInitialized()

	sm.Shot()
	first := sm.playing[CueShot]
	if first == nil || first.Streamer == nil {
		t.Fatal("first shot was not queued")
	}

	sm.Shot()
	second := sm.playing[CueShot]
	if second == first {
		t.Fatal("second shot reused the first controller")
	}
	if first.Streamer != nil {
		t.Error("previous shot still has a streamer")
	}

	sm.Explosion()
	if sm.playing[CueExplosion] == nil || sm.playing[CueShot] != second {
		t.Error("different cues must not interrupt each other")
	}
}

func TestMutedManagerIsSilent(t *testing.T) {
	sm := fakeInitialized()
	sm.SetMuted(true)
	if !sm.Muted() || !sm.volume.Silent {
		t.Fatal("mute flag not applied")
	}

	sm.Hit()
	if sm.mixer.Len() != 0 {
		t.Errorf("muted manager queued %d streamers", sm.mixer.Len())
	}

	sm.SetMuted(false)
	sm.Hit()
	if sm.mixer.Len() != 1 {
		t.Errorf("mixer has %d streamers, want 1", sm.mixer.Len())
	}
}

func TestEventsMapToCues(t *testing.T) {
	tests := []struct {
		event event.EventType
		cue   Cue
		ok    bool
	}{
		{event.ShotFired, CueShot, true},
		{event.PlayerHit, CueHit, true},
		{event.EnemyExploded, CueExplosion, true},
		{event.EnemySpawned, 0, false},
		{event.GameOver, 0, false},
	}
	for _, tt := range tests {
		cue, ok := CueFor(tt.event)
		if ok != tt.ok || (ok && cue != tt.cue) {
			t.Errorf("CueFor(%s) = %v, %v; want %v, %v", tt.event, cue, ok, tt.cue, tt.ok)
		}
	}
}

func TestSubscribeRoutesEvents(t *testing.T) {
	sm := fakeInitialized()
	d := event.NewDispatcher()
	sm.Subscribe(d)

	d.Emit(event.PlayerHit, nil)
	d.Emit(event.EnemySpawned, nil)

	if sm.playing[CueHit] == nil {
		t.Error("PlayerHit did not start the hit cue")
	}
	if len(sm.playing) != 1 {
		t.Errorf("%d cues playing, want 1", len(sm.playing))
	}
}

// TestCueStreamersAreFinite verifies every cue ends and stays within [-1, 1]
func TestCueStreamersAreFinite(t *testing.T) {
	for _, cue := range []Cue{CueShot, CueHit, CueExplosion} {
		t.Run(cue.String(), func(t *testing.T) {
			s := cueStreamer(cue, sampleRate)
			buf := make([][2]float64, 512)
			total := 0
			for {
				n, ok := s.Stream(buf)
				for _, smp := range buf[:n] {
					if math.Abs(smp[0]) > 1 || math.IsNaN(smp[0]) {
						t.Fatalf("sample %g out of range", smp[0])
					}
				}
				total += n
				if !ok || total > int(sampleRate) {
					break
				}
			}
			if total == 0 || total >= int(sampleRate) {
				t.Errorf("cue produced %d samples", total)
			}
		})
	}
}

func TestSweepDecays(t *testing.T) {
	g := newSweepGenerator(sampleRate, shotFreqStartHz, shotFreqEndHz, shotDurationMs*1e6, shotAmplitude)
	buf := make([][2]float64, sampleRate.N(shotDurationMs*1e6))
	g.Stream(buf)

	peak := func(part [][2]float64) float64 {
		m := 0.0
		for _, s := range part {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	quarter := len(buf) / 4
	if head, tail := peak(buf[:quarter]), peak(buf[len(buf)-quarter:]); tail >= head {
		t.Errorf("tail peak %g not below head peak %g", tail, head)
	}
}

func TestAudioAmplitudes(t *testing.T) {
	for name, v := range map[string]float64{
		"shotAmplitude":      shotAmplitude,
		"hitAmplitude":       hitAmplitude,
		"explosionNoiseAmp":  explosionNoiseAmp,
		"explosionRumbleAmp": explosionRumbleAmp,
		"masterVolume":       masterVolume,
	} {
		if v <= 0 || v > 1 {
			t.Errorf("%s should be in (0, 1], got %g", name, v)
		}
	}
}

var _ beep.Streamer = (*explosionGenerator)(nil)
