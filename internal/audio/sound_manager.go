package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"go-dragon-shooter/internal/event"
)

const (
	sampleRate              = beep.SampleRate(44100)
	speakerBufferDurationMs = 100
	masterVolume            = 0.6
)

// Cue — один из звуков игры.
type Cue int

const (
	CueShot Cue = iota
	CueHit
	CueExplosion
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueHit:
		return "hit"
	case CueExplosion:
		return "explosion"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// CueFor возвращает звук для игрового события.
func CueFor(t event.EventType) (Cue, bool) {
	switch t {
	case event.ShotFired:
		return CueShot, true
	case event.PlayerHit:
		return CueHit, true
	case event.EnemyExploded:
		return CueExplosion, true
	}
	return 0, false
}

// SoundManager проигрывает синтезированные звуки через beep.
// Повторный запуск звука обрывает его предыдущее воспроизведение.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	playing     map[Cue]*beep.Ctrl
	muted       bool
	initialized bool
}

func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:   mixer,
		volume:  &effects.Volume{Streamer: mixer, Base: 2, Volume: math.Log2(masterVolume)},
		playing: make(map[Cue]*beep.Ctrl),
	}
}

// Initialize открывает аудиоустройство. Без устройства игра работает молча.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDurationMs*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup останавливает все звуки.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	for cue, ctrl := range sm.playing {
		ctrl.Streamer = nil
		delete(sm.playing, cue)
	}
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted глушит выход, не останавливая микшер.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	speaker.Lock()
	sm.volume.Silent = muted
	speaker.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

func (sm *SoundManager) Shot()      { sm.Play(CueShot) }
func (sm *SoundManager) Hit()       { sm.Play(CueHit) }
func (sm *SoundManager) Explosion() { sm.Play(CueExplosion) }

// Play запускает звук с начала.
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	streamer := cueStreamer(cue, sampleRate)
	if streamer == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if prev, ok := sm.playing[cue]; ok {
		prev.Streamer = nil // микшер выбросит пустой Ctrl сам
	}
	ctrl := &beep.Ctrl{Streamer: streamer}
	sm.playing[cue] = ctrl
	sm.mixer.Add(ctrl)
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	if cue, ok := CueFor(e.Type); ok {
		sm.Play(cue)
	}
}

// Subscribe подписывает менеджер на все события со звуком.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.Subscribe(sm, event.ShotFired, event.PlayerHit, event.EnemyExploded)
}
