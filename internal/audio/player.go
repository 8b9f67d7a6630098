package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/razor-flap/internal/games/flap"
	"github.com/vovakirdan/razor-flap/internal/settings"
)

const sampleRate = beep.SampleRate(44100)

var _ flap.AudioSink = (*Player)(nil)

// Player plays the game's sound cues on the default output device. All
// methods are safe to call before Init or after it failed; they do nothing.
type Player struct {
	mu    sync.Mutex
	rate  beep.SampleRate
	mixer *beep.Mixer

	music    *beep.Ctrl
	musicVol *effects.Volume

	musicLevel float64
	sfxLevel   float64
	muted      bool
	ready      bool

	// lock guards the mixer against the speaker goroutine.
	lock, unlock func()
}

// NewPlayer creates a player with the volumes from s. Call Init to open the
// device.
func NewPlayer(s settings.Settings) *Player {
	p := &Player{
		rate:   sampleRate,
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
	p.apply(s)
	return p
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close silences everything. The speaker itself stays open; beep does not
// support reopening it in the same process.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.music, p.musicVol = nil, nil
	p.ready = false
}

// Apply updates volumes and mute from s, including the running music.
func (p *Player) Apply(s settings.Settings) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.apply(s)
	if p.music == nil {
		return
	}
	p.lock()
	p.music.Paused = p.muted
	p.musicVol.Volume, p.musicVol.Silent = gain(p.musicLevel)
	p.unlock()
}

func (p *Player) apply(s settings.Settings) {
	s = s.Normalize()
	p.musicLevel = s.MusicVolume
	p.sfxLevel = s.SFXVolume
	p.muted = s.Muted
}

// Muted reports whether output is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) sfx(build func(beep.SampleRate) beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.muted || p.sfxLevel <= 0 {
		return
	}
	s := newVolume(build(p.rate), p.sfxLevel)
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

func (p *Player) startMusic(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.lock()
	defer p.unlock()

	p.stopMusicLocked()
	p.musicVol = newVolume(s, p.musicLevel)
	p.music = &beep.Ctrl{Streamer: p.musicVol, Paused: p.muted}
	p.mixer.Add(p.music)
}

// stopMusicLocked drops the current track; the mixer removes a Ctrl whose
// streamer is nil on its next pass. Callers hold mu and the speaker lock.
func (p *Player) stopMusicLocked() {
	if p.music != nil {
		p.music.Streamer = nil
	}
	p.music, p.musicVol = nil, nil
}

func (p *Player) PlayFlapSound()    { p.sfx(flapSound) }
func (p *Player) PlayScoreSound()   { p.sfx(scoreSound) }
func (p *Player) PlayDeathSound()   { p.sfx(deathSound) }
func (p *Player) PlayUIClickSound() { p.sfx(clickSound) }

// StartGameplayMusic loops the gameplay theme until StopMusic.
func (p *Player) StartGameplayMusic() {
	rate := p.rate
	p.startMusic(newLoop(func() beep.Streamer { return gameplayTheme(rate) }))
}

// PlayGameOverMusic plays the game-over phrase once on the music channel.
func (p *Player) PlayGameOverMusic() {
	p.startMusic(gameOverTheme(p.rate))
}

// StopMusic stops whatever music is playing.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.lock()
	p.stopMusicLocked()
	p.unlock()
}
