package flap

import (
	"io"

	"github.com/charmbracelet/log"
)

// AudioSink receives sound cues at state transitions. Implementations must
// not block; the session calls them from the simulation tick.
type AudioSink interface {
	PlayFlapSound()
	PlayScoreSound()
	PlayDeathSound()
	StartGameplayMusic()
	StopMusic()
	PlayGameOverMusic()
	PlayUIClickSound()
}

// NopAudio is the silent AudioSink.
type NopAudio struct{}

func (NopAudio) PlayFlapSound()      {}
func (NopAudio) PlayScoreSound()     {}
func (NopAudio) PlayDeathSound()     {}
func (NopAudio) StartGameplayMusic() {}
func (NopAudio) StopMusic()          {}
func (NopAudio) PlayGameOverMusic()  {}
func (NopAudio) PlayUIClickSound()   {}

// ResultSink receives the death certificate of every finished run.
// SubmitRun is fire-and-forget and must not block the caller.
type ResultSink interface {
	SubmitRun(cert DeathCertificate)
}

// NopResults discards results.
type NopResults struct{}

func (NopResults) SubmitRun(DeathCertificate) {}

// ResultFunc adapts a function to ResultSink.
type ResultFunc func(DeathCertificate)

func (f ResultFunc) SubmitRun(cert DeathCertificate) { f(cert) }

// BestScoreStore persists the best score across sessions.
type BestScoreStore interface {
	LoadBest() (int, error)
	SaveBest(score int) error
}

// memoryBest keeps the best score for the life of the session only.
type memoryBest struct {
	best int
}

func (m *memoryBest) LoadBest() (int, error) { return m.best, nil }
func (m *memoryBest) SaveBest(score int) error {
	m.best = score
	return nil
}

// Hooks bundles the session's collaborators. Nil fields are replaced by
// no-op implementations.
type Hooks struct {
	Audio   AudioSink
	Results ResultSink
	Best    BestScoreStore
	Logger  *log.Logger
}

func (h Hooks) withDefaults() Hooks {
	if h.Audio == nil {
		h.Audio = NopAudio{}
	}
	if h.Results == nil {
		h.Results = NopResults{}
	}
	if h.Best == nil {
		h.Best = &memoryBest{}
	}
	if h.Logger == nil {
		h.Logger = log.New(io.Discard)
	}
	return h
}
