// Package settings holds user preferences and the best score, persisted as
// flat key/value strings.
package settings

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// Keys under which settings are stored.
const (
	KeyMusicVolume = "music_volume"
	KeySFXVolume   = "sfx_volume"
	KeyMuted       = "muted"
	KeyTheme       = "theme"
	KeyPlayerName  = "player_name"
	KeyBestScore   = "best_score"
)

// MaxPlayerName is the longest stored player name, in runes.
const MaxPlayerName = 20

// DefaultTheme is used when no theme is stored.
const DefaultTheme = "candle"

// KV is a flat string store. GetSetting returns ok=false for a missing key.
type KV interface {
	GetSetting(key string) (value string, ok bool, err error)
	SetSetting(key, value string) error
}

// Settings is the user preference bundle.
type Settings struct {
	MusicVolume float64 // 0..1
	SFXVolume   float64 // 0..1
	Muted       bool
	Theme       string
	PlayerName  string
}

// Default returns the preferences used on first launch.
func Default() Settings {
	return Settings{
		MusicVolume: 0.6,
		SFXVolume:   0.8,
		Theme:       DefaultTheme,
	}
}

// Keys lists every key Save writes, in a stable order.
func Keys() []string {
	return []string{KeyMusicVolume, KeySFXVolume, KeyMuted, KeyTheme, KeyPlayerName}
}

// Normalize clamps volumes and trims the player name.
func (s Settings) Normalize() Settings {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SFXVolume = clampVolume(s.SFXVolume)
	s.PlayerName = NormalizeName(s.PlayerName)
	if s.Theme == "" {
		s.Theme = DefaultTheme
	}
	return s
}

// NormalizeName trims whitespace and truncates to MaxPlayerName runes.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) <= MaxPlayerName {
		return name
	}
	return string([]rune(name)[:MaxPlayerName])
}

// Load reads settings from kv. Missing or unparsable values keep their
// defaults; only a store error is returned.
func Load(kv KV) (Settings, error) {
	s := Default()

	get := func(key string) (string, bool, error) {
		v, ok, err := kv.GetSetting(key)
		if err != nil {
			return "", false, fmt.Errorf("settings: load %s: %w", key, err)
		}
		return v, ok, nil
	}

	if v, ok, err := get(KeyMusicVolume); err != nil {
		return Default(), err
	} else if ok {
		if f, perr := strconv.ParseFloat(v, 64); perr == nil {
			s.MusicVolume = f
		}
	}
	if v, ok, err := get(KeySFXVolume); err != nil {
		return Default(), err
	} else if ok {
		if f, perr := strconv.ParseFloat(v, 64); perr == nil {
			s.SFXVolume = f
		}
	}
	if v, ok, err := get(KeyMuted); err != nil {
		return Default(), err
	} else if ok {
		if b, perr := strconv.ParseBool(v); perr == nil {
			s.Muted = b
		}
	}
	if v, ok, err := get(KeyTheme); err != nil {
		return Default(), err
	} else if ok && v != "" {
		s.Theme = v
	}
	if v, ok, err := get(KeyPlayerName); err != nil {
		return Default(), err
	} else if ok {
		s.PlayerName = v
	}

	return s.Normalize(), nil
}

// Save writes every setting to kv.
func Save(kv KV, s Settings) error {
	s = s.Normalize()
	pairs := [][2]string{
		{KeyMusicVolume, strconv.FormatFloat(s.MusicVolume, 'f', -1, 64)},
		{KeySFXVolume, strconv.FormatFloat(s.SFXVolume, 'f', -1, 64)},
		{KeyMuted, strconv.FormatBool(s.Muted)},
		{KeyTheme, s.Theme},
		{KeyPlayerName, s.PlayerName},
	}
	for _, p := range pairs {
		if err := kv.SetSetting(p[0], p[1]); err != nil {
			return fmt.Errorf("settings: save %s: %w", p[0], err)
		}
	}
	return nil
}

// Set parses and applies one key, for the CLI.
func (s *Settings) Set(key, value string) error {
	switch key {
	case KeyMusicVolume, KeySFXVolume:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("settings: %s: %w", key, err)
		}
		if key == KeyMusicVolume {
			s.MusicVolume = clampVolume(f)
		} else {
			s.SFXVolume = clampVolume(f)
		}
	case KeyMuted:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("settings: %s: %w", key, err)
		}
		s.Muted = b
	case KeyTheme:
		s.Theme = value
	case KeyPlayerName:
		s.PlayerName = NormalizeName(value)
	default:
		return fmt.Errorf("settings: unknown key %q", key)
	}
	return nil
}

func clampVolume(v float64) float64 {
	if v != v || v < 0 { // NaN or negative
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MemoryKV is an in-memory KV, safe for concurrent use.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) GetSetting(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) SetSetting(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
