// Package registry provides a global registry of visual themes.
// Themes register themselves in init() functions, allowing the platform
// to discover and select them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/razor-flap/internal/core"
)

// ErrUnknownTheme is returned by Get for an unregistered theme ID.
var ErrUnknownTheme = errors.New("registry: unknown theme")

// Sprite is one glyph frame, a block of equal-width text rows.
// The space rune is transparent.
type Sprite []string

// Theme describes colours and glyph frames used by the renderer.
// A nil or empty frame list means the asset is unavailable; the renderer
// skips that sprite and draws everything else.
type Theme struct {
	ID    string
	Title string

	Background core.Color
	Ground     core.Color
	Player     core.Color
	PlayerDead core.Color
	TopBlade   core.Color // obstacle hanging from the ceiling
	BotBlade   core.Color // obstacle rising from the floor
	BladeEdge  core.Color
	HUD        core.Color
	Accent     core.Color
	Flash      core.Color
	Particle   core.Color

	BarGlyph      rune // candle body between the blade and the field edge
	BladeGlyph    rune
	TopTipGlyph   rune // cutting edge of the top razor, facing down
	BotTipGlyph   rune // cutting edge of the bottom razor, facing up
	ParticleGlyph rune
	FlashGlyph    rune

	FlapFrames  []Sprite
	DeathFrames []Sprite
}

// ThemeInfo contains metadata about a registered theme.
type ThemeInfo struct {
	ID    string
	Title string
}

var (
	themes = make(map[string]Theme)
	mu     sync.RWMutex
)

// Register adds a theme to the registry.
// Typically called from an init() function.
// Panics if a theme with the same ID is already registered.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()

	if t.ID == "" {
		panic("registry: theme without ID")
	}
	if _, exists := themes[t.ID]; exists {
		panic(fmt.Sprintf("registry: theme %q already registered", t.ID))
	}

	themes[t.ID] = t
}

// List returns information about all registered themes, sorted by ID.
func List() []ThemeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ThemeInfo, 0, len(themes))
	for id, t := range themes {
		result = append(result, ThemeInfo{
			ID:    id,
			Title: t.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the theme registered under id.
func Get(id string) (Theme, error) {
	mu.RLock()
	defer mu.RUnlock()

	t, ok := themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("%w %q", ErrUnknownTheme, id)
	}

	return t, nil
}

// Exists checks if a theme with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := themes[id]
	return ok
}

// Next returns the ID following id in sorted order, wrapping around.
// An unknown id yields the first theme; an empty registry yields "".
func Next(id string) string {
	list := List()
	if len(list) == 0 {
		return ""
	}
	for i, info := range list {
		if info.ID == id {
			return list[(i+1)%len(list)].ID
		}
	}
	return list[0].ID
}

// unregister removes a theme; used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(themes, id)
}
