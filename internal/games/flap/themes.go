package flap

import (
	"github.com/vovakirdan/razor-flap/internal/core"
	"github.com/vovakirdan/razor-flap/internal/registry"
)

var blockFlapFrames = []registry.Sprite{
	{
		` ▚    ▞ `,
		` ▐████▌▶`,
		` ▐████▌ `,
		`  ▀  ▀  `,
	},
	{
		`        `,
		`▄▐████▌▶`,
		`▀▐████▌▀`,
		`  ▀  ▀  `,
	},
	{
		`        `,
		` ▐████▌▶`,
		` ▞████▚ `,
		`  ▀  ▀  `,
	},
}

var blockDeathFrames = []registry.Sprite{
	{
		` *    * `,
		` ▐█××█▌ `,
		` ▐████▌ `,
		`  ▀  ▀  `,
	},
	{
		`  *  *  `,
		` ▐×██×▌ `,
		` ▐▄▄▄▄▌ `,
		`  ▀  ▀  `,
	},
	{
		`        `,
		` ▐×██×▌ `,
		` ▐▀▀▀▀▌ `,
		` ▀▀▀▀▀▀ `,
	},
}

var asciiFlapFrames = []registry.Sprite{
	{
		` \    / `,
		`  (oo)> `,
		`  /  \  `,
	},
	{
		`        `,
		`--(oo)> `,
		`  /  \  `,
	},
	{
		`        `,
		`  (oo)> `,
		` /    \ `,
	},
}

var asciiDeathFrames = []registry.Sprite{
	{
		`  *  *  `,
		`  (xx)  `,
		`  /  \  `,
	},
	{
		`   **   `,
		`  (xx)  `,
		`  \  /  `,
	},
	{
		`        `,
		`  (xx)  `,
		` _\__/_ `,
	},
}

func init() {
	// Trading candles: bearish red from above, bullish green from below.
	registry.Register(registry.Theme{
		ID:            "candle",
		Title:         "Trading Candles",
		Background:    core.ColorDefault,
		Ground:        core.ColorDarkGray,
		Player:        core.ColorBrightMagenta,
		PlayerDead:    core.ColorMagenta,
		TopBlade:      core.ColorRed,
		BotBlade:      core.ColorGreen,
		BladeEdge:     core.ColorBrightWhite,
		HUD:           core.ColorBrightWhite,
		Accent:        core.ColorBrightYellow,
		Flash:         core.ColorBrightWhite,
		Particle:      core.ColorBrightYellow,
		BarGlyph:      '█',
		BladeGlyph:    '▓',
		TopTipGlyph:   '▼',
		BotTipGlyph:   '▲',
		ParticleGlyph: '•',
		FlashGlyph:    '█',
		FlapFrames:    blockFlapFrames,
		DeathFrames:   blockDeathFrames,
	})

	registry.Register(registry.Theme{
		ID:            "classic",
		Title:         "Classic Pipes",
		Background:    core.ColorDefault,
		Ground:        core.ColorOrange,
		Player:        core.ColorBrightYellow,
		PlayerDead:    core.ColorYellow,
		TopBlade:      core.ColorGreen,
		BotBlade:      core.ColorGreen,
		BladeEdge:     core.ColorBrightGreen,
		HUD:           core.ColorWhite,
		Accent:        core.ColorBrightCyan,
		Flash:         core.ColorBrightWhite,
		Particle:      core.ColorOrange,
		BarGlyph:      '█',
		BladeGlyph:    '█',
		TopTipGlyph:   '▄',
		BotTipGlyph:   '▀',
		ParticleGlyph: '*',
		FlashGlyph:    '█',
		FlapFrames:    blockFlapFrames,
		DeathFrames:   blockDeathFrames,
	})

	registry.Register(registry.Theme{
		ID:            "mono",
		Title:         "Monochrome ASCII",
		Background:    core.ColorDefault,
		Ground:        core.ColorDefault,
		Player:        core.ColorDefault,
		PlayerDead:    core.ColorDefault,
		TopBlade:      core.ColorDefault,
		BotBlade:      core.ColorDefault,
		BladeEdge:     core.ColorDefault,
		HUD:           core.ColorDefault,
		Accent:        core.ColorDefault,
		Flash:         core.ColorDefault,
		Particle:      core.ColorDefault,
		BarGlyph:      '#',
		BladeGlyph:    '=',
		TopTipGlyph:   'v',
		BotTipGlyph:   '^',
		ParticleGlyph: '.',
		FlashGlyph:    '#',
		FlapFrames:    asciiFlapFrames,
		DeathFrames:   asciiDeathFrames,
	})
}
