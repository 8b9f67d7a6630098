package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/razor-flap/internal/registry"
	"github.com/vovakirdan/razor-flap/internal/settings"
)

const volumeStep = 0.1

type settingsRow int

const (
	rowMusicVolume settingsRow = iota
	rowSFXVolume
	rowMuted
	rowTheme
	rowPlayerName
	rowCount
)

// PanelResult tells the game what a key press in the settings panel did.
type PanelResult int

const (
	PanelNone     PanelResult = iota
	PanelChanged              // a setting changed and should be applied
	PanelEditName             // the player name row was chosen
	PanelClosed
)

// PanelKeyMap defines the key bindings of the settings panel.
type PanelKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Back   key.Binding
}

// DefaultPanelKeyMap returns default key bindings.
func DefaultPanelKeyMap() PanelKeyMap {
	return PanelKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("left", "less")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "+"), key.WithHelp("right", "more")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "toggle")),
		Back:   key.NewBinding(key.WithKeys("esc", "b", "s"), key.WithHelp("esc", "back")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k PanelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k PanelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// SettingsPanel edits a copy of the settings; the game reads it back with
// Settings after PanelChanged.
type SettingsPanel struct {
	settings settings.Settings
	cursor   settingsRow
	keys     PanelKeyMap
}

// NewSettingsPanel opens the panel on s.
func NewSettingsPanel(s settings.Settings) SettingsPanel {
	return SettingsPanel{settings: s, keys: DefaultPanelKeyMap()}
}

// Settings returns the edited settings.
func (p SettingsPanel) Settings() settings.Settings {
	return p.settings
}

// Keys returns the bindings, for help rendering.
func (p SettingsPanel) Keys() PanelKeyMap {
	return p.keys
}

// Update handles one key press.
func (p SettingsPanel) Update(msg tea.KeyMsg) (SettingsPanel, PanelResult) {
	switch {
	case key.Matches(msg, p.keys.Back):
		return p, PanelClosed
	case key.Matches(msg, p.keys.Up):
		p.cursor = (p.cursor + rowCount - 1) % rowCount
	case key.Matches(msg, p.keys.Down):
		p.cursor = (p.cursor + 1) % rowCount
	case key.Matches(msg, p.keys.Left):
		return p.adjust(-1)
	case key.Matches(msg, p.keys.Right):
		return p.adjust(1)
	case key.Matches(msg, p.keys.Select):
		if p.cursor == rowPlayerName {
			return p, PanelEditName
		}
		return p.adjust(1)
	}
	return p, PanelNone
}

func (p SettingsPanel) adjust(dir int) (SettingsPanel, PanelResult) {
	switch p.cursor {
	case rowMusicVolume:
		p.settings.MusicVolume = stepVolume(p.settings.MusicVolume, dir)
	case rowSFXVolume:
		p.settings.SFXVolume = stepVolume(p.settings.SFXVolume, dir)
	case rowMuted:
		p.settings.Muted = !p.settings.Muted
	case rowTheme:
		p.settings.Theme = cycleTheme(p.settings.Theme, dir)
	case rowPlayerName:
		return p, PanelNone
	}
	return p, PanelChanged
}

func stepVolume(v float64, dir int) float64 {
	v = math.Round((v+float64(dir)*volumeStep)*10) / 10
	return math.Max(0, math.Min(1, v))
}

func cycleTheme(id string, dir int) string {
	if dir > 0 {
		return registry.Next(id)
	}
	themes := registry.List()
	if len(themes) == 0 {
		return id
	}
	for i, t := range themes {
		if t.ID == id {
			return themes[(i+len(themes)-1)%len(themes)].ID
		}
	}
	return themes[len(themes)-1].ID
}

func volumeBar(v float64) string {
	n := int(math.Round(v * 10))
	return "[" + strings.Repeat("#", n) + strings.Repeat(".", 10-n) + fmt.Sprintf("] %3d%%", int(math.Round(v*100)))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// View renders the panel centred in a width x height area.
func (p SettingsPanel) View(width, height int) string {
	name := p.settings.PlayerName
	if name == "" {
		name = "anonymous"
	}
	themeTitle := p.settings.Theme
	if t, err := registry.Get(p.settings.Theme); err == nil {
		themeTitle = t.Title
	}

	rows := [rowCount][2]string{
		rowMusicVolume: {"Music volume", volumeBar(p.settings.MusicVolume)},
		rowSFXVolume:   {"SFX volume", volumeBar(p.settings.SFXVolume)},
		rowMuted:       {"Muted", onOff(p.settings.Muted)},
		rowTheme:       {"Theme", "< " + themeTitle + " >"},
		rowPlayerName:  {"Player name", name},
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	normalStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("SETTINGS"))
	b.WriteString("\n\n")
	for i, r := range rows {
		line := fmt.Sprintf(" %-13s %-18s ", r[0], r[1])
		if settingsRow(i) == p.cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(normalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(strings.TrimRight(b.String(), "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
