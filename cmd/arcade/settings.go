package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/razor-flap/internal/registry"
	"github.com/vovakirdan/razor-flap/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show stored settings",
	Long: `Show or change the settings stored in the runs database.

Keys:
  music_volume  0..1
  sfx_volume    0..1
  muted         true/false
  theme         theme ID
  player_name   up to 20 characters

Examples:
  arcade settings
  arcade settings get theme
  arcade settings set music_volume 0.3`,
	Args: cobra.NoArgs,
	RunE: runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func loadSettings() (settings.Settings, func(settings.Settings) error, func(), error) {
	store, err := openStore()
	if err != nil {
		return settings.Settings{}, nil, nil, err
	}
	s, err := settings.Load(store)
	if err != nil {
		store.Close()
		return settings.Settings{}, nil, nil, err
	}
	save := func(s settings.Settings) error { return settings.Save(store, s) }
	return s, save, func() { store.Close() }, nil
}

func settingValue(s settings.Settings, key string) (string, error) {
	switch key {
	case settings.KeyMusicVolume:
		return fmt.Sprintf("%g", s.MusicVolume), nil
	case settings.KeySFXVolume:
		return fmt.Sprintf("%g", s.SFXVolume), nil
	case settings.KeyMuted:
		return fmt.Sprintf("%t", s.Muted), nil
	case settings.KeyTheme:
		return s.Theme, nil
	case settings.KeyPlayerName:
		return s.PlayerName, nil
	}
	return "", fmt.Errorf("unknown key %q", key)
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	s, _, done, err := loadSettings()
	if err != nil {
		return err
	}
	defer done()

	for _, key := range settings.Keys() {
		v, _ := settingValue(s, key)
		fmt.Fprintf(cmd.OutOrStdout(), "%-13s %s\n", key, v)
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	s, _, done, err := loadSettings()
	if err != nil {
		return err
	}
	defer done()

	v, err := settingValue(s, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if key == settings.KeyTheme && !registry.Exists(value) {
		return fmt.Errorf("unknown theme %q, see 'arcade themes'", value)
	}

	s, save, done, err := loadSettings()
	if err != nil {
		return err
	}
	defer done()

	if err := s.Set(key, value); err != nil {
		return err
	}
	if err := save(s); err != nil {
		return err
	}
	v, _ := settingValue(s, key)
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, v)
	return nil
}
