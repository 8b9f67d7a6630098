package settings

import (
	"errors"
	"strings"
	"testing"
)

type failingKV struct{}

var errStore = errors.New("store offline")

func (failingKV) GetSetting(string) (string, bool, error) { return "", false, errStore }
func (failingKV) SetSetting(string, string) error         { return errStore }

func TestLoadEmptyUsesDefaults(t *testing.T) {
	s, err := Load(NewMemoryKV())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Default() {
		t.Errorf("Load(empty) = %+v, want %+v", s, Default())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	in := Settings{MusicVolume: 0.25, SFXVolume: 1, Muted: true, Theme: "mono", PlayerName: "ada"}
	if err := Save(kv, in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out, err := Load(kv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != in {
		t.Errorf("Load = %+v, want %+v", out, in)
	}
}

func TestLoadToleratesInvalidValues(t *testing.T) {
	kv := NewMemoryKV()
	_ = kv.SetSetting(KeyMusicVolume, "loud")
	_ = kv.SetSetting(KeySFXVolume, "7")
	_ = kv.SetSetting(KeyMuted, "sometimes")
	_ = kv.SetSetting(KeyTheme, "")

	s, err := Load(kv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.MusicVolume != Default().MusicVolume {
		t.Errorf("MusicVolume = %v, want default", s.MusicVolume)
	}
	if s.SFXVolume != 1 {
		t.Errorf("SFXVolume = %v, want clamped 1", s.SFXVolume)
	}
	if s.Muted {
		t.Error("Muted should keep default false")
	}
	if s.Theme != DefaultTheme {
		t.Errorf("Theme = %q, want %q", s.Theme, DefaultTheme)
	}
}

func TestLoadStoreError(t *testing.T) {
	if _, err := Load(failingKV{}); !errors.Is(err, errStore) {
		t.Errorf("Load error = %v, want wrapped errStore", err)
	}
	if err := Save(failingKV{}, Default()); !errors.Is(err, errStore) {
		t.Errorf("Save error = %v, want wrapped errStore", err)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  bob  ", "bob"},
		{"", ""},
		{strings.Repeat("x", 25), strings.Repeat("x", 20)},
		{strings.Repeat("ж", 21), strings.Repeat("ж", 20)},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSet(t *testing.T) {
	s := Default()
	tests := []struct {
		key, value string
		wantErr    bool
	}{
		{KeyMusicVolume, "0.1", false},
		{KeySFXVolume, "-2", false},
		{KeyMuted, "true", false},
		{KeyTheme, "classic", false},
		{KeyPlayerName, "grace", false},
		{KeyMuted, "nah", true},
		{"volume", "1", true},
	}
	for _, tt := range tests {
		err := s.Set(tt.key, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Set(%q, %q) err = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
		}
	}
	want := Settings{MusicVolume: 0.1, SFXVolume: 0, Muted: true, Theme: "classic", PlayerName: "grace"}
	if s != want {
		t.Errorf("after Set = %+v, want %+v", s, want)
	}
}

func TestBestStore(t *testing.T) {
	kv := NewMemoryKV()
	b := NewBestStore(kv)

	n, err := b.LoadBest()
	if err != nil || n != 0 {
		t.Fatalf("LoadBest(empty) = %d, %v", n, err)
	}
	if err := b.SaveBest(42); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}
	if n, _ := b.LoadBest(); n != 42 {
		t.Errorf("LoadBest = %d, want 42", n)
	}

	_ = kv.SetSetting(KeyBestScore, "garbage")
	if n, err := b.LoadBest(); err == nil || n != 0 {
		t.Errorf("corrupt LoadBest = %d, %v; want 0 and error", n, err)
	}

	if _, err := NewBestStore(failingKV{}).LoadBest(); !errors.Is(err, errStore) {
		t.Errorf("LoadBest error = %v, want errStore", err)
	}
}
