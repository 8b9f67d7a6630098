package settings

import (
	"fmt"
	"strconv"
)

// BestStore persists the best score through a KV.
type BestStore struct {
	kv KV
}

// NewBestStore wraps kv.
func NewBestStore(kv KV) *BestStore {
	return &BestStore{kv: kv}
}

// LoadBest returns the stored best score, or 0 if none is stored.
// A corrupt value is reported as an error alongside 0.
func (b *BestStore) LoadBest() (int, error) {
	v, ok, err := b.kv.GetSetting(KeyBestScore)
	if err != nil {
		return 0, fmt.Errorf("settings: load best score: %w", err)
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("settings: corrupt best score %q", v)
	}
	return n, nil
}

// SaveBest stores score.
func (b *BestStore) SaveBest(score int) error {
	if err := b.kv.SetSetting(KeyBestScore, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("settings: save best score: %w", err)
	}
	return nil
}
