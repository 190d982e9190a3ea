package storage

import (
	"github.com/marralek/glidebird/internal/sim"
)

// BestStore binds a Store to a single profile, satisfying sim.ScoreStore so
// the simulation can persist best scores without knowing about SQL.
type BestStore struct {
	store   *Store
	profile string
}

// NewBestStore creates a per-profile best-score adapter.
func NewBestStore(store *Store, profile string) *BestStore {
	if profile == "" {
		profile = DefaultProfile
	}
	return &BestStore{store: store, profile: profile}
}

// ReadBest implements sim.ScoreStore.
func (b *BestStore) ReadBest() (int, error) {
	return b.store.Best(b.profile)
}

// WriteBest implements sim.ScoreStore.
func (b *BestStore) WriteBest(score int) error {
	return b.store.SetBest(b.profile, score)
}

var _ sim.ScoreStore = (*BestStore)(nil)
