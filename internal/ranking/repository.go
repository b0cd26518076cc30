package ranking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"kingdom-quest/internal/storage"
)

var (
	// ErrNotFound means no leaderboard has been persisted yet.
	ErrNotFound = errors.New("leaderboard not found")
	// ErrMalformed means persisted data exists but cannot be decoded.
	ErrMalformed = errors.New("leaderboard data malformed")
)

// Record is one finished adventure on the leaderboard.
type Record struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Currency int    `json:"currency"`
	Date     string `json:"date"`
}

// Repository loads and saves the whole leaderboard collection.
type Repository interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}

// MemoryRepository keeps the collection in process memory.
type MemoryRepository struct {
	mu      sync.Mutex
	records []Record
	saved   bool
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository { return &MemoryRepository{} }

// Load returns a copy of the saved records, or ErrNotFound before the first Save.
func (m *MemoryRepository) Load(_ context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		return nil, ErrNotFound
	}
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Save replaces the stored records with a copy of records.
func (m *MemoryRepository) Save(_ context.Context, records []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make([]Record, len(records))
	copy(m.records, records)
	m.saved = true
	return nil
}

// DefaultKey names the leaderboard entry in a key-value store.
const DefaultKey = "leaderboard"

// KVRepository stores the collection as a JSON array under one key.
type KVRepository struct {
	Store storage.KV
	Key   string
}

// NewKVRepository returns a repository over store. An empty key selects DefaultKey.
func NewKVRepository(store storage.KV, key string) *KVRepository {
	if key == "" {
		key = DefaultKey
	}
	return &KVRepository{Store: store, Key: key}
}

// Load decodes the JSON array stored under the key.
func (r *KVRepository) Load(ctx context.Context) ([]Record, error) {
	data, err := r.Store.Get(ctx, r.Key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load leaderboard %q: %w", r.Key, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return records, nil
}

// Save encodes records as a JSON array and stores it under the key.
func (r *KVRepository) Save(ctx context.Context, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if err := r.Store.Put(ctx, r.Key, data); err != nil {
		return fmt.Errorf("save leaderboard %q: %w", r.Key, err)
	}
	return nil
}
