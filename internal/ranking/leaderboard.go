package ranking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// MaxEntries caps the persisted leaderboard.
const MaxEntries = 10

// seedRecords is shown while nothing has been persisted. It is never saved.
var seedRecords = []Record{
	{Name: "Aldric", Score: 820, Currency: 95, Date: "14/02/2024"},
	{Name: "Brienne", Score: 745, Currency: 60, Date: "02/03/2024"},
	{Name: "Cedric", Score: 690, Currency: 120, Date: "19/03/2024"},
	{Name: "Dagny", Score: 610, Currency: 40, Date: "05/04/2024"},
	{Name: "Elowen", Score: 540, Currency: 75, Date: "21/04/2024"},
	{Name: "Fenwick", Score: 455, Currency: 30, Date: "09/05/2024"},
	{Name: "Greta", Score: 380, Currency: 55, Date: "27/05/2024"},
	{Name: "Halvard", Score: 265, Currency: 20, Date: "11/06/2024"},
	{Name: "Isolde", Score: 115, Currency: 10, Date: "30/06/2024"},
	{Name: "Jorund", Score: 0, Currency: 5, Date: "15/07/2024"},
}

// Seed returns a copy of the fixed example leaderboard.
func Seed() []Record {
	out := make([]Record, len(seedRecords))
	copy(out, seedRecords)
	return out
}

// Leaderboard records finished adventures in a Repository, keeping at most
// MaxEntries sorted by score, highest first. A mutex serialises writers that
// share one leaderboard.
type Leaderboard struct {
	mu         sync.Mutex
	repo       Repository
	now        func() time.Time
	formatDate func(time.Time) string
	logger     *slog.Logger
}

// Option customises a Leaderboard.
type Option func(*Leaderboard)

// WithClock replaces time.Now for record dates.
func WithClock(now func() time.Time) Option {
	return func(l *Leaderboard) { l.now = now }
}

// WithDateFormat sets how record dates are rendered.
func WithDateFormat(format func(time.Time) string) Option {
	return func(l *Leaderboard) { l.formatDate = format }
}

// WithLogger sets the logger used for fallbacks and persistence warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Leaderboard) { l.logger = logger }
}

// NewLeaderboard returns a leaderboard persisted through repo.
func NewLeaderboard(repo Repository, opts ...Option) *Leaderboard {
	l := &Leaderboard{
		repo:       repo,
		now:        time.Now,
		formatDate: func(t time.Time) string { return t.Format("02/01/2006") },
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewRecord stamps a record with today's date.
func (l *Leaderboard) NewRecord(name string, score, currency int) Record {
	return Record{Name: name, Score: score, Currency: currency, Date: l.formatDate(l.now())}
}

// Load returns the persisted leaderboard. When nothing is persisted, or the
// stored data is malformed, it returns the seed set instead.
func (l *Leaderboard) Load(ctx context.Context) ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.loadPersisted(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		return Seed(), nil
	}
	return records, nil
}

// Record appends r to the persisted collection, re-sorts it, keeps the top
// MaxEntries and saves the result, which is also returned.
func (l *Leaderboard) Record(ctx context.Context, r Record) ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.loadPersisted(ctx)
	if err != nil {
		return nil, err
	}
	records = normalize(append(records, r))
	if err := l.repo.Save(ctx, records); err != nil {
		return nil, fmt.Errorf("record %s: %w", r.Name, err)
	}
	l.logger.Info("leaderboard entry recorded", "name", r.Name, "score", r.Score, "entries", len(records))
	return records, nil
}

// loadPersisted returns nil (not an error) when there is nothing usable.
func (l *Leaderboard) loadPersisted(ctx context.Context) ([]Record, error) {
	records, err := l.repo.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil, nil
	case errors.Is(err, ErrMalformed):
		l.logger.Warn("leaderboard: discarding malformed data", "error", err)
		return nil, nil
	case err != nil:
		return nil, err
	}
	if records == nil {
		records = []Record{}
	}
	return normalize(records), nil
}

// normalize sorts by score descending, keeping insertion order for ties,
// and truncates to MaxEntries.
func normalize(records []Record) []Record {
	sort.SliceStable(records, func(i, j int) bool { return records[i].Score > records[j].Score })
	if len(records) > MaxEntries {
		records = records[:MaxEntries]
	}
	return records
}

// Position returns the 1-based place of r in records, or 0 when it is absent.
func Position(records []Record, r Record) int {
	for i, rec := range records {
		if rec == r {
			return i + 1
		}
	}
	return 0
}
