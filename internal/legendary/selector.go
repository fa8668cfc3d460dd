// Package legendary picks the legendary species featured by the legendary
// gacha. The pick rotates daily and is reproducible: the catalog's eligible
// species are shuffled once per cycle under a seed derived from the cycle
// number, and each day of the cycle takes the next position.
//
// The last pick is cached in a key-value store. A cached species that
// disagrees with the computed one wins, which lets challenge rules pin a
// legendary by writing the cache directly.
package legendary

import (
	"context"
	"math/rand/v2"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/hatchery/internal/rng"
	"github.com/abhisek/hatchery/internal/species"
)

const (
	// MinStarterCost and MaxStarterCost bound the starter costs of
	// species eligible for the rotation.
	MinStarterCost = 8
	MaxStarterCost = 9

	// SeedText is mixed with the cycle number to seed each shuffle.
	SeedText = "1073741824"

	dayMillis = int64(24 * time.Hour / time.Millisecond)
)

// Cache keys.
const (
	KeySpecies = "legendaryGachaSpecies"
	KeyLastDay = "lastDay"
)

// Catalog is the species source the pool is built from.
type Catalog interface {
	StarterCosts() []species.StarterCost
	Get(id species.ID) (species.Species, bool)
}

// SeededRunner runs fn under a scoped reseed of the shared engine.
type SeededRunner interface {
	WithSeedOffset(offset int, seed string, fn func(r *rand.Rand))
}

// KV is the persistent cache.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Selector resolves the featured legendary for a point in time.
type Selector struct {
	catalog Catalog
	rng     SeededRunner
	kv      KV
	loc     *time.Location
	logger  *zap.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithLocation sets the time zone used for the cache's day-of-month check.
// Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(s *Selector) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Selector) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Selector.
func New(catalog Catalog, r SeededRunner, kv KV, opts ...Option) *Selector {
	s := &Selector{
		catalog: catalog,
		rng:     r,
		kv:      kv,
		loc:     time.UTC,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pool returns the species eligible for the rotation in catalog order.
func (s *Selector) Pool() []species.ID {
	var pool []species.ID
	for _, sc := range s.catalog.StarterCosts() {
		if sc.Cost < MinStarterCost || sc.Cost > MaxStarterCost {
			continue
		}
		if sp, ok := s.catalog.Get(sc.ID); ok && sp.IsObtainable() {
			pool = append(pool, sc.ID)
		}
	}
	return pool
}

// Compute returns the scheduled legendary for t, ignoring the cache.
func (s *Selector) Compute(t time.Time) (species.ID, error) {
	pool := s.Pool()
	if len(pool) == 0 {
		return 0, ErrEmptyPool
	}
	return s.pick(pool, DayIndex(t)), nil
}

func (s *Selector) pick(pool []species.ID, day int64) species.ID {
	n := int64(len(pool))
	cycle := floorDiv(day, n)
	index := day - cycle*n

	var picked species.ID
	s.rng.WithSeedOffset(int(cycle), SeedText, func(r *rand.Rand) {
		picked = rng.Shuffle(r, pool)[index]
	})
	return picked
}

// SpeciesFor returns the featured legendary for t. The cache is refreshed
// when it is empty or was written on a different day of the month; if it
// then holds a species other than the scheduled one, the cached species is
// returned.
func (s *Selector) SpeciesFor(ctx context.Context, t time.Time) (species.ID, error) {
	fresh, err := s.Compute(t)
	if err != nil {
		return 0, err
	}

	cached, err := s.kv.Get(ctx, KeySpecies)
	if err != nil {
		return 0, err
	}
	lastDay, err := s.kv.Get(ctx, KeyLastDay)
	if err != nil {
		return 0, err
	}

	// Day of month only: a cache left untouched for exactly a month is
	// treated as current.
	today := s.dayOfMonth(t)
	if cached == "" || lastDay != today {
		if err := s.write(ctx, fresh, today); err != nil {
			return 0, err
		}
		s.logger.Debug("legendary cache refreshed",
			zap.Int("species", int(fresh)),
			zap.String("day", today),
		)
		return fresh, nil
	}

	if cached == fresh.String() {
		return fresh, nil
	}

	id, err := strconv.Atoi(cached)
	if err != nil {
		return 0, &CorruptCacheError{Value: cached, Err: err}
	}
	s.logger.Info("legendary override in effect",
		zap.Int("cached", id),
		zap.Int("scheduled", int(fresh)),
	)
	return species.ID(id), nil
}

// Pin makes id the featured legendary for the rest of t's day.
func (s *Selector) Pin(ctx context.Context, id species.ID, t time.Time) error {
	return s.write(ctx, id, s.dayOfMonth(t))
}

// Reset clears the cache.
func (s *Selector) Reset(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeySpecies); err != nil {
		return err
	}
	return s.kv.Delete(ctx, KeyLastDay)
}

// Rotation is one day of the schedule.
type Rotation struct {
	Day     time.Time // midnight UTC
	Species species.ID
}

// Upcoming returns the scheduled legendaries for days consecutive days
// starting with from's day. The cache is not consulted.
func (s *Selector) Upcoming(from time.Time, days int) ([]Rotation, error) {
	pool := s.Pool()
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	start := DayIndex(from)
	out := make([]Rotation, 0, days)
	for i := 0; i < days; i++ {
		day := start + int64(i)
		out = append(out, Rotation{
			Day:     time.UnixMilli(day * dayMillis).UTC(),
			Species: s.pick(pool, day),
		})
	}
	return out, nil
}

func (s *Selector) write(ctx context.Context, id species.ID, day string) error {
	if err := s.kv.Set(ctx, KeySpecies, id.String()); err != nil {
		return err
	}
	return s.kv.Set(ctx, KeyLastDay, day)
}

func (s *Selector) dayOfMonth(t time.Time) string {
	return strconv.Itoa(t.In(s.loc).Day())
}

// DayIndex returns the number of whole UTC days between the epoch and t.
func DayIndex(t time.Time) int64 {
	return floorDiv(t.UnixMilli(), dayMillis)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
