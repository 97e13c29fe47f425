package impl

import (
	"math/rand/v2"
	"sync"
	"time"

	"tourist/config"
	"tourist/internal/domain/entity"
)

// Allocator spreads a shuffled candidate pool over consecutive trip days.
type Allocator struct {
	placesPerDay int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAllocator creates an allocator. A nil rng seeds one from the clock.
func NewAllocator(placesPerDay int, rng *rand.Rand) *Allocator {
	if placesPerDay <= 0 {
		placesPerDay = 2
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	return &Allocator{
		placesPerDay: placesPerDay,
		rng:          rng,
	}
}

// NewAllocatorFromConfig is the Fx constructor.
func NewAllocatorFromConfig(cfg *config.Config) *Allocator {
	return NewAllocator(cfg.ItinerarySettings().PlacesPerDay, nil)
}

// PlacesPerDay is the per-day capacity.
func (a *Allocator) PlacesPerDay() int {
	return a.placesPerDay
}

// Allocate shuffles a copy of pool and deals it out in day order, placesPerDay at a time.
// Days that would be empty are omitted, so fewer than numDays buckets may come back.
func (a *Allocator) Allocate(pool []*entity.TouristPlace, numDays int) []entity.DayBucket {
	shuffled := make([]*entity.TouristPlace, len(pool))
	copy(shuffled, pool)

	a.mu.Lock()
	a.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	a.mu.Unlock()

	buckets := make([]entity.DayBucket, 0, numDays)
	for day := 0; day < numDays; day++ {
		start := day * a.placesPerDay
		if start >= len(shuffled) {
			break
		}
		end := min(start+a.placesPerDay, len(shuffled))

		buckets = append(buckets, entity.DayBucket{
			DayNumber: day + 1,
			Places:    shuffled[start:end:end],
		})
	}

	return buckets
}
