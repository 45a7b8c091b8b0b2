package token_bucket

import (
	"sync"
	"time"
)

type KeyedOption func(*Keyed)

func WithKeyedClock(now func() time.Time) KeyedOption {
	return func(k *Keyed) {
		k.now = now
	}
}

// Keyed держит отдельное ведро на каждый ключ (например, IP клиента).
// Ведра, не использованные дольше idleTTL, удаляются при очередном Allow.
type Keyed struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	now        func() time.Time

	mu        sync.Mutex
	buckets   map[string]*keyedEntry
	lastSweep time.Time
}

type keyedEntry struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyed(capacity int, refillRate float64, idleTTL time.Duration, opts ...KeyedOption) *Keyed {
	k := &Keyed{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		now:        time.Now,
		buckets:    make(map[string]*keyedEntry),
	}
	for _, opt := range opts {
		opt(k)
	}
	k.lastSweep = k.now()
	return k
}

func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	if k.idleTTL > 0 && now.Sub(k.lastSweep) >= k.idleTTL {
		k.sweep(now)
	}

	entry, ok := k.buckets[key]
	if !ok {
		entry = &keyedEntry{
			bucket: NewTokenBucket(k.capacity, k.refillRate, WithClock(k.now)),
		}
		k.buckets[key] = entry
	}
	entry.lastSeen = now

	return entry.bucket.Allow()
}

// Len количество живых ведер
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *Keyed) sweep(now time.Time) {
	for key, entry := range k.buckets {
		if now.Sub(entry.lastSeen) >= k.idleTTL {
			delete(k.buckets, key)
		}
	}
	k.lastSweep = now
}
