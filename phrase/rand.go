package phrase

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// pooledRand uses sync.Pool to give each goroutine its own *rand.Rand so
// operators can be called from parallel cohort workers without a mutex.
type pooledRand struct {
	pool sync.Pool
}

// newPooledRand seeds the pool. Zero seeds from the clock. Every pooled
// source is seeded from seed, but the pool may drop and re-create sources on
// any GC, so a non-zero seed does not make a run reproducible.
func newPooledRand(seed int64) *pooledRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var counter int64
	return &pooledRand{
		pool: sync.Pool{
			New: func() any {
				s := atomic.AddInt64(&counter, 1) - 1
				return rand.New(rand.NewSource(seed + s))
			},
		},
	}
}

func (pr *pooledRand) Intn(n int) int {
	r := pr.pool.Get().(*rand.Rand)
	v := r.Intn(n)
	pr.pool.Put(r)
	return v
}
