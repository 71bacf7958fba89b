package flicker

// PoolStats counts pool traffic since creation. Acquired counts successful
// reuses only; callers that fall back to fresh construction report it with
// NoteConstructed.
type PoolStats struct {
	Acquired    int
	Released    int
	Constructed int
}

// Pool is a keyed free list of reusable instances. Each name owns an
// independent LIFO stack. After warmup, Acquire/Release are zero-alloc.
//
// Pool is not safe for concurrent use; the scene is single-threaded.
type Pool[T any] struct {
	buckets map[string][]T
	stats   PoolStats
}

// NewPool creates an empty pool.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{buckets: make(map[string][]T)}
}

// Create registers a bucket for name. Calling it again is a no-op.
func (p *Pool[T]) Create(name string) {
	if p.buckets == nil {
		p.buckets = make(map[string][]T)
	}
	if _, ok := p.buckets[name]; !ok {
		p.buckets[name] = nil
	}
}

// Acquire pops the most recently released instance for name. It reports
// false when the bucket is empty or unknown; the caller constructs a fresh
// instance in that case.
func (p *Pool[T]) Acquire(name string) (T, bool) {
	var zero T
	stack := p.buckets[name]
	if len(stack) == 0 {
		return zero, false
	}
	item := stack[len(stack)-1]
	stack[len(stack)-1] = zero
	p.buckets[name] = stack[:len(stack)-1]
	p.stats.Acquired++
	return item, true
}

// Release returns item to the bucket for name, creating the bucket if needed.
func (p *Pool[T]) Release(name string, item T) {
	if p.buckets == nil {
		p.buckets = make(map[string][]T)
	}
	p.buckets[name] = append(p.buckets[name], item)
	p.stats.Released++
}

// NoteConstructed records that a caller built a fresh instance after an
// empty Acquire.
func (p *Pool[T]) NoteConstructed() {
	p.stats.Constructed++
}

// Len returns the number of idle instances stored under name.
func (p *Pool[T]) Len(name string) int {
	return len(p.buckets[name])
}

// Stats returns the traffic counters.
func (p *Pool[T]) Stats() PoolStats {
	return p.stats
}
