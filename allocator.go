package gli

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Allocator provides the raw byte buffers behind storages.
//
// Alloc returns a buffer of exactly n bytes. When zero is true the buffer
// must be zero-filled; otherwise its contents are unspecified. Free is called
// exactly once per buffer returned by Alloc, when the owning storage's last
// reference is released.
//
// Allocators must be safe for concurrent use.
type Allocator interface {
	Alloc(n int, zero bool) ([]byte, error)
	Free(buf []byte)
}

// ErrBudgetExceeded is wrapped together with ErrAllocation when a
// BudgetAllocator rejects a request.
var ErrBudgetExceeded = errors.New("gli: memory budget exceeded")

// HeapAllocator allocates with make and leaves reclamation to the runtime.
type HeapAllocator struct{}

// Alloc returns a new zeroed buffer of n bytes.
func (HeapAllocator) Alloc(n int, _ bool) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocation, n)
	}
	return make([]byte, n), nil
}

// Free drops the buffer.
func (HeapAllocator) Free([]byte) {}

// PoolAllocator reuses buffers of identical length.
//
// Buffers are grouped by their byte length, so textures that are created and
// released repeatedly with the same format and extent recycle memory instead
// of producing garbage.
//
// PoolAllocator is safe for concurrent use.
type PoolAllocator struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
}

// NewPoolAllocator creates a pool that keeps at most maxPerBucket free
// buffers of each length. A maxPerBucket of 0 means unlimited.
func NewPoolAllocator(maxPerBucket int) *PoolAllocator {
	return &PoolAllocator{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Alloc returns a pooled buffer of n bytes, or a new one if none is free.
// Reused buffers are cleared when zero is true.
func (p *PoolAllocator) Alloc(n int, zero bool) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocation, n)
	}

	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		if zero {
			clear(buf)
		}
		return buf, nil
	}
	p.mu.Unlock()

	return make([]byte, n), nil
}

// Free returns buf to its bucket, or discards it if the bucket is full.
func (p *PoolAllocator) Free(buf []byte) {
	if buf == nil {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf)
}

// Pooled returns the number of free buffers of length n held by the pool.
func (p *PoolAllocator) Pooled(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

// MemoryStats contains allocation statistics of a BudgetAllocator.
type MemoryStats struct {
	// TotalBytes is the budget in bytes.
	TotalBytes uint64

	// UsedBytes is the number of bytes currently allocated.
	UsedBytes uint64

	// AvailableBytes is the remaining budget.
	AvailableBytes uint64

	// Allocations is the number of live buffers.
	Allocations int

	// Rejections is the total number of refused requests.
	Rejections uint64

	// Utilization is the fraction of the budget in use (0.0 to 1.0).
	Utilization float64
}

// String returns a human-readable summary of s.
func (s MemoryStats) String() string {
	return fmt.Sprintf("Memory[%.1f%% used, %d/%d KB, %d buffers, %d rejected]",
		s.Utilization*100,
		s.UsedBytes/1024,
		s.TotalBytes/1024,
		s.Allocations,
		s.Rejections)
}

// BudgetAllocator enforces a byte budget on top of another allocator.
//
// BudgetAllocator is safe for concurrent use.
type BudgetAllocator struct {
	mu          sync.Mutex
	next        Allocator
	budgetBytes uint64
	usedBytes   uint64
	live        int
	rejections  atomic.Uint64
}

// NewBudgetAllocator wraps next with a budget of budgetBytes.
// A nil next uses HeapAllocator.
func NewBudgetAllocator(next Allocator, budgetBytes uint64) *BudgetAllocator {
	if next == nil {
		next = HeapAllocator{}
	}
	return &BudgetAllocator{next: next, budgetBytes: budgetBytes}
}

// Alloc reserves n bytes from the budget and allocates them from the
// wrapped allocator.
func (b *BudgetAllocator) Alloc(n int, zero bool) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocation, n)
	}
	size := uint64(n)

	b.mu.Lock()
	if size > b.budgetBytes-b.usedBytes {
		used := b.usedBytes
		b.mu.Unlock()
		b.rejections.Add(1)
		Logger().Warn("gli: allocation rejected", "bytes", n, "used", used, "budget", b.budgetBytes)
		return nil, fmt.Errorf("%w: %w: %d bytes requested, %d of %d in use",
			ErrAllocation, ErrBudgetExceeded, n, used, b.budgetBytes)
	}
	b.usedBytes += size
	b.live++
	b.mu.Unlock()

	buf, err := b.next.Alloc(n, zero)
	if err != nil {
		b.mu.Lock()
		b.usedBytes -= size
		b.live--
		b.mu.Unlock()
		return nil, err
	}
	return buf, nil
}

// Free returns buf's bytes to the budget and frees it in the wrapped
// allocator.
func (b *BudgetAllocator) Free(buf []byte) {
	if buf == nil {
		return
	}
	b.mu.Lock()
	b.usedBytes -= uint64(len(buf))
	b.live--
	b.mu.Unlock()
	b.next.Free(buf)
}

// Stats returns current allocation statistics.
func (b *BudgetAllocator) Stats() MemoryStats {
	b.mu.Lock()
	defer b.mu.Unlock()

	stats := MemoryStats{
		TotalBytes:     b.budgetBytes,
		UsedBytes:      b.usedBytes,
		AvailableBytes: b.budgetBytes - b.usedBytes,
		Allocations:    b.live,
		Rejections:     b.rejections.Load(),
	}
	if b.budgetBytes > 0 {
		stats.Utilization = float64(b.usedBytes) / float64(b.budgetBytes)
	}
	return stats
}

// defaultAllocator is used by constructors without WithAllocator.
var defaultAllocator atomic.Pointer[allocatorBox]

// allocatorBox lets an interface value live behind an atomic.Pointer.
type allocatorBox struct{ a Allocator }

func init() {
	defaultAllocator.Store(&allocatorBox{HeapAllocator{}})
}

// SetDefaultAllocator replaces the allocator used by constructors that are
// not given WithAllocator. Pass nil to restore HeapAllocator.
//
// Storages keep the allocator they were created with, so buffers are always
// freed by the allocator that produced them.
func SetDefaultAllocator(a Allocator) {
	if a == nil {
		a = HeapAllocator{}
	}
	defaultAllocator.Store(&allocatorBox{a})
}

// DefaultAllocator returns the allocator used when none is given.
func DefaultAllocator() Allocator {
	return defaultAllocator.Load().a
}
