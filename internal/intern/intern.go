// Package intern deduplicates the property-name strings that flow through
// decoded Object values.
//
// A single TypeList property name is read once from its wire hash but then
// copied into every decoded instance of that property across an entire
// object graph; for a large capture that is the same handful of strings
// repeated millions of times. Pool gives callers a single shared copy per
// distinct name, keyed by its xxhash digest, mirroring the Arc<str>
// sharing the reference implementation relies on for the same reason.
package intern

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Pool deduplicates strings by content. The zero value is ready to use.
type Pool struct {
	mu      sync.RWMutex
	entries map[uint64][]string
}

// String returns the pool's shared copy of s, adding it if this is the
// first time s has been seen. Different strings that happen to collide on
// their xxhash digest are kept distinct; the bucket is a short slice, not
// a single slot.
func (p *Pool) String(s string) string {
	h := xxhash.Sum64String(s)

	p.mu.RLock()
	for _, existing := range p.entries[h] {
		if existing == s {
			p.mu.RUnlock()
			return existing
		}
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.entries == nil {
		p.entries = make(map[uint64][]string)
	}
	for _, existing := range p.entries[h] {
		if existing == s {
			return existing
		}
	}

	p.entries[h] = append(p.entries[h], s)

	return s
}

// Len reports the number of distinct strings currently held in the pool.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	n := 0
	for _, bucket := range p.entries {
		n += len(bucket)
	}

	return n
}

// Default is a process-wide pool shared by Object field-name interning
// when callers don't need an isolated pool of their own.
var Default = &Pool{}
