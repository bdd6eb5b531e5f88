// Package collision tracks hash collisions encountered while assembling a
// TypeList: two distinct class names that happen to hash to the same
// 32-bit type hash.
package collision

// Tracker records which class name currently owns each type hash and
// flags when a second, different name claims a hash already in use.
// Unlike a fatal duplicate-key error, a collision here is only recorded;
// the caller (TypeList) still overwrites the entry, matching the
// "later wins" merge rule, but can report afterwards that the dataset is
// not collision-free.
type Tracker struct {
	owners       map[uint32]string
	hasCollision bool
}

// NewTracker constructs an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{owners: make(map[uint32]string)}
}

// Track records that name claims h, returning true if this is the first
// time h has been seen and false if it overwrote a different name's
// claim (a collision).
func (t *Tracker) Track(h uint32, name string) bool {
	existing, ok := t.owners[h]
	t.owners[h] = name

	if ok && existing != name {
		t.hasCollision = true
		return false
	}

	return !ok
}

// HasCollision reports whether any call to Track has ever observed two
// distinct names claiming the same hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count reports the number of distinct hashes currently tracked.
func (t *Tracker) Count() int {
	return len(t.owners)
}
