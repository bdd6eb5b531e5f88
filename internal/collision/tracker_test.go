package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_FirstClaimIsNotACollision(t *testing.T) {
	tr := NewTracker()
	first := tr.Track(0x1234, "ClassA")
	assert.True(t, first)
	assert.False(t, tr.HasCollision())
	assert.Equal(t, 1, tr.Count())
}

func TestTracker_SameNameReclaimIsNotACollision(t *testing.T) {
	tr := NewTracker()
	tr.Track(0x1234, "ClassA")
	again := tr.Track(0x1234, "ClassA")
	assert.False(t, again)
	assert.False(t, tr.HasCollision())
}

func TestTracker_DifferentNameSameHashIsACollision(t *testing.T) {
	tr := NewTracker()
	tr.Track(0x1234, "ClassA")
	second := tr.Track(0x1234, "ClassB")
	assert.False(t, second)
	assert.True(t, tr.HasCollision())
	assert.Equal(t, 1, tr.Count())
}

func TestTracker_DistinctHashesDoNotCollide(t *testing.T) {
	tr := NewTracker()
	tr.Track(1, "A")
	tr.Track(2, "B")
	assert.False(t, tr.HasCollision())
	assert.Equal(t, 2, tr.Count())
}
