package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neexbeast/tripmuse/internal/engine"
)

func TestRecencyCache_EvictsOldestFirst(t *testing.T) {
	rc := engine.NewRecencyCache(3)

	rc.Add("a", "b", "c")
	assert.True(t, rc.Contains("a"))

	rc.Add("d")
	assert.False(t, rc.Contains("a"), "oldest key must be evicted")
	assert.True(t, rc.Contains("b"))
	assert.True(t, rc.Contains("d"))
	assert.Equal(t, 3, rc.Len())
}

func TestRecencyCache_ReAddIsNoop(t *testing.T) {
	rc := engine.NewRecencyCache(3)

	rc.Add("a", "b")
	rc.Add("a")
	assert.Equal(t, 2, rc.Len())
}

func TestRecencyCache_DefaultCapacity(t *testing.T) {
	rc := engine.NewRecencyCache(0)

	for i := 0; i < 40; i++ {
		rc.Add(fmt.Sprintf("key-%d", i))
	}
	assert.Equal(t, engine.DefaultRecencyCapacity, rc.Len())
	assert.False(t, rc.Contains("key-0"))
	assert.True(t, rc.Contains("key-39"))
}
