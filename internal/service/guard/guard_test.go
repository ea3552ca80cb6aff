package guard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBegin_ReturnsCurrentGeneration(t *testing.T) {
	g := New()

	gen := g.Begin("dates")

	assert.True(t, g.IsCurrent("dates", gen))
}

func TestBegin_SupersedesPreviousGeneration(t *testing.T) {
	g := New()

	gen1 := g.Begin("dates")
	gen2 := g.Begin("dates")

	assert.False(t, g.IsCurrent("dates", gen1), "старое поколение должно быть отброшено")
	assert.True(t, g.IsCurrent("dates", gen2))
}

func TestInvalidate_DropsInFlightGeneration(t *testing.T) {
	g := New()

	gen := g.Begin("dates")
	g.Invalidate("dates")

	assert.False(t, g.IsCurrent("dates", gen))
}

func TestKeys_AreIndependent(t *testing.T) {
	g := New()

	datesGen := g.Begin("dates")
	slotsGen := g.Begin("slots")

	// Инвалидация слотов не трогает каскад дат
	g.Invalidate("slots")

	assert.True(t, g.IsCurrent("dates", datesGen))
	assert.False(t, g.IsCurrent("slots", slotsGen))
}

func TestIsCurrent_UnknownGenerationIsStale(t *testing.T) {
	g := New()

	g.Begin("dates")

	assert.False(t, g.IsCurrent("dates", 0))
	assert.False(t, g.IsCurrent("dates", 42))
}

func TestGuard_ConcurrentBegin(t *testing.T) {
	g := New()

	const n = 100
	gens := make([]uint64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gens[i] = g.Begin("dates")
		}(i)
	}
	wg.Wait()

	// Актуальным может быть ровно одно поколение
	current := 0
	for _, gen := range gens {
		if g.IsCurrent("dates", gen) {
			current++
		}
	}
	assert.Equal(t, 1, current)
}
