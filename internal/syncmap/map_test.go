package syncmap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicOperations(t *testing.T) {
	m := New[string, int]()

	_, ok := m.Load("a")
	assert.False(t, ok)

	m.Store("a", 1)
	v, ok := m.Load("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, m.Len())

	m.Delete("a")
	assert.Equal(t, 0, m.Len())
}

func TestLoadOrStore(t *testing.T) {
	m := New[string, int]()

	v, loaded := m.LoadOrStore("a", 1)
	assert.False(t, loaded)
	assert.Equal(t, 1, v)

	v, loaded = m.LoadOrStore("a", 2)
	assert.True(t, loaded)
	assert.Equal(t, 1, v)
}

func TestLoadAndDelete(t *testing.T) {
	m := New[string, int]()
	m.Store("a", 1)

	v, loaded := m.LoadAndDelete("a")
	assert.True(t, loaded)
	assert.Equal(t, 1, v)

	_, loaded = m.LoadAndDelete("a")
	assert.False(t, loaded)
}

func TestKeysAndRange(t *testing.T) {
	m := New[string, int]()
	m.Store("a", 1)
	m.Store("b", 2)

	assert.ElementsMatch(t, []string{"a", "b"}, m.Keys())

	total := 0
	m.Range(func(_ string, v int) bool {
		total += v
		return true
	})
	assert.Equal(t, 3, total)
}

func TestConcurrentAccess(t *testing.T) {
	m := New[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			m.Store(n, n)
			m.Load(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, m.Len())
}
