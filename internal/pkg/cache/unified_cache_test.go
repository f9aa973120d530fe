package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	N int
}

func TestUnifiedCache_SetGet(t *testing.T) {
	c := NewUnifiedCache[counter](time.Minute, "test", nil)

	_, found := c.Get("missing")
	assert.False(t, found)

	c.Set("a", counter{N: 3})
	got, found := c.Get("a")
	require.True(t, found)
	assert.Equal(t, 3, got.N)

	m := c.GetMetrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, int64(1), m.Sets)
}

func TestUnifiedCache_Expiry(t *testing.T) {
	c := NewUnifiedCache[counter](20*time.Millisecond, "short", nil)
	c.Set("a", counter{N: 1})

	time.Sleep(40 * time.Millisecond)

	_, found := c.Get("a")
	assert.False(t, found, "entries must not outlive the ttl")
}

func TestUnifiedCache_UpdateInitialisesAndStores(t *testing.T) {
	c := NewUnifiedCache[counter](time.Minute, "test", nil)

	got, err := c.Update("k", func() counter { return counter{N: 10} }, func(v counter) (counter, error) {
		v.N++
		return v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 11, got.N)

	stored, found := c.Get("k")
	require.True(t, found)
	assert.Equal(t, 11, stored.N)
}

func TestUnifiedCache_UpdateKeepsValueOnError(t *testing.T) {
	c := NewUnifiedCache[counter](time.Minute, "test", nil)
	c.Set("k", counter{N: 1})
	boom := errors.New("boom")

	_, err := c.Update("k", func() counter { return counter{} }, func(v counter) (counter, error) {
		return v, boom
	})
	assert.ErrorIs(t, err, boom)

	stored, _ := c.Get("k")
	assert.Equal(t, 1, stored.N)
}

func TestUnifiedCache_UpdateIsSerialized(t *testing.T) {
	c := NewUnifiedCache[counter](time.Minute, "test", nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Update("k", func() counter { return counter{} }, func(v counter) (counter, error) {
				v.N++
				return v, nil
			})
		}()
	}
	wg.Wait()

	stored, _ := c.Get("k")
	assert.Equal(t, 50, stored.N)
}

func TestUnifiedCache_DeleteAndClear(t *testing.T) {
	c := NewUnifiedCache[counter](time.Minute, "test", nil)
	c.Set("a", counter{})
	c.Set("b", counter{})
	assert.Equal(t, 2, c.Size())

	c.Delete("a")
	assert.Equal(t, 1, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestUnifiedCache_TouchExtendsTTL(t *testing.T) {
	c := NewUnifiedCache[counter](200*time.Millisecond, "touch", nil)
	c.Set("a", counter{N: 7})

	time.Sleep(120 * time.Millisecond)
	require.True(t, c.Touch("a"))
	time.Sleep(120 * time.Millisecond)

	got, found := c.Get("a")
	require.True(t, found, "touched entry must outlive its original deadline")
	assert.Equal(t, 7, got.N)

	assert.False(t, c.Touch("missing"))
}
