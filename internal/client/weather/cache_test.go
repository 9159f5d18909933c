package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(ttl time.Duration) (*Cache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
	c := NewCache(ttl)
	c.now = clock.Now
	return c, clock
}

func TestCache_FreshWithinTTL(t *testing.T) {
	c, clock := newTestCache(10 * time.Minute)
	snap := Snapshot{Current: &Current{Name: "Recife"}}

	stored := c.Set("Recife", snap)
	assert.Equal(t, clock.t, stored.Timestamp)

	clock.Advance(9*time.Minute + 59*time.Second)
	got, ok := c.Get("Recife")
	require.True(t, ok)
	assert.Equal(t, "Recife", got.Current.Name)
}

func TestCache_StaleAfterTTLButKeptForFallback(t *testing.T) {
	c, clock := newTestCache(10 * time.Minute)
	c.Set("Recife", Snapshot{Current: &Current{Name: "Recife"}})

	clock.Advance(10 * time.Minute)
	_, ok := c.Get("Recife")
	assert.False(t, ok, "an entry exactly TTL old is stale")

	last, ok := c.Last("Recife")
	require.True(t, ok)
	assert.Equal(t, "Recife", last.Current.Name)
	assert.Equal(t, 1, c.Len())
}

func TestCache_KeysAreNormalized(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("  São Paulo ", Snapshot{Current: &Current{Name: "São Paulo"}})

	_, ok := c.Get("são paulo")
	assert.True(t, ok)
}

func TestCache_SetOverwritesWholeSnapshot(t *testing.T) {
	c, clock := newTestCache(10 * time.Minute)
	c.Set("Olinda", Snapshot{Current: &Current{Name: "old"}, Forecast: &Forecast{}})

	clock.Advance(time.Minute)
	c.Set("Olinda", Snapshot{Current: &Current{Name: "new"}})

	got, ok := c.Get("Olinda")
	require.True(t, ok)
	assert.Equal(t, "new", got.Current.Name)
	assert.Nil(t, got.Forecast)
	assert.Equal(t, clock.t, got.Timestamp)
}

func TestCache_Clear(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("a", Snapshot{})
	c.Set("b", Snapshot{})

	c.Clear()

	_, ok := c.Last("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_MissingCity(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	_, ok := c.Get("nowhere")
	assert.False(t, ok)
	_, ok = c.Last("nowhere")
	assert.False(t, ok)
}
