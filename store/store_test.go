package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsRecord struct {
	PlacesVisited int `json:"placesVisited"`
	Distance      int `json:"distance"`
	Badges        int `json:"badges"`
	CarbonSaved   int `json:"carbonSaved"`
}

type failingBackend struct{ *Memory }

func (failingBackend) SetItem(string, string) error { return errors.New("quota exceeded") }

func TestStore_GetMissing(t *testing.T) {
	s := New(NewMemory(), "voyagex_", nil)

	var out statsRecord
	found, err := s.Get(KeyStats, &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, out)
}

func TestStore_RoundTrip(t *testing.T) {
	mem := NewMemory()
	s := New(mem, "voyagex_", nil)

	in := statsRecord{PlacesVisited: 3, Distance: 42, Badges: 1, CarbonSaved: 7}
	require.NoError(t, s.Set(KeyStats, in))

	var out statsRecord
	found, err := s.Get(KeyStats, &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)

	raw, ok := mem.GetItem("voyagex_stats")
	require.True(t, ok)
	assert.JSONEq(t, `{"placesVisited":3,"distance":42,"badges":1,"carbonSaved":7}`, raw)
}

func TestStore_Overwrite(t *testing.T) {
	s := New(NewMemory(), "p_", nil)
	require.NoError(t, s.Set(KeyTheme, "dark"))
	require.NoError(t, s.Set(KeyTheme, "light"))

	var theme string
	_, err := s.Get(KeyTheme, &theme)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)
}

func TestStore_Corrupt(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.SetItem("voyagex_rewards", "{not json"))
	s := New(mem, "voyagex_", nil)

	var out map[string]int
	found, err := s.Get(KeyRewards, &out)
	assert.False(t, found)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestStore_SetFailures(t *testing.T) {
	t.Run("EncodeKeepsPrevious", func(t *testing.T) {
		mem := NewMemory()
		s := New(mem, "", nil)
		require.NoError(t, s.Set("k", 1))

		err := s.Set("k", make(chan int))
		require.Error(t, err)

		raw, _ := mem.GetItem("k")
		assert.Equal(t, "1", raw)
	})

	t.Run("BackendError", func(t *testing.T) {
		s := New(failingBackend{NewMemory()}, "", nil)
		err := s.Set(KeyUser, map[string]string{"id": "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}

func TestStore_Remove(t *testing.T) {
	mem := NewMemory()
	s := New(mem, "voyagex_", nil)
	require.NoError(t, s.Set(KeyBookings, []string{"a"}))
	assert.Equal(t, 1, mem.Len())

	s.Remove(KeyBookings)
	assert.Equal(t, 0, mem.Len())

	var out []string
	found, err := s.Get(KeyBookings, &out)
	require.NoError(t, err)
	assert.False(t, found)
}
