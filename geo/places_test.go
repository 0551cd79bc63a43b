package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "tourist attractions", q.Get("q"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "13.0827", q.Get("lat"))
		assert.Equal(t, "80.2707", q.Get("lon"))
		_, _ = w.Write([]byte(`[
			{"place_id": 1, "display_name": "Marina Beach, Chennai", "lat": "13.05", "lon": "80.28", "class": "natural", "type": "beach"},
			{"place_id": 2, "display_name": "Fort St. George, Chennai", "lat": "13.08", "lon": "80.28", "class": "historic", "type": "fort"}
		]`))
	}))
	defer srv.Close()

	c := NewPlacesClient(srv.Client(), srv.URL, 10, nil)
	places, err := c.Search(context.Background(), 13.0827, 80.2707, "tourist attractions")
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Marina Beach, Chennai", places[0].DisplayName)
	assert.Equal(t, "fort", places[1].Type)
}

func TestPlacesSearch_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewPlacesClient(srv.Client(), srv.URL, 10, nil).Search(context.Background(), 0, 0, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestLocators(t *testing.T) {
	pos, err := Fixed{Lat: 1, Lng: 2}.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Position{Lat: 1, Lng: 2}, pos)

	_, err = Unavailable{}.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	f := LocatorFunc(func(ctx context.Context) (Position, error) { return Position{Lat: 3}, ctx.Err() })
	pos, err = f.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3.0, pos.Lat)
}
