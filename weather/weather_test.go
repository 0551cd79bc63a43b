package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "13.0827", q.Get("latitude"))
		assert.Equal(t, "80.2707", q.Get("longitude"))
		assert.Equal(t, "true", q.Get("current_weather"))
		assert.Equal(t, "celsius", q.Get("temperature_unit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude":13.08,"current_weather":{"temperature":31.6,"windspeed":12.4,"weathercode":2}}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL, nil)
	got, err := c.Current(context.Background(), 13.0827, 80.2707)
	require.NoError(t, err)
	assert.Equal(t, 31.6, got.Temperature)
	assert.Equal(t, 2, got.WeatherCode)
	assert.Equal(t, "32°C", FormatTemperature(got.Temperature))
}

func TestCurrent_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "MissingConditions", status: http.StatusOK, body: `{"latitude":1}`, wantErr: ErrNoConditions},
		{name: "ServerError", status: http.StatusBadGateway, body: `upstream down`},
		{name: "BadJSON", status: http.StatusOK, body: `{"current_weather":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.Client(), srv.URL, nil).Current(context.Background(), 1, 2)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCurrent_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(nil, url, nil).Current(context.Background(), 1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestCurrent_SharesConcurrentLookups(t *testing.T) {
	var hits int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		<-release
		_, _ = w.Write([]byte(`{"current_weather":{"temperature":20}}`))
	}))
	defer srv.Close()

	c := New(srv.Client(), srv.URL, nil)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Current(context.Background(), 5, 5)
			assert.NoError(t, err)
			assert.Equal(t, 20.0, got.Temperature)
		}()
	}
	require.Eventually(t, func() bool { return atomic.LoadInt32(&hits) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

func TestFormatTemperature(t *testing.T) {
	assert.Equal(t, "28°C", FormatTemperature(28.4))
	assert.Equal(t, "29°C", FormatTemperature(28.5))
	assert.Equal(t, "-2°C", FormatTemperature(-2.5))
	assert.Equal(t, "0°C", FormatTemperature(-0.2))
}
