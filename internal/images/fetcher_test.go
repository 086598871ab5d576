package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"glassesfinder/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFetcher() *Fetcher {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewFetcher(2*time.Second, logger)
}

func TestFetcher_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	data, err := testFetcher().Fetch(context.Background(), types.CatalogItem{ID: "x", ImageURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestFetcher_Fetch_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	data, err := testFetcher().Fetch(context.Background(), types.CatalogItem{ID: "x", ImageURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), data)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetcher_Fetch_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testFetcher().Fetch(context.Background(), types.CatalogItem{ID: "x", ImageURL: srv.URL})
	require.Error(t, err)

	var netErr *types.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.False(t, netErr.Retryable)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetcher_Fetch_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testFetcher().Fetch(context.Background(), types.CatalogItem{ID: "x", ImageURL: srv.URL})
	require.Error(t, err)

	var netErr *types.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Retryable)
	assert.Equal(t, int32(maxAttempts), calls.Load())
}

func TestFetcher_Fetch_HonorsContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testFetcher().Fetch(ctx, types.CatalogItem{ID: "x", ImageURL: srv.URL})
	require.Error(t, err)
}
