package adapter_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palettehq/marketplace-sync/internal/adapter"
	"github.com/palettehq/marketplace-sync/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestPost(t *testing.T) {
	ctx := context.Background()

	t.Run("rate-limited retry re-sends the full body", func(t *testing.T) {
		payload := []byte(`{"query":"{ _meta { block { number } } }"}`)

		var bodies [][]byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			bodies = append(bodies, body)
			if len(bodies) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(`{"data":{}}`))
		}))
		defer server.Close()

		client := adapter.NewHTTPClient(10 * time.Second)
		resp, err := client.Post(ctx, server.URL, "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"data":{}}`), resp)

		require.Len(t, bodies, 2)
		assert.Equal(t, payload, bodies[0])
		assert.Equal(t, payload, bodies[1])
	})

	t.Run("non-retryable status is a permanent error", func(t *testing.T) {
		var requests int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			http.Error(w, "bad query", http.StatusBadRequest)
		}))
		defer server.Close()

		client := adapter.NewHTTPClient(10 * time.Second)
		_, err := client.Post(ctx, server.URL, "application/json", bytes.NewReader([]byte(`{}`)))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code 400")
		assert.Equal(t, 1, requests)
	})
}
