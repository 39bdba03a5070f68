package keyword

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTagger_Tag(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var req struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Giá vàng tăng mạnh", req.Text)
		_, _ = w.Write([]byte(`[["Giá vàng","N"],["tăng","V"],["mạnh","A"]]`))
	}))
	defer ts.Close()

	tagger := NewHTTPTagger(ts.URL, time.Second)
	tokens, err := tagger.Tag(context.Background(), "Giá vàng tăng mạnh")
	require.NoError(t, err)
	assert.Equal(t, []Token{{Word: "Giá vàng", Tag: "N"}, {Word: "tăng", Tag: "V"}, {Word: "mạnh", Tag: "A"}}, tokens)
}

func TestHTTPTagger_Errors(t *testing.T) {
	t.Run("bad status", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		_, err := NewHTTPTagger(ts.URL, time.Second).Tag(context.Background(), "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 503")
		assert.Contains(t, err.Error(), "model not loaded")
	})

	t.Run("bad body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"oops": true}`))
		}))
		defer ts.Close()

		_, err := NewHTTPTagger(ts.URL, time.Second).Tag(context.Background(), "text")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode tag response")
	})

	t.Run("unreachable", func(t *testing.T) {
		_, err := NewHTTPTagger("http://127.0.0.1:1/pos", 100*time.Millisecond).Tag(context.Background(), "text")
		require.Error(t, err)
	})
}
