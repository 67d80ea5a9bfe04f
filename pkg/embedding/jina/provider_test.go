package jina

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJinaProvider_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"object":"embedding","index":0,"embedding":[0.1,0.2]}]}`))
	}))
	defer srv.Close()

	p := NewJinaProvider("secret").WithBaseURL(srv.URL)
	resp, err := p.Generate(context.Background(), "warfarin", "")

	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2}, resp.Embedding.Values)
}

func TestJinaProvider_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"bad key"}`))
	}))
	defer srv.Close()

	_, err := NewJinaProvider("bad").WithBaseURL(srv.URL).Generate(context.Background(), "x", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
