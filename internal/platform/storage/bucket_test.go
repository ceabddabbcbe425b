package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads and returns the public URL", func(t *testing.T) {
		var r *http.Request
		var body []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			r = req
			body, _ = io.ReadAll(req.Body)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewBucketClient(server.URL, "media", "service-key")
		url, err := client.Upload(ctx, "covers/comic_1.jpg", "image/jpeg", []byte("jpeg-bytes"))

		require.NoError(t, err)
		assert.Equal(t, server.URL+"/storage/v1/object/public/media/covers/comic_1.jpg", url)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/storage/v1/object/media/covers/comic_1.jpg", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
		assert.Equal(t, "true", r.Header.Get("x-upsert"))
		assert.Equal(t, []byte("jpeg-bytes"), body)
	})

	t.Run("non-2xx is an error carrying the response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"invalid signature"}`))
		}))
		defer server.Close()

		client := NewBucketClient(server.URL, "media", "bad-key")
		_, err := client.Upload(ctx, "covers/comic_1.jpg", "image/jpeg", []byte("x"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "403")
		assert.Contains(t, err.Error(), "invalid signature")
	})
}

func TestBucketClient_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the object", func(t *testing.T) {
		var r *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			r = req
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewBucketClient(server.URL, "media", "service-key")
		err := client.Delete(ctx, "covers/comic_1.jpg")

		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/storage/v1/object/media/covers/comic_1.jpg", r.URL.Path)
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewBucketClient(server.URL, "media", "service-key")
		err := client.Delete(ctx, "covers/missing.jpg")

		assert.Error(t, err)
	})
}
