package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/huha-yy/ai-news-bot/internal/digest"
	"github.com/huha-yy/ai-news-bot/internal/model"
)

func sampleDigest() *digest.Digest {
	return &digest.Digest{
		Title:    "AI Daily Digest (2026-08-30)",
		Plain:    "plain body",
		Markdown: "# markdown body",
	}
}

func TestPushPlusSendsMarkdownPayload(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"code":200,"msg":"ok"}`))
	}))
	defer srv.Close()

	p := NewPushPlus(srv.URL, "secret-token")
	require.NoError(t, p.Push(context.Background(), sampleDigest()))

	require.Equal(t, "secret-token", got["token"])
	require.Equal(t, "AI Daily Digest (2026-08-30)", got["title"])
	require.Equal(t, "# markdown body", got["content"])
	require.Equal(t, "markdown", got["template"])
}

func TestPushPlusAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":903,"msg":"invalid token"}`))
	}))
	defer srv.Close()

	err := NewPushPlus(srv.URL, "bad").Push(context.Background(), sampleDigest())
	require.Error(t, err)

	var deliveryErr *model.DeliveryError
	require.True(t, errors.As(err, &deliveryErr))
	require.Equal(t, "pushplus", deliveryErr.Channel)
	require.Contains(t, err.Error(), "invalid token")
}

func TestPushPlusNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	err := NewPushPlus(srv.URL, "token").Push(context.Background(), sampleDigest())
	require.Error(t, err)

	var deliveryErr *model.DeliveryError
	require.True(t, errors.As(err, &deliveryErr))
}

func TestPushPlusHTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewPushPlus(srv.URL, "token").Push(context.Background(), sampleDigest())
	require.Error(t, err)

	var deliveryErr *model.DeliveryError
	require.True(t, errors.As(err, &deliveryErr))
}
