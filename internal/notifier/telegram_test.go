package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTelegram(baseURL string) *TelegramNotifier {
	tn := NewTelegramNotifier("TOKEN", "42", "")
	tn.BaseURL = baseURL
	return tn
}

func TestTelegramSend(t *testing.T) {
	t.Run("posts the message to the chat", func(t *testing.T) {
		var payload map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/botTOKEN/sendMessage", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		tn := newTestTelegram(srv.URL)
		require.NoError(t, tn.Send("hello"))

		assert.Equal(t, "42", payload["chat_id"])
		assert.Equal(t, "hello", payload["text"])
		assert.Equal(t, "HTML", payload["parse_mode"])
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"ok":false,"description":"chat not found"}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		err := newTestTelegram(srv.URL).Send("hello")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
	})
}

func TestTelegramSendWithRetry(t *testing.T) {
	t.Run("retries after a failure and then succeeds", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				http.Error(w, "flaky", http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		tn := newTestTelegram(srv.URL)
		err := tn.SendWithRetry(context.Background(), "hello", 2)
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("cancelled context stops the backoff", func(t *testing.T) {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			http.Error(w, "down", http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		tn := newTestTelegram(srv.URL)
		err := tn.SendWithRetry(ctx, "hello", 5)
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no further attempts after cancellation")
	})

	t.Run("persistent failure surfaces an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		err := newTestTelegram(srv.URL).SendWithRetry(ctx, "hello", 3)
		require.Error(t, err)
	})
}

func TestTelegramStartPolling(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	replies := make(chan string, 1)
	var served int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/getUpdates"):
			if atomic.AddInt32(&served, 1) == 1 {
				w.Write([]byte(`{"ok":true,"result":[{"update_id":7,"message":{"text":"/ping"}}]}`))
				return
			}
			w.Write([]byte(`{"ok":true,"result":[]}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var payload map[string]string
			json.NewDecoder(r.Body).Decode(&payload)
			replies <- payload["text"]
			w.Write([]byte(`{"ok":true}`))
		}
	}))
	defer srv.Close()

	tn := newTestTelegram(srv.URL)

	done := make(chan struct{})
	go func() {
		tn.StartPolling(ctx, func(command string) string {
			assert.Equal(t, "/ping", command)
			return "pong"
		})
		close(done)
	}()

	select {
	case reply := <-replies:
		assert.Equal(t, "pong", reply)
	case <-time.After(5 * time.Second):
		t.Fatal("no reply delivered")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("polling did not stop on context cancellation")
	}
}
