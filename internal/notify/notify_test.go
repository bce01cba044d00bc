package notify

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

func TestTelegramDisabledWithoutChat(t *testing.T) {
	tg := NewTelegram(TelegramOptions{Token: "t"})
	assert.False(t, tg.Enabled())
	assert.NoError(t, tg.Send(context.Background(), "ignored"))

	var none *Telegram
	assert.False(t, none.Enabled())
}

func TestTelegramSend(t *testing.T) {
	var got TelegramMessage
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tg := NewTelegram(TelegramOptions{Token: "abc", ChatID: "-100", APIBase: srv.URL})
	require.NoError(t, tg.Send(context.Background(), "hello"))
	assert.Equal(t, "/botabc/sendMessage", path)
	assert.Equal(t, TelegramMessage{ChatID: "-100", Text: "hello", Parse: "MarkdownV2"}, got)
}

func TestTelegramSendStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "chat not found", http.StatusBadRequest)
	}))
	defer srv.Close()

	tg := NewTelegram(TelegramOptions{Token: "abc", ChatID: "-100", APIBase: srv.URL})
	err := tg.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestUpstreamAlert(t *testing.T) {
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	msg := UpstreamAlert("https://api.example.com/api/v1", "/payments/list", 42.5, true, at)
	assert.Contains(t, msg, "응답 저하")
	assert.Contains(t, msg, `/payments/list`)
	assert.Contains(t, msg, `42\.5%`)
	assert.Contains(t, msg, `2024\-01\-01 09:00:00`)

	assert.Contains(t, UpstreamAlert("", "/x", 80, false, at), "정상화")
}
