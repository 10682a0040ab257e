package telegram

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_status_bot/internal/domain/failure"
)

type botAPIRequest struct {
	path   string
	chatID string
	text   string
}

func newBotAPI(t *testing.T, reply string) (*httptest.Server, *[]botAPIRequest) {
	t.Helper()
	var requests []botAPIRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var params map[string]any
		require.NoError(t, json.Unmarshal(body, &params))
		req := botAPIRequest{
			path:   r.URL.Path,
			chatID: fmt.Sprint(params["chat_id"]),
			text:   fmt.Sprint(params["text"]),
		}
		requests = append(requests, req)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestTelebotAdapterSendMessage(t *testing.T) {
	srv, requests := newBotAPI(t, `{"ok":true,"result":{"message_id":1,"date":1700000000,"chat":{"id":42,"type":"private"},"text":"hi"}}`)

	bot, err := NewBot("123:token", srv.URL, time.Second)
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage(42, "hi", nil)
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, "/bot123:token/sendMessage", got.path)
	assert.Equal(t, "42", got.chatID)
	assert.Equal(t, "hi", got.text)
}

func TestTelebotAdapterSendMessageAPIError(t *testing.T) {
	srv, _ := newBotAPI(t, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)

	bot, err := NewBot("123:token", srv.URL, time.Second)
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage(42, "hi", nil)
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindDelivery), "got %v", err)
	assert.Contains(t, err.Error(), "chat 42")
}
