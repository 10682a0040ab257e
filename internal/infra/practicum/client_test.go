package practicum

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homework_status_bot/internal/domain/failure"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func TestGetStatuses(t *testing.T) {
	var gotAuth, gotFromDate string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFromDate = r.URL.Query().Get("from_date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1700000000}`)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "secret", time.Second, testLogger())
	require.NoError(t, err)

	raw, err := c.GetStatuses(context.Background(), 1660000000)
	require.NoError(t, err)
	assert.Equal(t, "OAuth secret", gotAuth)
	assert.Equal(t, "1660000000", gotFromDate)

	body, ok := raw.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, json.Number("1700000000"), body["current_date"])
	assert.Len(t, body["homeworks"], 1)
}

func TestGetStatusesErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c, err := NewClient(srv.URL, "secret", time.Second, testLogger())
		require.NoError(t, err)

		_, err = c.GetStatuses(context.Background(), 1)
		assert.True(t, failure.Is(err, failure.KindHTTPStatus), "got %v", err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("body is not JSON", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>maintenance</html>")
		}))
		defer srv.Close()

		c, err := NewClient(srv.URL, "secret", time.Second, testLogger())
		require.NoError(t, err)

		_, err = c.GetStatuses(context.Background(), 1)
		assert.True(t, failure.Is(err, failure.KindFormat), "got %v", err)
	})

	t.Run("server unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := srv.URL
		srv.Close()

		c, err := NewClient(url, "secret", time.Second, testLogger())
		require.NoError(t, err)

		_, err = c.GetStatuses(context.Background(), 1)
		assert.True(t, failure.Is(err, failure.KindNetwork), "got %v", err)
	})
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("not a url", "secret", time.Second, testLogger())
	assert.Error(t, err)

	_, err = NewClient("https://example.com/api/", "", time.Second, testLogger())
	assert.Error(t, err)
}
