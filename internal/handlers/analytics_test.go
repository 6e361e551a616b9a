package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsPage(t *testing.T) {
	cl := newTestApp(t).client(t)
	cl.signIn()
	cl.get("/cards/1")

	eventually(t, func() bool {
		return strings.Contains(cl.get("/app/analytics?range=7d").Body.String(), "1 views")
	})

	rec := cl.get("/app/analytics?range=90d")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Marketing Director Card")
	assert.Contains(t, rec.Body.String(), "Card viewed")
	assert.Contains(t, rec.Body.String(), `ws-connect="/app/analytics/ws?range=90d"`)
}

func TestAnalyticsLiveFeed(t *testing.T) {
	app := newTestApp(t)
	cl := app.client(t)
	cl.signIn()

	srv := httptest.NewServer(app.e)
	t.Cleanup(srv.Close)

	header := http.Header{}
	for _, ck := range cl.cookies {
		header.Add("Cookie", ck.Name+"="+ck.Value)
	}
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/app/analytics/ws?range=all"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	})

	read := func() string {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		return string(msg)
	}

	initial := read()
	assert.Contains(t, initial, `id="analytics-stats"`)
	assert.Contains(t, initial, `hx-swap-oob="true"`)
	assert.Contains(t, initial, "No card views yet.")

	cl.get("/cards/2")

	update := read()
	assert.Contains(t, update, "Conference Networking Card")
	assert.Contains(t, update, "1 views")
}

func TestAnalyticsLiveFeed_RequiresSignIn(t *testing.T) {
	srv := httptest.NewServer(newTestApp(t).e)
	t.Cleanup(srv.Close)

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/app/analytics/ws", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}
