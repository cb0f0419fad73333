package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/garajhub/admin-panel/internal/model"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, string, context.CancelFunc) {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn, "admin")
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(cancel)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http"), cancel
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestHub_HelloThenActivity(t *testing.T) {
	hub, url, _ := startHub(t)
	conn := dial(t, url)

	var hello HelloResponse
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, EventHello, hello.Event)
	assert.Equal(t, "admin", hello.Actor)

	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(model.AdminEvent{Type: "startup", Action: "tasdiqlandi", TargetID: "1"})

	var msg ActivityResponse
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, EventActivity, msg.Event)
	assert.Equal(t, "startup", msg.Data.Type)
	assert.Equal(t, "1", msg.Data.TargetID)
}

func TestHub_PingPong(t *testing.T) {
	_, url, _ := startHub(t)
	conn := dial(t, url)

	var hello HelloResponse
	require.NoError(t, conn.ReadJSON(&hello))

	require.NoError(t, conn.WriteJSON(RequestEnvelope{Action: ActionPing}))
	var pong PongResponse
	require.NoError(t, conn.ReadJSON(&pong))
	assert.Equal(t, EventPong, pong.Event)

	require.NoError(t, conn.WriteJSON(RequestEnvelope{Action: "dance"}))
	var errResp ErrorResponse
	require.NoError(t, conn.ReadJSON(&errResp))
	assert.Equal(t, EventError, errResp.Event)
}

func TestHub_ShutdownDisconnectsClients(t *testing.T) {
	hub, url, cancel := startHub(t)
	conn := dial(t, url)

	var hello HelloResponse
	require.NoError(t, conn.ReadJSON(&hello))

	cancel()

	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_PublishWithoutClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	hub.Publish(model.AdminEvent{Type: "message"})
	assert.Equal(t, 0, hub.Clients())
}
