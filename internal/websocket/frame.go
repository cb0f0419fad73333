package websocket

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	// pongWait bounds client silence; panels ping well inside it.
	pongWait = 5 * time.Minute
)

func writeFrame(conn *websocket.Conn, v interface{}) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

// writeGoingAway sends a close frame telling the panel to reconnect later.
func writeGoingAway(conn *websocket.Conn, reason string) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, reason),
		time.Now().Add(writeWait))
}

// readAction blocks for the next client request. Every request extends the
// read deadline by pongWait.
func readAction(conn *websocket.Conn) (Action, error) {
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	var req RequestEnvelope
	if err := conn.ReadJSON(&req); err != nil {
		return "", err
	}
	return req.Action, nil
}
