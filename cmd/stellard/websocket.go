package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const wsWriteTimeout = 10 * time.Second

// WebSocket upgrader with permissive origin check so browser clients on any
// host can subscribe to the state feed.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleWebSocket upgrades the connection and streams a world snapshot as a
// JSON frame on every simulation tick until the client or the server closes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !s.allow(r) {
		http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s.metrics.ClientConnected()
	defer s.metrics.ClientDisconnected()

	// Read pump: client input is discarded, but reading is required to
	// process control frames and notice the close handshake.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-clientGone:
			return
		case <-s.done:
			deadline := time.Now().Add(wsWriteTimeout)
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"), deadline)
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
			if err := conn.WriteJSON(s.world.Snapshot()); err != nil {
				return
			}
			s.metrics.RecordFrame()
		}
	}
}
