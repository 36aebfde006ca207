// Package ws serves the pointer-control websocket.
package ws

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/frudas24/screenpad/internal/control"
	"github.com/frudas24/screenpad/internal/hub"
	"github.com/frudas24/screenpad/internal/session"
	"github.com/gorilla/websocket"
)

// Server handles websocket pointer input and streams control events back.
type Server struct {
	mu       sync.Mutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	session  *session.Session
	hub      *hub.Hub
	conn     *websocket.Conn
}

// NewServer creates a control websocket server.
func NewServer(sess *session.Session, h *hub.Hub) *Server {
	return &Server{
		session: sess,
		hub:     h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	detach := s.hub.Attach(func(ev hub.Event) {
		s.writeMu.Lock()
		defer s.writeMu.Unlock()
		_ = conn.WriteJSON(ev)
	})
	defer detach()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		s.handleMessage(msg)
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches a single control message.
func (s *Server) handleMessage(msg Message) {
	Dispatch(s.session, s.hub, msg)
}

// Dispatch routes a decoded control message into the hub. It is shared by the
// websocket and datachannel transports.
func Dispatch(sess *session.Session, h *hub.Hub, msg Message) {
	switch msg.T {
	case "down", "move", "up", "cancel":
		if !sess.InputEnabled() {
			return
		}
		routePointer(h, msg)
	case "rect":
		if msg.Rect != nil {
			h.SetRegion(msg.Control, *msg.Rect)
		}
	case "inputEnabled":
		if msg.Enabled != nil {
			sess.SetInputEnabled(*msg.Enabled)
		}
	}
}

// routePointer forwards a pointer event to the owning control.
func routePointer(h *hub.Hub, msg Message) {
	id := control.PointerID(msg.ID)
	switch msg.T {
	case "down":
		h.PointerDown(msg.Control, id, msg.X, msg.Y)
	case "move":
		h.PointerMove(msg.Control, id, msg.X, msg.Y)
	case "up":
		h.PointerUp(msg.Control, id, msg.X, msg.Y)
	case "cancel":
		h.PointerCancel(msg.Control, id)
	}
}
