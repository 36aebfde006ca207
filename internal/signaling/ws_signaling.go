// Package signaling negotiates a WebRTC datachannel for low-latency input.
package signaling

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/frudas24/screenpad/internal/hub"
	"github.com/frudas24/screenpad/internal/session"
	"github.com/frudas24/screenpad/internal/ws"
	"github.com/gorilla/websocket"
	"github.com/pion/webrtc/v3"
)

// controlChannelLabel names the datachannel that carries pointer messages.
const controlChannelLabel = "control"

// ViewerPolicy controls how additional viewers are handled.
type ViewerPolicy int

const (
	// ViewerReject rejects new connections when one is active.
	ViewerReject ViewerPolicy = iota
	// ViewerReplace closes the active connection when a new one arrives.
	ViewerReplace
)

// Server negotiates peer connections over websocket signaling and feeds the
// resulting "control" datachannel into the hub, mirroring the websocket
// transport but without head-of-line blocking on a TCP stream.
type Server struct {
	mu      sync.Mutex
	writeMu sync.Mutex

	upgrader websocket.Upgrader
	session  *session.Session
	hub      *hub.Hub
	policy   ViewerPolicy

	conn *websocket.Conn
	peer *webrtc.PeerConnection
}

// NewServer creates a signaling server with the chosen viewer policy.
func NewServer(sess *session.Session, h *hub.Hub, policy ViewerPolicy) *Server {
	return &Server{
		session: sess,
		hub:     h,
		policy:  policy,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and starts the signaling loop.
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
		s.rejectConn(conn, err.Error())
		return
	}
	defer s.cleanupConn(conn)

	peer, err := webrtc.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		return
	}
	if err := s.attachPeer(conn, peer); err != nil {
		_ = peer.Close()
		return
	}

	peer.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			return
		}
		candidate := c.ToJSON()
		_ = s.sendTo(conn, Message{T: "ice", Candidate: &candidate})
	})
	peer.OnDataChannel(func(dc *webrtc.DataChannel) {
		if dc.Label() != controlChannelLabel {
			return
		}
		s.bindChannel(dc)
	})

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := s.handleMessage(conn, peer, msg); err != nil {
			return
		}
	}
}

// bindChannel wires a control datachannel into the hub in both directions.
func (s *Server) bindChannel(dc *webrtc.DataChannel) {
	var detach func()
	dc.OnOpen(func() {
		detach = s.hub.Attach(func(ev hub.Event) {
			data, err := json.Marshal(ev)
			if err != nil {
				return
			}
			_ = dc.SendText(string(data))
		})
	})
	dc.OnClose(func() {
		if detach != nil {
			detach()
		}
	})
	dc.OnMessage(func(raw webrtc.DataChannelMessage) {
		var msg ws.Message
		if err := json.Unmarshal(raw.Data, &msg); err != nil {
			return
		}
		ws.Dispatch(s.session, s.hub, msg)
	})
}

// acceptConn registers a new websocket connection or returns an error.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		switch s.policy {
		case ViewerReplace:
			_ = s.conn.Close()
			if s.peer != nil {
				// Closing the peer closes its datachannels, which detaches
				// the replaced viewer's hub sink via OnClose.
				_ = s.peer.Close()
			}
			s.conn = nil
			s.peer = nil
		default:
			return fmt.Errorf("viewer already connected")
		}
	}
	s.conn = conn
	return nil
}

// rejectConn sends a policy violation close and closes the socket.
func (s *Server) rejectConn(conn *websocket.Conn, reason string) {
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(1*time.Second))
	_ = conn.Close()
}

// attachPeer stores the peer connection when the websocket is still active.
func (s *Server) attachPeer(conn *websocket.Conn, peer *webrtc.PeerConnection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != conn {
		return fmt.Errorf("connection no longer active")
	}
	s.peer = peer
	return nil
}

// cleanupConn clears state if the connection is still the active one.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
		if s.peer != nil {
			_ = s.peer.Close()
			s.peer = nil
		}
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches signaling messages.
func (s *Server) handleMessage(conn *websocket.Conn, peer *webrtc.PeerConnection, msg Message) error {
	switch msg.T {
	case "offer":
		return s.handleOffer(conn, peer, msg.SDP)
	case "ice":
		return s.handleICE(peer, msg.Candidate)
	default:
		return nil
	}
}

// handleOffer processes an SDP offer and replies with an answer.
func (s *Server) handleOffer(conn *websocket.Conn, peer *webrtc.PeerConnection, sdp string) error {
	if sdp == "" {
		return fmt.Errorf("empty offer")
	}
	if err := peer.SetRemoteDescription(webrtc.SessionDescription{
		Type: webrtc.SDPTypeOffer,
		SDP:  sdp,
	}); err != nil {
		return err
	}
	answer, err := peer.CreateAnswer(nil)
	if err != nil {
		return err
	}
	gatherComplete := webrtc.GatheringCompletePromise(peer)
	if err := peer.SetLocalDescription(answer); err != nil {
		return err
	}
	<-gatherComplete
	local := peer.LocalDescription()
	if local == nil {
		return fmt.Errorf("missing local description")
	}
	return s.sendTo(conn, Message{T: "answer", SDP: local.SDP})
}

// handleICE adds a remote ICE candidate.
func (s *Server) handleICE(peer *webrtc.PeerConnection, candidate *webrtc.ICECandidateInit) error {
	if candidate == nil {
		return nil
	}
	return peer.AddICECandidate(*candidate)
}

// sendTo writes a signaling message with write serialization.
func (s *Server) sendTo(conn *websocket.Conn, msg Message) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteJSON(msg)
}
