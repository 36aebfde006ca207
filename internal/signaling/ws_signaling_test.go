package signaling

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/frudas24/screenpad/internal/hub"
	"github.com/frudas24/screenpad/internal/session"
	"github.com/gorilla/websocket"
	"github.com/pion/webrtc/v3"
)

// dialTestConn upgrades a loopback websocket and returns the server side.
func dialTestConn(t *testing.T) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	conns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return <-conns
}

// TestAcceptConn_ReplaceClosesPeer verifies the replace policy closes the
// previous viewer's peer connection. Without that close the old control
// datachannel never fires OnClose and its hub sink stays attached forever.
func TestAcceptConn_ReplaceClosesPeer(t *testing.T) {
	s := NewServer(session.New("secret"), hub.New(), ViewerReplace)

	connA := dialTestConn(t)
	if err := s.acceptConn(connA); err != nil {
		t.Fatalf("acceptConn failed: %v", err)
	}
	peerA, err := webrtc.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		t.Fatalf("NewPeerConnection failed: %v", err)
	}
	if err := s.attachPeer(connA, peerA); err != nil {
		t.Fatalf("attachPeer failed: %v", err)
	}

	connB := dialTestConn(t)
	if err := s.acceptConn(connB); err != nil {
		t.Fatalf("expected replace to accept, got %v", err)
	}

	if peerA.SignalingState() != webrtc.SignalingStateClosed {
		t.Fatalf("expected replaced peer closed, got %s", peerA.SignalingState())
	}
	s.cleanupConn(connB)
}

// TestAcceptConn_RejectPolicy verifies a second connection is refused while
// one is active.
func TestAcceptConn_RejectPolicy(t *testing.T) {
	s := NewServer(session.New("secret"), hub.New(), ViewerReject)

	connA := dialTestConn(t)
	if err := s.acceptConn(connA); err != nil {
		t.Fatalf("acceptConn failed: %v", err)
	}
	connB := dialTestConn(t)
	if err := s.acceptConn(connB); err == nil {
		t.Fatalf("expected second viewer to be rejected")
	}
	s.cleanupConn(connA)
}

// TestCleanupConn_ClosesPeer verifies the normal teardown path also closes the
// peer connection.
func TestCleanupConn_ClosesPeer(t *testing.T) {
	s := NewServer(session.New("secret"), hub.New(), ViewerReplace)

	conn := dialTestConn(t)
	if err := s.acceptConn(conn); err != nil {
		t.Fatalf("acceptConn failed: %v", err)
	}
	peer, err := webrtc.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		t.Fatalf("NewPeerConnection failed: %v", err)
	}
	if err := s.attachPeer(conn, peer); err != nil {
		t.Fatalf("attachPeer failed: %v", err)
	}

	s.cleanupConn(conn)
	if peer.SignalingState() != webrtc.SignalingStateClosed {
		t.Fatalf("expected peer closed on cleanup, got %s", peer.SignalingState())
	}
}

// TestAttachPeer_StaleConnRejected verifies a peer cannot attach to a
// connection that was already replaced.
func TestAttachPeer_StaleConnRejected(t *testing.T) {
	s := NewServer(session.New("secret"), hub.New(), ViewerReplace)

	connA := dialTestConn(t)
	if err := s.acceptConn(connA); err != nil {
		t.Fatalf("acceptConn failed: %v", err)
	}
	connB := dialTestConn(t)
	if err := s.acceptConn(connB); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	peer, err := webrtc.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		t.Fatalf("NewPeerConnection failed: %v", err)
	}
	defer func() { _ = peer.Close() }()
	if err := s.attachPeer(connA, peer); err == nil {
		t.Fatalf("expected attach on stale connection to fail")
	}
	s.cleanupConn(connB)
}
