// Package debugserver streams the raw framebuffer over a websocket
// connection to any connected debug client. It is a read-only
// introspection aid: the core never depends on it, and nothing in
// internal/gameboy imports it. A frontend opts in by calling
// Broadcast after each Step.
package debugserver

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/kirkNovitsky/gb-emulator/internal/ppu"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 4,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server accepts websocket connections on / and fans out every
// Broadcast call's framebuffer bytes to all currently connected
// clients. A slow client misses frames rather than being allowed to
// block the emulation loop; it stays connected.
type Server struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

// New returns an empty Server, ready to register via net/http.
func New() *Server {
	return &Server{clients: make(map[*websocket.Conn]chan []byte)}
}

// ServeHTTP upgrades the request to a websocket and registers the
// connection until it errors or closes.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	send := make(chan []byte, 4)
	s.mu.Lock()
	s.clients[conn] = send
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for frame := range send {
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			return
		}
	}
}

// Broadcast sends fb's raw bytes to every connected client, dropping
// the frame for any client whose send buffer is still full rather than
// waiting on it.
func (s *Server) Broadcast(fb *ppu.Framebuffer) {
	frame := fb.Bytes()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, send := range s.clients {
		select {
		case send <- frame:
		default:
		}
	}
}

// ListenAndServe starts an HTTP server with the Server registered at
// the root path. It blocks until the server errors.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/", s)
	return http.ListenAndServe(addr, mux)
}
