package debugserver

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kirkNovitsky/gb-emulator/internal/ppu"
)

func TestBroadcastWithNoClientsDoesNotPanic(t *testing.T) {
	s := New()
	var fb ppu.Framebuffer
	s.Broadcast(&fb) // must not panic with zero connected clients
}

func TestBroadcastDeliversFrameToConnectedClient(t *testing.T) {
	s := New()
	ts := httptest.NewServer(s)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// give ServeHTTP's goroutine time to register the connection
	time.Sleep(20 * time.Millisecond)

	var fb ppu.Framebuffer
	fb[0][0] = 0x55
	s.Broadcast(&fb)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	if len(data) == 0 || data[0] != 0x55 {
		t.Errorf("first byte = %#02x, want 0x55", data[0])
	}
}
