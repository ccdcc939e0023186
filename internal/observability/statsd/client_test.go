package statsd

import (
	"net"
	"strings"
	"testing"
	"time"
)

func TestClient_Line(t *testing.T) {
	t.Parallel()

	c := &Client{prefix: "leave_ui", globalTags: map[string]string{"env": "prod"}}

	tests := []struct {
		name string
		in   string
		tags map[string]string
		want string
	}{
		{name: "prefix and tags", in: "backend.request", tags: map[string]string{"op": "list_requests"}, want: "leave_ui.backend.request:1|c|#env:prod,op:list_requests"},
		{name: "slashes replaced", in: "backend/request", want: "leave_ui.backend_request:1|c|#env:prod"},
		{name: "local overrides global", in: "x", tags: map[string]string{" env ": " dev "}, want: "leave_ui.x:1|c|#env:dev"},
		{name: "empty name dropped", in: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.line(tt.in, "1|c", tt.tags); got != tt.want {
				t.Fatalf("line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_NilAndDisabled(t *testing.T) {
	t.Parallel()

	var nilClient *Client
	nilClient.Count("x", 1, nil)
	nilClient.Timing("x", time.Second, nil)
	if err := nilClient.Close(); err != nil {
		t.Fatalf("nil Close() = %v", err)
	}

	c, err := NewClient(Config{Enabled: false, Address: "127.0.0.1:8125"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	c.Count("x", 1, nil)
	if err := c.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
}

func TestClient_WritesUDP(t *testing.T) {
	t.Parallel()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("udp listen unavailable: %v", err)
	}
	defer pc.Close()

	c, err := NewClient(Config{Enabled: true, Address: pc.LocalAddr().String(), Prefix: "app."})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer c.Close()

	c.Timing("backend.request", 1500*time.Microsecond, map[string]string{"status": "200"})

	buf := make([]byte, 512)
	_ = pc.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("ReadFrom() error = %v", err)
	}
	got := string(buf[:n])
	if !strings.HasPrefix(got, "app.backend.request:1.5|ms") || !strings.HasSuffix(got, "|#status:200") {
		t.Fatalf("unexpected packet %q", got)
	}
}
