package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/ghostwire/internal/auth"
	"github.com/danmuck/ghostwire/internal/protocol/packet"
	"github.com/danmuck/ghostwire/internal/protocol/session"
	"github.com/danmuck/ghostwire/internal/protocol/tlv"
	"github.com/danmuck/ghostwire/internal/testutil/testlog"
)

func testConfig() session.Config {
	cfg := session.DefaultConfig()
	cfg.SessionID = packet.SessionID{0x42}
	return cfg
}

// dial starts r on one end of a pipe and returns a client session on the
// other. The returned func closes the client and waits for the server loop.
func dial(t *testing.T, r *Responder) (*session.Session, func()) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	done := make(chan error, 1)
	go func() {
		done <- r.ServeConn(context.Background(), serverConn)
		serverConn.Close()
	}()
	client := session.New(testConfig(), clientConn, clientConn)
	return client, func() {
		clientConn.Close()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("server loop did not exit")
		}
	}
}

func roundTrip(t *testing.T, client *session.Session, req *packet.Packet) *packet.Packet {
	t.Helper()
	if err := client.Send(req); err != nil {
		t.Fatalf("send: %v", err)
	}
	in, err := client.Receive()
	if err != nil {
		t.Fatalf("receive: %v", err)
	}
	if in.Request == nil || in.Request.RequestID != req.RequestID() {
		t.Fatalf("response not correlated: %+v", in.Request)
	}
	return in.Packet
}

func TestResponderUnknownMethod(t *testing.T) {
	testlog.Start(t)
	client, closeFn := dial(t, NewResponder(testConfig()))
	defer closeFn()

	resp := roundTrip(t, client, packet.NewRequest("stdapi_sys_process_kill"))
	if resp.Kind() != packet.KindResponse {
		t.Fatalf("kind = %s", resp.Kind())
	}
	if code, err := resp.Result(); err != nil || code != packet.ResultCallNotImplemented {
		t.Fatalf("result = %v, %v", code, err)
	}
}

func TestResponderDispatchesHandler(t *testing.T) {
	testlog.Start(t)
	r := NewResponder(testConfig())
	r.Handle("core_channel_tell", func(req, resp *packet.Packet) packet.ResultCode {
		id, err := req.GetUint32(tlv.FieldChannelID)
		if err != nil {
			return packet.ResultBadArguments
		}
		if err := resp.AddUint32(tlv.FieldChannelID, id); err != nil {
			return packet.ResultInvalidData
		}
		if err := resp.AddUint32(tlv.FieldSeekPos, 512); err != nil {
			return packet.ResultInvalidData
		}
		return packet.ResultSuccess
	})
	client, closeFn := dial(t, r)
	defer closeFn()

	req := packet.NewPlainRequest("core_channel_tell")
	if err := req.AddUint32(tlv.FieldChannelID, 3); err != nil {
		t.Fatal(err)
	}
	resp := roundTrip(t, client, req)
	if resp.Kind() != packet.KindPlainResponse {
		t.Fatalf("kind = %s", resp.Kind())
	}
	if code, _ := resp.Result(); code != packet.ResultSuccess {
		t.Fatalf("result = %s", code)
	}
	if pos, _ := resp.GetUint32(tlv.FieldSeekPos); pos != 512 {
		t.Fatalf("seek pos = %d", pos)
	}

	bad := roundTrip(t, client, packet.NewRequest("core_channel_tell"))
	if code, _ := bad.Result(); code != packet.ResultBadArguments {
		t.Fatalf("missing argument result = %s", code)
	}
}

func TestResponderEnumeratesMethods(t *testing.T) {
	testlog.Start(t)
	r := NewResponder(testConfig())
	r.Handle("stdapi_fs_stat", func(_, _ *packet.Packet) packet.ResultCode { return packet.ResultSuccess })
	client, closeFn := dial(t, r)
	defer closeFn()

	resp := roundTrip(t, client, packet.NewRequest(MethodEnumerate))
	var got []string
	for _, n := range resp.Children(tlv.FieldString) {
		s, err := n.AsString()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, s)
	}
	if strings.Join(got, ",") != "core_enumextcmd,stdapi_fs_stat" {
		t.Fatalf("methods = %v", got)
	}
}

func TestServeStopsOnContextCancel(t *testing.T) {
	testlog.Start(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	r := NewResponder(testConfig())
	done := make(chan error, 1)
	go func() { done <- r.Serve(ctx, ln) }()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	client := session.New(testConfig(), conn, conn)
	resp := roundTrip(t, client, packet.NewRequest("core_shutdown"))
	if code, _ := resp.Result(); code != packet.ResultCallNotImplemented {
		t.Fatalf("result = %s", code)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestAdminRouter(t *testing.T) {
	testlog.Start(t)
	r := NewResponder(testConfig())
	router := AdminRouter(r, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d", rec.Code)
	}
	var health map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health["status"] != "ok" {
		t.Fatalf("health = %#v", health)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions", nil))
	var stats Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.ActiveSessions != 0 || len(stats.Methods) != 1 {
		t.Fatalf("stats = %+v", stats)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "ghostwire_session_pending_requests") {
		t.Fatalf("metrics status = %d", rec.Code)
	}
}

func TestAdminRouterRequiresToken(t *testing.T) {
	testlog.Start(t)
	router := AdminRouter(NewResponder(testConfig()), auth.StaticToken{Token: "s3cret"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health should stay open, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("sessions without token = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics with token = %d", rec.Code)
	}
}
