package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/ghostwire/internal/protocol/packet"
	"github.com/danmuck/ghostwire/internal/testutil/testlog"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestSessionTemplateLoads(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := WriteTemplate(path, "session", false); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg, err := LoadSessionConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sc, err := cfg.Session()
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want, _ := packet.ParseSessionID("00112233445566778899aabbccddeeff")
	if sc.SessionID != want {
		t.Fatalf("session id = %s", sc.SessionID)
	}
	if sc.RequestTimeout != 30*time.Second || sc.Limits.MaxBodyBytes != 8388608 || sc.MaxDepth != 32 {
		t.Fatalf("converted = %+v", sc)
	}
	if cfg.Server.AdminAddr != "127.0.0.1:9090" {
		t.Fatalf("admin addr = %q", cfg.Server.AdminAddr)
	}
}

func TestWriteTemplateRespectsOverwrite(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "packet.toml")
	if err := WriteTemplate(path, "packet", false); err != nil {
		t.Fatal(err)
	}
	if err := WriteTemplate(path, "packet", false); err == nil {
		t.Fatal("expected existing file error")
	}
	if err := WriteTemplate(path, "packet", true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if _, err := Template("mirage"); err == nil {
		t.Fatal("unknown kind accepted")
	}
}

func TestLoadSessionConfigDefaults(t *testing.T) {
	testlog.Start(t)
	cfg, err := LoadSessionConfig(writeFile(t, "max_depth = 4\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RequestTimeout != "30s" || cfg.MaxBodyBytes != 8<<20 || cfg.Server.Listen == "" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	a, err := cfg.Session()
	if err != nil {
		t.Fatal(err)
	}
	b, _ := cfg.Session()
	if a.SessionID.IsZero() || a.SessionID == b.SessionID {
		t.Fatal("empty session id should draw a fresh random id")
	}
	if a.MaxDepth != 4 {
		t.Fatalf("max depth = %d", a.MaxDepth)
	}
}

func TestLoadSessionConfigRejects(t *testing.T) {
	testlog.Start(t)
	cases := map[string]string{
		"short session id": `session_id = "abcd"`,
		"bad timeout":      `request_timeout = "soon"`,
		"negative timeout": `request_timeout = "-1s"`,
		"negative body":    `max_body_bytes = -1`,
		"negative depth":   `max_depth = -2`,
		"not toml":         `session_id = `,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadSessionConfig(writeFile(t, body+"\n")); err == nil {
				t.Fatal("expected error")
			}
		})
	}
	if _, err := LoadSessionConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil ||
		!strings.Contains(err.Error(), "config load failed") {
		t.Fatalf("missing file err = %v", err)
	}
}
