package config

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "session":
		return sessionTemplate, nil
	case "packet":
		return packetTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const sessionTemplate = `# empty session_id draws a random one per run
session_id = "00112233445566778899aabbccddeeff"
request_timeout = "30s"
max_body_bytes = 8388608
max_depth = 32

[server]
listen = "127.0.0.1:4444"
admin_addr = "127.0.0.1:9090"
# admin_token = "change-me"
`

const packetTemplate = `kind = "request"
method = "stdapi_fs_stat"
# request_id is generated when omitted
# request_id = "9f2c1e0a5b7d4c3e8a6f1b2d3c4e5f60"

[[field]]
name = "file_path"
value = "/etc/hosts"

[[field]]
name = "channel_id"
value = 1

[[field]]
name = "channel_data_group"

  [[field.field]]
  name = "channel_type"
  value = "stdapi_fs_file"

  [[field.field]]
  name = "channel_data"
  value = "cafe"
`
