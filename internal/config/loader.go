package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the settings file when --config is not given.
const EnvConfigPath = "PS3DECUI_CONFIG"

// EnvExecutable supplies the ps3dec executable when the settings file has none.
const EnvExecutable = "PS3DEC_PATH"

type codec struct {
	marshal   func(any) ([]byte, error)
	unmarshal func([]byte, any) error
}

var codecs = map[string]codec{
	".json": {
		marshal: func(v any) ([]byte, error) {
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return nil, err
			}
			return append(data, '\n'), nil
		},
		unmarshal: json.Unmarshal,
	},
	".yaml": {marshal: yaml.Marshal, unmarshal: yaml.Unmarshal},
	".yml":  {marshal: yaml.Marshal, unmarshal: yaml.Unmarshal},
	".toml": {
		marshal: func(v any) ([]byte, error) {
			var buf bytes.Buffer
			if err := toml.NewEncoder(&buf).Encode(v); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		unmarshal: toml.Unmarshal,
	},
}

// codecFor picks the file format from the extension. Unknown extensions are
// treated as JSON, the format of the original settings file.
func codecFor(path string) codec {
	if c, ok := codecs[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}
	return codecs[".json"]
}

// ResolvePath returns the settings file to use: the flag value, then
// $PS3DECUI_CONFIG, then ps3dec_gui.json in the working directory.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(EnvConfigPath); v != "" {
		return v
	}
	return DefaultFileName
}

// Load returns the persisted configuration at path, or the defaults if the
// file is missing or cannot be parsed. It never fails.
func Load(path string) Config {
	cfg, err := LoadFile(path)
	if err != nil {
		cfg = Default()
	}
	applyEnvOverrides(&cfg)
	return cfg
}

// LoadFile reads and decodes path on top of the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()
	if err := codecFor(path).unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.ThreadCount = ClampThreads(cfg.ThreadCount)
	return cfg, nil
}

// Save writes cfg to path, replacing the file atomically.
func Save(path string, cfg Config) error {
	data, err := codecFor(path).marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if cfg.ExecutablePath == "" {
		if v := os.Getenv(EnvExecutable); v != "" {
			cfg.ExecutablePath = v
		}
	}
}
