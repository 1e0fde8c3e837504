package config

// Config is the persisted front-end state. Field names on disk match the
// settings file written by earlier releases (ps3dec_gui.json).
type Config struct {
	ExecutablePath string `json:"ps3dec_path" yaml:"ps3dec_path" toml:"ps3dec_path"`
	ISOPath        string `json:"iso_path" yaml:"iso_path" toml:"iso_path"`
	DecryptionKey  string `json:"decryption_key" yaml:"decryption_key" toml:"decryption_key"`
	ThreadCount    int    `json:"thread_count" yaml:"thread_count" toml:"thread_count"`
	Auto           bool   `json:"auto" yaml:"auto" toml:"auto"`
}

const (
	MinThreads = 1
	MaxThreads = 256
)

// ClampThreads bounds n to [MinThreads, MaxThreads].
func ClampThreads(n int) int {
	if n < MinThreads {
		return MinThreads
	}
	if n > MaxThreads {
		return MaxThreads
	}
	return n
}

// NeedsKey reports whether a manual decryption key is required before launch.
func (c Config) NeedsKey() bool {
	return !c.Auto
}
