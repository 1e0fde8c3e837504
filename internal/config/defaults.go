package config

// DefaultFileName is the settings file used when neither --config nor
// PS3DECUI_CONFIG names one.
const DefaultFileName = "ps3dec_gui.json"

func Default() Config {
	return Config{
		ThreadCount: 1,
	}
}
