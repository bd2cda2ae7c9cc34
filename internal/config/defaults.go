package config

// DefaultConfig returns a Config populated with default values.
// ChromeProfile has no sensible default; it must come from the config
// file or the command line.
func DefaultConfig() *Config {
	return &Config{
		Domains:    []string{},
		OutputPath: "cookies.txt",
	}
}
