package cli

import (
	"github.com/satishsurath/Cookie-Exporter/internal/config"
)

// loadConfig loads the YAML config file, honoring the global --config
// override when set.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.Load(globals.Config)
	}
	return config.LoadDefault()
}
