package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/satishsurath/Cookie-Exporter/internal/chrome"
	"github.com/satishsurath/Cookie-Exporter/internal/netscape"
)

// exportParams are the resolved inputs of one export run, whichever of
// flags or config file they came from.
type exportParams struct {
	ChromeProfile string
	Domains       []string
	Output        string
}

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	params, err := c.resolveParams()
	if err != nil {
		return err
	}
	return c.run(params)
}

// resolveParams merges command-line flags and (with --use-config) the
// config file into the three values the pipeline needs. Explicit flags
// win over config values.
func (c *ExportCommand) resolveParams() (exportParams, error) {
	params := exportParams{
		ChromeProfile: c.ChromeProfile,
		Domains:       c.Domain,
		Output:        c.Output,
	}

	if c.UseConfig {
		cfg, err := loadConfig(c.globals)
		if err != nil {
			return exportParams{}, err
		}
		if params.ChromeProfile == "" {
			params.ChromeProfile = cfg.ChromeProfile
		}
		if len(params.Domains) == 0 {
			params.Domains = cfg.Domains
		}
		if params.Output == "" {
			params.Output = cfg.OutputPath
		}
	}

	if params.ChromeProfile == "" {
		return exportParams{}, fmt.Errorf("chrome profile path is required (--chrome-profile or config file)")
	}
	if params.Output == "" {
		return exportParams{}, fmt.Errorf("output file path is required (--output or config file)")
	}

	return params, nil
}

// run executes the export pipeline: read, encode, write.
func (c *ExportCommand) run(params exportParams) error {
	ctx := context.Background()

	cookies, err := chrome.ReadCookies(ctx, params.ChromeProfile, params.Domains)
	if err != nil {
		return fmt.Errorf("read cookies: %w", err)
	}

	payload := netscape.Encode(cookies)

	// 0600: the file holds plaintext session credentials.
	if err := os.WriteFile(params.Output, []byte(payload), 0600); err != nil {
		return fmt.Errorf("write cookie file: %w", err)
	}

	cookieWord := "cookies"
	if len(cookies) == 1 {
		cookieWord = "cookie"
	}
	fmt.Printf("Exported %d %s to %s\n", len(cookies), cookieWord, params.Output)

	return nil
}
