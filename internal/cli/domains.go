package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/satishsurath/Cookie-Exporter/internal/chrome"
)

// domainsJSON is the JSON output structure for the domains command.
type domainsJSON struct {
	Database string            `json:"database"`
	Count    int               `json:"count"`
	Domains  []domainCountJSON `json:"domains"`
}

type domainCountJSON struct {
	Domain string `json:"domain"`
	Count  int64  `json:"count"`
}

// Execute implements the go-flags Commander interface for DomainsCommand.
func (c *DomainsCommand) Execute(args []string) error {
	profile := c.ChromeProfile
	if c.UseConfig && profile == "" {
		cfg, err := loadConfig(c.globals)
		if err != nil {
			return err
		}
		profile = cfg.ChromeProfile
	}
	if profile == "" {
		return fmt.Errorf("chrome profile path is required (--chrome-profile or config file)")
	}

	ctx := context.Background()
	stats, err := chrome.DomainStats(ctx, profile)
	if err != nil {
		return fmt.Errorf("list cookie hosts: %w", err)
	}

	if c.Limit > 0 && len(stats) > c.Limit {
		stats = stats[:c.Limit]
	}

	if c.globals != nil && c.globals.JSON {
		return c.printJSON(profile, stats)
	}
	return c.printHuman(profile, stats)
}

func (c *DomainsCommand) printHuman(profile string, stats []chrome.DomainCount) error {
	if len(stats) == 0 {
		fmt.Printf("No cookies found in %s\n", profile)
		return nil
	}

	hostWord := "hosts"
	if len(stats) == 1 {
		hostWord = "host"
	}
	fmt.Printf("Found %d cookie %s in %s\n\n", len(stats), hostWord, profile)

	for _, dc := range stats {
		fmt.Printf("  %-40s %d\n", dc.Domain, dc.Count)
	}

	return nil
}

func (c *DomainsCommand) printJSON(profile string, stats []chrome.DomainCount) error {
	out := domainsJSON{
		Database: profile,
		Count:    len(stats),
		Domains:  make([]domainCountJSON, len(stats)),
	}

	for i, dc := range stats {
		out.Domains[i] = domainCountJSON{Domain: dc.Domain, Count: dc.Count}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
