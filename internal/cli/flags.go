package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file (overrides the default location)" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// ExportCommand — read cookies from a Chrome profile and write a Netscape
// cookie file.
type ExportCommand struct {
	ChromeProfile string   `long:"chrome-profile" description:"Path to the Chrome 'Cookies' SQLite database file"`
	Domain        []string `long:"domain" description:"Domain substring to filter for (repeatable)"`
	Output        string   `long:"output" description:"Output file path for the exported Netscape file"`
	UseConfig     bool     `long:"use-config" description:"Load chrome_profile, domains, and output_path from the config file"`

	globals *GlobalFlags
	version string
}

// DomainsCommand — list the distinct cookie hosts in a profile.
type DomainsCommand struct {
	ChromeProfile string `long:"chrome-profile" description:"Path to the Chrome 'Cookies' SQLite database file"`
	UseConfig     bool   `long:"use-config" description:"Load chrome_profile from the config file"`
	Limit         int    `long:"limit" description:"Show at most N hosts (0 = all)" default:"0"`

	globals *GlobalFlags
	version string
}
