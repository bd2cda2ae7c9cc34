package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Export  *ExportCommand
	Domains *DomainsCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "cookie-exporter"
	parser.LongDescription = "Export cookies from a local Chrome profile as a Netscape HTTP Cookie File."

	cmds := &commands{
		Export:  &ExportCommand{globals: &globals, version: version},
		Domains: &DomainsCommand{globals: &globals, version: version},
	}

	parser.AddCommand("export", "Export cookies to a Netscape cookie file", "Read cookies from a Chrome Cookies database and write them in Netscape format.", cmds.Export)
	parser.AddCommand("domains", "List cookie hosts in a profile", "List the distinct cookie hosts in a Chrome Cookies database with per-host counts, to preview what a --domain filter will match.", cmds.Domains)

	return parser, &globals, cmds
}

// Run is the main entry point for the cookie-exporter CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("cookie-exporter %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
