// Package cli implements the isotree command-line interface.
//
// # Commands
//
//   - repair: read a graph, candidate weights and priorities; write the
//     repaired priorities (q.txt), the oriented selection (x.txt), the root
//     indicator (r.txt) and optionally tree.dot / tree.svg.
//   - generate: write a fixture graph with random weights and priorities,
//     ready to feed into repair.
//
// # Configuration
//
// --config points at a TOML file (see internal/config). Flags that are set
// explicitly win over the file.
//
// # Logging
//
// --verbose switches to debug level, which also enables the library's stage
// logs. The logger travels through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isotree/internal/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the values printed by --version, usually from ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOpts are the persistent flags shared by every command.
type globalOpts struct {
	verbose    bool
	configPath string
	cfg        config.Config
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	root := newRootCmd(os.Stderr)
	return root.ExecuteContext(ctx)
}

func newRootCmd(logOut io.Writer) *cobra.Command {
	g := &globalOpts{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "isotree",
		Short:         "isotree repairs candidate trees into priority-ordered spanning trees",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if g.configPath != "" {
				cfg, err := config.Load(g.configPath)
				if err != nil {
					return err
				}
				g.cfg = cfg
			}
			level, err := g.cfg.Level()
			if err != nil {
				return err
			}
			if g.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("isotree %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "TOML config file")

	root.AddCommand(newRepairCmd(g))
	root.AddCommand(newGenerateCmd())

	return root
}
