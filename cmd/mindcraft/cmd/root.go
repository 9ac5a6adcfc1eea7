package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	catalogPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "mindcraft",
	Short: "Tile-based visual programming compiler front end",
	Long: `mindcraft parses, type-checks and suggests completions for
tile-based "brain" rules: linear sequences of typed tiles drawn from a
catalog, rather than text source code.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "path to a tile catalog manifest (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
