package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/humanapp/mindcraft-lang-sub000/pkg/mindcraft"
)

var typecheckCmd = &cobra.Command{
	Use:   "typecheck <rule.json>",
	Short: "Parse and type-check a rule, printing inferred types and diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runTypecheck,
}

func init() {
	rootCmd.AddCommand(typecheckCmd)
}

func runTypecheck(cmd *cobra.Command, args []string) error {
	reg, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	rf, err := loadRule(args[0])
	if err != nil {
		return err
	}

	whenTiles, err := resolveTiles(rf.When, reg)
	if err != nil {
		return fmt.Errorf("resolving when tiles: %w", err)
	}
	doTiles, err := resolveTiles(rf.Do, reg)
	if err != nil {
		return fmt.Errorf("resolving do tiles: %w", err)
	}

	result, err := mindcraft.Compile(whenTiles, doTiles, reg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(result.TypeDiags) == 0 {
		fmt.Fprintln(out, "no type diagnostics")
		return nil
	}
	for _, d := range result.TypeDiags {
		fmt.Fprintf(out, "[%d] node %d: %s\n", d.Code, d.NodeID, d.Message)
	}
	return nil
}
