package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mcparser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <rule.json>",
	Short: "Parse a rule's when/do tile sequences and print the resulting AST shape",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
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

	when, do := mcparser.ParseRule(whenTiles, doTiles, reg)
	printParseResult(cmd, "when", when)
	printParseResult(cmd, "do", do)
	return nil
}

func printParseResult(cmd *cobra.Command, side string, res *mcparser.ParseResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d top-level expression(s)\n", side, len(res.Exprs))
	for _, e := range res.Exprs {
		fmt.Fprintf(out, "  node %d: kind=%v span=[%d,%d)\n", e.NodeID, e.Kind, e.Span.From, e.Span.To)
	}
	if len(res.Diags) == 0 {
		return
	}
	fmt.Fprintf(out, "%s: %d diagnostic(s)\n", side, len(res.Diags))
	for _, d := range res.Diags {
		fmt.Fprintf(out, "  [%d] %s (span [%d,%d))\n", d.Code, d.Message, d.Span.From, d.Span.To)
	}
}
