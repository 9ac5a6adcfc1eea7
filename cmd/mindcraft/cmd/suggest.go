package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/humanapp/mindcraft-lang-sub000/internal/mctile"
	"github.com/humanapp/mindcraft-lang-sub000/internal/suggest"
	"github.com/humanapp/mindcraft-lang-sub000/pkg/mindcraft"
)

var (
	suggestSide    string
	suggestAt      int
	suggestReplace bool
	suggestExpect  string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <rule.json>",
	Short: "List the tiles legally insertable at one point in a rule side",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestSide, "side", "do", `rule side to suggest into ("when" or "do")`)
	suggestCmd.Flags().IntVar(&suggestAt, "at", -1, "tile index to insert at or replace (-1 appends)")
	suggestCmd.Flags().BoolVar(&suggestReplace, "replace", false, "replace the tile at --at instead of inserting before it")
	suggestCmd.Flags().StringVar(&suggestExpect, "expect", "", "expected type id to constrain value suggestions")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	reg, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	rf, err := loadRule(args[0])
	if err != nil {
		return err
	}

	side := mctile.WhenSide
	tileIDs := rf.When
	if suggestSide == "do" {
		side = mctile.DoSide
		tileIDs = rf.Do
	}

	tiles, err := resolveTiles(tileIDs, reg)
	if err != nil {
		return fmt.Errorf("resolving %s tiles: %w", suggestSide, err)
	}

	insertionCtx := buildInsertionContext(tiles, side, suggestAt, suggestReplace, suggestExpect)
	result := mindcraft.SuggestTiles(insertionCtx, reg)
	printSuggestions(cmd, result)
	return nil
}

func buildInsertionContext(tiles []*mctile.TileDef, side mctile.Placement, at int, replace bool, expect string) suggest.InsertionContext {
	expr := mindcraft.ParseTilesForSuggestions(tiles)

	var exclude *int
	var replaceIdx *int
	if replace && at >= 0 {
		idx := at
		replaceIdx = &idx
		exclude = &idx
	}

	var expected *mctile.TypeID
	if expect != "" {
		t := mctile.TypeID(expect)
		expected = &t
	}

	return suggest.InsertionContext{
		RuleSide:              side,
		ExpectedType:          expected,
		Expr:                  expr,
		ReplaceTileIndex:      replaceIdx,
		AvailableCapabilities: ^mctile.CapabilitySet(0),
		UnclosedParenDepth:    mindcraft.CountUnclosedParens(tiles, exclude),
	}
}

func printSuggestions(cmd *cobra.Command, result suggest.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "exact (%d):\n", len(result.Exact))
	for _, s := range result.Exact {
		fmt.Fprintf(out, "  %s\n", s.TileDef.TileID)
	}
	fmt.Fprintf(out, "with_conversion (%d):\n", len(result.WithConversion))
	for _, s := range result.WithConversion {
		fmt.Fprintf(out, "  %s (cost %d)\n", s.TileDef.TileID, s.ConversionCost)
	}
}
