package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/humanapp/mindcraft-lang-sub000/internal/registry"
	"github.com/humanapp/mindcraft-lang-sub000/internal/suggest"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and edit a tile catalog manifest",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every tile in the catalog, in natural sort order",
	RunE:  runCatalogList,
}

var catalogQueryCmd = &cobra.Command{
	Use:   "query <file.json> <gjson-path>",
	Short: "Read one field out of a JSON catalog fragment",
	Args:  cobra.ExactArgs(2),
	RunE:  runCatalogQuery,
}

var catalogPatchCmd = &cobra.Command{
	Use:   "patch <file.json> <sjson-path> <value>",
	Short: "Set one field of a JSON catalog fragment and print the result",
	Args:  cobra.ExactArgs(3),
	RunE:  runCatalogPatch,
}

func init() {
	catalogCmd.AddCommand(catalogListCmd, catalogQueryCmd, catalogPatchCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	reg, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	defs := reg.Tiles.All()
	suggest.SortTileDefsNatural(defs)

	out := cmd.OutOrStdout()
	for _, def := range defs {
		fmt.Fprintf(out, "%s\t%v\n", def.TileID, def.Kind)
	}
	return nil
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	doc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading catalog fragment: %w", err)
	}
	result := registry.QueryCatalogJSON(doc, args[1])
	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}

func runCatalogPatch(cmd *cobra.Command, args []string) error {
	doc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading catalog fragment: %w", err)
	}
	patched, err := registry.PatchCatalogJSON(doc, args[1], args[2])
	if err != nil {
		return fmt.Errorf("patching catalog fragment: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(patched))
	return nil
}
