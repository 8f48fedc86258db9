package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glassquiz/glassquiz/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and convert question catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a .yaml, .db or .xlsx catalog for problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		topics, questions := cat.Len()
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d topics, %d questions)\n", args[0], topics, questions)
		return nil
	},
}

var catalogExportDBCmd = &cobra.Command{
	Use:   "export-db <out.db>",
	Short: "Write the active catalog into a SQLite database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadActiveCatalog(cmd)
		if err != nil {
			return err
		}
		if err := catalog.WriteSQLite(cmd.Context(), cat, args[0]); err != nil {
			return fmt.Errorf("export catalog: %w", err)
		}
		topics, questions := cat.Len()
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d topics, %d questions to %s\n", topics, questions, args[0])
		return nil
	},
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the active catalog as a YAML document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadActiveCatalog(cmd)
		if err != nil {
			return err
		}
		data, err := cat.EncodeYAML()
		if err != nil {
			return fmt.Errorf("encode catalog: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// loadActiveCatalog loads the catalog selected by --catalog or
// GLASSQUIZ_CATALOG, falling back to the built-in one.
func loadActiveCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(cmd.Context(), cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportDBCmd)
	catalogCmd.AddCommand(catalogDumpCmd)
}
