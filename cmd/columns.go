package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/taskreport/internal/column"
	"github.com/twiced-technology-gmbh/taskreport/internal/config"
	"github.com/twiced-technology-gmbh/taskreport/internal/i18n"
	"github.com/twiced-technology-gmbh/taskreport/internal/output"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List report columns and their styles",
	Long: `Lists every report column with its supported styles and an example per
style. Use a style with --columns as name.style, e.g. project.indented.`,
	Args: cobra.NoArgs,
	RunE: runColumns,
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(_ *cobra.Command, _ []string) error {
	// Labels follow the board locale when a board is present.
	locale := config.DefaultLocale
	if cfg, err := loadConfig(); err == nil {
		locale = cfg.Report.Locale
	}
	opts := column.Options{Printer: i18n.NewPrinter(locale)}

	reg := column.NewRegistry()
	infos := make([]output.ColumnInfo, 0, len(reg.Names()))
	for _, name := range reg.Names() {
		col, err := reg.New(name, opts)
		if err != nil {
			return err
		}
		infos = append(infos, output.ColumnInfo{
			Name:     col.Name(),
			Label:    col.Label(),
			Styles:   col.Styles(),
			Examples: col.Examples(),
		})
	}

	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, infos)
	case output.FormatCompact:
		output.ColumnCompact(os.Stdout, infos)
		return nil
	}
	output.ColumnTable(os.Stdout, infos)
	return nil
}
