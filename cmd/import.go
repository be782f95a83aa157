package cmd

import (
	"fmt"
	"os"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var flagImportFormat string

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Restore entries from a YAML or JSON export",
	Long: `Upsert every entry of an export file. Entries replace existing days with
the same date. Format is taken from the file extension unless --format is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&flagImportFormat, "format", "f", "", "Input format: yaml or json")
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]
	format := export.FormatForPath(path)
	if flagImportFormat != "" {
		f, err := export.ParseFormat(flagImportFormat)
		if err != nil {
			return err
		}
		format = f
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	doc, err := export.Read(f, format)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	e, err := openEnv(envOptions{})
	if err != nil {
		return err
	}
	defer e.Close()

	// Validate every entry before writing any.
	records, err := doc.Records(e.habits)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if err := e.store.Upsert(rec); err != nil {
			return err
		}
	}
	e.log.Info("imported entries", zap.String("file", path), zap.Int("count", len(records)))

	if !flagQuiet {
		fmt.Printf("  Imported %d entries from %s\n", len(records), path)
	}
	return nil
}
