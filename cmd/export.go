package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/export"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/model"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/pipeline"
	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/store"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

var (
	flagExportFormat string
	flagExportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries as YAML or JSON",
	Long:  "Export entries in the --days window (0 for all history) to stdout or a file.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "yaml", "Output format: yaml or json")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagExportFormat)
	if err != nil {
		return err
	}

	e, err := openEnv(envOptions{})
	if err != nil {
		return err
	}
	defer e.Close()

	all, err := e.store.ListAll(store.Ascending)
	if err != nil {
		return err
	}

	// Export defaults to everything unless --days is given.
	days := 0
	if cmd.Flags().Changed("days") {
		days = flagDays
	}
	since, until := window(days, model.Today())
	records := pipeline.FilterByRange(all, since, until)

	var buf bytes.Buffer
	if err := export.Write(&buf, records, e.habits, format); err != nil {
		return err
	}

	if flagExportOutput == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := atomic.WriteFile(flagExportOutput, &buf); err != nil {
		return fmt.Errorf("writing %s: %w", flagExportOutput, err)
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported %d entries to %s\n", len(records), flagExportOutput)
	}
	return nil
}
