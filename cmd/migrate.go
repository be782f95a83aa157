package cmd

import (
	"fmt"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/cli"

	"github.com/spf13/cobra"
)

var flagPrune bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Reconcile the database with the configured habits and show schema history",
	Long: `Every command reconciles the schema on open: new habits get a column,
removed habits keep their column as retired. With --prune, retired columns
and their history are deleted.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&flagPrune, "prune", false, "Drop columns of habits no longer configured (deletes their history)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	e, err := openEnv(envOptions{prune: flagPrune})
	if err != nil {
		return err
	}
	defer e.Close()

	migs, err := e.store.Migrations()
	if err != nil {
		return fmt.Errorf("reading schema history: %w", err)
	}

	rows := make([][]string, 0, len(migs))
	for _, m := range migs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Version),
			m.Description,
			m.AppliedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Schema history",
		Headers: []string{"Version", "Change", "Applied"},
		Rows:    rows,
		Left:    []bool{false, true, true},
	}))

	n, err := e.store.Count()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("  %s entries, %d habits tracked\n", cli.FormatNumber(int64(n)), e.habits.Len())
	if retired := e.store.RetiredColumns(); len(retired) > 0 {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("  %d retired column(s) kept; run with --prune to delete them", len(retired))))
	}
	fmt.Println()
	return nil
}
