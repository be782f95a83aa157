package cmd

import (
	"fmt"

	"github.com/Nikulkumar-Dabhi/Habit-Tracker/internal/cli"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "habits",
	Aliases: []string{"list"},
	Short:   "List configured habits and their database columns",
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	e, err := openEnv(envOptions{})
	if err != nil {
		return err
	}
	defer e.Close()

	rows := make([][]string, 0, e.habits.Len())
	for i, h := range e.habits.Habits() {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), h.Label, h.Column})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Habits",
		Headers: []string{"#", "Habit", "Column"},
		Rows:    rows,
		Left:    []bool{true, true, true},
	}))

	if retired := e.store.RetiredColumns(); len(retired) > 0 {
		fmt.Println()
		fmt.Println(cli.RenderWarning("  Retired columns (kept on disk, not tracked):"))
		for _, c := range retired {
			fmt.Printf("    %s\n", c)
		}
	}
	fmt.Println()
	fmt.Printf("  Edit %s to change the list.\n\n", configPathForDisplay())
	return nil
}
