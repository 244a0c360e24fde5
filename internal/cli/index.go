package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIndexCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "index [NAME]",
		Short: "Print the one-based index of a step",
		Long: `Print the one-based position of the first step named NAME, or of the
active step when NAME is omitted. Prints 0 and exits 1 when there is no such step.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadController(cmd)
			if err != nil {
				return err
			}

			idx := c.CurrentStepIndex()
			if len(args) == 1 {
				idx = c.GetIndex(args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), idx)
			if idx == 0 {
				return NewExitError(1)
			}
			return nil
		},
	}
}
