package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stepper/internal/render"
)

func newShowCommand(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the sequence and the active step",
		Long: `Show the loaded sequence with the active step highlighted, followed by a
status line. With --json, print a snapshot of the controller instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadController(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return render.JSON(out, render.TakeSnapshot(c))
			}

			r, err := app.renderer(out)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, r.Sequence(c))
			fmt.Fprintln(out, r.Status(c))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON snapshot")
	return cmd
}
