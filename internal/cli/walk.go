package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stepper/internal/render"
	"stepper/internal/walk"
)

func newWalkCommand(app *App) *cobra.Command {
	var (
		strict bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "walk ACTION...",
		Short: "Apply navigation actions in order",
		Long: `Apply navigation actions to the sequence, one after another, and report
where each one landed.

Actions:
  next, prev          move one step (wrapping when circular)
  first, last         jump to either end
  goto:NAME           transition to the named step
  activate:NAME       activate the named step directly

A move that cannot happen (end of a non-circular sequence, unknown step) is
reported and skipped. With --strict the walk stops there and exits 1.`,
		Example: `  stepper walk --steps a,b,c next next prev
  stepper walk -s wizard.yaml --circular next goto:review --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := walk.ParseActions(args)
			if err != nil {
				return err
			}

			c, err := app.loadController(cmd)
			if err != nil {
				return err
			}

			w := walk.NewWalker(c, app.Logger)
			w.SetStrict(strict)

			results, runErr := w.Run(cmd.Context(), actions)
			if runErr != nil && !errors.Is(runErr, walk.ErrBlocked) {
				return runErr
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := render.JSON(out, render.NewWalkReport(results, c)); err != nil {
					return err
				}
			} else {
				r, err := app.renderer(out)
				if err != nil {
					return err
				}
				for _, res := range results {
					fmt.Fprintln(out, r.Result(res, c.Length()))
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, r.Sequence(c))
				fmt.Fprintln(out, r.Status(c))
			}

			if runErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", runErr)
				return NewExitError(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "stop with exit status 1 at the first action that does not move")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON report")
	return cmd
}
