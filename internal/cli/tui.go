package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stepper/internal/tui"
)

func newTUICommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"wizard"},
		Short:   "Step through the sequence interactively",
		Long: `Open an interactive wizard over the sequence. Arrow keys move between
steps, number keys jump, ? toggles help and q quits. The step you end on is
printed on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadController(cmd)
			if err != nil {
				return err
			}

			r, err := app.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			m, err := tui.Run(cmd.Context(), c, r,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if err != nil {
				return err
			}

			app.Logger.Info("wizard finished", "step", m.Controller().CurrentStep(), "moves", m.Moves())
			fmt.Fprintln(cmd.OutOrStdout(), m.Controller().CurrentStep())
			return nil
		},
	}
}
