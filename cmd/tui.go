package cmd

import (
	"context"

	errors "github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Laisky/explain/cmd/tui"
)

func newTUICMD() *cobra.Command {
	tuiCMD := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long: `Launch an interactive Terminal User Interface (TUI) for explain.

Type a concept and press Enter to look it up. The explanation stays on
screen until you start a new query.

To explain the word "tui" itself, run:
  explain -- tui

Keyboard shortcuts:
  Enter       Explain / New query
  Tab         Toggle long form
  Esc         Go back
  Ctrl+C      Quit`,
		Args: gcmd.NoExtraArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}

	tuiCMD.Flags().BoolP("more", "m", false, "start in long form mode")
	return tuiCMD
}

// runTUI starts the interactive Terminal User Interface and returns any start/run error.
func runTUI(ctx context.Context) error {
	svc, err := newServiceFromSettings()
	if err != nil {
		return err
	}

	model := tui.NewModel(ctx, svc, gconfig.Shared.GetBool("more"))
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err = p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.WithStack(err)
	}
	return nil
}
